package ui

import (
	"errors"
	"image/color"
	"log/slog"
	"strings"
	"sync"

	"github.com/mazznoer/csscolorparser"
	"github.com/tartampluch/go-swipecal/internal/config"
)

var colorCache sync.Map // string -> color.Color

// ParseColor resolves a theme color written in CSS syntax: a named color
// ("tomato"), #rgb, #rrggbb, #rrggbbaa, rgb(), rgba(), hsl() or hwb().
// Unknown values yield fallback.
func ParseColor(value string, fallback color.Color) color.Color {
	if c, ok := colorCache.Load(value); ok {
		return c.(color.Color)
	}
	c, err := parseColor(value)
	if err != nil {
		slog.Debug(config.MsgUnknownColor,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyValue, value,
			config.LogKeyError, err,
		)
		return fallback
	}
	colorCache.Store(value, c)
	return c
}

func parseColor(value string) (color.Color, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil, errors.New(config.ErrColorEmpty)
	}
	c, err := csscolorparser.Parse(v)
	if err != nil {
		return nil, err
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
