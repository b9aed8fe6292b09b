package calendar

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/tartampluch/go-swipecal/internal/config"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Names holds the month and weekday names written by Format. A nil
// *Names, or an empty entry, falls back to English.
type Names struct {
	Months   [12]string // January first
	Weekdays [7]string  // Sunday first
}

func (n *Names) month(m time.Month) string {
	if n == nil || n.Months[m-1] == "" {
		return m.String()
	}
	return n.Months[m-1]
}

func (n *Names) weekday(d time.Weekday) string {
	if n == nil || n.Weekdays[d] == "" {
		return d.String()
	}
	return n.Weekdays[d]
}

// Format renders t with a date-fns style pattern: runs of a letter form a
// token (yyyy, MMMM, EEEEEE, d, ...) and text between single quotes is
// copied verbatim ('' is a literal quote). Letters without a meaning are
// copied as they are. Month and weekday names are English; use
// (*Names).Format for another language.
func Format(t time.Time, pattern string) string {
	var n *Names
	return n.Format(t, pattern)
}

// Format renders t like the package-level Format with n's names. Short
// forms (MMM, EEE, EEEEE, EEEEEE) are prefixes of the full names.
func (n *Names) Format(t time.Time, pattern string) string {
	var b strings.Builder
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		r := runes[i]

		if r == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				b.WriteRune('\'')
				i += 2
				continue
			}
			j := i + 1
			for j < len(runes) {
				if runes[j] == '\'' {
					if j+1 < len(runes) && runes[j+1] == '\'' {
						b.WriteRune('\'')
						j += 2
						continue
					}
					break
				}
				b.WriteRune(runes[j])
				j++
			}
			i = j + 1
			continue
		}

		if !unicode.IsLetter(r) {
			b.WriteRune(r)
			i++
			continue
		}

		width := 1
		for i+width < len(runes) && runes[i+width] == r {
			width++
		}
		b.WriteString(n.token(t, r, width))
		i += width
	}
	return b.String()
}

func (n *Names) token(t time.Time, letter rune, width int) string {
	switch letter {
	case 'y':
		y := t.Year()
		if width == 2 {
			return pad(y%100, 2)
		}
		return pad(y, width)
	case 'M':
		switch {
		case width >= 4:
			return n.month(t.Month())
		case width == 3:
			return prefix(n.month(t.Month()), 3)
		default:
			return pad(int(t.Month()), width)
		}
	case 'd':
		return pad(t.Day(), width)
	case 'E':
		name := n.weekday(t.Weekday())
		switch {
		case width == 6:
			return prefix(name, 2)
		case width == 5:
			return prefix(name, 1)
		case width == 4:
			return name
		default:
			return prefix(name, 3)
		}
	case 'H':
		return pad(t.Hour(), width)
	case 'm':
		return pad(t.Minute(), width)
	}
	return strings.Repeat(string(letter), width)
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// Transform applies a theme text transform (uppercase, lowercase,
// capitalize, none) to s.
func Transform(s, mode string) string {
	switch mode {
	case config.TransformUppercase:
		return cases.Upper(language.Und).String(s)
	case config.TransformLowercase:
		return cases.Lower(language.Und).String(s)
	case config.TransformCapitalize:
		return cases.Title(language.Und, cases.NoLower).String(s)
	}
	return s
}

// FormatText formats t with pattern and applies the text transform.
func FormatText(t time.Time, pattern, transform string) string {
	return Transform(Format(t, pattern), transform)
}
