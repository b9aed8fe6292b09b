package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-swipecal/internal/calendar"
	"github.com/tartampluch/go-swipecal/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves chrome strings for the current language.
type Translator struct {
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	languages []string
	lang      string
}

// NewTranslator loads every embedded locales/active.<lang>.json file and
// selects lang.
func NewTranslator(lang string) *Translator {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	tr := &Translator{bundle: bundle}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		tr.languages = append(tr.languages, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
		)
	}

	tr.SetLanguage(lang)
	return tr
}

// Languages returns the language codes found in the embedded locales.
func (tr *Translator) Languages() []string {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return append([]string(nil), tr.languages...)
}

// Language returns the selected language code.
func (tr *Translator) Language() string {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return tr.lang
}

// SetLanguage switches the localizer; an empty code selects the default.
func (tr *Translator) SetLanguage(lang string) {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.lang = lang
	tr.localizer = i18n.NewLocalizer(tr.bundle, lang)
}

// Msg translates key, falling back to the key itself.
func (tr *Translator) Msg(key string) string {
	return tr.localize(&i18n.LocalizeConfig{MessageID: key})
}

// Count translates a pluralized key with {{.Count}}.
func (tr *Translator) Count(key string, n int) string {
	return tr.localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: map[string]interface{}{"Count": n},
		PluralCount:  n,
	})
}

func (tr *Translator) localize(cfg *i18n.LocalizeConfig) string {
	tr.mu.RLock()
	loc := tr.localizer
	tr.mu.RUnlock()

	if loc == nil {
		return cfg.MessageID
	}
	msg, err := loc.Localize(cfg)
	if err != nil || msg == "" {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, cfg.MessageID,
			config.LogKeyError, err,
		)
		return cfg.MessageID
	}
	return msg
}

// Names returns the month and weekday names of the current language, or nil
// (English) when the locale lacks a complete list.
func (tr *Translator) Names() *calendar.Names {
	months := splitNames(tr.Msg(config.TKeyMonthNames))
	weekdays := splitNames(tr.Msg(config.TKeyWeekdayNames))
	if len(months) != config.MonthsPerYear || len(weekdays) != config.DaysPerWeek {
		return nil
	}
	n := &calendar.Names{}
	copy(n.Months[:], months)
	copy(n.Weekdays[:], weekdays)
	return n
}

func splitNames(list string) []string {
	names := strings.Split(list, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return names
}

// BirthdayTitle localizes a birthday marker title. It matches
// markers.TitleFunc.
func (tr *Translator) BirthdayTitle(name string, age int, yearKnown bool) string {
	tr.mu.RLock()
	loc := tr.localizer
	tr.mu.RUnlock()

	cfg := &i18n.LocalizeConfig{
		MessageID:    config.TKeyBirthday,
		TemplateData: map[string]interface{}{"Name": name},
	}
	if yearKnown && age > 0 {
		cfg = &i18n.LocalizeConfig{
			MessageID:    config.TKeyBirthdayAge,
			TemplateData: map[string]interface{}{"Name": name, "Age": age},
			PluralCount:  age,
		}
	}

	if loc != nil {
		if msg, err := loc.Localize(cfg); err == nil && msg != "" {
			return msg
		}
	}
	if yearKnown && age > 0 {
		return fmt.Sprintf(config.FormatBirthdayAgeTitle, name, age)
	}
	return fmt.Sprintf(config.FormatBirthdayTitle, name)
}
