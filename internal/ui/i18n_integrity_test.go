package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-swipecal/internal/config"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// exists in every locale JSON file.
func TestI18nIntegrity(t *testing.T) {
	definedKeys := make(map[string]bool)

	keysToCheck := []string{
		config.TKeyWinTitle,
		config.TKeyBtnToday,
		config.TKeyBtnCredentials,
		config.TKeyLblYearJump,
		config.TKeyLblProgress,
		config.TKeyLblAgenda,
		config.TKeyLblPassword,
		config.TKeyBtnSave,
		config.TKeyBtnCancel,
		config.TKeyAgendaEmpty,
		config.TKeyAgendaCount,
		config.TKeyBirthday,
		config.TKeyBirthdayAge,
		config.TKeyNotifReloaded,
		config.TKeyNotifMarkerErr,
		config.TKeyMonthNames,
		config.TKeyWeekdayNames,
	}

	for _, k := range keysToCheck {
		definedKeys[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			path := filepath.Join("locales", "active."+lang+".json")
			content, err := os.ReadFile(path)
			require.NoError(t, err, "Must load %s", path)

			var jsonMap map[string]interface{}
			require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")

			for key := range definedKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in %s", key, path)
			}

			// Orphan keys are only reported.
			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !definedKeys[jsonKey] {
					t.Logf("Warning: Key '%s' exists in JSON but is not checked in the test suite (might be unused)", jsonKey)
				}
			}
		})
	}
}
