package locale_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/locale"
)

func TestLanguages_Detected(t *testing.T) {
	l := locale.New()
	assert.ElementsMatch(t, config.SupportedLanguages, l.Languages())
}

func TestMonthName(t *testing.T) {
	l := locale.Default()

	tests := []struct {
		lang  string
		month int
		want  string
	}{
		{config.LangEnglish, 1, "January"},
		{config.LangEnglish, 12, "December"},
		{config.LangPersian, 1, "فروردین"},
		{config.LangPersian, 7, "مهر"},
		{config.LangPersian, 12, "اسفند"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s-%d", tt.lang, tt.month), func(t *testing.T) {
			got, ok := l.MonthName(tt.lang, tt.month)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonthName_Unknown(t *testing.T) {
	l := locale.Default()

	_, ok := l.MonthName(config.LangEnglish, 0)
	assert.False(t, ok)
	_, ok = l.MonthName(config.LangPersian, 13)
	assert.False(t, ok)
}

func TestMonthName_FallsBackToDefaultLanguage(t *testing.T) {
	got, ok := locale.Default().MonthName("de", 3)
	require.True(t, ok, "Unknown languages use the English bundle")
	assert.Equal(t, "March", got)
}

func TestWeekdayLabels(t *testing.T) {
	l := locale.Default()

	en := l.WeekdayLabels(config.LangEnglish, time.Sunday)
	assert.Equal(t, []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}, en)

	fa := l.WeekdayLabels(config.LangPersian, time.Saturday)
	require.Len(t, fa, 7)
	assert.Equal(t, "ش", fa[0], "Jalaali weeks start on Saturday")
	assert.Equal(t, "ج", fa[6])
}

func TestMsg_MissingKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "no_such_key", locale.Default().Msg(config.LangEnglish, "no_such_key"))
}

// TestI18nIntegrity ensures every translation key in config exists in every
// locale file, and that both files carry the same key set.
func TestI18nIntegrity(t *testing.T) {
	keys := []string{
		config.TKeyWinTitle,
		config.TKeyWinSettings,
		config.TKeyLblSingle,
		config.TKeyLblStart,
		config.TKeyLblEnd,
		config.TKeyLblRange,
		config.TKeyLblFooter,
		config.TKeyLblLanguage,
		config.TKeyHelpLanguage,
		config.TKeyLblLayout,
		config.TKeyHelpLayout,
		config.TKeyLblPort,
		config.TKeyBtnClear,
		config.TKeyBtnSettings,
		config.TKeyBtnSave,
		config.TKeyBtnCancel,
		config.TKeyEvtSummary,
		config.TKeyErrPortReq,
		config.TKeyErrPortNum,
		config.TKeyErrPortRange,
		config.TKeyErrLayout,
	}
	for m := 1; m <= config.MonthsPerYear; m++ {
		keys = append(keys, fmt.Sprintf(config.TKeyMonthFmt, m))
	}
	for wd := 0; wd < config.DaysPerWeek; wd++ {
		keys = append(keys, fmt.Sprintf(config.TKeyWeekdayFmt, wd))
	}

	files := map[string]map[string]any{}
	for _, lang := range config.SupportedLanguages {
		content, err := os.ReadFile(filepath.Join("locales", "active."+lang+".json"))
		require.NoError(t, err, "Must load locale file for %s", lang)

		var m map[string]any
		require.NoError(t, json.Unmarshal(content, &m), "JSON must be valid")
		files[lang] = m

		for _, k := range keys {
			_, ok := m[k]
			assert.Truef(t, ok, "Key '%s' is missing in active.%s.json", k, lang)
		}
	}

	for lang, m := range files {
		for k := range m {
			if strings.HasPrefix(k, "_") {
				continue
			}
			for other, om := range files {
				_, ok := om[k]
				assert.Truef(t, ok, "Key '%s' of active.%s.json is missing in active.%s.json", k, lang, other)
			}
		}
	}
}
