// Package locale loads the embedded translation bundles and exposes month
// and weekday names per picker language.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-datepicker/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Localizer resolves translated strings for any supported language.
// It is safe for concurrent use.
type Localizer struct {
	bundle    *i18n.Bundle
	languages []string
}

var (
	defaultOnce      sync.Once
	defaultLocalizer *Localizer
)

// Default returns the process-wide Localizer built from the embedded bundles.
func Default() *Localizer {
	defaultOnce.Do(func() {
		defaultLocalizer = New()
	})
	return defaultLocalizer
}

// New loads every embedded "active.<lang>.json" file into a fresh bundle.
// Unreadable files are logged and skipped so a broken locale never prevents
// the picker from starting.
func New() *Localizer {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	l := &Localizer{bundle: bundle}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return l
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
		l.languages = append(l.languages, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
		)
	}
	return l
}

// Languages lists the language codes that loaded successfully.
func (l *Localizer) Languages() []string {
	return append([]string(nil), l.languages...)
}

// Lookup translates key for lang. The second result is false when no
// translation exists in lang or in the bundle default.
func (l *Localizer) Lookup(lang, key string) (string, bool) {
	msg, err := i18n.NewLocalizer(l.bundle, lang).Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil || msg == "" {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, lang,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return "", false
	}
	return msg, true
}

// Msg translates key for lang, falling back to the key itself.
func (l *Localizer) Msg(lang, key string) string {
	if msg, ok := l.Lookup(lang, key); ok {
		return msg
	}
	return key
}

// MonthName returns the name of month (1-12) in the calendar of lang.
func (l *Localizer) MonthName(lang string, month int) (string, bool) {
	if month < 1 || month > config.MonthsPerYear {
		return "", false
	}
	return l.Lookup(lang, fmt.Sprintf(config.TKeyMonthFmt, month))
}

// WeekdayLabels returns the seven weekday labels for lang, starting at start.
func (l *Localizer) WeekdayLabels(lang string, start time.Weekday) []string {
	labels := make([]string, 0, config.DaysPerWeek)
	for i := 0; i < config.DaysPerWeek; i++ {
		wd := (int(start) + i) % config.DaysPerWeek
		labels = append(labels, l.Msg(lang, fmt.Sprintf(config.TKeyWeekdayFmt, wd)))
	}
	return labels
}
