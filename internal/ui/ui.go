package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/engine"
	"github.com/tartampluch/go-datepicker/internal/export"
	"github.com/tartampluch/go-datepicker/internal/locale"
	"github.com/tartampluch/go-datepicker/internal/server"
)

// Publisher receives every committed selection.
type Publisher interface {
	Publish(sel export.Selection) error
}

// PickerApp encapsulates the windows, preferences and the selection feed.
type PickerApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	Locale      *locale.Localizer
	Ctx         context.Context

	Server   *server.FeedServer
	Feed     Publisher
	Clock    engine.Clock // Injected clock for testability
	Settings config.Settings

	Single *Picker
	Range  *RangePicker

	tabs           *container.AppTabs
	settingsWindow fyne.Window
}

// NewPickerApp constructs the application and wires dependencies. settings
// supply the fallbacks for values absent from the stored preferences.
func NewPickerApp(a fyne.App, ctx context.Context, srv *server.FeedServer, settings config.Settings) *PickerApp {
	app := &PickerApp{
		App:         a,
		Preferences: a.Preferences(),
		Locale:      locale.Default(),
		Ctx:         ctx,
		Server:      srv,
		Clock:       engine.RealClock{},
		Settings:    settings,
	}
	if srv != nil {
		app.Feed = srv
	}
	return app
}

// Run starts the feed server, shows the main window and enters the UI loop.
func (app *PickerApp) Run() {
	go func() {
		if err := app.Server.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)

			app.App.SendNotification(fyne.NewNotification(
				config.TitleStartupError,
				fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
		}
	}()

	app.publish(export.Selection{})
	app.ShowMainWindow()
	app.App.Run()
}

// Language is the stored picker language, or the start-up setting.
func (app *PickerApp) Language() string {
	return app.Preferences.StringWithFallback(config.PrefLanguage, app.Settings.Language)
}

// Layout is the stored date layout; empty selects the language default.
func (app *PickerApp) Layout() string {
	return app.Preferences.StringWithFallback(config.PrefLayout, app.Settings.Layout)
}

// GetMsg translates key in the current language.
func (app *PickerApp) GetMsg(key string) string {
	return app.Locale.Msg(app.Language(), key)
}

// BuildPickers creates fresh single and range pickers for the current
// language and layout. Previous selections are dropped.
func (app *PickerApp) BuildPickers() error {
	lang := app.Language()
	layout := app.Layout()
	log := slog.With(config.LogKeyComponent, config.CompUI)

	ctrl, err := engine.NewController(engine.Options{
		Language: lang,
		Layout:   layout,
		OnChange: app.singleChanged,
		Logger:   log,
	}, app.Clock)
	if err != nil {
		return err
	}

	rng, err := engine.NewRange(engine.RangeOptions{
		Language: lang,
		Layout:   layout,
		OnChange: app.rangeChanged,
		Logger:   log,
	}, app.Clock)
	if err != nil {
		return err
	}

	clearLabel := app.GetMsg(config.TKeyBtnClear)
	app.Single = NewPicker(ctrl, app.Locale, clearLabel)
	app.Range = NewRangePicker(rng, app.Locale,
		app.GetMsg(config.TKeyLblStart), app.GetMsg(config.TKeyLblEnd), clearLabel)

	log.Info(config.MsgPickersBuilt, config.LogKeyLang, lang, config.LogKeyLayout, ctrl.Layout())
	return nil
}

// ShowMainWindow builds the pickers and the main window around them.
func (app *PickerApp) ShowMainWindow() {
	if app.Window == nil {
		app.Window = app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
		app.Window.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
		app.Window.SetMaster()
	}
	app.rebuild()
	app.Window.Show()
}

// rebuild recreates the window content after a language or layout change.
func (app *PickerApp) rebuild() {
	if err := app.BuildPickers(); err != nil {
		slog.Error(config.ErrOptions,
			config.LogKeyError, err,
			config.LogKeyComponent, config.CompUI)
		// A stored layout that no longer validates falls back to the default.
		app.Preferences.SetString(config.PrefLayout, "")
		if err := app.BuildPickers(); err != nil {
			return
		}
	}
	app.publish(export.Selection{})

	app.tabs = container.NewAppTabs(
		container.NewTabItem(app.GetMsg(config.TKeyLblSingle), app.Single.Content()),
		container.NewTabItem(app.GetMsg(config.TKeyLblRange), app.Range.Content()),
	)

	langSelect := widget.NewSelect(app.Locale.Languages(), nil)
	langSelect.SetSelected(app.Language())
	langSelect.OnChanged = func(lang string) {
		if lang == app.Language() {
			return
		}
		app.Preferences.SetString(config.PrefLanguage, lang)
		app.rebuild()
	}

	btnSettings := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSettings), theme.SettingsIcon(), app.ShowSettingsWindow)
	toolbar := container.NewBorder(nil, nil, widget.NewLabel(app.GetMsg(config.TKeyLblLanguage)), btnSettings, langSelect)

	app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	app.Window.SetContent(container.NewBorder(toolbar, nil, nil, nil, app.tabs))
}

func (app *PickerApp) singleChanged(value *time.Time, formatted string) {
	app.publish(export.Selection{
		Start:       value,
		Summary:     app.GetMsg(config.TKeyEvtSummary),
		Description: formatted,
	})
}

func (app *PickerApp) rangeChanged(start, end *time.Time) {
	desc := ""
	if app.Range != nil {
		desc = fmt.Sprintf(config.FormatRangeDesc, app.Range.Range.Start.DateValue(), app.Range.Range.End.DateValue())
	}
	app.publish(export.Selection{
		Start:       start,
		End:         end,
		Summary:     app.GetMsg(config.TKeyEvtSummary),
		Description: desc,
	})
}

func (app *PickerApp) publish(sel export.Selection) {
	if app.Feed == nil {
		return
	}
	if err := app.Feed.Publish(sel); err != nil {
		slog.Error(config.ErrExportSelection,
			config.LogKeyError, err,
			config.LogKeyComponent, config.CompUI)
	}
}
