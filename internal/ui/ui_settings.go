package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect  *widget.Select
	layoutEntry *widget.Entry
	entryPort   *FilteredEntry
}

// ShowSettingsWindow displays the preferences dialog.
func (app *PickerApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		slog.Debug(config.MsgSettingsFocus, config.LogKeyComponent, config.CompUISet)
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgSettingsOpen, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := app.newSettingsWidgets()

	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)

	itemLayout := widget.NewFormItem(app.GetMsg(config.TKeyLblLayout), sw.layoutEntry)
	itemLayout.HintText = app.GetMsg(config.TKeyHelpLayout)

	itemPort := widget.NewFormItem(app.GetMsg(config.TKeyLblPort), sw.entryPort)

	form := widget.NewForm(itemLang, itemLayout, itemPort)

	saveAction := func() {
		if err := sw.validate(); err != nil {
			dialog.ShowError(err, w)
			return
		}
		app.saveSettings(sw)
		w.Close()
	}

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), saveAction)
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	footerLabel := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewPadded(container.NewVBox(
		form,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(content)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, content.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// newSettingsWidgets creates the form fields pre-filled from preferences.
func (app *PickerApp) newSettingsWidgets() *settingsWidgets {
	sw := &settingsWidgets{}

	sw.langSelect = widget.NewSelect(app.Locale.Languages(), nil)
	sw.langSelect.SetSelected(app.Language())

	sw.layoutEntry = widget.NewEntry()
	sw.layoutEntry.SetText(app.Layout())
	sw.layoutEntry.SetPlaceHolder(calendar.ForLanguage(app.Language()).DefaultLayout())
	sw.layoutEntry.Validator = func(s string) error {
		if s == "" {
			return nil
		}
		if err := calendar.CheckLayout(s); err != nil {
			return errors.New(app.GetMsg(config.TKeyErrLayout))
		}
		return nil
	}

	// Port: Numerical only, but requires strict Validation (Range 1-65535).
	sw.entryPort = NewNumericalEntry()
	sw.entryPort.SetText(app.Preferences.StringWithFallback(config.PrefServerPort, app.Settings.Port))
	sw.entryPort.Validator = func(s string) error {
		if s == "" {
			return errors.New(app.GetMsg(config.TKeyErrPortReq))
		}
		port, err := strconv.Atoi(s)
		if err != nil {
			return errors.New(app.GetMsg(config.TKeyErrPortNum))
		}
		if port < config.MinPort || port > config.MaxPort {
			return errors.New(app.GetMsg(config.TKeyErrPortRange))
		}
		return nil
	}
	return sw
}

func (sw *settingsWidgets) validate() error {
	if err := sw.entryPort.Validate(); err != nil {
		return err
	}
	return sw.layoutEntry.Validate()
}

// saveSettings persists the form and rebuilds the pickers. A new port is
// used from the next start.
func (app *PickerApp) saveSettings(sw *settingsWidgets) {
	app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)
	app.Preferences.SetString(config.PrefLayout, sw.layoutEntry.Text)
	app.Preferences.SetString(config.PrefServerPort, sw.entryPort.Text)

	slog.Info(config.MsgSettingsSaved,
		config.LogKeyComponent, config.CompUISet,
		config.LogKeyLang, sw.langSelect.Selected,
		config.LogKeyLayout, sw.layoutEntry.Text,
		config.LogKeyPort, sw.entryPort.Text,
	)

	if app.Window != nil {
		app.rebuild()
	}
}
