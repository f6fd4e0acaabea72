package ui

import (
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ytget/record-button/internal/config"
	"github.com/ytget/record-button/internal/model"
	"github.com/ytget/record-button/internal/recorder"
)

// RootUI is the host screen: one record button, its status, a progress bar,
// the list of recent notifications and buttons to hide, show and reset it
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	logger       zerolog.Logger

	control  *recorder.Control
	button   *RecordButton
	eventLog *recorder.EventLog
	events   []model.Notification // newest first, progress excluded
	progress binding.Float

	statusLabel  *widget.Label
	hintLabel    *widget.Label
	eventsLabel  *widget.Label
	progressBar  *widget.ProgressBar
	eventList    *widget.List
	hideBtn      *widget.Button
	showBtn      *widget.Button
	resetBtn     *widget.Button
	clearBtn     *widget.Button
	settingsBtn  *widget.Button
	unsubscribes []func()
}

// NewRootUI builds the host screen around control and sets it as the window content
func NewRootUI(window fyne.Window, settings *config.Settings, control *recorder.Control, logger zerolog.Logger) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logger,
		control:      control,
		progress:     binding.NewFloat(),
	}

	ui.eventLog = recorder.NewEventLog(EventListLimit*4, nil)
	ui.eventLog.OnAppend = ui.onNotification

	ui.unsubscribes = append(ui.unsubscribes,
		control.AddObserver(ui.eventLog),
		control.AddObserver(recorder.ObserverFuncs{
			ProgressChanged: func(_ *recorder.Control, value float64) {
				if err := ui.progress.Set(value); err != nil {
					ui.logger.Warn().Err(err).Msg("progress binding")
				}
				ui.updateStatus()
			},
		}),
	)

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetOnClosed(ui.Close)

	ui.setupUI()
	ui.applySettings()
	return ui
}

// Button returns the record button widget
func (ui *RootUI) Button() *RecordButton {
	return ui.button
}

// Events returns the displayed notifications, newest first
func (ui *RootUI) Events() []model.Notification {
	return append([]model.Notification(nil), ui.events...)
}

// Close detaches the screen from the control and destroys it
func (ui *RootUI) Close() {
	for _, unsubscribe := range ui.unsubscribes {
		unsubscribe()
	}
	ui.unsubscribes = nil
	ui.button.Destroy()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	palette, err := ui.settingsPalette()
	if err != nil {
		ui.logger.Warn().Err(err).Msg("invalid colors in settings, using defaults")
	}
	ui.button = NewRecordButton(ui.control, palette)
	ui.button.OnStateChanged = func(model.State) { ui.updateStatus() }

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter
	ui.statusLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.hintLabel = widget.NewLabel(ui.localization.GetText(KeyHint))
	ui.hintLabel.Alignment = fyne.TextAlignCenter
	ui.hintLabel.Importance = widget.LowImportance

	ui.progressBar = widget.NewProgressBarWithData(ui.progress)
	ui.progressBar.TextFormatter = func() string {
		return fmt.Sprintf(ProgressLabelFormat, int(ui.progressBar.Value*100+0.5))
	}

	ui.hideBtn = widget.NewButton(IconHide+" "+ui.localization.GetText(KeyHide), ui.control.Hide)
	ui.showBtn = widget.NewButton(IconShow+" "+ui.localization.GetText(KeyShow), ui.control.Show)
	ui.resetBtn = widget.NewButton(IconReset+" "+ui.localization.GetText(KeyReset), ui.control.Reset)
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.eventsLabel = widget.NewLabel(ui.localization.GetText(KeyEvents))
	ui.clearBtn = widget.NewButton(IconClear+" "+ui.localization.GetText(KeyClearEvents), ui.onClearEvents)
	ui.clearBtn.Importance = widget.LowImportance

	ui.eventList = widget.NewList(
		func() int {
			return len(ui.events)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(ui.events) {
				return
			}
			obj.(*widget.Label).SetText(ui.formatEvent(ui.events[id]))
		},
	)

	top := container.NewVBox(
		container.NewBorder(nil, nil, nil, ui.settingsBtn, ui.statusLabel),
		ui.hintLabel,
	)
	mobile := NewMobileUI(fyne.CurrentDevice())
	controls := container.NewVBox(
		ui.progressBar,
		mobile.ActionRow(ui.hideBtn, ui.showBtn, ui.resetBtn),
	)
	buttonArea := container.NewBorder(nil, controls, nil, nil, container.NewCenter(ui.button))
	eventsArea := container.NewBorder(
		container.NewBorder(nil, nil, nil, ui.clearBtn, ui.eventsLabel),
		nil, nil, nil,
		ui.eventList,
	)

	split := container.NewVSplit(buttonArea, eventsArea)
	split.Offset = mobile.SplitOffset()

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, split))
	ui.window.Resize(fyne.NewSize(WindowMinWidth, WindowMinHeight))
	ui.updateStatus()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	importItem := fyne.NewMenuItem(ui.localization.GetText(KeyImportProfile), ui.onImportProfile)
	exportItem := fyne.NewMenuItem(ui.localization.GetText(KeyExportProfile), ui.onExportProfile)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), importItem, exportItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText

	ui.window.SetTitle(t(KeyAppTitle))
	ui.hintLabel.SetText(t(KeyHint))
	ui.eventsLabel.SetText(t(KeyEvents))
	ui.hideBtn.SetText(IconHide + " " + t(KeyHide))
	ui.showBtn.SetText(IconShow + " " + t(KeyShow))
	ui.resetBtn.SetText(IconReset + " " + t(KeyReset))
	ui.clearBtn.SetText(IconClear + " " + t(KeyClearEvents))
	ui.updateStatus()
	ui.eventList.Refresh()
}

// updateStatus shows the control state, and the percentage while recording
func (ui *RootUI) updateStatus() {
	if ui.statusLabel == nil {
		return
	}
	state := ui.control.State()
	text := IconRecord + " " + ui.localization.StateText(state)
	if state == model.StateRecording {
		text += MiddleDotSeparator + fmt.Sprintf(ProgressLabelFormat, int(ui.control.Progress()*100+0.5))
	}
	ui.statusLabel.SetText(text)
}

// onNotification keeps gesture notifications for the event list
func (ui *RootUI) onNotification(n model.Notification) {
	if n.Kind == model.EventProgressChanged {
		return
	}
	ui.events = append([]model.Notification{n}, ui.events...)
	if len(ui.events) > EventListLimit {
		ui.events = ui.events[:EventListLimit]
	}
	if ui.eventList != nil {
		ui.eventList.Refresh()
	}
}

// onClearEvents empties the event list
func (ui *RootUI) onClearEvents() {
	ui.events = nil
	ui.eventLog.Clear()
	ui.eventList.Refresh()
}

func (ui *RootUI) formatEvent(n model.Notification) string {
	return n.At.Format(EventTimeFormat) + MiddleDotSeparator + ui.localization.EventText(n.Kind)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsApplied).Show()
}

func (ui *RootUI) onSettingsApplied() {
	ui.applySettings()
	ui.refreshUITexts()
	ui.createMenu()
}

// applySettings pushes stored options and colors to the live control
func (ui *RootUI) applySettings() {
	opts := ui.settings.Options()
	if err := ui.control.Configure(opts); err != nil {
		ui.logger.Error().Err(err).Object("options", opts).Msg("cannot apply settings")
	} else {
		ui.logger.Debug().Object("options", opts).Msg("settings applied")
	}

	palette, err := ui.settingsPalette()
	if err != nil {
		ui.logger.Warn().Err(err).Msg("invalid colors in settings, using defaults")
	}
	ui.button.SetPalette(palette)
	ui.localization.SetLanguage(ui.settings.GetLanguage())
}

func (ui *RootUI) settingsPalette() (Palette, error) {
	return NewPaletteFromHex(
		ui.settings.GetButtonColor(),
		ui.settings.GetProgressColor(),
		ui.settings.GetProgressFillColor(),
	)
}

// onImportProfile loads a YAML profile chosen by the user
func (ui *RootUI) onImportProfile() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.showProfileError(err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()

		profile, err := config.LoadProfile(path)
		if err != nil {
			ui.showProfileError(err)
			return
		}
		ui.settings.ApplyProfile(profile)
		ui.onSettingsApplied()
		ui.logger.Info().Str("path", path).Msg("profile imported")
		dialog.ShowInformation(ui.localization.GetText(KeySettings), ui.localization.GetText(KeyProfileImported), ui.window)
	}, ui.window)
}

// onExportProfile writes the current settings to a YAML file chosen by the user
func (ui *RootUI) onExportProfile() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			ui.showProfileError(err)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		_ = writer.Close()

		if err := config.SaveProfile(path, ui.settings.Profile()); err != nil {
			ui.showProfileError(err)
			return
		}
		ui.logger.Info().Str("path", path).Msg("profile exported")
		dialog.ShowInformation(ui.localization.GetText(KeySettings), ui.localization.GetText(KeyProfileExported), ui.window)
	}, ui.window)
}

func (ui *RootUI) showProfileError(err error) {
	ui.logger.Error().Err(err).Msg("profile")
	dialog.ShowError(errors.Wrap(err, ui.localization.GetText(KeyProfileError)), ui.window)
}
