package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/pkg/errors"

	"github.com/ytget/record-button/internal/config"
)

// SettingsDialog edits the control options, colors and language
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onApply      func()

	// UI components
	maxDurationEntry       *widget.Entry
	stepEntry              *widget.Entry
	holdThresholdEntry     *widget.Entry
	autoCompleteCheck      *widget.Check
	buttonColorEntry       *widget.Entry
	progressColorEntry     *widget.Entry
	progressFillColorEntry *widget.Entry
	languageSelect         *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onApply runs after the
// values are stored, so the host can push them to the live control.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onApply func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onApply:      onApply,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.maxDurationEntry = newSecondsEntry(config.MinMaxDurationSeconds, config.MaxMaxDurationSeconds)
	sd.stepEntry = newSecondsEntry(config.MinStepSeconds, config.MaxStepSeconds)
	sd.holdThresholdEntry = newSecondsEntry(config.MinHoldThresholdSeconds, config.MaxHoldThresholdSeconds)
	sd.autoCompleteCheck = widget.NewCheck(t(KeyAutoComplete), nil)

	sd.buttonColorEntry = newColorEntry()
	sd.progressColorEntry = newColorEntry()
	sd.progressFillColorEntry = newColorEntry()

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyControlSettings)),
		widget.NewSeparator(),
		widget.NewForm(
			widget.NewFormItem(t(KeyMaxDuration), sd.maxDurationEntry),
			widget.NewFormItem(t(KeyStep), sd.stepEntry),
			widget.NewFormItem(t(KeyHoldThreshold), sd.holdThresholdEntry),
		),
		sd.autoCompleteCheck,

		widget.NewSeparator(),
		widget.NewLabel(t(KeyColorSettings)),
		widget.NewSeparator(),
		widget.NewForm(
			widget.NewFormItem(t(KeyButtonColor), sd.buttonColorEntry),
			widget.NewFormItem(t(KeyProgressColor), sd.progressColorEntry),
			widget.NewFormItem(t(KeyProgressFillColor), sd.progressFillColorEntry),
		),

		widget.NewSeparator(),
		widget.NewForm(widget.NewFormItem(t(KeyLanguage), sd.languageSelect)),
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.maxDurationEntry.SetText(formatSeconds(sd.settings.GetMaxDurationSeconds()))
	sd.stepEntry.SetText(formatSeconds(sd.settings.GetStepSeconds()))
	sd.holdThresholdEntry.SetText(formatSeconds(sd.settings.GetHoldThresholdSeconds()))
	sd.autoCompleteCheck.SetChecked(sd.settings.GetAutoComplete())
	sd.buttonColorEntry.SetText(sd.settings.GetButtonColor())
	sd.progressColorEntry.SetText(sd.settings.GetProgressColor())
	sd.progressFillColorEntry.SetText(sd.settings.GetProgressFillColor())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := sd.apply(); err != nil {
		dialog.ShowError(err, sd.window)
		return
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply validates every field, then stores them all and notifies the host.
// Nothing is stored when a field is invalid.
func (sd *SettingsDialog) apply() error {
	invalid := sd.localization.GetText(KeyInvalidValue)

	maxDuration, err := parseSeconds(sd.maxDurationEntry.Text)
	if err != nil {
		return errors.Wrapf(err, "%s: %s", invalid, sd.localization.GetText(KeyMaxDuration))
	}
	step, err := parseSeconds(sd.stepEntry.Text)
	if err != nil {
		return errors.Wrapf(err, "%s: %s", invalid, sd.localization.GetText(KeyStep))
	}
	holdThreshold, err := parseSeconds(sd.holdThresholdEntry.Text)
	if err != nil {
		return errors.Wrapf(err, "%s: %s", invalid, sd.localization.GetText(KeyHoldThreshold))
	}

	colors := []struct {
		entry *widget.Entry
		key   string
	}{
		{sd.buttonColorEntry, KeyButtonColor},
		{sd.progressColorEntry, KeyProgressColor},
		{sd.progressFillColorEntry, KeyProgressFillColor},
	}
	for _, c := range colors {
		if _, err := ParseHexColor(c.entry.Text); err != nil {
			return errors.Wrapf(err, "%s: %s", invalid, sd.localization.GetText(c.key))
		}
	}

	sd.settings.SetMaxDurationSeconds(maxDuration)
	sd.settings.SetStepSeconds(step)
	sd.settings.SetHoldThresholdSeconds(holdThreshold)
	sd.settings.SetAutoComplete(sd.autoCompleteCheck.Checked)
	sd.settings.SetButtonColor(strings.TrimSpace(sd.buttonColorEntry.Text))
	sd.settings.SetProgressColor(strings.TrimSpace(sd.progressColorEntry.Text))
	sd.settings.SetProgressFillColor(strings.TrimSpace(sd.progressFillColorEntry.Text))
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onApply != nil {
		sd.onApply()
	}
	return nil
}

func newSecondsEntry(lo, hi float64) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(formatSeconds(lo) + "-" + formatSeconds(hi))
	entry.Validator = func(s string) error {
		_, err := parseSeconds(s)
		return err
	}
	return entry
}

func newColorEntry() *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("#RRGGBB")
	entry.Validator = func(s string) error {
		_, err := ParseHexColor(s)
		return err
	}
	return entry
}

func parseSeconds(s string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %q", s)
	}
	if value <= 0 {
		return 0, errors.Errorf("%q must be positive", s)
	}
	return value, nil
}

func formatSeconds(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
