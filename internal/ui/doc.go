// Package ui contains the Fyne user interface: the RecordButton widget that
// draws a recorder.Control and feeds it pointer input, and the host screen
// that shows its notifications and edits its settings. All host strings are
// localized via Localization.
package ui
