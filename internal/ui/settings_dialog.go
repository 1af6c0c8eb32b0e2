package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/report-summarizer/internal/config"
)

// SettingsDialog edits the session settings: downloads directory and language.
// Nothing is written to disk.
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	downloadDirEntry *widget.Entry
	languageSelect   *widget.Select
	languageCodes    map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were applied.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
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
	l := sd.localization

	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	// Options are display names; languageCodes maps them back
	sd.languageCodes = make(map[string]string)
	var languageOptions []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyDownloadDirectory), downloadDirRow),
		widget.NewFormItem(l.GetText(KeyLanguage), sd.languageSelect),
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	if name, ok := sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()]; ok {
		sd.languageSelect.SetSelected(name)
	}
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave applies the edited values
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

func (sd *SettingsDialog) apply() {
	if dir := sd.downloadDirEntry.Text; dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}
