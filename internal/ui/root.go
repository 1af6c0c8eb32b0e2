package ui

import (
	"context"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/validation"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/report-summarizer/internal/api"
	"github.com/ytget/report-summarizer/internal/app"
	"github.com/ytget/report-summarizer/internal/config"
	"github.com/ytget/report-summarizer/internal/model"
)

// RootUI is the main window: navigation, the two request forms, the result
// card, the history list and the notification stack.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	log          logrus.FieldLogger
	app          *app.App

	homeBtn     *widget.Button
	historyBtn  *widget.Button
	settingsBtn *widget.Button
	homeScroll  *container.Scroll
	historyPage *fyne.Container
	formTabs    *container.AppTabs

	textEntry    *widget.Entry
	textMethod   *widget.Select
	textMax      *widget.Entry
	textMin      *widget.Entry
	summarizeBtn *widget.Button

	filePicker   *FilePicker
	uploadMethod *widget.Select
	uploadMax    *widget.Entry
	uploadMin    *widget.Entry
	uploadBtn    *widget.Button

	resultCard  *widget.Card
	output      *widget.Entry
	statsLabel  *widget.Label
	copyBtn     *widget.Button
	downloadBtn *widget.Button

	historyTitle  *widget.Label
	historyList   *HistoryList
	notifications *NotificationPanel

	// static labels re-read on language change
	keyedLabels map[*widget.Label]string
}

// NewRootUI builds the window content and the controllers behind it. ctx
// bounds every backend request.
func NewRootUI(ctx context.Context, window fyne.Window, backend api.Backend, settings *config.Settings, log logrus.FieldLogger) *RootUI {
	return newRootUI(ctx, window, backend, settings, log, nil)
}

// newRootUI lets tests adjust the controller deps, e.g. to run work inline
func newRootUI(ctx context.Context, window fyne.Window, backend api.Backend, settings *config.Settings,
	log logrus.FieldLogger, configure func(*app.Deps)) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		log:          log.WithField("component", "ui"),
		keyedLabels:  make(map[*widget.Label]string),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()

	deps := app.Deps{
		Backend: backend,
		Views: app.Views{
			Result:          ui,
			CopyButton:      ui.copyBtn,
			History:         ui.historyList,
			Viewer:          NewSummaryViewer(window, localization),
			Notifications:   ui.notifications,
			Nav:             ui,
			FileInput:       ui.filePicker,
			SummarizeButton: ui.summarizeBtn,
			UploadButton:    ui.uploadBtn,
		},
		Clipboard: fyne.CurrentApp().Clipboard(),
		Saver:     NewDownloadsSaver(settings),
		Dispatch:  fyne.Do,
		Messages:  localization.Messages(),
		Log:       log,
	}
	if configure != nil {
		configure(&deps)
	}
	ui.app = app.New(ctx, deps)
	ui.historyList.SetActionHandler(ui.app.RowAction)

	ui.log.Debug("UI setup completed")
	return ui
}

// App returns the controllers driving this window
func (ui *RootUI) App() *app.App {
	return ui.app
}

// Start shows the home view and probes the backend
func (ui *RootUI) Start() {
	ui.app.Nav.Activate(model.ViewHome)
	ui.app.CheckHealth()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.homeBtn = widget.NewButton(IconHome+" "+ui.localization.GetText(KeyHome), func() {
		ui.app.Nav.Activate(model.ViewHome)
	})
	ui.historyBtn = widget.NewButton(IconHistory+" "+ui.localization.GetText(KeyHistory), func() {
		ui.app.Nav.Activate(model.ViewHistory)
	})
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance
	navBar := container.NewBorder(nil, nil, container.NewHBox(ui.homeBtn, ui.historyBtn), ui.settingsBtn)

	ui.notifications = NewNotificationPanel()

	ui.formTabs = container.NewAppTabs(
		container.NewTabItem(ui.localization.GetText(KeyTextTab), ui.createTextForm()),
		container.NewTabItem(ui.localization.GetText(KeyUploadTab), ui.createUploadForm()),
	)
	ui.homeScroll = container.NewVScroll(container.NewVBox(ui.formTabs, ui.createResultCard()))

	ui.historyList = NewHistoryList(ui.localization)
	ui.historyTitle = widget.NewLabelWithStyle(ui.localization.GetText(KeyHistory), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.historyPage = container.NewBorder(ui.historyTitle, nil, nil, nil, ui.historyList.Widget())
	ui.historyPage.Hide()

	content := container.NewBorder(
		container.NewVBox(navBar, ui.notifications.Container()),
		nil,
		nil,
		nil,
		container.NewStack(ui.homeScroll, ui.historyPage),
	)
	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

func (ui *RootUI) createTextForm() fyne.CanvasObject {
	ui.textEntry = widget.NewMultiLineEntry()
	ui.textEntry.Wrapping = fyne.TextWrapWord
	ui.textEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterText))
	ui.textEntry.SetMinRowsVisible(8)

	ui.textMethod = ui.newMethodSelect()
	ui.textMax, ui.textMin = ui.newLengthEntries()
	ui.summarizeBtn = widget.NewButton(ui.localization.GetText(KeySummarize), ui.onSummarize)
	ui.summarizeBtn.Importance = widget.HighImportance

	return container.NewVBox(
		ui.textEntry,
		ui.parametersRow(ui.textMethod, ui.textMax, ui.textMin),
		ui.summarizeBtn,
	)
}

func (ui *RootUI) createUploadForm() fyne.CanvasObject {
	ui.filePicker = NewFilePicker(ui.window, ui.localization, ui.log)
	ui.uploadMethod = ui.newMethodSelect()
	ui.uploadMax, ui.uploadMin = ui.newLengthEntries()
	ui.uploadBtn = widget.NewButton(ui.localization.GetText(KeyUpload), ui.onUpload)
	ui.uploadBtn.Importance = widget.HighImportance

	return container.NewVBox(
		ui.filePicker.Container(),
		ui.parametersRow(ui.uploadMethod, ui.uploadMax, ui.uploadMin),
		ui.uploadBtn,
	)
}

func (ui *RootUI) createResultCard() fyne.CanvasObject {
	ui.output = widget.NewMultiLineEntry()
	ui.output.Wrapping = fyne.TextWrapWord
	ui.output.SetMinRowsVisible(6)

	ui.statsLabel = widget.NewLabel("")
	ui.statsLabel.Importance = widget.LowImportance

	ui.copyBtn = widget.NewButton(ui.localization.GetText(KeyCopy), func() {
		ui.app.Presenter.Copy()
	})
	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), func() {
		_, _ = ui.app.Presenter.Download("")
	})

	ui.resultCard = widget.NewCard(ui.localization.GetText(KeyResult), "", container.NewVBox(
		ui.output,
		ui.statsLabel,
		container.NewHBox(ui.copyBtn, ui.downloadBtn),
	))
	ui.resultCard.Hide()
	return ui.resultCard
}

func (ui *RootUI) parametersRow(method *widget.Select, maxEntry, minEntry *widget.Entry) fyne.CanvasObject {
	return container.NewHBox(
		ui.newKeyedLabel(KeyMethod), method,
		ui.newKeyedLabel(KeyMaxLength), container.NewGridWrap(fyne.NewSize(LengthEntryWidth, maxEntry.MinSize().Height), maxEntry),
		ui.newKeyedLabel(KeyMinLength), container.NewGridWrap(fyne.NewSize(LengthEntryWidth, minEntry.MinSize().Height), minEntry),
	)
}

func (ui *RootUI) newKeyedLabel(key string) *widget.Label {
	label := widget.NewLabel(ui.localization.GetText(key))
	ui.keyedLabels[label] = key
	return label
}

func (ui *RootUI) newMethodSelect() *widget.Select {
	sel := widget.NewSelect(ui.methodLabels(), nil)
	for i, m := range model.Methods() {
		if m == ui.settings.GetDefaultMethod() {
			sel.SetSelectedIndex(i)
		}
	}
	return sel
}

func (ui *RootUI) methodLabels() []string {
	methods := model.Methods()
	labels := make([]string, len(methods))
	for i, m := range methods {
		labels[i] = ui.localization.GetText(methodLabelKeys[m])
	}
	return labels
}

func (ui *RootUI) newLengthEntries() (maxEntry, minEntry *widget.Entry) {
	newEntry := func(value int) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(strconv.Itoa(value))
		e.Validator = validation.NewRegexp(NumberPattern, ui.localization.GetText(KeyInvalidNumber))
		return e
	}
	return newEntry(ui.settings.GetDefaultMaxLength()), newEntry(ui.settings.GetDefaultMinLength())
}

// selectedMethod maps the select's index back to a method
func selectedMethod(sel *widget.Select) model.Method {
	methods := model.Methods()
	if i := sel.SelectedIndex(); i >= 0 && i < len(methods) {
		return methods[i]
	}
	return model.DefaultMethod
}

// lengthValue parses a length entry; anything that is not a number yields fallback
func lengthValue(e *widget.Entry, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(e.Text))
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func (ui *RootUI) onSummarize() {
	ui.app.SubmitText(model.SummaryRequest{
		Text:      ui.textEntry.Text,
		Method:    selectedMethod(ui.textMethod),
		MaxLength: lengthValue(ui.textMax, ui.settings.GetDefaultMaxLength()),
		MinLength: lengthValue(ui.textMin, ui.settings.GetDefaultMinLength()),
	})
}

func (ui *RootUI) onUpload() {
	ui.app.SubmitUpload(model.UploadRequest{
		Files:     ui.filePicker.Files(),
		Method:    selectedMethod(ui.uploadMethod),
		MaxLength: lengthValue(ui.uploadMax, ui.settings.GetDefaultMaxLength()),
		MinLength: lengthValue(ui.uploadMin, ui.settings.GetDefaultMinLength()),
	})
}

// SetSummary implements app.ResultView
func (ui *RootUI) SetSummary(text string) {
	ui.output.SetText(text)
}

// Summary implements app.ResultView
func (ui *RootUI) Summary() string {
	return ui.output.Text
}

// SetStats implements app.ResultView
func (ui *RootUI) SetStats(line string) {
	ui.statsLabel.SetText(line)
}

// Show implements app.ResultView
func (ui *RootUI) Show() {
	ui.resultCard.Show()
}

// ScrollIntoView implements app.ResultView. The result card is the last
// element of the home page.
func (ui *RootUI) ScrollIntoView() {
	ui.homeScroll.ScrollToBottom()
}

// SetSectionVisible implements app.NavView
func (ui *RootUI) SetSectionVisible(view model.ViewState, visible bool) {
	var section fyne.CanvasObject = ui.homeScroll
	if view == model.ViewHistory {
		section = ui.historyPage
	}
	if visible {
		section.Show()
	} else {
		section.Hide()
	}
}

// SetNavActive implements app.NavView
func (ui *RootUI) SetNavActive(view model.ViewState, active bool) {
	btn := ui.homeBtn
	if view == model.ViewHistory {
		btn = ui.historyBtn
	}
	if active {
		btn.Importance = widget.HighImportance
	} else {
		btn.Importance = widget.MediumImportance
	}
	btn.Refresh()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles a pick from the language menu
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.SetLanguage(langCode)
	ui.applyLanguage()
}

// applyLanguage pushes the configured language into every text
func (ui *RootUI) applyLanguage() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.app.SetMessages(ui.localization.Messages())
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))

	ui.homeBtn.SetText(IconHome + " " + l.GetText(KeyHome))
	ui.historyBtn.SetText(IconHistory + " " + l.GetText(KeyHistory))
	ui.historyTitle.SetText(l.GetText(KeyHistory))

	ui.formTabs.Items[0].Text = l.GetText(KeyTextTab)
	ui.formTabs.Items[1].Text = l.GetText(KeyUploadTab)
	ui.formTabs.Refresh()

	ui.textEntry.SetPlaceHolder(l.GetText(KeyEnterText))
	for _, sel := range []*widget.Select{ui.textMethod, ui.uploadMethod} {
		i := sel.SelectedIndex()
		sel.SetOptions(ui.methodLabels())
		if i >= 0 {
			sel.SetSelectedIndex(i)
		}
	}
	for label, key := range ui.keyedLabels {
		label.SetText(l.GetText(key))
	}

	// a running request keeps its busy label until it finishes
	if !ui.app.Summary.Status().IsActive() {
		ui.summarizeBtn.SetText(l.GetText(KeySummarize))
	}
	if !ui.app.Upload.Status().IsActive() {
		ui.uploadBtn.SetText(l.GetText(KeyUpload))
	}
	ui.filePicker.refreshTexts()

	ui.resultCard.SetTitle(l.GetText(KeyResult))
	ui.copyBtn.SetText(l.GetText(KeyCopy))
	ui.downloadBtn.SetText(l.GetText(KeyDownload))
	if result := ui.app.Presenter.Result(); result != nil {
		ui.statsLabel.SetText(ui.app.Presenter.Stats(result))
	}

	ui.historyList.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.applyLanguage()
		ui.app.Notifier.Notify(ui.localization.GetText(KeySettingsSaved), model.SeverityInfo)
	}).Show()
}
