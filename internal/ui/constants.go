package ui

import "github.com/ytget/report-summarizer/internal/model"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFile     = "📄"
	IconClose    = "×"
	IconHome     = "🏠"
	IconHistory  = "🕘"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	NumberPattern      = `^\d+$`
)

// Layout sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 700

	LengthEntryWidth float32 = 90

	HistoryRowMinHeight float32 = 64
	HistoryPreviewRunes         = 100

	ViewerWidth  float32 = 600
	ViewerHeight float32 = 450

	SettingsWidth  float32 = 500
	SettingsHeight float32 = 300
)

// AllowedUploadExtensions are the file types the backend accepts
var AllowedUploadExtensions = []string{".txt", ".pdf", ".docx", ".md"}

// methodLabelKeys maps methods to their localization keys
var methodLabelKeys = map[model.Method]string{
	model.MethodExtractive:  KeyMethodExtractive,
	model.MethodAbstractive: KeyMethodAbstractive,
}
