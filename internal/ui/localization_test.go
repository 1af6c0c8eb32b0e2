package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/report-summarizer/internal/app"
)

func TestLocalization_EnglishMessagesMatchDefaults(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, app.DefaultMessages(), l.Messages())
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	assert.Equal(t, "ru", l.GetCurrentLanguage())
	assert.Equal(t, "Сократить", l.Messages().SummarizeLabel)

	l.SetLanguage("de")
	assert.Equal(t, "ru", l.GetCurrentLanguage(), "unknown languages are ignored")

	l.SetLanguage("system")
	assert.Equal(t, "en", l.GetCurrentLanguage())
}

func TestLocalization_EveryLanguageCoversEveryEnglishKey(t *testing.T) {
	l := NewLocalization()

	for code := range l.GetAvailableLanguages() {
		for key := range l.texts["en"] {
			_, ok := l.texts[code][key]
			assert.True(t, ok, "language %s misses %s", code, key)
		}
	}
}

func TestLocalization_UnknownKeyFallsBackToKey(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	assert.Equal(t, "no_such_key", l.GetText("no_such_key"))
}
