package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalization(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, "Ambient Player", l.GetText(KeyAppTitle))

	l.SetLanguage("ru")
	assert.Equal(t, "ru", l.GetCurrentLanguage())
	assert.Equal(t, "Звуки не найдены", l.GetText(KeyNoSounds))

	// Unknown languages are ignored
	l.SetLanguage("xx")
	assert.Equal(t, "ru", l.GetCurrentLanguage())

	l.SetLanguage("system")
	assert.Contains(t, l.GetAvailableLanguages(), l.GetCurrentLanguage())

	l.SetLanguage("en")

	assert.Equal(t, "missing_key", l.GetText("missing_key"))
	assert.Equal(t, "2 sound(s) could not be loaded", l.Format(KeyUnavailableCount, 2))
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	for lang := range l.GetAvailableLanguages() {
		for key := range l.texts["en"] {
			_, ok := l.texts[lang][key]
			assert.True(t, ok, "language %s misses key %s", lang, key)
		}
	}
}
