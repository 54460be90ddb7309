package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyNoSounds         = "no_sounds"
	KeyNoSoundsDetails  = "no_sounds_details"
	KeyUnavailable      = "unavailable"
	KeyUnavailableCount = "unavailable_count"
	KeyNoAudioOutput    = "no_audio_output"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(language string) {
	if language == "system" {
		language = systemLanguage()
		if _, exists := l.texts[language]; !exists {
			language = "en"
		}
	}

	if _, exists := l.texts[language]; exists {
		l.currentLanguage = language
	}
}

// systemLanguage returns the two-letter language of the OS locale
func systemLanguage() string {
	code := strings.ToLower(lang.SystemLocale().LanguageString())
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	return code
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// Format returns localized text for key with args substituted
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Ambient Player",
		KeyNoSounds:         "No sounds found",
		KeyNoSoundsDetails:  "Put audio files into %s",
		KeyUnavailable:      "Sound unavailable",
		KeyUnavailableCount: "%d sound(s) could not be loaded",
		KeyNoAudioOutput:    "Audio output is not available",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Фоновые звуки",
		KeyNoSounds:         "Звуки не найдены",
		KeyNoSoundsDetails:  "Положите аудиофайлы в %s",
		KeyUnavailable:      "Звук недоступен",
		KeyUnavailableCount: "Не удалось загрузить звуков: %d",
		KeyNoAudioOutput:    "Аудиовыход недоступен",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Sons Ambientes",
		KeyNoSounds:         "Nenhum som encontrado",
		KeyNoSoundsDetails:  "Coloque arquivos de áudio em %s",
		KeyUnavailable:      "Som indisponível",
		KeyUnavailableCount: "%d som(ns) não puderam ser carregados",
		KeyNoAudioOutput:    "Saída de áudio indisponível",
	}
}
