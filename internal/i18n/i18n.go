// Package i18n provides internationalization support for the colis service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (French).
	DefaultLocale = "fr"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "fr-FR,fr;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "fr" from "fr-FR")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"fr": {
			// Error messages
			"error.invalid_request":      "Requête invalide",
			"error.invalid_request_body": "Corps de requête invalide",
			"error.internal_error":       "Une erreur inattendue est survenue",
			"error.not_found":            "Introuvable",
			"error.rate_limit_exceeded":  "Trop de requêtes, veuillez réessayer plus tard",
			"error.conflict":             "Conflit",
			"error.timeout":              "La requête a expiré",
			"error.category_in_use":      "Des timbres utilisent encore cette catégorie",
			"error.duplicate_tracking":   "Ce numéro de suivi existe déjà",

			// Success messages
			"success.stamps_imported": "Timbres importés",
			"success.parcel_created":  "Colis créé avec succès",
			"success.parcel_updated":  "Colis mis à jour avec succès",
			"success.parcel_deleted":  "Colis supprimé avec succès",
		},
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.conflict":             "Conflict",
			"error.timeout":              "Request timed out",
			"error.category_in_use":      "Stamps still reference this category",
			"error.duplicate_tracking":   "This tracking number already exists",

			// Success messages
			"success.stamps_imported": "Stamps imported",
			"success.parcel_created":  "Parcel created successfully",
			"success.parcel_updated":  "Parcel updated successfully",
			"success.parcel_deleted":  "Parcel deleted successfully",
		},
	}
}
