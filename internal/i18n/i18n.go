// Package i18n translates error and storefront messages for the pricing service.
package i18n

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
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

// Translatef translates key and formats it with args.
func (t *Translator) Translatef(key, locale string, args ...any) string {
	return fmt.Sprintf(t.Translate(key, locale), args...)
}

// Supports reports whether locale has its own message table.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// e.g. "hi-IN,hi;q=0.9,en;q=0.8": the first supported base language wins
	t := GetTranslator()
	for _, part := range strings.Split(acceptLang, ",") {
		lang := strings.TrimSpace(strings.Split(part, ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if t.Supports(lang) {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":       "Invalid request",
			"error.invalid_request_body":  "Invalid request body",
			"error.internal_error":        "An unexpected error occurred",
			"error.unauthorized":          "Unauthorized",
			"error.api_key_required":      "API key is required",
			"error.invalid_api_key":       "Invalid API key",
			"error.forbidden":             "Forbidden",
			"error.not_found":             "Not found",
			"error.rate_limit_exceeded":   "Too many requests, please try again later",
			"error.conflict":              "Conflict",
			"error.invalid_token":         "Invalid or expired token",
			"error.token_required":        "Authentication token is required",
			"error.timeout":               "The request took too long",
			"error.invalid_quantity":      "Quantity must be at least 1",
			"error.negative_amount":       "Amounts must not be negative",
			"error.invalid_distance":      "Distance must be a non-negative number",
			"error.amount_overflow":       "The order total is too large",
			"error.invalid_tiers":         "The tier configuration is invalid",
			"error.invalid_product_id":    "Product id must not be blank",
			"error.tier_config_not_found": "No tier configuration exists for this product",
			"error.storage_unavailable":   "Tier storage is temporarily unavailable",
			"error.version_conflict":      "The tier configuration was changed by someone else, please retry",

			"banner.free":      "Yay! You get FREE delivery on this order",
			"banner.close":     "Add %s more to get FREE delivery!",
			"banner.standard":  "Delivery fee: %s",
			"upsell.next_tier": "Add %d more to save %s/unit (%d%% off)",
		},
		"hi": {
			"error.invalid_request":       "अमान्य अनुरोध",
			"error.invalid_request_body":  "अनुरोध का मुख्य भाग अमान्य है",
			"error.internal_error":        "एक अप्रत्याशित त्रुटि हुई",
			"error.unauthorized":          "अनधिकृत",
			"error.api_key_required":      "API कुंजी आवश्यक है",
			"error.invalid_api_key":       "अमान्य API कुंजी",
			"error.forbidden":             "अनुमति नहीं है",
			"error.not_found":             "नहीं मिला",
			"error.rate_limit_exceeded":   "बहुत अधिक अनुरोध, कृपया बाद में पुनः प्रयास करें",
			"error.conflict":              "टकराव",
			"error.invalid_token":         "टोकन अमान्य है या समाप्त हो गया है",
			"error.token_required":        "प्रमाणीकरण टोकन आवश्यक है",
			"error.timeout":               "अनुरोध में बहुत अधिक समय लगा",
			"error.invalid_quantity":      "मात्रा कम से कम 1 होनी चाहिए",
			"error.negative_amount":       "राशि ऋणात्मक नहीं हो सकती",
			"error.invalid_distance":      "दूरी शून्य या उससे अधिक होनी चाहिए",
			"error.amount_overflow":       "ऑर्डर की कुल राशि बहुत बड़ी है",
			"error.invalid_tiers":         "टियर कॉन्फ़िगरेशन अमान्य है",
			"error.invalid_product_id":    "उत्पाद आईडी खाली नहीं हो सकती",
			"error.tier_config_not_found": "इस उत्पाद के लिए कोई टियर कॉन्फ़िगरेशन नहीं है",
			"error.storage_unavailable":   "टियर संग्रहण अस्थायी रूप से उपलब्ध नहीं है",
			"error.version_conflict":      "टियर कॉन्फ़िगरेशन किसी और ने बदल दिया है, कृपया पुनः प्रयास करें",

			"banner.free":      "बधाई हो! इस ऑर्डर पर आपको मुफ़्त डिलीवरी मिलेगी",
			"banner.close":     "मुफ़्त डिलीवरी पाने के लिए %s और जोड़ें!",
			"banner.standard":  "डिलीवरी शुल्क: %s",
			"upsell.next_tier": "%d और जोड़ें और %s/यूनिट बचाएँ (%d%% छूट)",
		},
	}
}
