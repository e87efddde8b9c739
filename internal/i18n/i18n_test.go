//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{name: "english message", key: ErrKeyInvalidRequest, locale: "en", expected: "Invalid request"},
		{name: "hindi message", key: ErrKeyInvalidRequest, locale: "hi", expected: "अमान्य अनुरोध"},
		{name: "empty locale defaults to english", key: ErrKeyNotFound, locale: "", expected: "Not found"},
		{name: "unsupported locale falls back to english", key: BannerKeyFree, locale: "fr", expected: "Yay! You get FREE delivery on this order"},
		{name: "unknown key returns key", key: "error.nope", locale: "en", expected: "error.nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestTranslator_Translatef(t *testing.T) {
	translator := NewTranslator()

	assert.Equal(t, "Add ₹500 more to get FREE delivery!", translator.Translatef(BannerKeyClose, "en", "₹500"))
	assert.Equal(t, "डिलीवरी शुल्क: ₹80", translator.Translatef(BannerKeyStandard, "hi", "₹80"))
	assert.Equal(t, "Add 40 more to save ₹20/unit (20% off)", translator.Translatef(UpsellKey, "en", 40, "₹20", 20))
}

func TestLocalesHaveTheSameKeys(t *testing.T) {
	messages := getDefaultMessages()
	for locale, table := range messages {
		for key := range messages[DefaultLocale] {
			_, ok := table[key]
			assert.True(t, ok, "%s is missing %s", locale, key)
		}
		for key, msg := range table {
			assert.Equal(t,
				strings.Count(messages[DefaultLocale][key], "%"),
				strings.Count(msg, "%"),
				"%s/%s has different format verbs", locale, key)
		}
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "no header", header: "", expected: "en"},
		{name: "hindi", header: "hi", expected: "hi"},
		{name: "region subtag", header: "hi-IN", expected: "hi"},
		{name: "quality list", header: "hi-IN,hi;q=0.9,en;q=0.8", expected: "hi"},
		{name: "first supported wins", header: "ta-IN,hi;q=0.8", expected: "hi"},
		{name: "uppercase", header: "HI", expected: "hi"},
		{name: "unsupported", header: "fr-FR", expected: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.header)
			}

			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}
