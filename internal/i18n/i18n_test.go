package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type payload struct {
	Description string `json:"description" validate:"required"`
	Notes       string `json:"notes,omitempty" validate:"max=5"`
	Internal    string `json:"-" validate:"max=1"`
}

func newBundle(t *testing.T, defaultLocale language.Tag) (*Bundle, *validator.Validate) {
	t.Helper()

	v := validator.New()
	b, err := New(v, defaultLocale)
	require.NoError(t, err)

	return b, v
}

func TestNew_DefaultLocaleFirst(t *testing.T) {
	b, _ := newBundle(t, language.English)
	assert.Equal(t, []language.Tag{language.English, language.BrazilianPortuguese}, b.Tags())

	b, _ = newBundle(t, language.BrazilianPortuguese)
	assert.Equal(t, []language.Tag{language.BrazilianPortuguese, language.English}, b.Tags())
}

func TestNew_UnsupportedDefault(t *testing.T) {
	_, err := New(validator.New(), language.German)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported default locale")
}

func TestMessage(t *testing.T) {
	b, _ := newBundle(t, language.BrazilianPortuguese)

	tests := []struct {
		locale language.Tag
		key    string
		want   string
	}{
		{language.English, "invalid.message", "Invalid message"},
		{language.English, "resource.not.found", "Resource not found"},
		{language.English, "resource.operation.not.allowed", "Operation not allowed"},
		{language.English, "person.nonexistent.or.inactive", "Person nonexistent or inactive"},
		{language.BrazilianPortuguese, "invalid.message", "Mensagem inválida"},
		{language.BrazilianPortuguese, "resource.not.found", "Recurso não encontrado"},
		{language.BrazilianPortuguese, "resource.operation.not.allowed", "Operação não permitida"},
		{language.BrazilianPortuguese, "person.nonexistent.or.inactive", "Pessoa inexistente ou inativa"},
		// closest supported locale, then the default
		{language.AmericanEnglish, "resource.not.found", "Resource not found"},
		{language.Portuguese, "resource.not.found", "Recurso não encontrado"},
		{language.Japanese, "resource.not.found", "Recurso não encontrado"},
		{language.Und, "resource.not.found", "Recurso não encontrado"},
	}

	for _, tt := range tests {
		t.Run(tt.locale.String()+"/"+tt.key, func(t *testing.T) {
			got, err := b.Message(tt.locale, tt.key)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMessage_UnknownKey(t *testing.T) {
	b, _ := newBundle(t, language.English)

	_, err := b.Message(language.English, "no.such.key")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no.such.key")
}

func TestFieldMessage(t *testing.T) {
	b, v := newBundle(t, language.English)

	err := v.Struct(payload{Notes: "too long", Internal: "xy"})

	var fieldErrors validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrors)
	require.Len(t, fieldErrors, 3)

	// fields are reported by json name
	assert.Equal(t, "description", fieldErrors[0].Field())
	assert.Equal(t, "notes", fieldErrors[1].Field())
	assert.Equal(t, "Internal", fieldErrors[2].StructField())

	en, err := b.FieldMessage(language.English, fieldErrors[0])
	require.NoError(t, err)
	assert.Equal(t, "description is a required field", en)

	pt, err := b.FieldMessage(language.BrazilianPortuguese, fieldErrors[0])
	require.NoError(t, err)
	assert.NotEqual(t, en, pt)
	assert.Contains(t, pt, "description")
}

type coupon struct {
	Code string `json:"code" validate:"uppercase_code"`
}

func TestFieldMessage_MissingTranslation(t *testing.T) {
	b, v := newBundle(t, language.English)

	require.NoError(t, v.RegisterValidation("uppercase_code", func(fl validator.FieldLevel) bool {
		return false
	}))

	err := v.Struct(coupon{Code: "abc"})

	var fieldErrors validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrors)
	require.Len(t, fieldErrors, 1)

	for _, locale := range []language.Tag{language.English, language.BrazilianPortuguese} {
		msg, err := b.FieldMessage(locale, fieldErrors[0])

		require.Error(t, err, locale.String())
		assert.Empty(t, msg)
		assert.Contains(t, err.Error(), "uppercase_code")
	}
}

func TestNegotiate(t *testing.T) {
	b, _ := newBundle(t, language.BrazilianPortuguese)

	tests := []struct {
		name           string
		acceptLanguage string
		lang           string
		want           language.Tag
	}{
		{"nothing", "", "", language.BrazilianPortuguese},
		{"header", "en-US,en;q=0.8", "", language.English},
		{"header weights", "de;q=0.9,en;q=0.5,pt-BR;q=0.7", "", language.BrazilianPortuguese},
		{"unsupported header", "ja", "", language.BrazilianPortuguese},
		{"garbage header", "!!", "", language.BrazilianPortuguese},
		{"query wins", "pt-BR", "en", language.English},
		{"garbage query", "en", "not a tag", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Negotiate(tt.acceptLanguage, tt.lang))
		})
	}
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	b, _ := newBundle(t, language.BrazilianPortuguese)

	var seen language.Tag

	router := gin.New()
	router.Use(b.Middleware())
	router.GET("/", func(c *gin.Context) {
		seen = Locale(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, language.English, seen)
	assert.Equal(t, "en", w.Header().Get("Content-Language"))
}

func TestLocale_WithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, language.Und, Locale(c))
}
