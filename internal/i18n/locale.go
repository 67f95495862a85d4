package i18n

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const localeKey = "locale"

// picks the locale for a request. an explicit ?lang= wins over the
// Accept-Language header; anything unparseable falls back to the default.
func (b *Bundle) Negotiate(acceptLanguage, lang string) language.Tag {
	if lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			return b.match(tag)
		}
	}

	if acceptLanguage == "" {
		return b.tags[0]
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return b.tags[0]
	}

	return b.match(tags...)
}

// stores the negotiated locale on the context and advertises it
func (b *Bundle) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := b.Negotiate(c.GetHeader("Accept-Language"), c.Query("lang"))

		c.Set(localeKey, tag)
		c.Header("Content-Language", tag.String())

		c.Next()
	}
}

// returns the locale stored by Middleware, or language.Und
func Locale(c *gin.Context) language.Tag {
	if v, ok := c.Get(localeKey); ok {
		if tag, ok := v.(language.Tag); ok {
			return tag
		}
	}

	return language.Und
}
