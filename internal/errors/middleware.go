package errors

import (
	"errors"

	"codeberg.org/moneyapi/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

// Options configures the error middleware
type Options struct {
	// returns the locale negotiated for the request
	Locale func(c *gin.Context) language.Tag

	// when false, developer messages are replaced by the stable kind code
	ExposeDeveloperMessages bool
}

// Handler normalizes the last error recorded on the context with c.Error once
// the handler chain has run. Recognized errors get their status and localized
// entries; anything else takes the generic 500 path.
func Handler(messages MessageSource, opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		locale := language.Und
		if opts.Locale != nil {
			locale = opts.Locale(c)
		}

		resp, err := Normalize(last.Err, locale, messages)
		if err != nil {
			InternalError(c, "failed to resolve error message", err)
			return
		}

		if resp == nil {
			InternalError(c, "", last.Err)
			return
		}

		if !opts.ExposeDeveloperMessages {
			kind, _, _ := classify(last.Err)
			for i := range resp.Body {
				resp.Body[i].DeveloperMessage = kind.String()
			}
		}

		logger.Debug("request error normalized",
			"path", c.Request.URL.Path,
			"status", resp.Status,
			"entries", len(resp.Body),
			"error", last.Err,
		)

		c.AbortWithStatusJSON(resp.Status, resp.Body)
	}
}

// Bind decodes the JSON body into obj. Field validation failures are returned
// as-is; anything else that prevented reading the body is tagged as a
// malformed request.
func Bind(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		return err
	}

	return Malformed(err)
}
