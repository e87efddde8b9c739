package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pricing-service/internal/domain/dto"
	"github.com/guttosm/pricing-service/internal/i18n"
	"github.com/guttosm/pricing-service/internal/logger"
)

// ErrorClassifier maps a handler error to a status code and response body.
type ErrorClassifier func(c *gin.Context, err error) (int, dto.ErrorResponse)

// ErrorHandler returns a middleware that renders the last error a handler
// attached with c.Error. Errors the classifier does not know become 500s.
func ErrorHandler(classify ErrorClassifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		requestID := GetRequestID(c)

		status := http.StatusInternalServerError
		var resp dto.ErrorResponse
		if classify != nil {
			status, resp = classify(c, err)
		}
		if resp.Error == "" {
			status = http.StatusInternalServerError
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			resp = dto.NewError(dto.ErrCodeInternal, message)
		}

		log := logger.Logger()
		event := log.Debug()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("request_id", requestID).
			Err(err).
			Int("status", status).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			c.JSON(status, resp.WithRequestID(requestID))
		}
	}
}
