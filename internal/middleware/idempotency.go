package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pricing-service/internal/metrics"
	"github.com/guttosm/pricing-service/internal/service/cache"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key (RFC standard).
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the store.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// DefaultMaxIdempotentBody bounds the body hashed into the key.
	DefaultMaxIdempotentBody = 1 << 20
)

// CachedResponse is a stored response replayed for a repeated key.
type CachedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Store cache.Cache[CachedResponse]
	// MaxBodyBytes disables replay for larger bodies. Zero means DefaultMaxIdempotentBody.
	MaxBodyBytes int64
}

// Idempotency returns a middleware that replays the response of a recent
// POST, PUT or PATCH carrying the same Idempotency-Key, caller, path and body.
// Only 2xx responses are stored.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if cfg.Store == nil {
		return func(c *gin.Context) { c.Next() }
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxIdempotentBody
	}

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		cacheKey, ok := idempotencyKey(c, key, maxBody)
		if !ok {
			c.Next()
			return
		}

		if cached, hit := cfg.Store.Get(cacheKey); hit {
			metrics.RecordIdempotentReplay()
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(cached.StatusCode, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			cfg.Store.Set(cacheKey, CachedResponse{
				StatusCode:  status,
				ContentType: writer.Header().Get("Content-Type"),
				Body:        bytes.Clone(writer.body.Bytes()),
			})
		}
	}
}

// idempotencyKey hashes the client key with the caller, method, path and
// body. The body is restored for the handler. ok is false when the body is
// larger than maxBody.
func idempotencyKey(c *gin.Context, key string, maxBody int64) (string, bool) {
	var body []byte
	if c.Request.Body != nil {
		read, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBody+1))
		if err != nil {
			c.Request.Body = io.NopCloser(bytes.NewReader(read))
			return "", false
		}
		if int64(len(read)) > maxBody {
			c.Request.Body = readCloser{io.MultiReader(bytes.NewReader(read), c.Request.Body), c.Request.Body}
			return "", false
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(read))
		body = read
	}

	h := sha256.New()
	for _, part := range []string{key, GetUserID(c), c.Request.Method, c.Request.URL.Path} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil)), true
}

type readCloser struct {
	io.Reader
	io.Closer
}

// bodyCaptureWriter copies the response body while writing it through.
type bodyCaptureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
