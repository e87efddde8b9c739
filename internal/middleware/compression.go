package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression returns a middleware that gzips responses for clients that
// accept it. Scrapes and static docs under excludedPaths are left alone.
func Compression(excludedPaths ...string) gin.HandlerFunc {
	var opts []gzip.Option
	if len(excludedPaths) > 0 {
		opts = append(opts, gzip.WithExcludedPaths(excludedPaths))
	}
	return gzip.Gzip(gzip.DefaultCompression, opts...)
}
