package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pricing-service/internal/domain/dto"
	"github.com/guttosm/pricing-service/internal/middleware"
)

var successResponsePool = sync.Pool{
	New: func() any {
		return &dto.SuccessResponse{}
	},
}

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

// ResponseBuilder writes the success and error envelopes for a request.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends data wrapped in a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data any) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now().UTC()

	// gin serializes synchronously, so the pooled value can be returned right after.
	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data any) {
	b.Success(http.StatusCreated, data)
}

// Fail renders err through ClassifyError and aborts the chain. The error is
// also attached to the context so the error handler logs it.
func (b *ResponseBuilder) Fail(err error) {
	status, resp := ClassifyError(b.c, err)
	_ = b.c.Error(err)
	b.c.AbortWithStatusJSON(status, resp.WithRequestID(middleware.GetRequestID(b.c)))
}

// BuildRequest binds the JSON body into a new T and runs its binding rules.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, &BindError{Err: err}
	}
	return &req, nil
}

// BuildQuery binds the query string into a new T.
func BuildQuery[T any](c *gin.Context) (*T, error) {
	var q T
	if err := c.ShouldBindQuery(&q); err != nil {
		return nil, &BindError{Err: err}
	}
	return &q, nil
}

// BindError marks a request that could not be decoded or failed binding rules.
type BindError struct {
	Err error
}

func (e *BindError) Error() string { return "bind request: " + e.Err.Error() }

func (e *BindError) Unwrap() error { return e.Err }
