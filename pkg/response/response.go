package response

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"banking-core/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Pagination headers read by API clients.
const (
	HeaderDataLength = "X-Data-Length"
	HeaderDataOffset = "X-Data-Offset"
	HeaderDataLimit  = "X-Data-Limit"
)

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the standard error envelope. Data carries whatever part
// of the operation did complete, e.g. a boleto whose lines failed to render.
type ErrorResponse struct {
	ErrorCode string      `json:"error_code"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data:      data,
		RequestID: getRequestID(c),
		Timestamp: now(),
	})
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Data:      data,
		RequestID: getRequestID(c),
		Timestamp: now(),
	})
}

// Page sends a 200 response for one page of a listing and sets the
// X-Data-* headers.
func Page(c *gin.Context, items interface{}, total int64, offset, limit int) {
	c.Header(HeaderDataLength, strconv.FormatInt(total, 10))
	c.Header(HeaderDataOffset, strconv.Itoa(offset))
	c.Header(HeaderDataLimit, strconv.Itoa(limit))
	OK(c, items)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	Partial(c, err, nil)
}

// Partial is Error with the completed part of the result attached.
func Partial(c *gin.Context, err error, data interface{}) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorResponse{
			ErrorCode: appErr.Code,
			Message:   appErr.Message,
			Data:      data,
			RequestID: getRequestID(c),
			Timestamp: now(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		ErrorCode: "SYS_000",
		Message:   "Internal server error",
		RequestID: getRequestID(c),
		Timestamp: now(),
	})
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// getRequestID retrieves request ID from context, or generates one.
func getRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
