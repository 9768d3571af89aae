package handler

import (
	"errors"
	"net/http"

	"banking-core/pkg/apperror"
	"banking-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathID parses a UUID path parameter. On failure it writes a 400 and
// returns false.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, apperror.Validation("invalid "+name+": must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// bindQuery binds query parameters into q, writing a 400 on failure.
func bindQuery(c *gin.Context, q interface{}) bool {
	if err := c.ShouldBindQuery(q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	return true
}

// bindJSON binds the request body into req, writing a 400 on failure and a
// 413 when the body outgrew the router's limit.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, apperror.ErrPayloadTooLarge(tooLarge.Limit))
			return false
		}
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	return true
}
