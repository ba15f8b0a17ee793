package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the error object shared by every JSON error response.
// Kind uses the same vocabulary as websocket error frames where the two overlap.
type Body struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

func NewResponse(status int, msg string) Response {
	return Response{Status: status, Error: Body{Kind: KindFor(status), Message: msg}}
}

func KindFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "validation_error"
	case http.StatusUnauthorized:
		return "unauthenticated"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusServiceUnavailable:
		return "store_unavailable"
	}
	if status >= 500 {
		return "internal_error"
	}
	return "request_error"
}

// AbortWithError keeps err on the gin context for the logging middleware and writes resp to the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg)
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
