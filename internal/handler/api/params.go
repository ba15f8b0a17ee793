package api

import (
	"net/http"
	"strconv"

	"syncro-backend/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// pathID parses a positive int64 path parameter, aborting with 400 otherwise.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}
