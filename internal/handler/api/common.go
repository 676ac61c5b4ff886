package api

import (
	"net/http"
	"strconv"

	"parking-api/internal/handler/httperr"
	"parking-api/internal/handler/middleware"
	"parking-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// callerID reads the authenticated user id, aborting with 401 when the auth middleware
// did not run.
func callerID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Authentication required", nil)
		return 0, false
	}
	return userID, true
}

func pathInt64(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name+" format", nil)
		return 0, false
	}
	return id, true
}
