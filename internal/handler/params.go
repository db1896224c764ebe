package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/smart-timetable/dashboard-api/pkg/errors"
	"github.com/smart-timetable/dashboard-api/pkg/response"
)

// pathID parses the :id route parameter, answering the request itself when
// the value is not a positive integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "id must be a positive integer"))
		return 0, false
	}
	return id, true
}
