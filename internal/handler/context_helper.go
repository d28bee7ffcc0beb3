package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/campuslabs/campus-events-api/pkg/errors"
)

// pathID extracts a numeric path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "invalid "+name)
	}
	return id, nil
}
