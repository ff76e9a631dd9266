package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseIDParam reads a positive integer path parameter. On failure it writes
// a 400 response and returns false.
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
