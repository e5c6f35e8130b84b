package handler

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

// pathParam returns a percent-decoded path parameter. The router matches on
// the raw path so matric numbers containing encoded slashes (csc%2F2025%2F6612)
// arrive as single segments; they must be decoded before use.
func pathParam(c *gin.Context, name string) string {
	raw := c.Param(name)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
