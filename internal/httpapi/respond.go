package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

// fail writes the standard {error, code} body at the status matching err's
// rpgerr.Code and aborts the handler chain.
func fail(c *gin.Context, err error) {
	code := codeOf(err)
	c.AbortWithStatusJSON(statusFor(code), errorBody{Error: err.Error(), Code: string(code)})
}

// bindJSON binds the request body into dst, failing the request with
// CodeInvalidArgument on malformed JSON.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		fail(c, rpgerr.Wrap(err, "malformed request body"))
		return false
	}
	return true
}
