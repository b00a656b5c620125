package httpapi

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/action"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/authtoken"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

const authContextKey = "wog.auth"

// requireAuth parses a "Bearer <token>" Authorization header, verifies it
// with issuer, and stores the resulting action.AuthContext on the gin
// context for handlers to read via authFrom. Every mutating endpoint runs
// behind this; read-only catalog/auth endpoints don't.
func requireAuth(issuer *authtoken.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			fail(c, rpgerr.New(rpgerr.CodeNotAllowed, "missing bearer token"))
			return
		}
		wallet, err := issuer.Verify(tokenStr)
		if err != nil {
			fail(c, rpgerr.Wrap(err, "invalid bearer token"))
			return
		}
		c.Set(authContextKey, action.AuthContext{Wallet: wallet})
		c.Next()
	}
}

func authFrom(c *gin.Context) action.AuthContext {
	v, _ := c.Get(authContextKey)
	auth, _ := v.(action.AuthContext)
	return auth
}

// requestLogger logs one line per request via zerolog, the same
// structured-field style internal/zone and internal/merchant use for
// their own event logging.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("httpapi: request")
	}
}
