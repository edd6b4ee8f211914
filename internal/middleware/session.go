package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"

	"github.com/rivera-lanasm/cactoide-rivlanm/internal/config"
)

const identityKey = "user_id"

// Identity returns the opaque per-browser identifier the Session
// middleware attached to the request.
func Identity(c *ginext.Context) string {
	return c.GetString(identityKey)
}

// Session issues the per-browser identity cookie. The value is an
// opaque capability token, not an authenticated principal; ownership
// checks built on it are best-effort.
func Session(cfg config.SessionConfig, log logger.Logger) ginext.HandlerFunc {
	maxAge := cfg.MaxAgeDays * 24 * 60 * 60

	return func(c *ginext.Context) {
		id, err := c.Cookie(cfg.CookieName)
		if err != nil || id == "" {
			id = uuid.New().String()
			c.SetCookie(cfg.CookieName, id, maxAge, "/", "", cfg.Secure, true)
			log.Debug("issued new session identity",
				logger.String(identityKey, id),
			)
		}

		c.Set(identityKey, id)
		c.Next()
	}
}
