package middleware

import (
	"log/slog"
	"net/http"

	"rental-booking/internal/pkg/config"
	"rental-booking/internal/pkg/cookie"
	"rental-booking/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

const ctxScopeKey = "storage_scope"

// ScopeMiddleware resolves the storage scope a request reads and writes. A
// visitor without a valid scope cookie gets a fresh, empty scope.
type ScopeMiddleware struct {
	sessions *session.Service
	cfg      config.SessionConfig
}

func NewScopeMiddleware(sessions *session.Service, cfg config.Config) *ScopeMiddleware {
	return &ScopeMiddleware{
		sessions: sessions,
		cfg:      cfg.Session,
	}
}

func (m *ScopeMiddleware) ResolveScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := cookie.GetScopeToken(c, m.cfg); token != "" {
			claims, err := m.sessions.Parse(token)
			if err == nil {
				c.Set(ctxScopeKey, claims.Scope())
				c.Next()
				return
			}
			slog.Debug("scope token rejected, minting a new scope", "error", err.Error())
		}

		scope, token, err := m.sessions.NewScope()
		if err != nil {
			slog.Error("failed to mint storage scope", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
			return
		}
		cookie.SetScopeCookie(c, m.cfg, token)
		c.Set(ctxScopeKey, scope)
		c.Next()
	}
}

func GetScope(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxScopeKey)
	if !exists {
		return "", false
	}
	scope, ok := v.(string)
	return scope, ok && scope != ""
}

// SetScope is used by tests and by callers that resolve the scope elsewhere.
func SetScope(c *gin.Context, scope string) {
	c.Set(ctxScopeKey, scope)
}
