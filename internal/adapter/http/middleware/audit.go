package middleware

import (
	"net/http"

	"game-economy/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuditLog writes one audit event per applied ledger or admin mutation.
// Rejected and failed requests are not audited.
func AuditLog(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if status := c.Writer.Status(); status < 200 || status >= 300 {
			return
		}
		action := auditAction(c.Request.Method, c.FullPath())
		if action == "" {
			return
		}

		event := log.Info().
			Str("audit", action).
			Str("host", HostID(c)).
			Str("request_id", c.GetString(response.CtxRequestID)).
			Str("client_ip", c.ClientIP())
		for _, p := range c.Params {
			event = event.Str(p.Key, p.Value)
		}
		event.Msg("economy mutation")
	}
}

func auditAction(method, route string) string {
	switch {
	case method == http.MethodPost && route == "/api/v1/players/:player/withdraw":
		return "player.withdraw"
	case method == http.MethodPost && route == "/api/v1/players/:player/deposit":
		return "player.deposit"
	case method == http.MethodPost && route == "/api/v1/players/:player/accounts":
		return "player.create_account"
	case method == http.MethodPost && route == "/api/v1/banks":
		return "bank.create"
	case method == http.MethodDelete && route == "/api/v1/banks/:name":
		return "bank.delete"
	case method == http.MethodPost && route == "/api/v1/banks/:name/withdraw":
		return "bank.withdraw"
	case method == http.MethodPost && route == "/api/v1/banks/:name/deposit":
		return "bank.deposit"
	}
	return ""
}
