package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func auditRouter(buf *bytes.Buffer, status int) *gin.Engine {
	r := gin.New()
	r.Use(AuditLog(zerolog.New(buf)))
	handler := func(c *gin.Context) {
		c.Set(CtxHostID, "lobby")
		c.Status(status)
	}
	r.POST("/api/v1/players/:player/deposit", handler)
	r.GET("/api/v1/players/:player/balance", handler)
	r.DELETE("/api/v1/banks/:name", handler)
	return r
}

func TestAuditLog_AppliedMutation(t *testing.T) {
	var buf bytes.Buffer
	r := auditRouter(&buf, http.StatusOK)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/players/p1/deposit", nil))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "player.deposit", line["audit"])
	assert.Equal(t, "lobby", line["host"])
	assert.Equal(t, "p1", line["player"])
}

func TestAuditLog_SkipsReads(t *testing.T) {
	var buf bytes.Buffer
	r := auditRouter(&buf, http.StatusOK)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/players/p1/balance", nil))

	assert.Zero(t, buf.Len())
}

func TestAuditLog_SkipsFailures(t *testing.T) {
	var buf bytes.Buffer
	r := auditRouter(&buf, http.StatusUnprocessableEntity)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/banks/vault", nil))

	assert.Zero(t, buf.Len())
}

func TestAuditAction(t *testing.T) {
	tests := []struct {
		method, route, want string
	}{
		{http.MethodPost, "/api/v1/players/:player/withdraw", "player.withdraw"},
		{http.MethodPost, "/api/v1/players/:player/accounts", "player.create_account"},
		{http.MethodPost, "/api/v1/banks", "bank.create"},
		{http.MethodDelete, "/api/v1/banks/:name", "bank.delete"},
		{http.MethodPost, "/api/v1/banks/:name/deposit", "bank.deposit"},
		{http.MethodGet, "/api/v1/banks", ""},
		{http.MethodPost, "/unknown", ""},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.route, func(t *testing.T) {
			assert.Equal(t, tt.want, auditAction(tt.method, tt.route))
		})
	}
}
