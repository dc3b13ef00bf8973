package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"game-economy/internal/core/ports"
	"game-economy/pkg/apperror"
	"game-economy/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderReplayed       = "Idempotent-Replayed"

	maxIdempotencyKeyLen = 128
)

// idempotencyClaimTTL bounds how long an unfinished request holds its key.
const idempotencyClaimTTL = 30 * time.Second

// idempotentResponse is the record kept per key. Pending marks a claim whose
// request has not finished.
type idempotentResponse struct {
	Fingerprint string `json:"fingerprint"`
	Pending     bool   `json:"pending,omitempty"`
	Status      int    `json:"status,omitempty"`
	Body        []byte `json:"body,omitempty"`
}

// bodyRecorder tees the response body so it can be stored for replay.
type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response of a request retried with the
// same Idempotency-Key, so a ledger mutation is applied at most once per key.
// The key is claimed atomically before the handler runs. A duplicate arriving
// while the first request is still running gets 409 and may retry. Keys are
// scoped to the authenticated host. Reusing a key for a different request is
// rejected. 5xx responses release the key instead of being stored. When the
// cache cannot be reached the request is processed without protection.
func Idempotency(cache ports.IdempotencyCache, ttl time.Duration, log zerolog.Logger) gin.HandlerFunc {
	claimTTL := idempotencyClaimTTL
	if ttl > 0 && ttl < claimTTL {
		claimTTL = ttl
	}

	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(HeaderIdempotencyKey))
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLen {
			response.Error(c, apperror.Validation("Idempotency-Key is too long"))
			c.Abort()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.Error(c, apperror.Validation("cannot read request body"))
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		ctx := c.Request.Context()
		fingerprint := requestFingerprint(c.Request.Method, c.Request.URL.Path, body)
		cacheKey := HostID(c) + ":" + key

		marker, _ := json.Marshal(idempotentResponse{Fingerprint: fingerprint, Pending: true})
		claimed, err := cache.Claim(ctx, cacheKey, marker, claimTTL)
		if err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("idempotency claim failed, processing request")
			c.Next()
			return
		}
		if !claimed {
			replayIdempotent(c, cache, cacheKey, fingerprint, log)
			c.Abort()
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		status := rec.Status()
		if status >= http.StatusInternalServerError {
			if err := cache.Release(ctx, cacheKey); err != nil {
				log.Warn().Err(err).Str("key", cacheKey).Msg("failed to release idempotency key")
			}
			return
		}
		payload, err := json.Marshal(idempotentResponse{
			Fingerprint: fingerprint,
			Status:      status,
			Body:        rec.buf.Bytes(),
		})
		if err != nil {
			return
		}
		// On failure the claim stays until claimTTL, so retries keep getting
		// 409 rather than applying the mutation again.
		if err := cache.Set(ctx, cacheKey, payload, ttl); err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("failed to store idempotent response")
		}
	}
}

// replayIdempotent answers a request whose key is already held.
func replayIdempotent(c *gin.Context, cache ports.IdempotencyCache, cacheKey, fingerprint string, log zerolog.Logger) {
	cached, err := cache.Get(c.Request.Context(), cacheKey)
	if err != nil {
		response.Error(c, apperror.ErrCacheError(err))
		return
	}
	if cached == nil {
		// Released or expired since the claim failed.
		response.Error(c, apperror.ErrIdempotencyInFlight())
		return
	}

	var stored idempotentResponse
	if err := json.Unmarshal(cached, &stored); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("unreadable idempotency record")
		response.Error(c, apperror.ErrCacheError(err))
		return
	}
	if stored.Fingerprint != fingerprint {
		response.Error(c, apperror.ErrIdempotencyConflict())
		return
	}
	if stored.Pending {
		response.Error(c, apperror.ErrIdempotencyInFlight())
		return
	}
	c.Header(HeaderReplayed, "true")
	c.Data(stored.Status, "application/json; charset=utf-8", stored.Body)
}

func requestFingerprint(method, path string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(method))
	h.Write([]byte{0})
	h.Write([]byte(path))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}
