package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"monarch-web/internal/delivery/http/response"
	"monarch-web/pkg/security"

	"github.com/gin-gonic/gin"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName is the header scripts send the token in
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenFormField is the hidden form field plain HTML forms send the token in
	CSRFTokenFormField = "csrf_token"
	// CSRFTokenLength is the length of the generated token in bytes (32 bytes = 64 hex chars)
	CSRFTokenLength = 32
	// CSRFTokenExpiry is how long the token is valid
	CSRFTokenExpiry = 24 * time.Hour
	// csrfContextKey is where the current token is stored for page rendering
	csrfContextKey = "csrf_token"
)

// generateCSRFToken creates a cryptographically secure random token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFToken returns the token issued for the current request, for embedding in forms
func CSRFToken(c *gin.Context) string {
	return c.GetString(csrfContextKey)
}

// CSRFMiddleware implements the double-submit cookie pattern.
//
// Every response carries a csrf_token cookie. Pages embed the same token in a
// hidden form field; state-changing requests must echo it back in either the
// X-CSRF-Token header or the csrf_token form field. Paths in exempt skip the
// check (public JSON endpoints protected by rate limiting instead).
func CSRFMiddleware(secureCookie bool, exempt ...string) gin.HandlerFunc {
	exemptPaths := make(map[string]bool, len(exempt))
	for _, p := range exempt {
		exemptPaths[p] = true
	}

	return func(c *gin.Context) {
		csrfCookie, err := c.Cookie(CSRFTokenCookieName)
		if err != nil || csrfCookie == "" {
			newToken, err := generateCSRFToken()
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to generate security token", nil)
				c.Abort()
				return
			}

			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(
				CSRFTokenCookieName,
				newToken,
				int(CSRFTokenExpiry.Seconds()),
				"/",
				"",
				secureCookie,
				false, // scripts may read it
			)
			csrfCookie = newToken
		}
		c.Set(csrfContextKey, csrfCookie)

		method := c.Request.Method
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions || exemptPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		token := c.GetHeader(CSRFTokenHeaderName)
		if token == "" {
			token = c.PostForm(CSRFTokenFormField)
		}

		if token == "" {
			rejectCSRF(c, "missing")
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(csrfCookie)) != 1 {
			rejectCSRF(c, "mismatch")
			return
		}

		c.Next()
	}
}

func rejectCSRF(c *gin.Context, reason string) {
	security.DefaultLogger().LogCSRFRejected(
		c.Request.Context(),
		c.ClientIP(),
		c.GetHeader("User-Agent"),
		requestIDFrom(c),
		reason,
	)
	response.Error(c, http.StatusForbidden, "Invalid or missing security token. Please reload the page and try again.", nil)
	c.Abort()
}
