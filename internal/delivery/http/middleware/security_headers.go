package middleware

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// EmbedOrigins lists the third-party origins the pages load widgets from
type EmbedOrigins struct {
	Scripts []string
	Frames  []string
	Connect []string
}

// OriginOf returns scheme://host for a URL, or "" when it cannot be parsed
func OriginOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// ContentSecurityPolicy builds the CSP for the site and its embeds
func ContentSecurityPolicy(embeds EmbedOrigins) string {
	join := func(extra []string) string {
		parts := []string{"'self'"}
		for _, o := range extra {
			if o != "" {
				parts = append(parts, o)
			}
		}
		return strings.Join(parts, " ")
	}

	return "default-src 'self'; " +
		"script-src " + join(embeds.Scripts) + "; " +
		"style-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data: https:; " +
		"font-src 'self' data:; " +
		"connect-src " + join(embeds.Connect) + "; " +
		"frame-src " + join(embeds.Frames) + "; " +
		"frame-ancestors 'none'; " +
		"base-uri 'self'; " +
		"form-action 'self'"
}

// SecurityHeadersMiddleware adds baseline security headers to all responses
func SecurityHeadersMiddleware(embeds EmbedOrigins, production bool) gin.HandlerFunc {
	csp := ContentSecurityPolicy(embeds)

	return func(c *gin.Context) {
		if production {
			c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")
		}
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")
		// swagger-ui ships inline scripts
		if !strings.HasPrefix(c.Request.URL.Path, "/v1/swagger/") {
			c.Header("Content-Security-Policy", csp)
		}

		c.Next()
	}
}
