package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig lists which browser origins may call the API.
type CORSConfig struct {
	// Exact origins, e.g. "https://davi-reis-portfolio.vercel.app"
	AllowedOrigins []string
	// Vercel preview deployments "https://<prefix>-*.vercel.app"; empty disables
	PreviewPrefix string
	// Allow localhost dev servers (never enable in production)
	AllowLocalhost bool
}

var devOrigins = map[string]bool{
	"http://localhost:3000": true,
	"http://127.0.0.1:3000": true,
	"http://localhost:3001": true,
}

// CORSMiddleware adds CORS headers for cross-origin requests from the
// portfolio frontend.
//
// Origins not on the list get no CORS headers and the browser blocks them.
// Preflight requests from them are answered with 403.
func CORSMiddleware(cfg CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[strings.TrimRight(origin, "/")] = true
	}

	isAllowed := func(origin string) bool {
		if origin == "" || allowed[origin] {
			return true
		}
		if cfg.AllowLocalhost && devOrigins[origin] {
			return true
		}
		return cfg.PreviewPrefix != "" && isPreviewOrigin(origin, cfg.PreviewPrefix)
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		ok := isAllowed(origin)

		if ok && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Accept-Encoding, X-Request-ID, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Expose-Headers", "X-Request-ID, Retry-After")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			if ok {
				c.AbortWithStatus(http.StatusNoContent)
			} else {
				c.AbortWithStatus(http.StatusForbidden)
			}
			return
		}

		c.Next()
	}
}

// isPreviewOrigin matches https://<prefix>.vercel.app and
// https://<prefix>-<anything>.vercel.app, but not evil-<prefix>.vercel.app.
func isPreviewOrigin(origin, prefix string) bool {
	host, found := strings.CutPrefix(origin, "https://")
	if !found {
		return false
	}
	sub, found := strings.CutSuffix(host, ".vercel.app")
	if !found || strings.Contains(sub, ".") {
		return false
	}
	return sub == prefix || strings.HasPrefix(sub, prefix+"-")
}
