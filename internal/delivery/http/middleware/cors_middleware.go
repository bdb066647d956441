package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware restricts cross-origin requests to the portfolio frontend.
// Outside release mode localhost origins are also allowed, so the local
// frontend dev server can talk to the API.
func CORSMiddleware(frontendURL string) gin.HandlerFunc {
	isProduction := os.Getenv("GIN_MODE") == "release"

	allowed := map[string]bool{
		frontendURL: true,
	}
	if !isProduction {
		allowed["http://localhost:3000"] = true
		allowed["http://127.0.0.1:3000"] = true
		allowed["http://localhost:3001"] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Same-origin requests carry no Origin header
		isAllowed := origin == "" || allowed[origin]

		// Vercel preview deployments of the frontend. The prefix check keeps
		// unrelated *.vercel.app projects out.
		if !isAllowed && strings.HasPrefix(origin, "https://") && strings.HasSuffix(origin, ".vercel.app") {
			subdomain := strings.TrimSuffix(strings.TrimPrefix(origin, "https://"), ".vercel.app")
			if strings.HasPrefix(subdomain, "portfolio") || strings.Contains(subdomain, "-portfolio-") {
				isAllowed = true
			}
		}

		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Origin, Cache-Control, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}
		// Ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			if isAllowed {
				c.AbortWithStatus(http.StatusNoContent)
			} else {
				c.AbortWithStatus(http.StatusForbidden)
			}
			return
		}

		c.Next()
	}
}
