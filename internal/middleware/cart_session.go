package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartSessionCookie names the anonymous cart-session cookie. Each browser
// session gets its own id so anonymous carts never leak between visitors.
const CartSessionCookie = "cart_session"

// CartSessionKey is the gin context key the session id is stored under.
const CartSessionKey = "cartSession"

// CartSession issues the anonymous cart-session id when absent and makes it
// available to cart handlers. It runs on every cart-facing route; logged-in
// customers simply never read it.
func CartSession() gin.HandlerFunc {
	maxAge := int((30 * 24 * time.Hour).Seconds())

	return func(c *gin.Context) {
		id, err := c.Cookie(CartSessionCookie)
		if err != nil || strings.TrimSpace(id) == "" {
			id = uuid.NewString()
			c.SetCookie(CartSessionCookie, id, maxAge, "/", "", false, true)
		}
		c.Set(CartSessionKey, id)
		c.Next()
	}
}
