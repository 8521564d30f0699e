package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ClientKeyCookie = "shop_client_key"
	clientKeyCtxKey = "clientKey"
)

// ClientKey makes sure every browser carries a random key cookie. The
// checkout guard uses it to collapse duplicate submissions from one client.
func ClientKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := c.Cookie(ClientKeyCookie)
		if err != nil || !isUUID(key) {
			key = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(ClientKeyCookie, key, 0, "/", "", c.Request.TLS != nil, true)
		}
		c.Set(clientKeyCtxKey, key)
		c.Next()
	}
}

// ClientKeyFrom returns the key set by ClientKey, or "" when the middleware
// did not run.
func ClientKeyFrom(c *gin.Context) string {
	return c.GetString(clientKeyCtxKey)
}

func isUUID(v string) bool {
	_, err := uuid.Parse(v)
	return err == nil
}
