package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/crowdfund-backend/pkg/response"
)

// TokenHeader is the header the bearer token travels in. The value is the
// raw token with no scheme prefix.
const TokenHeader = "x-auth-token"

// TokenVerifier validates a raw token value and returns the subject id it
// carries. The application's user service is the production implementation.
type TokenVerifier interface {
	CheckAccess(token string) (string, error)
}

// TokenAuth guards a route group with the verifier and injects the subject
// id into the Gin context under "userID".
func TokenAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := verifier.CheckAccess(c.GetHeader(TokenHeader))
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, err.Error(), nil)
			c.Abort()
			return
		}
		c.Set("userID", uid)
		c.Next()
	}
}
