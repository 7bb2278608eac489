package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"go-jobmarket-backend/config"
	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token issued by the external identity
// service and resolves the actor once for the whole request. Handlers read
// the Actor from the context; none of them probe profile tables themselves.
func AuthMiddleware(cfg *config.Config, profileUC domain.ProfileUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			// Fall back to the session cookie set by the identity service
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			if cfg.JWTSecret == "" {
				return nil, fmt.Errorf("JWT_SECRET is not configured")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		// Resolve the profile kind from the DB rather than trusting any role
		// claim in the token; tokens outlive profile changes.
		actor, err := profileUC.ResolveActor(c.Request.Context(), sub)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), actor.UserID)
		c.Set(string(domain.KeyUsername), actor.Username)
		c.Set(string(domain.KeyActor), actor)

		c.Next()
	}
}

// GetActor pulls the resolved actor out of the gin context. Returns nil when
// the auth middleware did not run.
func GetActor(c *gin.Context) *domain.Actor {
	v, ok := c.Get(string(domain.KeyActor))
	if !ok {
		return nil
	}
	actor, _ := v.(*domain.Actor)
	return actor
}
