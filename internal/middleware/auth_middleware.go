package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YassenAli/Mentoria/internal/app/models"
	"github.com/YassenAli/Mentoria/internal/app/models/dto"
	"github.com/YassenAli/Mentoria/internal/pkg/apperrors"
	"github.com/YassenAli/Mentoria/internal/pkg/auth"
)

const principalKey = "principal"

// AuthMiddleware is the boundary to the identity provider: it validates the
// bearer token and attaches the authenticated principal to the request.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				message = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
			return
		}

		c.Set(principalKey, models.Principal{
			ID:   claims.UserID,
			Name: claims.Name,
			Role: models.RoleType(claims.Role),
		})

		c.Next()
	}
}

// RoleRequired ensures the authenticated principal carries the given role.
func (m *AuthMiddleware) RoleRequired(role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok || principal.Role != role {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Not authorized"))
			return
		}

		c.Next()
	}
}

// GetPrincipal returns the authenticated principal set by JWTAuth.
func GetPrincipal(c *gin.Context) (models.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return models.Principal{}, false
	}

	principal, ok := value.(models.Principal)
	return principal, ok
}
