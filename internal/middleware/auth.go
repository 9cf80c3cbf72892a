package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"finance-tracker-backend/internal/models"
	"finance-tracker-backend/internal/services/auth"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	contextClaims    = "claims"
	contextCompanyID = "companyID"
)

func Authenticate(service *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		claims, err := service.VerifyAccess(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(contextClaims, claims)
		c.Next()
	}
}

func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
	}
}

// RequireCompanyAccess resolves the companyId path parameter and checks
// that an owner only reaches their own companies. The resolved id is
// stored on the context for the handlers.
func RequireCompanyAccess(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := strconv.ParseUint(c.Param("companyId"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid company ID"})
			return
		}

		var company models.Company
		if err := db.First(&company, "id = ?", companyID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "company not found"})
			return
		}

		claims := CurrentClaims(c)
		if claims != nil && claims.Role == models.RoleOwner && company.OwnerID != claims.UserID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "no access to this company"})
			return
		}

		c.Set(contextCompanyID, uint(companyID))
		c.Next()
	}
}

func CurrentClaims(c *gin.Context) *auth.Claims {
	value, ok := c.Get(contextClaims)
	if !ok {
		return nil
	}
	claims, _ := value.(*auth.Claims)
	return claims
}

func CompanyID(c *gin.Context) uint {
	value, ok := c.Get(contextCompanyID)
	if !ok {
		return 0
	}
	id, _ := value.(uint)
	return id
}
