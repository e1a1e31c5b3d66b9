package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mukeshvesalapu/MediShield-DR/internal/service/auth"
)

// ClaimsKey is the gin context key holding the authenticated claims.
const ClaimsKey = "claims"

// Identity returns the acting operator's username from the request claims.
func Identity(c *gin.Context) string {
	value, ok := c.Get(ClaimsKey)
	if !ok {
		return "UNKNOWN"
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return "UNKNOWN"
	}
	return claims.Username
}
