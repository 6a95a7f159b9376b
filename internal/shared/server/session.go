package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studyhub-backend/internal/shared/server/middleware"
	"studyhub-backend/internal/shared/server/respond"
)

// registerSessionRoutes attaches the /session endpoint. The response carries
// the current identity or a null user; a missing or invalid token is reported
// as the logged-out state, never as an error.
func registerSessionRoutes(rg *gin.RouterGroup) {
	rg.GET("/session", sessionHandler)
}

func sessionHandler(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.JSON(c, http.StatusOK, gin.H{"user": nil})
		return
	}

	user := gin.H{
		"id": userID,
	}
	if email := middleware.UserEmailFromContext(c); email != "" {
		user["email"] = email
	}
	if name := middleware.UserNameFromContext(c); name != "" {
		user["name"] = name
	}
	if picture := middleware.UserPictureFromContext(c); picture != "" {
		user["picture"] = picture
	}
	user["displayName"] = middleware.DisplayNameFromContext(c)

	respond.JSON(c, http.StatusOK, gin.H{"user": user})
}
