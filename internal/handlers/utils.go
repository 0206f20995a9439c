package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// requireUserID pulls the acting user from the user_id query parameter.
// There is no session layer; clients identify themselves per request.
func requireUserID(c *gin.Context) (string, bool) {
	userID := c.Query("user_id")
	if userID == "" {
		userID = c.PostForm("user_id")
	}
	if userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "user_id is required"})
		return "", false
	}
	return userID, true
}

// requireParam pulls a non-empty path parameter.
func requireParam(c *gin.Context, name, label string) (string, bool) {
	v := c.Param(name)
	if v == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: label + " is required"})
		return "", false
	}
	return v, true
}
