package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kenyaamazon/storefront-api/pkg/global"
	"github.com/kenyaamazon/storefront-api/pkg/models"
)

// Login asserts an identity and role for the session. There is nothing to
// verify; this is the storefront's mock auth.
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid login data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	user, token := Sessions.Login(req.Name, req.Email, req.Role)
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"user":  user,
		"token": token,
	}))
}

// Register behaves like login with role=user after checking the password
// confirmation. The password itself is discarded.
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid registration data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	if !req.PasswordsMatch() {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Passwords do not match", []global.ValidationError{
			{Field: "confirmPassword", Message: "password confirmation does not match", Code: "mismatch"},
		}))
		return
	}

	user, token := Sessions.Login(req.Name, req.Email, models.RoleUser)
	c.JSON(http.StatusCreated, global.SuccessResponse(map[string]interface{}{
		"user":  user,
		"token": token,
	}))
}

func Logout(c *gin.Context) {
	if token := sessionToken(c); token != "" {
		Sessions.Logout(token)
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "logged out"}))
}
