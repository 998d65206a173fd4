package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/etudeproject/etude/internal/app/models/dto"
	"github.com/etudeproject/etude/internal/app/services"
	"github.com/etudeproject/etude/internal/middleware"
)

// UserController handles user account endpoints
type UserController struct {
	authService *services.AuthService
}

// NewUserController creates a new UserController
func NewUserController(authService *services.AuthService) *UserController {
	return &UserController{
		authService: authService,
	}
}

// Signup registers a new account and returns its public shape
func (c *UserController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid signup data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.authService.Signup(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewUserResponse(user))
}
