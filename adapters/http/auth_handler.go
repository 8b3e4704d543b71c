package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/trannb/jobtrackr/internal/application/usecase/auth"
	"github.com/trannb/jobtrackr/internal/domain/user"
	"github.com/trannb/jobtrackr/pkg/apperror"
)

type AuthHandler struct {
	registerUseCase       *authUC.RegisterUseCase
	loginUseCase          *authUC.LoginUseCase
	forgotPasswordUseCase *authUC.ForgotPasswordUseCase
	resetPasswordUseCase  *authUC.ResetPasswordUseCase
	userRepo              user.Repository
}

func NewAuthHandler(
	registerUC *authUC.RegisterUseCase,
	loginUC *authUC.LoginUseCase,
	forgotUC *authUC.ForgotPasswordUseCase,
	resetUC *authUC.ResetPasswordUseCase,
	userRepo user.Repository,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:       registerUC,
		loginUseCase:          loginUC,
		forgotPasswordUseCase: forgotUC,
		resetPasswordUseCase:  resetUC,
		userRepo:              userRepo,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	output, err := h.registerUseCase.Execute(c.Request.Context(), authUC.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"access_token": output.AccessToken,
		"user_id":      output.UserID,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": output.AccessToken,
		"user_id":      output.UserID,
		"display_name": output.DisplayName,
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	if err := h.forgotPasswordUseCase.Execute(c.Request.Context(), authUC.ForgotPasswordInput{Email: req.Email}); err != nil {
		c.Error(err)
		return
	}

	// The same body regardless of whether the account exists.
	c.JSON(http.StatusOK, gin.H{
		"message": "If an account with that email exists, a reset link has been sent.",
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	if err := h.resetPasswordUseCase.Execute(c.Request.Context(), authUC.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset."})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	u, err := h.userRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":      u.ID.String(),
		"email":        u.Email,
		"display_name": u.DisplayName,
		"created_at":   u.CreatedAt,
	})
}
