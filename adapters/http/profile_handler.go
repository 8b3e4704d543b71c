package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/trannb/jobtrackr/internal/application/usecase/profile"
	"github.com/trannb/jobtrackr/internal/notify"
	"github.com/trannb/jobtrackr/pkg/apperror"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	notifier       *notify.Service
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, notifier *notify.Service) *ProfileHandler {
	return &ProfileHandler{profileUseCase: uc, notifier: notifier}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	p, err := h.profileUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(p))
}

func (h *ProfileHandler) Save(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	p, err := h.profileUseCase.Save(c.Request.Context(), profileUC.SaveInput{
		UserID: userID,
		Patch:  req.ToPatch(),
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.notifier.Success("Profile saved successfully!")
	c.JSON(http.StatusOK, ToProfileDTO(p))
}

func (h *ProfileHandler) UploadPicture(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("file cannot open", err))
		return
	}
	defer file.Close()

	url, err := h.profileUseCase.UploadPicture(c.Request.Context(), userID, file)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
