package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appUC "github.com/trannb/jobtrackr/internal/application/usecase/application"
	appdomain "github.com/trannb/jobtrackr/internal/domain/application"
	"github.com/trannb/jobtrackr/internal/notify"
	"github.com/trannb/jobtrackr/pkg/apperror"
)

type ApplicationHandler struct {
	createUseCase    *appUC.CreateApplicationUseCase
	listUseCase      *appUC.ListApplicationsUseCase
	updateUseCase    *appUC.UpdateApplicationUseCase
	deleteUseCase    *appUC.DeleteApplicationUseCase
	uploadUseCase    *appUC.UploadDocumentUseCase
	exportCSVUseCase *appUC.ExportCSVUseCase
	notifier         *notify.Service
}

func NewApplicationHandler(
	createUC *appUC.CreateApplicationUseCase,
	listUC *appUC.ListApplicationsUseCase,
	updateUC *appUC.UpdateApplicationUseCase,
	deleteUC *appUC.DeleteApplicationUseCase,
	uploadUC *appUC.UploadDocumentUseCase,
	exportUC *appUC.ExportCSVUseCase,
	notifier *notify.Service,
) *ApplicationHandler {
	return &ApplicationHandler{
		createUseCase:    createUC,
		listUseCase:      listUC,
		updateUseCase:    updateUC,
		deleteUseCase:    deleteUC,
		uploadUseCase:    uploadUC,
		exportCSVUseCase: exportUC,
		notifier:         notifier,
	}
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	date, err := time.Parse(appdomain.DateLayout, req.ApplicationDate)
	if err != nil {
		c.Error(apperror.NewValidation(map[string]string{
			"applicationDate": "Date must be in YYYY-MM-DD format.",
		}))
		return
	}

	output, err := h.createUseCase.Execute(c.Request.Context(), appUC.CreateApplicationInput{
		UserID:          userID,
		JobRole:         req.JobRole,
		Company:         req.Company,
		JobID:           req.JobID,
		JobType:         appdomain.JobType(req.JobType),
		Location:        req.Location,
		Status:          appdomain.Status(req.Status),
		ApplicationDate: date,
		JobURL:          req.JobURL,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.notifier.Success("Application added successfully!")
	c.JSON(http.StatusCreated, ToApplicationDTO(output.Application))
}

func (h *ApplicationHandler) List(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	input := appUC.ListApplicationsInput{
		UserID: userID,
		Filters: appdomain.Filters{
			JobType:  c.Query("job_type"),
			Status:   c.Query("status"),
			Company:  c.Query("company"),
			Location: c.Query("location"),
			Search:   c.Query("q"),
		},
		SortAsc: c.Query("sort") == "asc",
		Limit:   limit,
	}

	output, err := h.listUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ApplicationDTO, len(output.Applications))
	for i, a := range output.Applications {
		dtos[i] = ToApplicationDTO(a)
	}

	c.JSON(http.StatusOK, ListApplicationsResponse{
		Applications: dtos,
		Companies:    output.Companies,
		Locations:    output.Locations,
		Total:        output.Total,
	})
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid application id", err))
		return
	}

	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		c.Error(err)
		return
	}

	output, err := h.updateUseCase.Execute(c.Request.Context(), appUC.UpdateApplicationInput{
		ID:     appID,
		UserID: userID,
		Patch:  patch,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.notifier.Success("Application updated successfully!")
	c.JSON(http.StatusOK, ToApplicationDTO(output.Application))
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid application id", err))
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), appUC.DeleteApplicationInput{
		ID:     appID,
		UserID: userID,
	}); err != nil {
		c.Error(err)
		return
	}

	h.notifier.Success("Application deleted successfully!")
	c.JSON(http.StatusOK, gin.H{"message": "application deleted"})
}

func (h *ApplicationHandler) UploadDocument(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid application id", err))
		return
	}

	kind := c.PostForm("kind")
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

	output, err := h.uploadUseCase.Execute(c.Request.Context(), appUC.UploadDocumentInput{
		ApplicationID: appID,
		UserID:        userID,
		Kind:          kind,
		File:          file,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.notifier.Success("Document uploaded successfully!")
	c.JSON(http.StatusOK, gin.H{"url": output.URL})
}

func (h *ApplicationHandler) ExportCSV(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	output, err := h.exportCSVUseCase.Execute(c.Request.Context(), appUC.ExportCSVInput{UserID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", output.Filename))
	c.Data(http.StatusOK, "text/csv", []byte(output.Content))
}
