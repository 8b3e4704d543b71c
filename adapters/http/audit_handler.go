package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	auditUC "github.com/trannb/jobtrackr/internal/application/usecase/audit"
)

type AuditHandler struct {
	listUseCase *auditUC.ListEntriesUseCase
}

func NewAuditHandler(uc *auditUC.ListEntriesUseCase) *AuditHandler {
	return &AuditHandler{listUseCase: uc}
}

func (h *AuditHandler) List(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	output, err := h.listUseCase.Execute(c.Request.Context(), auditUC.ListEntriesInput{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": output.Entries})
}
