package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trannb/jobtrackr/internal/notify"
)

// NoticeHandler exposes the transient in-process notice, mirroring a
// snackbar: the latest message with its severity, gone once the hide
// delay elapses.
type NoticeHandler struct {
	notifier *notify.Service
}

func NewNoticeHandler(n *notify.Service) *NoticeHandler {
	return &NoticeHandler{notifier: n}
}

func (h *NoticeHandler) Current(c *gin.Context) {
	n := h.notifier.Current()
	c.JSON(http.StatusOK, gin.H{
		"message":  n.Message,
		"severity": n.Severity,
		"visible":  n.Visible,
	})
}
