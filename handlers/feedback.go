package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lifemoves/models"
	"lifemoves/services"
)

func (h *Handler) SubmitFeedback(c *gin.Context) {
	var fb models.Feedback
	if err := c.ShouldBindJSON(&fb); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.store.CreateDocument(c.Request.Context(), "feedback", fb)
	if err != nil {
		storeError(c, err)
		return
	}

	// Fire-and-forget notification, never blocks the response
	go services.SendFeedbackEmail(h.cfg.SendGridAPIKey, h.cfg.FeedbackEmail, fb)

	c.JSON(http.StatusCreated, gin.H{"id": id})
}
