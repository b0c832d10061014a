package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"lifemoves/models"
)

func (h *Handler) SubmitTask(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if task.Completed == nil {
		done := true
		task.Completed = &done
	}

	id, err := h.store.CreateDocument(c.Request.Context(), "task", task)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) ListTasks(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	filter := bson.M{"user_id": userID}
	if week := c.Query("week"); week != "" {
		filter["week"] = week
	}

	tasks, err := h.store.GetDocuments(c.Request.Context(), "task", filter, 0)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, normalizeIDs(tasks))
}

func (h *Handler) CreateCheckin(c *gin.Context) {
	var checkin models.Checkin
	if err := c.ShouldBindJSON(&checkin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if checkin.Mood == "" {
		checkin.Mood = "ok"
	}
	if checkin.Date.IsZero() {
		checkin.Date = time.Now().UTC()
	}

	id, err := h.store.CreateDocument(c.Request.Context(), "checkin", checkin)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) ListCheckins(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	limit, ok := queryLimit(c, 30)
	if !ok {
		return
	}

	docs, err := h.store.GetDocuments(c.Request.Context(), "checkin", bson.M{"user_id": userID}, limit)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, normalizeIDs(docs))
}

// queryLimit parses an optional ?limit= parameter, writing the 400 response
// itself when the value is malformed.
func queryLimit(c *gin.Context, fallback int64) (int64, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return 0, false
	}
	return n, true
}
