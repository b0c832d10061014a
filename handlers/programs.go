package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"lifemoves/models"
	"lifemoves/services"
)

func (h *Handler) CreateProgram(c *gin.Context) {
	var program models.Program
	if err := c.ShouldBindJSON(&program); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if program.Weeks == 0 {
		program.Weeks = 4
	}
	program.Tier = services.NormalizeTier(program.Tier)

	id, err := h.store.CreateDocument(c.Request.Context(), "program", program)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) ListPrograms(c *gin.Context) {
	filter := bson.M{}
	if tier := c.Query("tier"); tier != "" {
		filter["tier"] = tier
	}

	docs, err := h.store.GetDocuments(c.Request.Context(), "program", filter, 0)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stripIDs(docs))
}

func (h *Handler) EnrollUser(c *gin.Context) {
	var enrollment models.Enrollment
	if err := c.ShouldBindJSON(&enrollment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.store.CreateDocument(c.Request.Context(), "enrollment", enrollment)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) ListEnrollments(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	docs, err := h.store.GetDocuments(c.Request.Context(), "enrollment", bson.M{"user_id": userID}, 0)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, normalizeIDs(docs))
}
