package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"lifemoves/models"
)

func (h *Handler) CreateSquad(c *gin.Context) {
	var squad models.Squad
	if err := c.ShouldBindJSON(&squad); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if squad.Members == nil {
		squad.Members = []string{}
	}

	// The owner is always a member of their own squad
	found := false
	for _, m := range squad.Members {
		if m == squad.OwnerID {
			found = true
			break
		}
	}
	if !found {
		squad.Members = append(squad.Members, squad.OwnerID)
	}

	id, err := h.store.CreateDocument(c.Request.Context(), "squad", squad)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) ListSquads(c *gin.Context) {
	filter := bson.M{}
	if memberID := c.Query("member_id"); memberID != "" {
		filter["members"] = bson.M{"$in": []string{memberID}}
	}

	docs, err := h.store.GetDocuments(c.Request.Context(), "squad", filter, 0)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, normalizeIDs(docs))
}

func (h *Handler) CreatePost(c *gin.Context) {
	var post models.Post
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}

	id, err := h.store.CreateDocument(c.Request.Context(), "post", post)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) ListPosts(c *gin.Context) {
	filter := bson.M{}
	if squadID := c.Query("squad_id"); squadID != "" {
		filter["squad_id"] = squadID
	}
	if userID := c.Query("user_id"); userID != "" {
		filter["user_id"] = userID
	}

	limit, ok := queryLimit(c, 50)
	if !ok {
		return
	}

	docs, err := h.store.GetDocuments(c.Request.Context(), "post", filter, limit)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, normalizeIDs(docs))
}
