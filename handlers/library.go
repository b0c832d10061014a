package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"lifemoves/models"
	"lifemoves/services"
)

func (h *Handler) AddContent(c *gin.Context) {
	var item models.ContentItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if item.Category == "" {
		item.Category = "mindfulness"
	}
	item.Tier = services.NormalizeTier(item.Tier)
	if item.Tags == nil {
		item.Tags = []string{}
	}

	id, err := h.store.CreateDocument(c.Request.Context(), "contentitem", item)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) ListContent(c *gin.Context) {
	filter := bson.M{}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}
	if tier := c.Query("tier"); tier != "" {
		filter["tier"] = tier
	}

	items, err := h.store.GetDocuments(c.Request.Context(), "contentitem", filter, 0)
	if err != nil {
		storeError(c, err)
		return
	}

	// Substring search runs in memory; there is no text index to push
	// it down to.
	if q := strings.ToLower(c.Query("q")); q != "" {
		matched := items[:0]
		for _, item := range items {
			title, _ := item["title"].(string)
			desc, _ := item["description"].(string)
			if strings.Contains(strings.ToLower(title), q) ||
				strings.Contains(strings.ToLower(desc), q) {
				matched = append(matched, item)
			}
		}
		items = matched
	}

	c.JSON(http.StatusOK, stripIDs(items))
}
