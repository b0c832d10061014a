package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"name": h.cfg.AppName, "status": "ok"})
}

// TestDatabase reports store connectivity without ever failing the request,
// so it stays usable as a deploy-time diagnostic.
func (h *Handler) TestDatabase(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      h.cfg.DatabaseURL != "",
		"database_name":     h.cfg.DatabaseName != "",
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.store.Available() {
		resp["database"] = "available"
		resp["connection_status"] = "connected"

		ctx := c.Request.Context()
		if err := h.store.Ping(ctx); err != nil {
			resp["database"] = fmt.Sprintf("connected but error: %.80v", err)
		} else if names, err := h.store.CollectionNames(ctx); err == nil {
			if len(names) > 10 {
				names = names[:10]
			}
			resp["collections"] = names
			resp["database"] = "connected and working"
		}
	}

	c.JSON(http.StatusOK, resp)
}
