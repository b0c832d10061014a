package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"lifemoves/config"
	"lifemoves/db"
	"lifemoves/middleware"
)

// DocumentStore is the slice of the db adapter the handlers need.
// Satisfied by *db.Store; tests substitute an in-memory implementation.
type DocumentStore interface {
	Available() bool
	CreateDocument(ctx context.Context, collection string, doc any) (string, error)
	GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	SetField(ctx context.Context, collection string, id primitive.ObjectID, field string, value any) error
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
}

type Handler struct {
	store DocumentStore
	cfg   config.Config
}

func New(store DocumentStore, cfg config.Config) *Handler {
	return &Handler{store: store, cfg: cfg}
}

// Register wires the route table onto r.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/test", h.TestDatabase)

	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)

	// Admin writes only; a no-op guard unless AUTH_ENABLED
	admin := middleware.AuthRequired(h.cfg)

	r.GET("/library", h.ListContent)
	r.POST("/library", admin, h.AddContent)

	r.POST("/tasks", h.SubmitTask)
	r.GET("/tasks", h.ListTasks)

	r.POST("/checkins", h.CreateCheckin)
	r.GET("/checkins", h.ListCheckins)

	r.POST("/squads", h.CreateSquad)
	r.GET("/squads", h.ListSquads)

	r.POST("/posts", h.CreatePost)
	r.GET("/posts", h.ListPosts)

	r.POST("/programs", admin, h.CreateProgram)
	r.GET("/programs", h.ListPrograms)

	r.POST("/enroll", h.EnrollUser)
	r.GET("/enrollments", h.ListEnrollments)

	r.POST("/feedback", h.SubmitFeedback)
}

// stripIDs removes the store identifier from every document, for list views
// that expose no identifier at all.
func stripIDs(docs []bson.M) []bson.M {
	for _, d := range docs {
		delete(d, "_id")
	}
	if docs == nil {
		docs = []bson.M{}
	}
	return docs
}

// normalizeIDs replaces the store identifier with its hex string under "id".
func normalizeIDs(docs []bson.M) []bson.M {
	for _, d := range docs {
		if oid, ok := d["_id"].(primitive.ObjectID); ok {
			d["id"] = oid.Hex()
		}
		delete(d, "_id")
	}
	if docs == nil {
		docs = []bson.M{}
	}
	return docs
}

// storeError maps adapter failures to a response. Validation, not-found and
// conflict cases are handled at each call site.
func storeError(c *gin.Context, err error) {
	if errors.Is(err, db.ErrUnavailable) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database unavailable"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
}
