package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"lifemoves/models"
	"lifemoves/services"
)

func (h *Handler) Signup(c *gin.Context) {
	var input models.SignupRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	// Uniqueness is a query-before-insert convention, not a store
	// constraint; two simultaneous signups can still race.
	existing, err := h.store.GetDocuments(ctx, "user", bson.M{"email": input.Email}, 1)
	if err != nil {
		storeError(c, err)
		return
	}
	if len(existing) > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Plan:         services.TierFree,
		Preferences:  map[string]any{},
	}

	id, err := h.store.CreateDocument(ctx, "user", user)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	docs, err := h.store.GetDocuments(ctx, "user", bson.M{"email": input.Email}, 1)
	if err != nil {
		storeError(c, err)
		return
	}
	if len(docs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	u := docs[0]

	hash, _ := u["password_hash"].(string)
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	oid, ok := u["_id"].(primitive.ObjectID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Malformed user record"})
		return
	}

	token, err := h.generateToken(oid.Hex(), input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	if err := h.store.SetField(ctx, "user", oid, "session_token", token); err != nil {
		storeError(c, err)
		return
	}

	name, _ := u["name"].(string)
	plan, _ := u["plan"].(string)
	if plan == "" {
		plan = services.TierFree
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": models.LoginUser{
			ID:    oid.Hex(),
			Name:  name,
			Email: input.Email,
			Plan:  plan,
		},
	})
}

func (h *Handler) generateToken(id, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": id,
		"email":   email,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(),
	})
	return token.SignedString([]byte(h.cfg.JWTSecret))
}
