package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"marshal_back_end/internal/database"
	"marshal_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserHandler struct {
	db *database.DB
}

func NewUserHandler(db *database.DB) *UserHandler {
	return &UserHandler{db: db}
}

// GetUsers liste tous les utilisateurs
func (h *UserHandler) GetUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := h.db.Users().Find(ctx, bson.M{})
	if err != nil {
		log.Printf("❌ Erreur lecture users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "Erreur base de données"})
		return
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "Erreur décodage users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// CreateUser enregistre un utilisateur — idempotent sur l'email
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input models.User
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// email déjà pris ?
	var existing models.User
	err := h.db.Users().FindOne(ctx, bson.M{"email": input.Email}).Decode(&existing)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exist"})
		return
	}
	if err != mongo.ErrNoDocuments {
		log.Printf("❌ Erreur lecture user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "Erreur base de données"})
		return
	}

	input.ID = primitive.NewObjectID()
	if _, err := h.db.Users().InsertOne(ctx, input); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusOK, gin.H{"message": "user already exist"})
			return
		}
		log.Printf("❌ Erreur insertion user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "Erreur base de données"})
		return
	}

	c.JSON(http.StatusOK, input)
}

// CheckAdmin répond {admin:bool} — uniquement pour l'email du token
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	h.checkRole(c, "admin")
}

// CheckInstructor répond {instructor:bool} — uniquement pour l'email du token
func (h *UserHandler) CheckInstructor(c *gin.Context) {
	h.checkRole(c, "instructor")
}

func (h *UserHandler) checkRole(c *gin.Context, role string) {
	email := c.Param("email")

	// Un caller ne peut pas sonder le rôle d'un autre compte :
	// mismatch = réponse négative, jamais une erreur
	if c.GetString("email") != email {
		c.JSON(http.StatusOK, gin.H{role: false})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var u models.User
	err := h.db.Users().FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// pas de document = pas de rôle
			c.JSON(http.StatusOK, gin.H{role: false})
			return
		}
		log.Printf("❌ Erreur lecture user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "Erreur base de données"})
		return
	}

	c.JSON(http.StatusOK, gin.H{role: u.Role == role})
}

// MakeAdmin passe role=admin (PATCH /users/admin/:id)
func (h *UserHandler) MakeAdmin(c *gin.Context) {
	h.setRole(c, "admin")
}

// MakeInstructor passe role=instructor (PATCH /users/instructor/:id)
func (h *UserHandler) MakeInstructor(c *gin.Context) {
	h.setRole(c, "instructor")
}

func (h *UserHandler) setRole(c *gin.Context, role string) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := h.db.Users().UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		log.Printf("❌ Erreur update role: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "Erreur base de données"})
		return
	}

	// Résultat du driver relayé tel quel (matched/modified)
	c.JSON(http.StatusOK, result)
}
