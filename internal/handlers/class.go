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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ClassHandler struct {
	db *database.DB
}

func NewClassHandler(db *database.DB) *ClassHandler {
	return &ClassHandler{db: db}
}

// AddClass enregistre une classe soumise par un instructeur
func (h *ClassHandler) AddClass(c *gin.Context) {
	var input models.Class
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	if input.Status == "" {
		input.Status = "pending"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	input.ID = primitive.NewObjectID()
	if _, err := h.db.Classes().InsertOne(ctx, input); err != nil {
		log.Printf("❌ Erreur insertion classe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "Erreur base de données"})
		return
	}

	c.JSON(http.StatusOK, input)
}

// GetClasses liste les classes, filtrées par instructeur si ?email= est fourni
func (h *ClassHandler) GetClasses(c *gin.Context) {
	filter := bson.M{}
	if email := c.Query("email"); email != "" {
		filter["instructor_email"] = email
	}

	h.findClasses(c, filter, options.Find())
}

// GetTopClasses : les 6 classes les plus populaires (GET /classes)
func (h *ClassHandler) GetTopClasses(c *gin.Context) {
	opts := options.Find().
		SetSort(bson.D{{Key: "student_number", Value: -1}}).
		SetLimit(6)

	h.findClasses(c, bson.M{}, opts)
}

// GetAllClasses liste toutes les classes sans filtre (GET /allClasses)
func (h *ClassHandler) GetAllClasses(c *gin.Context) {
	h.findClasses(c, bson.M{}, options.Find())
}

func (h *ClassHandler) findClasses(c *gin.Context, filter bson.M, opts *options.FindOptions) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := h.db.Classes().Find(ctx, filter, opts)
	if err != nil {
		log.Printf("❌ Erreur lecture classes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "Erreur base de données"})
		return
	}

	classes := []models.Class{}
	if err := cursor.All(ctx, &classes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "Erreur décodage classes"})
		return
	}

	c.JSON(http.StatusOK, classes)
}

// Approve passe status=active (PATCH /users/adminApprove/:id)
func (h *ClassHandler) Approve(c *gin.Context) {
	h.setStatus(c, "active")
}

// Deny passe status=denied (PATCH /users/adminDenied/:id)
func (h *ClassHandler) Deny(c *gin.Context) {
	h.setStatus(c, "denied")
}

// setStatus : update partiel d'un seul champ, aucune machine à états —
// n'importe quel statut peut passer à n'importe quel autre
func (h *ClassHandler) setStatus(c *gin.Context, status string) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := h.db.Classes().UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		log.Printf("❌ Erreur update statut: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "Erreur base de données"})
		return
	}

	c.JSON(http.StatusOK, result)
}
