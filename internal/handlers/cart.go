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
)

type CartHandler struct {
	db *database.DB
}

func NewCartHandler(db *database.DB) *CartHandler {
	return &CartHandler{db: db}
}

// GetCart liste le panier du caller (GET /carts?user_email=).
// L'email demandé doit correspondre à l'identité vérifiée du token.
func (h *CartHandler) GetCart(c *gin.Context) {
	userEmail := c.Query("user_email")
	if userEmail == "" {
		// Pas encore loggé côté UI : panier vide, pas une erreur
		c.JSON(http.StatusOK, []models.CartItem{})
		return
	}

	if c.GetString("email") != userEmail {
		c.JSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := h.db.Carts().Find(ctx, bson.M{"user_email": userEmail})
	if err != nil {
		log.Printf("❌ Erreur lecture panier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "Erreur base de données"})
		return
	}

	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "Erreur décodage panier"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// AddToCart insère un item — la classe référencée n'est pas vérifiée
func (h *CartHandler) AddToCart(c *gin.Context) {
	var input models.CartItem
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	input.ID = primitive.NewObjectID()
	if _, err := h.db.Carts().InsertOne(ctx, input); err != nil {
		log.Printf("❌ Erreur insertion panier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "Erreur base de données"})
		return
	}

	c.JSON(http.StatusOK, input)
}

// RemoveFromCart supprime un item par id (DELETE /carts/:id)
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := h.db.Carts().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		log.Printf("❌ Erreur suppression panier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "Erreur base de données"})
		return
	}

	c.JSON(http.StatusOK, result)
}
