package handlers

import (
	"log"
	"net/http"

	"marshal_back_end/internal/models"
	"marshal_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	secret []byte
}

func NewAuthHandler(secret []byte) *AuthHandler {
	return &AuthHandler{secret: secret}
}

// Health répond au liveness check de la racine
func Health(c *gin.Context) {
	c.String(http.StatusOK, "boss is sitting")
}

// CreateToken signe un token pour le payload reçu (POST /jwt).
// Le frontend appelle cet endpoint juste après le login côté client.
func (h *AuthHandler) CreateToken(c *gin.Context) {
	var input models.TokenRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "email requis"})
		return
	}

	token, err := utils.GenerateJWT(input.Email, h.secret)
	if err != nil {
		log.Printf("❌ Erreur signature JWT: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
