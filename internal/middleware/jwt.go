package middleware

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthRequired vérifie le bearer token avant d'atteindre le handler.
// Le secret est injecté au démarrage plutôt que lu depuis l'environnement
// à chaque requête.
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			log.Println("❌ Pas de header Authorization")
			c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized, no token"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Printf("❌ Format Authorization invalide: %v parties", len(parts))
			c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized, no token"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
			}
			return secret, nil
		})

		if err != nil {
			log.Printf("❌ Erreur parsing JWT: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			log.Println("❌ Claims invalides")
			c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			c.Abort()
			return
		}

		// Vérifier l'expiration
		if exp, ok := claims["exp"].(float64); ok {
			if time.Now().Unix() > int64(exp) {
				log.Println("❌ Token expiré")
				c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
				c.Abort()
				return
			}
		}

		email, ok := claims["email"].(string)
		if !ok || email == "" {
			log.Printf("❌ email manquant dans claims: %+v", claims)
			c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			c.Abort()
			return
		}

		// ✅ Identité vérifiée mise dans le context Gin pour les handlers
		c.Set("email", email)
		c.Next()
	}
}
