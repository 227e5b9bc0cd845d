package main

import (
	"context"
	"log"
	"os"
	"time"

	"marshal_back_end/internal/config"
	"marshal_back_end/internal/database"
	"marshal_back_end/internal/middleware"
	"marshal_back_end/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		log.Fatal("❌ ACCESS_TOKEN_SECRET manquant dans .env")
	}

	db, err := database.Connect(context.Background())
	if err != nil {
		log.Fatalf("❌ Échec initialisation base de données: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		db.Close(ctx)
	}()

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.APIRateLimit(db.Redis))
	routes.RegisterRoutes(r, db, []byte(secret))

	port := config.Env("PORT", "5000")
	log.Println("🚀 Serveur marshal lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Erreur serveur HTTP: %v", err)
	}
}
