package routes

import (
	"marshal_back_end/internal/database"
	"marshal_back_end/internal/handlers"
	"marshal_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, db *database.DB, secret []byte) {
	authHandler := handlers.NewAuthHandler(secret)
	userHandler := handlers.NewUserHandler(db)
	classHandler := handlers.NewClassHandler(db)
	cartHandler := handlers.NewCartHandler(db)

	auth := middleware.AuthRequired(secret)

	// Liveness + token
	r.GET("/", handlers.Health)
	r.POST("/jwt", authHandler.CreateToken)

	// Users
	r.GET("/users", userHandler.GetUsers)
	r.POST("/users", userHandler.CreateUser)
	r.GET("/users/admin/:email", auth, userHandler.CheckAdmin)
	r.GET("/users/instructor/:email", auth, userHandler.CheckInstructor)
	// ⚠️ Mutations volontairement non protégées — contrat hérité du frontend
	r.PATCH("/users/admin/:id", userHandler.MakeAdmin)
	r.PATCH("/users/instructor/:id", userHandler.MakeInstructor)
	r.PATCH("/users/adminApprove/:id", classHandler.Approve)
	r.PATCH("/users/adminDenied/:id", classHandler.Deny)

	// Classes
	r.POST("/addClass", classHandler.AddClass)
	r.GET("/addClass", classHandler.GetClasses)
	r.GET("/classes", classHandler.GetTopClasses)
	r.GET("/allClasses", classHandler.GetAllClasses)

	// Carts
	r.GET("/carts", auth, cartHandler.GetCart)
	r.POST("/carts", cartHandler.AddToCart)
	r.DELETE("/carts/:id", cartHandler.RemoveFromCart)
}
