package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const databaseName = "marshalDb"

// DB regroupe les connexions partagées par tous les handlers.
// Construit une seule fois au démarrage puis injecté — pas de variable globale.
type DB struct {
	Client *mongo.Client
	Mongo  *mongo.Database
	Redis  *redis.Client
}

// =============================================
// MONGODB (collections users / classes / carts)
// =============================================

// Connect établit la connexion MongoDB et Redis au démarrage du process
func Connect(ctx context.Context) (*DB, error) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		// URI Atlas reconstruite depuis les identifiants, comme en production
		uri = fmt.Sprintf("mongodb+srv://%s:%s@cluster0.nx8jou2.mongodb.net/?retryWrites=true&w=majority",
			os.Getenv("DB_USER"), os.Getenv("DB_PASS"))
	}

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("échec connexion MongoDB: %w", err)
	}

	// Ping pour confirmer que le cluster répond vraiment
	if err := client.Database("admin").RunCommand(connectCtx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return nil, fmt.Errorf("échec ping MongoDB: %w", err)
	}
	log.Println("✅ Connecté à MongoDB")

	db := &DB{
		Client: client,
		Mongo:  client.Database(databaseName),
	}
	db.connectRedis(connectCtx)

	return db, nil
}

// Close ferme proprement les connexions à l'arrêt du serveur
func (db *DB) Close(ctx context.Context) {
	if db.Redis != nil {
		if err := db.Redis.Close(); err != nil {
			log.Printf("⚠️  Erreur fermeture Redis: %v", err)
		}
	}
	if err := db.Client.Disconnect(ctx); err != nil {
		log.Printf("⚠️  Erreur déconnexion MongoDB: %v", err)
	}
	log.Println("🔌 Connexions fermées")
}

// --- Accès facilité aux collections ---

func (db *DB) Users() *mongo.Collection {
	return db.Mongo.Collection("users")
}

func (db *DB) Classes() *mongo.Collection {
	return db.Mongo.Collection("classes")
}

func (db *DB) Carts() *mongo.Collection {
	return db.Mongo.Collection("carts")
}

// =============================================
// REDIS (rate limiting uniquement)
// =============================================
func (db *DB) connectRedis(ctx context.Context) {
	addr := os.Getenv("REDIS_HOST")
	if addr == "" {
		// Pas de Redis configuré : le rate limiting est simplement désactivé
		log.Println("⚠️  REDIS_HOST absent — rate limiting désactivé")
		return
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Erreur connexion Redis: %v — rate limiting désactivé", err)
		return
	}

	db.Redis = rdb
	log.Println("✅ Connecté à Redis")
}
