package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vedseem-infohub/Yelo-Backend/routes"
	"github.com/vedseem-infohub/Yelo-Backend/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Info().Msg("Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init store
	s, client := initStore()
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, s)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Msgf("Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

// initStore connects to MongoDB and prepares the indexes the API relies on.
func initStore() (*store.Store, *mongo.Client) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = os.Getenv("MONGO_URI")
	}
	if uri == "" {
		log.Fatal().Msg("MONGODB_URI or MONGO_URI environment variable is required")
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "yelo"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, client, err := store.Connect(ctx, uri, dbName)
	if err != nil {
		log.Fatal().Err(err).Msg("DB connection failed")
	}
	log.Info().Str("db", dbName).Msg("Connected to MongoDB")

	if err := store.EnsureIndexes(context.Background(), client.Database(dbName)); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure indexes")
	}
	return s, client
}
