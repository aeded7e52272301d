package main

import (
	"context"
	"os"
	"time"

	firebase "firebase.google.com/go"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/Ezequielp19/sistema-ventas/auth"
	"github.com/Ezequielp19/sistema-ventas/blob"
	catalogcontroller "github.com/Ezequielp19/sistema-ventas/controllers/catalog"
	"github.com/Ezequielp19/sistema-ventas/database"
	"github.com/Ezequielp19/sistema-ventas/routes"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	ctx := context.Background()

	app := initFirebase(ctx, log)

	if err := auth.Init(ctx, app); err != nil {
		log.Fatal().Err(err).Msg("❌ Firebase auth init failed")
	}

	store, err := database.NewClient(ctx, app, log)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Database client init failed")
	}

	uploads, err := blob.NewUploader(ctx, app, os.Getenv("FIREBASE_STORAGE_BUCKET"), log)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Storage uploader init failed")
	}

	hub := catalogcontroller.NewHub(store, 5*time.Second, log)

	// Gin setup
	r := gin.Default()
	r.MaxMultipartMemory = 32 << 20 // product images are capped well below this

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, store, uploads, hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Msg("🚀 Server running")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to start server")
	}
}

// initFirebase builds the shared firebase app: Realtime Database,
// Storage bucket, and auth all hang off it.
func initFirebase(ctx context.Context, log zerolog.Logger) *firebase.App {
	config := &firebase.Config{
		DatabaseURL:   os.Getenv("FIREBASE_DATABASE_URL"),
		StorageBucket: os.Getenv("FIREBASE_STORAGE_BUCKET"),
		ProjectID:     os.Getenv("FIREBASE_PROJECT_ID"),
	}

	var opts []option.ClientOption
	if credFile := os.Getenv("FIREBASE_CREDENTIALS_FILE"); credFile != "" {
		opts = append(opts, option.WithCredentialsFile(credFile))
	}

	app, err := firebase.NewApp(ctx, config, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Firebase init failed")
	}
	return app
}
