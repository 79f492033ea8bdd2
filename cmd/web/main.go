package main

import (
	"log"
	"os"

	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"

	"github.com/ebarbosa/loja-virtual/internal/database"
	"github.com/ebarbosa/loja-virtual/internal/handlers"
	"github.com/ebarbosa/loja-virtual/internal/routes"
)

func main() {
	// --- Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// --- Database Connection ---
	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// --- Session Store ---
	// The signing secret should come from the environment; the fallback
	// only exists so a development checkout runs out of the box.
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Println("WARNING: SESSION_SECRET is not set, using the development fallback.")
		secret = "loja-virtual-dev-secret"
	}
	store := sessions.NewCookieStore([]byte(secret))

	// --- Application Setup ---
	app := handlers.New(db, store)
	if !app.EnsureTables() {
		log.Fatal("Failed to bootstrap database tables")
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app, "internal/view/templates/*.html")

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting loja-virtual server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
