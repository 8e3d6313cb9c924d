package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/nileshsn/shopeasy-api/internal/database"
	"github.com/nileshsn/shopeasy-api/internal/events"
	"github.com/nileshsn/shopeasy-api/internal/handlers"
	"github.com/nileshsn/shopeasy-api/internal/routes"
)

func main() {
	// --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// --- Database Connection ---
	db, err := database.OpenDB(os.Getenv("DB_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// --- Order Event Publisher (optional) ---
	// Checkout works without a broker; events are best-effort.
	var publisher *events.Publisher
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		exchange := os.Getenv("ORDER_EXCHANGE")
		if exchange == "" {
			exchange = "orders_exchange"
		}
		publisher, err = events.NewPublisher(url, exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		log.Printf("Order events will be published to exchange %q", exchange)
	} else {
		log.Println("RABBITMQ_URL not set, order events disabled")
	}

	// --- Application Setup ---
	// All dependencies are injected into the Handlers struct.
	app := &handlers.Handlers{
		DB:     db,
		Events: publisher,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting ShopEasy API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
