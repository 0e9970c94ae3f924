package main

import (
	"log"
	"time"

	"ticket_reseller/config"
	"ticket_reseller/handler"
	"ticket_reseller/router"
	"ticket_reseller/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	allowOrigins := config.Config("CORS_ORIGINS")
	if allowOrigins == "" {
		allowOrigins = "http://localhost:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Authorization, Accept",
	}))

	// SEED pins the demo fixtures for repeatable local runs.
	seed := config.ConfigInt64("SEED", time.Now().UnixNano())
	s := store.New(seed)

	router.SetupRoutes(app, handler.NewHandler(s))

	port := config.Config("PORT")
	if port == "" {
		port = "8002"
	}
	log.Fatal(app.Listen(":" + port))
}
