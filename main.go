package main

import (
	"log"

	"github.com/gobmi/models"
	"github.com/gobmi/server"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, the environment may already be set
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded:", err)
	}

	cfg := models.LoadConfig()

	if err := server.Serve(cfg); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
