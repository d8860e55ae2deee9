package main

import (
	"log"

	"github.com/joho/godotenv"

	corecmd "github.com/avolkhin/complaintbot/core/cmd"
	"github.com/avolkhin/complaintbot/internal/app"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println(".env file loaded")
	}

	if err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config/config.yaml",
		LoadConfig:        app.LoadConfig,
		Bootstrap:         app.Bootstrap,
	}); err != nil {
		log.Fatalf("complaintbot: %v", err)
	}
}
