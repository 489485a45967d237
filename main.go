package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/database"
	"github.com/jaiohri/Portfolio/routes"
	"github.com/jaiohri/Portfolio/services"

	"github.com/joho/godotenv"
)

func main() {
	// Initialize the logging configuration
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	// Load the .env file; environment variables may also be set directly
	if err := godotenv.Load(); err != nil {
		config.Warning("no .env file loaded: %v", err)
	} else {
		config.Info("loaded .env file")
	}

	cfg := config.GetConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to the database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate the database: %v", err)
	}

	// Provision the configured admin account. This is the only admin
	// provisioning path; the interactive command is disabled.
	authService := services.NewAuthService(db, cfg)
	if cfg.AdminPassword == "" {
		config.Info("ADMIN_PASSWORD not set, skipping admin provisioning")
	} else if err := authService.EnsureAdminUser(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to provision admin account: %v", err)
	} else {
		config.Info("admin account %q is provisioned", cfg.AdminUsername)
	}

	r := routes.SetupRouter(db, cfg)

	config.Info("portfolio site listening on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
