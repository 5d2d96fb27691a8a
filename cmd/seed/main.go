package main

import (
	"errors"
	"fmt"
	"os"

	"wealthdesk/internal/config"
	"wealthdesk/internal/database"
	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/logger"
	"wealthdesk/internal/models"
	"wealthdesk/internal/services"
)

// seed creates the initial advisor account so a fresh deployment can log in.
// Credentials come from SEED_EMAIL and SEED_PASSWORD; defaults are only
// meant for local development.
func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	if _, err := config.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	email := os.Getenv("SEED_EMAIL")
	if email == "" {
		email = "advisor@wealthdesk.local"
	}
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "changeme123"
	}

	userService := services.NewUserService(dbManager.DB())
	user, err := userService.CreateUser(email, password, models.RoleAdvisor)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			logger.Get().Infof("Advisor %s already exists, nothing to do", email)
			return nil
		}
		return fmt.Errorf("failed to create advisor: %w", err)
	}

	logger.Get().Infof("Created advisor %s (id %s)", user.Email, user.ID)
	return nil
}
