package main

import (
	"fmt"
	"os"

	"work-tracker/internal/config"
	"work-tracker/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
	cfg *config.Config
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment, cfg *config.Config) *RepositoryFactory {
	return &RepositoryFactory{env: env, cfg: cfg}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository() (sqlite.Repository, error) {
	switch rf.env {
	case Development:
		return rf.open("wt.db")
	case Testing:
		return rf.open(":memory:")
	default:
		return rf.createProductionRepository()
	}
}

// createProductionRepository opens the configured database location,
// creating the directory if needed
func (rf *RepositoryFactory) createProductionRepository() (sqlite.Repository, error) {
	if err := os.MkdirAll(rf.cfg.Database.Dir, os.FileMode(rf.cfg.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	return rf.open(rf.cfg.GetDatabasePath())
}

func (rf *RepositoryFactory) open(dbPath string) (sqlite.Repository, error) {
	repo, err := sqlite.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repo, nil
}

// getEnvironment determines the current environment
func getEnvironment() Environment {
	switch os.Getenv("WT_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		return Production
	}
}
