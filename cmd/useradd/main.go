package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"openskies/airfield/internal/auth"
	"openskies/airfield/internal/config"
	"openskies/airfield/internal/db"
	"openskies/airfield/internal/db/repositories"
)

// useradd registers a user directly against the database. Useful for
// bootstrapping the first account before the API is reachable.
func main() {
	username := flag.String("username", "", "username to register")
	password := flag.String("password", "", "plaintext password (hashed before storage)")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.InitPostgresORM(cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	repo := repositories.NewUserRepository(gormDB)
	user, err := repo.Create(context.Background(), *username, hash)
	if err != nil {
		log.Fatalf("failed to create user: %v", err)
	}

	fmt.Printf("created user %s (%s)\n", user.Username, user.ID)
}
