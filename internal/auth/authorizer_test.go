package auth

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"openskies/airfield/internal/db/repositories"
	gormModels "openskies/airfield/internal/models/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&gormModels.User{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func setupAuthorizer(t *testing.T) (*Authorizer, *repositories.UserRepository) {
	repo := repositories.NewUserRepository(setupTestDB(t))

	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if _, err := repo.Create(context.Background(), "amelia", hash); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	return NewAuthorizer(repo), repo
}

func TestAuthorizer_CorrectCredentials(t *testing.T) {
	authorizer, _ := setupAuthorizer(t)

	user, ok, err := authorizer.Authorize(context.Background(), "amelia", "correct-horse")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !ok {
		t.Fatal("Expected authorization to succeed")
	}
	if user == nil || user.Username != "amelia" {
		t.Errorf("Expected user amelia, got %+v", user)
	}
}

func TestAuthorizer_WrongPassword(t *testing.T) {
	authorizer, _ := setupAuthorizer(t)

	user, ok, err := authorizer.Authorize(context.Background(), "amelia", "wrong")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ok {
		t.Error("Expected authorization to fail")
	}
	if user != nil {
		t.Errorf("Expected no user on failure, got %+v", user)
	}
}

func TestAuthorizer_UnknownUser(t *testing.T) {
	authorizer, _ := setupAuthorizer(t)

	user, ok, err := authorizer.Authorize(context.Background(), "nobody", "correct-horse")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ok {
		t.Error("Expected authorization to fail for unknown user")
	}
	if user != nil {
		t.Errorf("Expected no user, got %+v", user)
	}
}
