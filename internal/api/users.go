package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"openskies/airfield/internal/auth"
	"openskies/airfield/internal/common"
	"openskies/airfield/internal/db/repositories"
	"openskies/airfield/internal/models/dtos"
)

// CreateUserHandler handles POST /users
func CreateUserHandler(users *repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateUserReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.Username == "" {
			common.RespondError(w, initTime, nil, "Username is required", http.StatusBadRequest)
			return
		}
		if req.Password == "" {
			common.RespondError(w, initTime, nil, "Password is required", http.StatusBadRequest)
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to hash password", http.StatusInternalServerError)
			return
		}

		user, err := users.Create(r.Context(), req.Username, hash)
		if err != nil {
			if errors.Is(err, repositories.ErrUsernameTaken) {
				common.RespondError(w, initTime, nil, "Username already taken", http.StatusConflict)
				return
			}
			common.RespondError(w, initTime, err, "Failed to create user", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "User created", dtos.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			CreatedAt: user.CreatedAt,
		}, http.StatusCreated)
	}
}

// GetUserHandler handles GET /users/{id}. The password hash never
// leaves the repository layer.
func GetUserHandler(users *repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id := chi.URLParam(r, "id")
		user, err := users.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				common.RespondError(w, initTime, nil, "User not found", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to fetch user", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "User found", dtos.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			CreatedAt: user.CreatedAt,
		})
	}
}
