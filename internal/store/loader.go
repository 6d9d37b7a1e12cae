package store

import (
	"encoding/json"
	"fmt"
	"os"

	"openskies/airfield/internal/models"
)

// LoadFile reads the backing airports document once at startup.
// Expected format: a JSON array of airport objects.
func LoadFile(path string) ([]models.Airport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read airports file: %w", err)
	}

	var airports []models.Airport
	if err := json.Unmarshal(data, &airports); err != nil {
		return nil, fmt.Errorf("failed to decode airports file: %w", err)
	}

	return airports, nil
}
