package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"openskies/airfield/internal/common"
	"openskies/airfield/internal/metrics"
	"openskies/airfield/internal/models"
	"openskies/airfield/internal/store"
)

// ListAirportsHandler handles GET /airports
func ListAirportsHandler(airports *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeRecordJSON(w, http.StatusOK, airports.List())
	}
}

// ListAirportPageHandler handles GET /airports/pages?page=&pageSize=
//
// The page window widens with the page number (see store.Page); a
// missing or non-numeric page yields an empty array, not an error.
func ListAirportPageHandler(airports *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		pageSize := r.URL.Query().Get("pageSize")
		writeRecordJSON(w, http.StatusOK, airports.Page(page, pageSize))
	}
}

// GetAirportHandler handles GET /airports/{icao}
func GetAirportHandler(airports *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		icao := chi.URLParam(r, "icao")
		airport, err := airports.Find(icao)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				common.RespondError(w, initTime, nil, "Airport not found: "+icao, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to fetch airport", http.StatusInternalServerError)
			return
		}

		writeRecordJSON(w, http.StatusOK, airport)
	}
}

// CreateAirportHandler handles POST /airports
func CreateAirportHandler(airports *store.Store, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		record, ok := decodeAirport(w, r, initTime)
		if !ok {
			return
		}

		created := airports.Create(record)
		recordMutation(metricsReg, "create", airports)

		writeRecordJSON(w, http.StatusCreated, created)
	}
}

// UpdateAirportHandler handles PUT /airports/{icao}
//
// The submitted record replaces the first record matching the path
// parameter in place. The body may carry a different ICAO than the
// path; no consistency check is applied. A missing target is a no-op
// answered with 404.
func UpdateAirportHandler(airports *store.Store, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		icao := chi.URLParam(r, "icao")
		record, ok := decodeAirport(w, r, initTime)
		if !ok {
			return
		}

		updated, err := airports.Update(icao, record)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				common.RespondError(w, initTime, nil, "Airport not found: "+icao, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to update airport", http.StatusInternalServerError)
			return
		}
		recordMutation(metricsReg, "update", airports)

		writeRecordJSON(w, http.StatusOK, updated)
	}
}

// DeleteAirportHandler handles DELETE /airports/{icao}
func DeleteAirportHandler(airports *store.Store, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		icao := chi.URLParam(r, "icao")
		if _, err := airports.Delete(icao); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				common.RespondError(w, initTime, nil, "Airport not found: "+icao, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to delete airport", http.StatusInternalServerError)
			return
		}
		recordMutation(metricsReg, "delete", airports)

		w.WriteHeader(http.StatusNoContent)
	}
}

func decodeAirport(w http.ResponseWriter, r *http.Request, initTime time.Time) (models.Airport, bool) {
	var record models.Airport
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
		return models.Airport{}, false
	}

	if record.ICAO == "" {
		common.RespondError(w, initTime, nil, "ICAO is required", http.StatusBadRequest)
		return models.Airport{}, false
	}
	if record.Name == "" {
		common.RespondError(w, initTime, nil, "Name is required", http.StatusBadRequest)
		return models.Airport{}, false
	}

	return record, true
}

func recordMutation(metricsReg *metrics.MetricsRegistry, op string, airports *store.Store) {
	if metricsReg == nil {
		return
	}
	metricsReg.StoreMutationsTotal.WithLabelValues(op).Inc()
	metricsReg.StoreRecords.Set(float64(airports.Len()))
}
