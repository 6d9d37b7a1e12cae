package store

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"openskies/airfield/internal/common"
	"openskies/airfield/internal/models"
)

// ErrNotFound signals that no record matched the requested ICAO code.
var ErrNotFound = errors.New("airport not found")

// DefaultPageSize matches the original API contract.
const DefaultPageSize = 25

const lookupCacheTTL = 5 * time.Minute

// Persister receives a full snapshot of the collection after every
// mutation. Implementations must not block the caller.
type Persister interface {
	Enqueue(snapshot []models.Airport)
}

// Store owns the in-memory airport collection. The collection is the
// single source of truth during a run; the backing document is a
// point-in-time mirror maintained by the persister.
type Store struct {
	mu        sync.RWMutex
	airports  []models.Airport
	persister Persister
	cache     *common.CacheService
}

// NewStore creates a store over the given records. Both persister and
// cache may be nil.
func NewStore(airports []models.Airport, persister Persister, cache *common.CacheService) *Store {
	return &Store{
		airports:  airports,
		persister: persister,
		cache:     cache,
	}
}

// List returns a copy of the full ordered collection.
func (s *Store) List() []models.Airport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Airport, len(s.airports))
	copy(out, s.airports)
	return out
}

// Len returns the current number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.airports)
}

// Page returns the sub-sequence for the given query parameters.
//
// The window starts at (page-1)*size and spans up to page*size
// elements from there, so pages past the first are wider than a fixed
// window. This reproduces the arithmetic of the original API; callers
// relying on fixed 25-record pages should stick to page=1.
// A missing or non-numeric page yields an empty result.
func (s *Store) Page(pageParam, sizeParam string) []models.Airport {
	page, err := strconv.Atoi(pageParam)
	if err != nil {
		return []models.Airport{}
	}

	size := DefaultPageSize
	if sizeParam != "" {
		if parsed, err := strconv.Atoi(sizeParam); err == nil && parsed > 0 {
			size = parsed
		}
	}

	offset := (page - 1) * size
	if offset < 0 {
		return []models.Airport{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset >= len(s.airports) {
		return []models.Airport{}
	}

	end := offset + page*size
	if end > len(s.airports) {
		end = len(s.airports)
	}

	out := make([]models.Airport, end-offset)
	copy(out, s.airports[offset:end])
	return out
}

// Find returns the first record whose ICAO matches code. Lookups are
// linear over the collection, so hits are cached until the next
// mutation touching that code.
func (s *Store) Find(code string) (models.Airport, error) {
	if s.cache != nil {
		if cached, found := s.cache.Get(cacheKey(code)); found {
			if airport, ok := cached.(models.Airport); ok {
				return airport, nil
			}
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, airport := range s.airports {
		if airport.ICAO == code {
			if s.cache != nil {
				s.cache.Set(cacheKey(code), airport, lookupCacheTTL)
			}
			return airport, nil
		}
	}
	return models.Airport{}, ErrNotFound
}

// Create appends the record to the end of the collection. Duplicate
// ICAO codes are accepted; lookups keep returning the first match.
func (s *Store) Create(record models.Airport) models.Airport {
	s.mu.Lock()
	s.airports = append(s.airports, record)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.invalidate(record.ICAO)
	s.schedule(snapshot)
	return record
}

// Update replaces the first record matching code with the submitted
// record. The replacement may carry a different ICAO than the path
// parameter; no consistency check is applied. A missing code is a
// no-op signalled by ErrNotFound.
func (s *Store) Update(code string, record models.Airport) (models.Airport, error) {
	s.mu.Lock()
	idx := s.indexOfLocked(code)
	if idx < 0 {
		s.mu.Unlock()
		return models.Airport{}, ErrNotFound
	}
	s.airports[idx] = record
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.invalidate(code, record.ICAO)
	s.schedule(snapshot)
	return record, nil
}

// Delete removes the first record matching code and returns it.
func (s *Store) Delete(code string) (models.Airport, error) {
	s.mu.Lock()
	idx := s.indexOfLocked(code)
	if idx < 0 {
		s.mu.Unlock()
		return models.Airport{}, ErrNotFound
	}
	removed := s.airports[idx]
	s.airports = append(s.airports[:idx], s.airports[idx+1:]...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.invalidate(code)
	s.schedule(snapshot)
	return removed, nil
}

func (s *Store) indexOfLocked(code string) int {
	for i, airport := range s.airports {
		if airport.ICAO == code {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() []models.Airport {
	snapshot := make([]models.Airport, len(s.airports))
	copy(snapshot, s.airports)
	return snapshot
}

func (s *Store) schedule(snapshot []models.Airport) {
	if s.persister != nil {
		s.persister.Enqueue(snapshot)
	}
}

func (s *Store) invalidate(codes ...string) {
	if s.cache == nil {
		return
	}
	for _, code := range codes {
		s.cache.Delete(cacheKey(code))
	}
}

func cacheKey(code string) string {
	return "airport:icao:" + code
}
