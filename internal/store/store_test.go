package store

import (
	"fmt"
	"testing"

	"openskies/airfield/internal/common"
	"openskies/airfield/internal/models"
)

func testAirports(n int) []models.Airport {
	airports := make([]models.Airport, 0, n)
	for i := 0; i < n; i++ {
		airports = append(airports, models.Airport{
			ICAO: fmt.Sprintf("K%03d", i),
			Name: fmt.Sprintf("Airport %d", i),
		})
	}
	return airports
}

func TestStore_List_ReturnsFullOrderedCollection(t *testing.T) {
	s := NewStore(testAirports(5), nil, nil)

	got := s.List()
	if len(got) != 5 {
		t.Fatalf("Expected 5 airports, got %d", len(got))
	}
	for i, airport := range got {
		want := fmt.Sprintf("K%03d", i)
		if airport.ICAO != want {
			t.Errorf("Expected %s at index %d, got %s", want, i, airport.ICAO)
		}
	}
}

func TestStore_List_ReturnsCopy(t *testing.T) {
	s := NewStore(testAirports(3), nil, nil)

	got := s.List()
	got[0].ICAO = "MUTATED"

	if s.List()[0].ICAO != "K000" {
		t.Error("Mutating the returned slice must not affect the store")
	}
}

func TestStore_Page_FirstPage(t *testing.T) {
	s := NewStore(testAirports(100), nil, nil)

	got := s.Page("1", "25")
	if len(got) != 25 {
		t.Fatalf("Expected 25 airports on page 1, got %d", len(got))
	}
	if got[0].ICAO != "K000" {
		t.Errorf("Expected first record K000, got %s", got[0].ICAO)
	}
	if got[24].ICAO != "K024" {
		t.Errorf("Expected last record K024, got %s", got[24].ICAO)
	}
}

func TestStore_Page_WideningWindow(t *testing.T) {
	// The window length is page*size counted from the offset, so page
	// 2 spans up to 50 records starting at offset 25.
	s := NewStore(testAirports(100), nil, nil)

	got := s.Page("2", "25")
	if len(got) != 50 {
		t.Fatalf("Expected 50 airports on page 2, got %d", len(got))
	}
	if got[0].ICAO != "K025" {
		t.Errorf("Expected first record K025, got %s", got[0].ICAO)
	}
	if got[49].ICAO != "K074" {
		t.Errorf("Expected last record K074, got %s", got[49].ICAO)
	}
}

func TestStore_Page_WindowClampedToCollection(t *testing.T) {
	s := NewStore(testAirports(30), nil, nil)

	got := s.Page("2", "25")
	if len(got) != 5 {
		t.Fatalf("Expected 5 airports, got %d", len(got))
	}
	if got[0].ICAO != "K025" {
		t.Errorf("Expected first record K025, got %s", got[0].ICAO)
	}
}

func TestStore_Page_DefaultPageSize(t *testing.T) {
	s := NewStore(testAirports(100), nil, nil)

	got := s.Page("1", "")
	if len(got) != DefaultPageSize {
		t.Fatalf("Expected %d airports, got %d", DefaultPageSize, len(got))
	}
}

func TestStore_Page_DegenerateInputs(t *testing.T) {
	s := NewStore(testAirports(50), nil, nil)

	cases := []struct {
		name string
		page string
		size string
	}{
		{"missing page", "", "25"},
		{"non-numeric page", "abc", "25"},
		{"page zero", "0", "25"},
		{"negative page", "-1", "25"},
		{"out of range page", "99", "25"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Page(tc.page, tc.size)
			if len(got) != 0 {
				t.Errorf("Expected empty result, got %d records", len(got))
			}
		})
	}
}

func TestStore_Find_ReturnsFirstMatch(t *testing.T) {
	airports := testAirports(10)
	// Duplicate ICAO: the first one wins
	airports = append(airports, models.Airport{ICAO: "K003", Name: "Duplicate"})
	s := NewStore(airports, nil, nil)

	got, err := s.Find("K003")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Name != "Airport 3" {
		t.Errorf("Expected first match 'Airport 3', got %q", got.Name)
	}
}

func TestStore_Find_NotFound(t *testing.T) {
	s := NewStore(testAirports(5), nil, nil)

	if _, err := s.Find("ZZZZ"); err != ErrNotFound {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestStore_Find_UsesLookupCache(t *testing.T) {
	cache := common.NewCacheService(60, 600)
	s := NewStore(testAirports(5), nil, cache)

	if _, err := s.Find("K002"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, found := cache.Get("airport:icao:K002"); !found {
		t.Error("Expected lookup to populate the cache")
	}
}

func TestStore_Create_AppendsAtEnd(t *testing.T) {
	s := NewStore(testAirports(5), nil, nil)

	record := models.Airport{ICAO: "EGLL", Name: "Heathrow"}
	s.Create(record)

	got := s.List()
	if len(got) != 6 {
		t.Fatalf("Expected 6 airports, got %d", len(got))
	}
	if got[5] != record {
		t.Errorf("Expected last element %+v, got %+v", record, got[5])
	}
}

func TestStore_Create_AllowsDuplicateICAO(t *testing.T) {
	s := NewStore(testAirports(5), nil, nil)

	s.Create(models.Airport{ICAO: "K001", Name: "Duplicate"})

	if s.Len() != 6 {
		t.Fatalf("Expected 6 airports, got %d", s.Len())
	}

	got, err := s.Find("K001")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Name != "Airport 1" {
		t.Errorf("Lookup must still return the first match, got %q", got.Name)
	}
}

func TestStore_Update_ReplacesInPlace(t *testing.T) {
	s := NewStore(testAirports(5), nil, nil)

	record := models.Airport{ICAO: "K002", Name: "Renamed"}
	updated, err := s.Update("K002", record)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated != record {
		t.Errorf("Expected submitted record back, got %+v", updated)
	}

	got := s.List()
	if len(got) != 5 {
		t.Fatalf("Expected length unchanged at 5, got %d", len(got))
	}
	if got[2].Name != "Renamed" {
		t.Errorf("Expected record replaced at index 2, got %q", got[2].Name)
	}
}

func TestStore_Update_MayChangeICAO(t *testing.T) {
	s := NewStore(testAirports(5), nil, nil)

	if _, err := s.Update("K002", models.Airport{ICAO: "EGLL", Name: "Heathrow"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := s.Find("K002"); err != ErrNotFound {
		t.Error("Expected old ICAO to be gone after replacement")
	}
	if _, err := s.Find("EGLL"); err != nil {
		t.Errorf("Expected new ICAO to be present, got %v", err)
	}
}

func TestStore_Update_MissingIsNoOp(t *testing.T) {
	s := NewStore(testAirports(5), nil, nil)

	_, err := s.Update("ZZZZ", models.Airport{ICAO: "ZZZZ", Name: "Nowhere"})
	if err != ErrNotFound {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if s.Len() != 5 {
		t.Errorf("Expected collection untouched, got %d records", s.Len())
	}
}

func TestStore_Update_InvalidatesLookupCache(t *testing.T) {
	cache := common.NewCacheService(60, 600)
	s := NewStore(testAirports(5), nil, cache)

	if _, err := s.Find("K002"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := s.Update("K002", models.Airport{ICAO: "K002", Name: "Renamed"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, err := s.Find("K002")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Name != "Renamed" {
		t.Errorf("Expected updated record after invalidation, got %q", got.Name)
	}
}

func TestStore_Delete_RemovesFirstMatch(t *testing.T) {
	s := NewStore(testAirports(5), nil, nil)

	removed, err := s.Delete("K003")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if removed.Name != "Airport 3" {
		t.Errorf("Expected removed record 'Airport 3', got %q", removed.Name)
	}
	if s.Len() != 4 {
		t.Fatalf("Expected 4 airports, got %d", s.Len())
	}
	if _, err := s.Find("K003"); err != ErrNotFound {
		t.Error("Expected K003 to be gone")
	}
}

func TestStore_Delete_NotFound(t *testing.T) {
	s := NewStore(testAirports(5), nil, nil)

	if _, err := s.Delete("ZZZZ"); err != ErrNotFound {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if s.Len() != 5 {
		t.Errorf("Expected collection untouched, got %d records", s.Len())
	}
}

type capturingPersister struct {
	snapshots [][]models.Airport
}

func (p *capturingPersister) Enqueue(snapshot []models.Airport) {
	p.snapshots = append(p.snapshots, snapshot)
}

func TestStore_MutationsSchedulePersistence(t *testing.T) {
	p := &capturingPersister{}
	s := NewStore(testAirports(3), p, nil)

	s.Create(models.Airport{ICAO: "EGLL", Name: "Heathrow"})
	if _, err := s.Update("EGLL", models.Airport{ICAO: "EGLL", Name: "London Heathrow"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := s.Delete("K000"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(p.snapshots) != 3 {
		t.Fatalf("Expected 3 snapshots, got %d", len(p.snapshots))
	}
	last := p.snapshots[2]
	if len(last) != 3 {
		t.Fatalf("Expected final snapshot of 3 records, got %d", len(last))
	}
	if last[2].Name != "London Heathrow" {
		t.Errorf("Expected snapshot to reflect the update, got %q", last[2].Name)
	}
}

func TestStore_Read_MissesDoNotSchedulePersistence(t *testing.T) {
	p := &capturingPersister{}
	s := NewStore(testAirports(3), p, nil)

	s.List()
	s.Page("1", "2")
	if _, err := s.Find("K001"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(p.snapshots) != 0 {
		t.Errorf("Expected no snapshots from reads, got %d", len(p.snapshots))
	}
}
