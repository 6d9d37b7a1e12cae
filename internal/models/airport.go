package models

// Airport is one record of the backing airports.json document.
// Field names match the mwgg/Airports dataset; icao doubles as the
// de facto primary key for lookups even though duplicates are never
// rejected at write time.
type Airport struct {
	ICAO      string  `json:"icao"`
	IATA      string  `json:"iata"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Country   string  `json:"country"`
	Elevation int     `json:"elevation"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	TZ        string  `json:"tz"`
}
