package domain

// Customer represents one customer-order association. CustomerID is unique
// per order usage while CustomerUniqueID identifies the person behind it.
// ZipCodePrefix is deliberately a string: prefixes carry leading zeros and
// must never be treated as numbers.
type Customer struct {
	CustomerID       string `json:"customer_id"`
	CustomerUniqueID string `json:"customer_unique_id"`
	ZipCodePrefix    string `json:"customer_zip_code_prefix"`
	City             string `json:"customer_city"`
	State            string `json:"customer_state"`
}

// Geolocation represents one raw lat/lng sample for a postal code prefix.
// The raw source holds many samples per prefix; the deduplication stage
// reduces it to one row per prefix before it is used as a join lookup.
type Geolocation struct {
	ZipCodePrefix string  `json:"geolocation_zip_code_prefix"`
	Lat           float64 `json:"geolocation_lat"`
	Lng           float64 `json:"geolocation_lng"`
	City          string  `json:"geolocation_city"`
	State         string  `json:"geolocation_state"`
}

// StateAbbreviation maps a two-letter state code to its full name.
type StateAbbreviation struct {
	Abbreviation string `json:"abbreviation"`
	StateName    string `json:"state_name"`
}
