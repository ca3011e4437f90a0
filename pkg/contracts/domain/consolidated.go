package domain

// ConsolidatedRecord is one row of the final denormalized table: an order
// joined with its item aggregate, customer, geolocation and state name.
// Left-join semantics apply throughout, so every pointer on the non-order
// side may be nil when the corresponding source had no match.
type ConsolidatedRecord struct {
	Order

	// From the item aggregation (nil when the order has no item rows).
	TotalProducts *int     `json:"total_products,omitempty"`
	TotalSales    *float64 `json:"total_sales,omitempty"`

	// From the customer source (nil when customer_id is unmatched).
	CustomerUniqueID      *string `json:"customer_unique_id,omitempty"`
	CustomerZipCodePrefix *string `json:"customer_zip_code_prefix,omitempty"`
	CustomerCity          *string `json:"customer_city,omitempty"`
	CustomerState         *string `json:"customer_state,omitempty"`

	// From the deduplicated geolocation lookup.
	GeolocationZipCodePrefix *string  `json:"geolocation_zip_code_prefix,omitempty"`
	GeolocationLat           *float64 `json:"geolocation_lat,omitempty"`
	GeolocationLng           *float64 `json:"geolocation_lng,omitempty"`
	GeolocationCity          *string  `json:"geolocation_city,omitempty"`
	GeolocationState         *string  `json:"geolocation_state,omitempty"`

	// From the state abbreviation mapping.
	Abbreviation *string `json:"abbreviation,omitempty"`
	StateName    *string `json:"state_name,omitempty"`
}
