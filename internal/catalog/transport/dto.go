package transport

// PropertyResponse represents a property listing in API responses.
type PropertyResponse struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Location  string  `json:"location"`
	Price     int64   `json:"price"`
	Category  string  `json:"category"`
	Type      string  `json:"type"`
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	Area      float64 `json:"area"`
}
