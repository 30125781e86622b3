package jsearch

import (
	"encoding/json"
	"net/http"
)

// Config defines JSearch API client settings.
type Config struct {
	APIKey     string
	BaseURL    string
	NumPages   int // result pages requested from the API per search
	HTTPClient *http.Client
}

// Client queries the JSearch job search API (RapidAPI).
type Client struct {
	apiKey     string
	baseURL    string
	host       string
	numPages   int
	httpClient *http.Client
}

type searchResponse struct {
	Status string    `json:"status"`
	Data   []Listing `json:"data"`
}

// Listing mirrors one raw JSearch result. Only the fields the mapper
// consumes are declared.
type Listing struct {
	JobID              string             `json:"job_id"`
	Title              string             `json:"job_title"`
	Employer           string             `json:"employer_name"`
	City               string             `json:"job_city"`
	State              string             `json:"job_state"`
	ApplyLink          string             `json:"job_apply_link"`
	RequiredExperience RequiredExperience `json:"job_required_experience"`
}

// RequiredExperience keeps the experience figure raw: the API returns it
// as a number, a quoted number, or null depending on the listing.
type RequiredExperience struct {
	Months json.RawMessage `json:"required_experience_in_months"`
}
