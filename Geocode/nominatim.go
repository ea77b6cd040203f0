package Geocode

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Endpoint is the Nominatim reverse geocoding URL. Overridable in tests.
var Endpoint = "https://nominatim.openstreetmap.org/reverse"

var client = &http.Client{Timeout: 10 * time.Second}

type Place struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

type nominatimResponse struct {
	Address struct {
		Country string `json:"country"`
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		State   string `json:"state"`
	} `json:"address"`
}

// Reverse looks up the country and city for a coordinate pair. City falls back
// through town, village and state when the address has no city entry.
func Reverse(lat, lon string) (Place, error) {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("lat", lat)
	params.Set("lon", lon)
	params.Set("zoom", "10")

	req, err := http.NewRequest(http.MethodGet, Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return Place{}, err
	}
	req.Header.Set("User-Agent", "Skycast/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return Place{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var result nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Place{}, err
	}

	addr := result.Address
	city := addr.City
	for _, fallback := range []string{addr.Town, addr.Village, addr.State} {
		if city != "" {
			break
		}
		city = fallback
	}

	return Place{Country: addr.Country, City: city}, nil
}
