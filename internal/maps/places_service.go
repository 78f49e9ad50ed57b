package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Place represents a simplified location result.
type Place struct {
	Name             string
	Address          string
	Rating           float32
	PlaceID          string
	UserRatingsTotal int
}

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// SearchNearZone searches for places matching the query near a zone's
// centre, within its configured radius. The admin catalog view uses this
// to review which resorts and hotels a pickup zone actually covers.
func (s *PlacesService) SearchNearZone(ctx context.Context, lat, lng, radiusKm float64, query string) ([]Place, error) {
	req := &maps.TextSearchRequest{
		Query:    query,
		Location: &maps.LatLng{Lat: lat, Lng: lng},
		Radius:   uint(radiusKm * 1000),
		Region:   "FJ",
	}

	resp, err := s.client.TextSearch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	places := make([]Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		places = append(places, Place{
			Name:             r.Name,
			Address:          r.FormattedAddress,
			Rating:           r.Rating,
			PlaceID:          r.PlaceID,
			UserRatingsTotal: r.UserRatingsTotal,
		})
	}
	return places, nil
}
