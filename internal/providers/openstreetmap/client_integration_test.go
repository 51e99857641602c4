//go:build integration

package openstreetmap

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/JTanner04/InstagramSpots/internal/providers"
	"github.com/JTanner04/InstagramSpots/internal/types"
)

func TestClient_Lookup_Integration(t *testing.T) {
	// Test coordinates: Aspen, CO area
	coords := types.NewCoords(39.11539, -107.65840)

	logger := slog.Default()
	client := NewClient(Config{}, providers.NewFetcher(nil, providers.DefaultRetryPolicy(), logger), logger)

	t.Logf("Making API call to OpenStreetMap Nominatim API...")
	t.Logf("Coordinates: lat=%f, lon=%f", coords.Latitude, coords.Longitude)

	resp, err := client.Lookup(context.Background(), coords)
	if err != nil {
		t.Fatalf("Failed to get location data: %v", err)
	}

	// Pretty print the raw response
	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.Address.State != "Colorado" {
		t.Errorf("State = %q, want Colorado", resp.Address.State)
	}
	if resp.Address.ISO31662Lvl4 != "US-CO" {
		t.Errorf("ISO3166-2-lvl4 = %q, want US-CO", resp.Address.ISO31662Lvl4)
	}

	t.Log("✓ API call successful, response structure valid")
}
