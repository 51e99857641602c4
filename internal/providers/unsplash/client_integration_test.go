//go:build integration

package unsplash

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/JTanner04/InstagramSpots/internal/providers"
)

func TestClient_SearchPhoto_Integration(t *testing.T) {
	key := os.Getenv("UNSPLASH_ACCESS_KEY")
	if key == "" {
		t.Skip("UNSPLASH_ACCESS_KEY not set")
	}

	logger := slog.Default()
	client := NewClient(Config{AccessKey: key}, providers.NewFetcher(nil, providers.DefaultRetryPolicy(), logger), logger)

	t.Logf("Making API call to Unsplash search...")
	photo, err := client.SearchPhoto(context.Background(), "Red Rocks Amphitheatre, Morrison, Colorado")
	if err != nil {
		t.Fatalf("Failed to search photos: %v", err)
	}

	t.Logf("  Photo: %s", photo)
	if photo == "" {
		t.Error("expected a photo URL")
	}

	t.Log("✓ API call successful")
}
