package openstreetmap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JTanner04/InstagramSpots/internal/providers"
	"github.com/JTanner04/InstagramSpots/internal/types"
)

func TestClient_ReverseRegion(t *testing.T) {
	tests := []struct {
		name string
		body string
		want types.Region
	}{
		{
			name: "state level result",
			body: `{"place_id":1,"name":"Colorado","display_name":"Colorado, United States","address":{"state":"Colorado","ISO3166-2-lvl4":"US-CO","country":"United States","country_code":"us"}}`,
			want: types.Region{Name: "Colorado", Code: "US-CO"},
		},
		{
			name: "unable to geocode",
			body: `{"error":"Unable to geocode"}`,
			want: types.Region{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUA, gotZoom, gotLat string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUA = r.Header.Get("User-Agent")
				gotZoom = r.URL.Query().Get("zoom")
				gotLat = r.URL.Query().Get("lat")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			fetcher := providers.NewFetcher(srv.Client(), providers.RetryPolicy{}, logger)
			client := NewClient(Config{BaseURL: srv.URL + "/reverse", UserAgent: "test-agent"}, fetcher, logger)

			got, err := client.ReverseRegion(context.Background(), types.NewCoords(39.11539, -107.65840))
			if err != nil {
				t.Fatalf("ReverseRegion() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReverseRegion() = %+v, want %+v", got, tt.want)
			}
			if gotUA != "test-agent" {
				t.Errorf("User-Agent = %q", gotUA)
			}
			if gotZoom != "5" {
				t.Errorf("zoom = %q, want 5", gotZoom)
			}
			if gotLat != "39.115390" {
				t.Errorf("lat = %q", gotLat)
			}
		})
	}
}
