package location

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/JTanner04/InstagramSpots/internal/types"
)

// Mock providers for testing

type mockRegionProvider struct {
	name   string
	region types.Region
	err    error
	calls  int
}

func (m *mockRegionProvider) Name() string {
	return m.name
}

func (m *mockRegionProvider) ReverseRegion(ctx context.Context, coords types.Coords) (types.Region, error) {
	m.calls++
	return m.region, m.err
}

func TestLocationService_ResolveRegion(t *testing.T) {
	colorado := types.Region{Name: "Colorado", Code: "US-CO"}

	tests := []struct {
		name         string
		coords       types.Coords
		primary      *mockRegionProvider
		fallback     *mockRegionProvider
		want         types.Region
		wantErr      error
		errContains  string
		wantFallback int
	}{
		{
			name:         "primary provider resolves",
			coords:       types.NewCoords(39.11539, -107.65840),
			primary:      &mockRegionProvider{name: "mapbox", region: colorado},
			fallback:     &mockRegionProvider{name: "openstreetmap", region: types.Region{Name: "Utah"}},
			want:         colorado,
			wantFallback: 0,
		},
		{
			name:         "falls back after provider error",
			coords:       types.NewCoords(39.11539, -107.65840),
			primary:      &mockRegionProvider{name: "mapbox", err: errors.New("timeout")},
			fallback:     &mockRegionProvider{name: "openstreetmap", region: colorado},
			want:         colorado,
			wantFallback: 1,
		},
		{
			name:         "falls back after empty region",
			coords:       types.NewCoords(39.11539, -107.65840),
			primary:      &mockRegionProvider{name: "mapbox"},
			fallback:     &mockRegionProvider{name: "openstreetmap", region: colorado},
			want:         colorado,
			wantFallback: 1,
		},
		{
			name:         "no provider finds a region",
			coords:       types.NewCoords(0, -30),
			primary:      &mockRegionProvider{name: "mapbox"},
			fallback:     &mockRegionProvider{name: "openstreetmap", err: errors.New("unavailable")},
			wantErr:      ErrRegionNotFound,
			wantFallback: 1,
		},
		{
			name:         "all providers fail",
			coords:       types.NewCoords(39.11539, -107.65840),
			primary:      &mockRegionProvider{name: "mapbox", err: errors.New("timeout")},
			fallback:     &mockRegionProvider{name: "openstreetmap", err: errors.New("unavailable")},
			errContains:  "failed to resolve region",
			wantFallback: 1,
		},
		{
			name:         "invalid latitude",
			coords:       types.NewCoords(120, 0),
			primary:      &mockRegionProvider{name: "mapbox", region: colorado},
			fallback:     &mockRegionProvider{name: "openstreetmap", region: colorado},
			wantErr:      types.ErrInvalidLatitude,
			wantFallback: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			service := NewLocationServiceWithProviders(logger, tt.primary, tt.fallback)

			got, err := service.ResolveRegion(context.Background(), tt.coords)

			if tt.fallback.calls != tt.wantFallback {
				t.Errorf("fallback calls = %d, want %d", tt.fallback.calls, tt.wantFallback)
			}

			if tt.wantErr != nil || tt.errContains != "" {
				if err == nil {
					t.Fatalf("ResolveRegion() expected error but got none")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("ResolveRegion() error = %v, want %v", err, tt.wantErr)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("ResolveRegion() error = %v, want error containing %v", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("ResolveRegion() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveRegion() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
