package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"

	"github.com/JTanner04/InstagramSpots/internal/discovery"
	"github.com/JTanner04/InstagramSpots/internal/types"
)

func TestParseOptions(t *testing.T) {
	var opts Options
	_, err := flags.ParseArgs(&opts, []string{"--lat", "39.74", "--lon=-104.99", "--vibe", "nature", "--min-count", "20", "--out-of-state"})
	if err != nil {
		t.Fatalf("ParseArgs() unexpected error = %v", err)
	}

	req := buildRequest(opts)
	if req.Origin != types.NewCoords(39.74, -104.99) {
		t.Errorf("Origin = %v", req.Origin)
	}
	want := discovery.Preferences{
		Vibe:         discovery.VibeNature,
		Mode:         discovery.TravelModeDrive,
		DriveMinutes: 90,
		FlyHours:     2,
		OutOfState:   true,
	}
	if req.Preferences != want {
		t.Errorf("Preferences = %+v, want %+v", req.Preferences, want)
	}
	if req.MinCount != 20 {
		t.Errorf("MinCount = %d, want 20", req.MinCount)
	}
}

func TestParseOptions_FractionalBudget(t *testing.T) {
	var opts Options
	_, err := flags.ParseArgs(&opts, []string{"--lat", "39.74", "--lon=-104.99", "--drive-minutes", "45.5"})
	if err != nil {
		t.Fatalf("ParseArgs() unexpected error = %v", err)
	}
	if got := buildRequest(opts).Preferences.DriveMinutes; got != 45.5 {
		t.Errorf("DriveMinutes = %v, want 45.5", got)
	}
}

func TestParseOptions_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing lat", []string{"--lon=-104.99"}},
		{"unknown vibe", []string{"--lat", "1", "--lon", "2", "--vibe", "spooky"}},
		{"unknown mode", []string{"--lat", "1", "--lon", "2", "--mode", "walk"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts Options
			if _, err := flags.ParseArgs(&opts, tt.args); err == nil {
				t.Errorf("ParseArgs(%v) expected error", tt.args)
			}
		})
	}
}

func TestWriteResult(t *testing.T) {
	result := &discovery.Result{
		SearchID: "s1",
		RadiusKm: 81,
		Places: []types.Place{
			{ID: "poi.1", Name: "Red Rocks", State: types.Region{Name: "Colorado", Code: "US-CO"}},
		},
	}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeResult(&buf, result, "json"); err != nil {
			t.Fatalf("writeResult() unexpected error = %v", err)
		}

		var got discovery.Result
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		if got.SearchID != "s1" || len(got.Places) != 1 {
			t.Errorf("decoded = %+v", got)
		}
		if !strings.Contains(buf.String(), "\n  \"searchId\"") {
			t.Errorf("output is not indented:\n%s", buf.String())
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeResult(&buf, result, "yaml"); err != nil {
			t.Fatalf("writeResult() unexpected error = %v", err)
		}
		out := buf.String()
		for _, want := range []string{"searchId: s1", "name: Red Rocks", "code: US-CO"} {
			if !strings.Contains(out, want) {
				t.Errorf("yaml output missing %q:\n%s", want, out)
			}
		}
	})
}
