package discovery

import "testing"

func TestParseVibe(t *testing.T) {
	tests := []struct {
		input    string
		expected Vibe
	}{
		{"nature", VibeNature},
		{"Nature", VibeNature},
		{"  city ", VibeCity},
		{"FOODIE", VibeFoodie},
		{"art", VibeArt},
		{"nightlife", VibeNightlife},
		{"instagrammable", VibeInstagrammable},
		{"", VibeInstagrammable},
		{"beach", VibeInstagrammable},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := ParseVibe(tt.input); result != tt.expected {
				t.Errorf("ParseVibe(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseTravelMode(t *testing.T) {
	tests := []struct {
		input    string
		expected TravelMode
	}{
		{"drive", TravelModeDrive},
		{"Drive", TravelModeDrive},
		{"fly", TravelModeFly},
		{" FLY ", TravelModeFly},
		{"flight", TravelModeFly},
		{"", TravelModeDrive},
		{"walk", TravelModeDrive},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := ParseTravelMode(tt.input); result != tt.expected {
				t.Errorf("ParseTravelMode(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
