package model

import "testing"

func TestNewTrack(t *testing.T) {
	track := NewTrack(2, "/sounds/bird.mp3")

	if track.ID != 2 {
		t.Errorf("Expected ID 2, got %d", track.ID)
	}
	if track.Name != "bird" {
		t.Errorf("Expected name 'bird', got '%s'", track.Name)
	}
	if track.Label != "Bird" {
		t.Errorf("Expected label 'Bird', got '%s'", track.Label)
	}
	if track.Path != "/sounds/bird.mp3" {
		t.Errorf("Expected path '/sounds/bird.mp3', got '%s'", track.Path)
	}
}

func TestTrack_ControlName(t *testing.T) {
	track := NewTrack(0, "rain.wav")

	tests := map[string]string{
		SuffixPlayButton:   "rain_play_button",
		SuffixStopButton:   "rain_stop_button",
		SuffixVolumeSlider: "rain_volume_slider",
	}
	for suffix, expected := range tests {
		if got := track.ControlName(suffix); got != expected {
			t.Errorf("ControlName(%s) = %s, expected %s", suffix, got, expected)
		}
	}
}

func TestTrackName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"bird.mp3", "bird"},
		{"/a/b/city.flac", "city"},
		{"night.forest.ogg", "night.forest"},
		{".hidden", ".hidden"},
		{"noext", "noext"},
	}

	for _, test := range tests {
		if got := TrackName(test.path); got != test.expected {
			t.Errorf("TrackName(%s) = %s, expected %s", test.path, got, test.expected)
		}
	}
}

func TestDisplayLabel(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"bird", "Bird"},
		{"heavy_rain", "Heavy rain"},
		{"city--night", "City night"},
		{"ёлка", "Ёлка"},
		{"___", "___"},
		{"", ""},
	}

	for _, test := range tests {
		if got := DisplayLabel(test.name); got != test.expected {
			t.Errorf("DisplayLabel(%q) = %q, expected %q", test.name, got, test.expected)
		}
	}
}

func TestControlRole(t *testing.T) {
	if RolePlay.IconFile() != "play_black_big.png" {
		t.Errorf("Unexpected play icon: %s", RolePlay.IconFile())
	}
	if RoleStop.IconFile() != "stop_black_big.png" {
		t.Errorf("Unexpected stop icon: %s", RoleStop.IconFile())
	}
	if ControlRole(7).String() != "unknown" {
		t.Errorf("Unexpected name for invalid role: %s", ControlRole(7).String())
	}
}

func TestRect_Overlaps(t *testing.T) {
	row0 := Rect{X: 10, Y: 10, Width: 100, Height: 30}
	row1 := Rect{X: 10, Y: 40, Width: 100, Height: 30}
	inside := Rect{X: 50, Y: 20, Width: 10, Height: 10}

	if row0.Overlaps(row1) {
		t.Error("Adjacent rows should not overlap")
	}
	if !row0.Overlaps(inside) {
		t.Error("Contained rectangle should overlap")
	}
	if row0.Bottom() != 40 {
		t.Errorf("Expected bottom 40, got %d", row0.Bottom())
	}
}

func TestSequence(t *testing.T) {
	var seq Sequence

	for i := 0; i < 5; i++ {
		if id := seq.Next(); id != i {
			t.Errorf("Next() = %d, expected %d", id, i)
		}
	}
	if seq.Count() != 5 {
		t.Errorf("Count() = %d, expected 5", seq.Count())
	}
}
