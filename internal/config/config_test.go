package config

import "testing"

func TestIsValidChoice(t *testing.T) {
	tests := []struct {
		value    string
		choices  []string
		expected bool
	}{
		{"mp4", VideoFormats, true},
		{"webm", VideoFormats, true},
		{"avi", VideoFormats, false},
		{"avi", ConvertFormats, true},
		{"best", VideoQualities, true},
		{"4k", VideoQualities, false},
		{"flac", AudioFormats, true},
		{"ogg", AudioFormats, false},
		{"192", AudioQualities, true},
		{"64", AudioQualities, false},
		{"", VideoFormats, false},
	}

	for _, test := range tests {
		result := IsValidChoice(test.value, test.choices)
		if result != test.expected {
			t.Errorf("IsValidChoice(%q, %v) = %v, expected %v", test.value, test.choices, result, test.expected)
		}
	}
}

func TestDefaultsAreValidChoices(t *testing.T) {
	if !IsValidChoice(DefaultVideoFormat, VideoFormats) {
		t.Errorf("Default video format %q is not an allowed choice", DefaultVideoFormat)
	}
	if !IsValidChoice(DefaultConvertFormat, ConvertFormats) {
		t.Errorf("Default convert format %q is not an allowed choice", DefaultConvertFormat)
	}
	if !IsValidChoice(DefaultAudioFormat, AudioFormats) {
		t.Errorf("Default audio format %q is not an allowed choice", DefaultAudioFormat)
	}
	if !IsValidChoice(DefaultAudioQuality, AudioQualities) {
		t.Errorf("Default audio quality %q is not an allowed choice", DefaultAudioQuality)
	}
	if !IsValidChoice(string(QualityBest), VideoQualities) {
		t.Errorf("Quality tier %q is not an allowed choice", QualityBest)
	}
}
