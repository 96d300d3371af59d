package cli

import "testing"

func TestSplitPositional(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantInput string
		wantRest  int
	}{
		{"positional first", []string{"input.mov", "-f", "mp4"}, "input.mov", 2},
		{"flags first", []string{"-f", "mp4", "input.mov"}, "", 3},
		{"only positional", []string{"input.mov"}, "input.mov", 0},
		{"empty", nil, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, rest := SplitPositional(tt.args)
			if input != tt.wantInput {
				t.Errorf("SplitPositional(%v) input = %q, expected %q", tt.args, input, tt.wantInput)
			}
			if len(rest) != tt.wantRest {
				t.Errorf("SplitPositional(%v) rest = %v, expected %d args", tt.args, rest, tt.wantRest)
			}
		})
	}
}
