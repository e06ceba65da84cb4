package mcversion_test

import (
	"encoding/json"
	"testing"

	"github.com/minelaunch/minelaunch/internal/mcversion"
)

func TestArgumentEntry_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "bare literal", in: `"--username"`, want: []string{"--username"}},
		{name: "rule-gated single value", in: `{"rules":[{"action":"allow"}],"value":"--demo"}`, want: []string{"--demo"}},
		{
			name: "rule-gated list value",
			in:   `{"rules":[{"action":"allow"}],"value":["--width","${resolution_width}"]}`,
			want: []string{"--width", "${resolution_width}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entry mcversion.ArgumentEntry
			if err := json.Unmarshal([]byte(tt.in), &entry); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if len(entry.Value) != len(tt.want) {
				t.Fatalf("Value = %v, want %v", entry.Value, tt.want)
			}
			for i := range tt.want {
				if entry.Value[i] != tt.want[i] {
					t.Errorf("Value[%d] = %q, want %q", i, entry.Value[i], tt.want[i])
				}
			}
		})
	}
}
