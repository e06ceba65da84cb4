package rules_test

import (
	"testing"

	"github.com/minelaunch/minelaunch/internal/rules"
)

func TestEval(t *testing.T) {
	host := rules.Host{OSName: "linux", OSArch: "x86_64"}

	tests := []struct {
		name string
		list []rules.Rule
		host rules.Host
		want bool
	}{
		{
			name: "empty list allows",
			list: nil,
			host: host,
			want: true,
		},
		{
			name: "allow matching os",
			list: []rules.Rule{{Action: rules.Allow, OS: &rules.OS{Name: "linux"}}},
			host: host,
			want: true,
		},
		{
			name: "allow only for other os",
			list: []rules.Rule{{Action: rules.Allow, OS: &rules.OS{Name: "windows"}}},
			host: host,
			want: false,
		},
		{
			name: "trailing disallow overrides allow-all",
			list: []rules.Rule{
				{Action: rules.Allow},
				{Action: rules.Disallow, OS: &rules.OS{Name: "linux"}},
			},
			host: host,
			want: false,
		},
		{
			name: "unknown feature key treated as false",
			list: []rules.Rule{{Action: rules.Allow, Features: map[string]bool{"has_custom_resolution": true}}},
			host: host,
			want: false,
		},
		{
			name: "known feature key matches",
			list: []rules.Rule{{Action: rules.Allow, Features: map[string]bool{"is_demo_user": true}}},
			host: rules.Host{OSName: "linux", OSArch: "x86_64", Features: map[string]bool{"is_demo_user": true}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.Eval(tt.list, tt.host); got != tt.want {
				t.Errorf("Eval() = %v, want %v", got, tt.want)
			}
		})
	}
}
