package mcversion

import (
	"encoding/json"

	"github.com/minelaunch/minelaunch/internal/rules"
)

// stringOrSlice decodes a JSON field that is either a bare string or an
// array of strings into a []string.
type stringOrSlice []string

func (s *stringOrSlice) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*s = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*s = []string{single}
	return nil
}

// ArgumentEntry is one element of arguments.jvm/arguments.game: either a
// bare literal token, or an object gating a value behind rules.
type ArgumentEntry struct {
	Rules []rules.Rule
	Value []string
}

func (a *ArgumentEntry) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if data[0] == '{' {
		var obj struct {
			Rules []rules.Rule  `json:"rules"`
			Value stringOrSlice `json:"value"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		a.Rules = obj.Rules
		a.Value = []string(obj.Value)
		return nil
	}

	var literal string
	if err := json.Unmarshal(data, &literal); err != nil {
		return err
	}
	a.Value = []string{literal}
	return nil
}

// Applies reports whether this entry's value should be included for the
// given host facts.
func (a ArgumentEntry) Applies(h rules.Host) bool {
	return rules.Eval(a.Rules, h)
}
