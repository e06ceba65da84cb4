package mcversion

// LoadFunc resolves a single version id to its descriptor, without
// following inheritsFrom itself. Implementations typically check a
// local `versions/<id>/<id>.json` file first and fall back to the
// official manifest.
type LoadFunc func(id string) (*Descriptor, error)

// Flatten walks the inheritsFrom chain starting at id, merging each
// ancestor into the one before it (child-over-parent, per mergeWith),
// and returns the single resulting descriptor. A chain that revisits an
// id yields CyclicInheritanceError.
func Flatten(id string, load LoadFunc) (*Descriptor, error) {
	visited := map[string]bool{}
	chain := []string{}

	var walk func(id string) (*Descriptor, error)
	walk = func(id string) (*Descriptor, error) {
		if visited[id] {
			return nil, &CyclicInheritanceError{Chain: append(chain, id)}
		}
		visited[id] = true
		chain = append(chain, id)

		d, err := load(id)
		if err != nil {
			return nil, err
		}

		if d.InheritsFrom == "" {
			return d, nil
		}

		parent, err := walk(d.InheritsFrom)
		if err != nil {
			return nil, err
		}

		merged := *d
		merged.mergeWith(parent)
		merged.Libraries = DedupLibraries(merged.Libraries)
		return &merged, nil
	}

	return walk(id)
}
