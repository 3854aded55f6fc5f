package phonology

// Group is every symbol sharing one fingerprint.
type Group struct {
	Fingerprint string
	Symbols     []string
}

// Collision is a group of more than one symbol.
type Collision = Group

// GroupPairs partitions pairs by fingerprint. Groups appear in the order their
// fingerprint was first seen and list their symbols in input order.
func GroupPairs(pairs []Pair) []Group {
	index := make(map[string]int, len(pairs))
	var groups []Group
	for _, p := range pairs {
		i, ok := index[p.Fingerprint]
		if !ok {
			i = len(groups)
			index[p.Fingerprint] = i
			groups = append(groups, Group{Fingerprint: p.Fingerprint})
		}
		groups[i].Symbols = append(groups[i].Symbols, p.Symbol)
	}
	return groups
}

// FindCollisions returns the groups of pairs that share a fingerprint with at
// least one other pair.
func FindCollisions(pairs []Pair) []Collision {
	var out []Collision
	for _, g := range GroupPairs(pairs) {
		if len(g.Symbols) > 1 {
			out = append(out, g)
		}
	}
	return out
}
