package stats

// grouping is an insertion-ordered map of accumulators. Tie-break rules in
// this package are "first seen wins", which a plain Go map cannot honor
// because its iteration order is randomized; keys here are replayed in the
// order they first appeared.
type grouping[K comparable, V any] struct {
	order []K
	items map[K]*V
}

func newGrouping[K comparable, V any]() *grouping[K, V] {
	return &grouping[K, V]{items: make(map[K]*V)}
}

// at returns the accumulator for key, creating a zero one on first touch.
func (g *grouping[K, V]) at(key K) *V {
	if v, ok := g.items[key]; ok {
		return v
	}
	v := new(V)
	g.items[key] = v
	g.order = append(g.order, key)
	return v
}

// values returns the accumulated entries in first-seen order.
func (g *grouping[K, V]) values() []V {
	out := make([]V, 0, len(g.order))
	for _, k := range g.order {
		out = append(out, *g.items[k])
	}
	return out
}
