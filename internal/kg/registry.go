package kg

import "fmt"

// Registry maps entity labels to mermaid node identifiers in first-seen order.
// Labels are exact-match keys: entities differing by case or whitespace get
// distinct identifiers.
type Registry struct {
	ids   map[string]string
	order []string
}

// BuildRegistry assigns a node identifier to every entity appearing in the
// triples, scanning heads before tails within each triple and triples in
// input order. Identifiers are Node0, Node1, ... so re-running on the same
// triples always yields the same assignment.
func BuildRegistry(triples []Triple) *Registry {
	r := &Registry{ids: make(map[string]string)}
	for _, t := range triples {
		r.add(t.Head)
		r.add(t.Tail)
	}
	return r
}

func (r *Registry) add(label string) {
	if _, ok := r.ids[label]; ok {
		return
	}
	r.ids[label] = fmt.Sprintf("Node%d", len(r.order))
	r.order = append(r.order, label)
}

// NodeID returns the identifier assigned to label.
func (r *Registry) NodeID(label string) (string, bool) {
	id, ok := r.ids[label]
	return id, ok
}

// Entities returns the entity labels in assignment order.
func (r *Registry) Entities() []string {
	return r.order
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	return len(r.order)
}
