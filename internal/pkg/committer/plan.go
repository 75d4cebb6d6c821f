package committer

import "cloud.google.com/go/spanner"

// Plan accumulates the mutations of one unit of work. A write operation
// builds its entire plan first (entity row, association rows, outbox
// event) and applies it in a single commit.
type Plan struct {
	mutations []*spanner.Mutation
}

func NewPlan() *Plan {
	return &Plan{mutations: make([]*spanner.Mutation, 0, 4)}
}

// Add appends a mutation; nil mutations are ignored so builders can return
// nil for no-ops.
func (p *Plan) Add(muts ...*spanner.Mutation) {
	for _, m := range muts {
		if m != nil {
			p.mutations = append(p.mutations, m)
		}
	}
}

func (p *Plan) IsEmpty() bool {
	return len(p.mutations) == 0
}

// Len returns the number of buffered mutations.
func (p *Plan) Len() int {
	return len(p.mutations)
}

// Mutations returns the buffered mutations in insertion order. Order
// matters: association rows are cleared before they are re-inserted.
func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}
