package idgen

import "github.com/bwmarrin/snowflake"

// Generator produces unique positive int64 identifiers for new records.
// Snowflake ids are strictly positive, which keeps identifier 0 free to
// act as the "no category filter" sentinel.
type Generator struct {
	node *snowflake.Node
}

// New creates a generator for the given node id (0..1023).
func New(nodeID int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &Generator{node: node}, nil
}

// NextID returns the next unique identifier.
func (g *Generator) NextID() int64 {
	return g.node.Generate().Int64()
}
