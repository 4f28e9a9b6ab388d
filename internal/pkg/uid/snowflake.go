package uid

import (
	"github.com/bwmarrin/snowflake"
)

// Snowflake generates time-ordered numeric IDs.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake creates a Snowflake generator for node 1.
func NewSnowflake() (*Snowflake, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns the next unique ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
