package topicgraph

import (
	"github.com/dominikbraun/graph"
	"github.com/sourcegraph/conc/iter"
)

// TopicDepth returns how far topic sits from the roots: the largest, over
// all roots that reach it, of the shortest path length in edges. Roots
// have depth 0, as do unknown topics and topics no root reaches.
//
// Informational only; learning paths do not depend on it.
func (e *Engine) TopicDepth(topic string) int {
	if !e.Has(topic) {
		return 0
	}
	depth := 0
	for _, root := range e.roots {
		path, err := graph.ShortestPath(e.g, root, topic)
		if err != nil {
			continue
		}
		depth = max(depth, len(path)-1)
	}
	return depth
}

// Levels groups every topic by TopicDepth. Topics within a level keep
// declaration order.
func (e *Engine) Levels() map[int][]string {
	depths := iter.Map(e.topics, func(t *string) int {
		return e.TopicDepth(*t)
	})

	levels := make(map[int][]string)
	for i, t := range e.topics {
		levels[depths[i]] = append(levels[depths[i]], t)
	}
	return levels
}
