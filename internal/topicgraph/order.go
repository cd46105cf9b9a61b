package topicgraph

import (
	"cmp"
	"slices"
)

// Ordering is the result of a topological sort over a set of topics.
type Ordering struct {
	Topics []string
	// Fallback is set when the induced subgraph contains a cycle. Topics
	// are then ordered by ascending number of direct prerequisites, which
	// is deterministic but not a true topological order.
	Fallback bool
}

// TopologicalOrder orders subset so that every edge between two of its
// members points from an earlier topic to a later one. Only edges with
// both endpoints in subset are considered. Duplicates are ignored and
// names that are not topics are kept as isolated nodes.
//
// It never fails: a cycle yields a fallback Ordering instead.
func (e *Engine) TopologicalOrder(subset []string) Ordering {
	nodes := dedupe(subset)
	order, ok := e.kahn(nodes)
	if ok {
		return Ordering{Topics: order}
	}

	e.logger.Warn("dependency cycle among requested topics, using fallback order",
		"topics", len(nodes), "unresolved", len(nodes)-len(order))
	return Ordering{Topics: e.fallbackOrder(nodes), Fallback: true}
}

// kahn runs Kahn's algorithm over the subgraph induced by nodes. Ready
// topics are emitted in the order they appear in nodes. The second result
// is false when a cycle left some nodes unemitted.
func (e *Engine) kahn(nodes []string) ([]string, bool) {
	member := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		member[n] = true
	}

	inDegree := make(map[string]int, len(nodes))
	for _, n := range nodes {
		for _, p := range e.preds[n] {
			if member[p] {
				inDegree[n]++
			}
		}
	}

	queue := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}

	order := make([]string, 0, len(nodes))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)

		for _, s := range e.succs[n] {
			if !member[s] {
				continue
			}
			inDegree[s]--
			if inDegree[s] == 0 {
				queue = append(queue, s)
			}
		}
	}
	return order, len(order) == len(nodes)
}

// fallbackOrder sorts nodes by ascending count of direct prerequisites,
// ties broken by input order.
func (e *Engine) fallbackOrder(nodes []string) []string {
	out := slices.Clone(nodes)
	slices.SortStableFunc(out, func(a, b string) int {
		return cmp.Compare(len(e.preds[a]), len(e.preds[b]))
	})
	return out
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
