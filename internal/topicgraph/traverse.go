package topicgraph

// TransitivePrerequisites returns every topic that must be learned before
// topic, directly or through other prerequisites. topic itself is never
// included, even when it sits on a cycle. Results are in declaration order;
// unknown topics yield nil.
func (e *Engine) TransitivePrerequisites(topic string) []string {
	return e.reach(topic, e.preds)
}

// TransitiveDependents returns every topic that requires topic, directly
// or transitively.
func (e *Engine) TransitiveDependents(topic string) []string {
	return e.reach(topic, e.succs)
}

// reach is a breadth-first search from start over next, guarded by a
// visited set so cycles terminate.
func (e *Engine) reach(start string, next map[string][]string) []string {
	if !e.Has(start) {
		return nil
	}

	visited := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range next[cur] {
			if visited[n] {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	delete(visited, start)

	var out []string
	for _, t := range e.topics {
		if visited[t] {
			out = append(out, t)
		}
	}
	return out
}
