package topicgraph

// Dangling is a declared prerequisite that is not a defined topic.
type Dangling struct {
	Topic        string
	Prerequisite string
}

// Report summarizes data-quality findings about a dependency table,
// collected once when the Engine is built.
type Report struct {
	Topics   int
	Edges    int
	Roots    []string
	Dangling []Dangling
	// Cycles lists each strongly connected group of topics that prevents
	// a full topological order. Empty for a well-formed table.
	Cycles [][]string
}

// Acyclic reports whether the whole table has a topological order.
func (r Report) Acyclic() bool {
	return len(r.Cycles) == 0
}

// OK reports whether the table has no dangling references and no cycles.
func (r Report) OK() bool {
	return r.Acyclic() && len(r.Dangling) == 0
}
