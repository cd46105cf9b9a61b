// Package topicgraph answers prerequisite queries over a topic dependency
// table: transitive prerequisites and dependents, topological order of any
// subset of topics, and personalized learning paths.
//
// An Engine is built once and never mutated, so it is safe for concurrent
// use by any number of callers.
package topicgraph

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/dominikbraun/graph"
)

// Store is the dependency table an Engine is built from.
// *catalog.Catalog satisfies it.
type Store interface {
	// Topics returns every defined topic.
	Topics() []string
	// DirectPrerequisites returns the declared prerequisites of a topic,
	// which may name topics that are not defined.
	DirectPrerequisites(topic string) []string
}

// Engine is an immutable directed graph over topics. An edge p → t means
// p must be learned before t.
type Engine struct {
	g graph.Graph[string, string]

	topics []string
	index  map[string]int // declaration position
	preds  map[string][]string
	succs  map[string][]string
	roots  []string

	report Report
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for construction findings and
// fallback orderings. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New builds an Engine from store. A prerequisite becomes an edge only if
// it is itself a defined topic; other references are dropped and listed
// in the Report.
func New(store Store, opts ...Option) (*Engine, error) {
	e := &Engine{
		g:      graph.New(graph.StringHash, graph.Directed()),
		index:  make(map[string]int),
		preds:  make(map[string][]string),
		succs:  make(map[string][]string),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, t := range store.Topics() {
		if err := e.g.AddVertex(t); err != nil {
			if errors.Is(err, graph.ErrVertexAlreadyExists) {
				continue
			}
			return nil, fmt.Errorf("add topic %q: %w", t, err)
		}
		e.index[t] = len(e.topics)
		e.topics = append(e.topics, t)
	}

	for _, t := range e.topics {
		for _, p := range store.DirectPrerequisites(t) {
			if !e.Has(p) {
				e.report.Dangling = append(e.report.Dangling, Dangling{Topic: t, Prerequisite: p})
				continue
			}
			if err := e.g.AddEdge(p, t, graph.EdgeWeight(1)); err != nil {
				if errors.Is(err, graph.ErrEdgeAlreadyExists) {
					continue
				}
				return nil, fmt.Errorf("add edge %q -> %q: %w", p, t, err)
			}
		}
	}

	if err := e.buildIndices(); err != nil {
		return nil, err
	}
	e.report.Topics = len(e.topics)
	e.report.Roots = slices.Clone(e.roots)
	if err := e.checkCycles(); err != nil {
		return nil, err
	}
	e.logReport()
	return e, nil
}

// buildIndices caches predecessor and successor lists in declaration order so
// traversals and sorts are deterministic.
func (e *Engine) buildIndices() error {
	predMap, err := e.g.PredecessorMap()
	if err != nil {
		return fmt.Errorf("predecessor map: %w", err)
	}
	adjMap, err := e.g.AdjacencyMap()
	if err != nil {
		return fmt.Errorf("adjacency map: %w", err)
	}

	for _, t := range e.topics {
		e.preds[t] = e.inDeclarationOrder(slices.Collect(maps.Keys(predMap[t])))
		e.succs[t] = e.inDeclarationOrder(slices.Collect(maps.Keys(adjMap[t])))
		e.report.Edges += len(e.preds[t])
		if len(e.preds[t]) == 0 {
			e.roots = append(e.roots, t)
		}
	}
	return nil
}

// checkCycles runs a full-graph sort so a cyclic table is reported once at
// construction instead of being discovered per query.
func (e *Engine) checkCycles() error {
	if _, ok := e.kahn(e.topics); ok {
		return nil
	}
	sccs, err := graph.StronglyConnectedComponents(e.g)
	if err != nil {
		return fmt.Errorf("strongly connected components: %w", err)
	}
	for _, scc := range sccs {
		if len(scc) == 1 && !slices.Contains(e.preds[scc[0]], scc[0]) {
			continue
		}
		e.report.Cycles = append(e.report.Cycles, e.inDeclarationOrder(scc))
	}
	slices.SortFunc(e.report.Cycles, func(a, b []string) int {
		return e.index[a[0]] - e.index[b[0]]
	})
	return nil
}

func (e *Engine) logReport() {
	for _, d := range e.report.Dangling {
		e.logger.Warn("dropping undefined prerequisite",
			"topic", d.Topic, "prerequisite", d.Prerequisite)
	}
	for _, c := range e.report.Cycles {
		e.logger.Warn("dependency cycle in topic table", "topics", c)
	}
	e.logger.Debug("topic graph built",
		"topics", e.report.Topics, "edges", e.report.Edges, "roots", len(e.roots))
}

// inDeclarationOrder sorts names by declaration position in place.
// Undefined names sort last, keeping their relative order.
func (e *Engine) inDeclarationOrder(names []string) []string {
	slices.SortStableFunc(names, func(a, b string) int {
		ia, oka := e.index[a]
		ib, okb := e.index[b]
		switch {
		case oka && okb:
			return ia - ib
		case oka:
			return -1
		case okb:
			return 1
		default:
			return 0
		}
	})
	return names
}

// Has reports whether topic is a node of the graph.
func (e *Engine) Has(topic string) bool {
	_, ok := e.index[topic]
	return ok
}

// Topics returns every topic in declaration order.
func (e *Engine) Topics() []string {
	return slices.Clone(e.topics)
}

// Roots returns the topics with no (materialized) prerequisites.
func (e *Engine) Roots() []string {
	return slices.Clone(e.roots)
}

// Prerequisites returns the direct prerequisites of topic that are
// defined topics. Use the Store for the declared, display-only list.
func (e *Engine) Prerequisites(topic string) []string {
	return slices.Clone(e.preds[topic])
}

// DirectDependents returns the topics that list topic as a direct
// prerequisite.
func (e *Engine) DirectDependents(topic string) []string {
	return slices.Clone(e.succs[topic])
}

// Report returns the findings recorded while building the graph.
func (e *Engine) Report() Report {
	r := e.report
	r.Roots = slices.Clone(r.Roots)
	r.Dangling = slices.Clone(r.Dangling)
	r.Cycles = make([][]string, len(e.report.Cycles))
	for i, c := range e.report.Cycles {
		r.Cycles[i] = slices.Clone(c)
	}
	return r
}
