package topicgraph

import (
	"errors"
	"fmt"
)

// ErrUnknownTopic is returned when a query names a topic that is not in
// the graph.
var ErrUnknownTopic = errors.New("unknown topic")

// Path is a personalized learning path.
type Path struct {
	Target string `json:"target"`
	// Topics is the study order; it ends with Target unless Target is
	// already known.
	Topics []string `json:"topics"`
	// Fallback is set when a cycle prevented a true topological order.
	Fallback bool `json:"fallback"`
	// Ignored lists known topics that are not defined and had no effect.
	Ignored []string `json:"ignored,omitempty"`
}

// LearningPath returns the topics a learner must still study to reach
// target, in dependency order, followed by target itself.
//
// Topics in known, and everything they transitively require, are treated
// as already learned and left out. Known topics that are not defined are
// ignored and reported in Path.Ignored.
//
// An undefined target yields the single-topic path [target] together with
// an error wrapping ErrUnknownTopic.
func (e *Engine) LearningPath(target string, known []string) (Path, error) {
	p := Path{Target: target}

	knownSet := make(map[string]bool, len(known))
	covered := make(map[string]bool)
	for _, k := range dedupe(known) {
		if !e.Has(k) {
			p.Ignored = append(p.Ignored, k)
			continue
		}
		knownSet[k] = true
		for _, q := range e.TransitivePrerequisites(k) {
			covered[q] = true
		}
	}
	if len(p.Ignored) > 0 {
		e.logger.Debug("ignoring undefined known topics", "topics", p.Ignored)
	}

	if !e.Has(target) {
		p.Topics = []string{target}
		return p, fmt.Errorf("learning path to %q: %w", target, ErrUnknownTopic)
	}

	var remaining []string
	for _, t := range e.TransitivePrerequisites(target) {
		if knownSet[t] || covered[t] {
			continue
		}
		remaining = append(remaining, t)
	}
	if !knownSet[target] {
		remaining = append(remaining, target)
	}

	o := e.TopologicalOrder(remaining)
	p.Topics = o.Topics
	p.Fallback = o.Fallback
	return p, nil
}
