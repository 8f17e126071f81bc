// SPDX-License-Identifier: MIT
//
// File: reduce.go
// Role: Policy and Reduce, the structural pruning of an interaction graph.
// Order of steps (fixed per aggregation kind):
//
//	giant | aggregation | steps
//	------+-------------+------------------------------
//	false | none        | identity
//	true  | none        | giant
//	false | soft        | soft
//	true  | soft        | giant, then soft
//	false | hard        | hard
//	true  | hard        | hard, then giant
//	any   | unknown     | identity (warning logged)
//
// Every filter decides on the graph as it is before that filter deletes
// anything: candidates are collected first and removed in one batch.

package reduce

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/socnet/components"
	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/logging"
	"github.com/katalvlaran/socnet/tweet"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("reduce: graph is nil")

// Aggregation selects the degree-based filter.
type Aggregation string

const (
	// None keeps every vertex.
	None Aggregation = "none"
	// Soft drops vertices with no incoming edge and fewer than two distinct
	// out-neighbors.
	Soft Aggregation = "soft"
	// Hard drops vertices whose in-degree is below Policy.HardThreshold.
	Hard Aggregation = "hard"
)

// Policy is a reduction request.
type Policy struct {
	GiantComponent bool        `yaml:"giant_component" json:"giant_component"`
	Aggregation    Aggregation `yaml:"aggregation" json:"aggregation"`
	HardThreshold  int         `yaml:"hard_threshold" json:"hard_threshold"`
}

// Validate rejects a negative threshold. Unknown aggregation values are not
// an error here; Reduce leaves the graph unchanged and logs a warning.
func (p Policy) Validate() error {
	if p.HardThreshold < 0 {
		return fmt.Errorf("%w: hard threshold %d is negative", tweet.ErrInvalidArgument, p.HardThreshold)
	}
	return nil
}

// Known reports whether a is one of None, Soft, Hard (or empty, read as None).
func (a Aggregation) Known() bool {
	switch a {
	case "", None, Soft, Hard:
		return true
	}
	return false
}

// Option configures Reduce.
type Option func(*options)

type options struct {
	log logrus.FieldLogger
}

// WithLogger routes Reduce's warnings and debug output to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// step is one stage of a reduction plan.
type step func(*core.Graph) (*core.Graph, error)

// Reduce applies p to g and returns the reduced graph. g itself may be
// mutated by the aggregation filters; callers that need the input intact
// should pass g.Clone().
//
// Errors:
//   - ErrGraphNil; tweet.ErrInvalidArgument for a negative threshold.
func Reduce(g *core.Graph, p Policy, opts ...Option) (*core.Graph, error) {
	o := options{log: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	before := g.VertexCount()
	for _, s := range plan(p, o.log) {
		var err error
		if g, err = s(g); err != nil {
			return nil, err
		}
	}

	o.log.WithFields(logrus.Fields{
		"giant":       p.GiantComponent,
		"aggregation": p.Aggregation,
		"before":      before,
		"after":       g.VertexCount(),
	}).Debug("graph reduced")

	return g, nil
}

// plan lists the steps for p in execution order.
func plan(p Policy, log logrus.FieldLogger) []step {
	var giant []step
	if p.GiantComponent {
		giant = []step{components.Giant}
	}

	switch p.Aggregation {
	case "", None:
		return giant
	case Soft:
		return append(giant, SoftFilter)
	case Hard:
		return append([]step{func(g *core.Graph) (*core.Graph, error) {
			return HardFilter(g, p.HardThreshold)
		}}, giant...)
	default:
		log.WithField("aggregation", p.Aggregation).Warn("unknown aggregation, graph left unchanged")
		return nil
	}
}

// SoftFilter deletes, in place, every vertex with in-degree 0 and fewer than
// two distinct out-neighbors, and returns g.
func SoftFilter(g *core.Graph) (*core.Graph, error) {
	return prune(g, func(id string) (bool, error) {
		in, err := g.InDegree(id)
		if err != nil || in > 0 {
			return false, err
		}
		n, err := g.OutNeighborCount(id)
		return n < 2, err
	})
}

// HardFilter deletes, in place, every vertex whose in-degree is strictly less
// than t, and returns g.
func HardFilter(g *core.Graph, t int) (*core.Graph, error) {
	if t < 0 {
		return nil, fmt.Errorf("%w: hard threshold %d is negative", tweet.ErrInvalidArgument, t)
	}
	return prune(g, func(id string) (bool, error) {
		in, err := g.InDegree(id)
		return in < t, err
	})
}

// prune collects the vertices doomed by drop, then removes them at once.
func prune(g *core.Graph, drop func(id string) (bool, error)) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var doomed []string
	for _, id := range g.Vertices() {
		ok, err := drop(id)
		if err != nil {
			return nil, fmt.Errorf("reduce: vertex %q: %w", id, err)
		}
		if ok {
			doomed = append(doomed, id)
		}
	}
	if err := g.RemoveVertices(doomed); err != nil {
		return nil, fmt.Errorf("reduce: %w", err)
	}

	return g, nil
}
