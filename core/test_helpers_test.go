// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for socnet/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep core tests stdlib-only.

package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/socnet/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		return
	}

	t.Fatalf("%s: want true; got false", op)
}

// MustFalse FAILS the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()

	if !cond {
		return
	}

	t.Fatalf("%s: want false; got true", op)
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d; want %d", op, got, want)
}

// MustEqualStrings FAILS the test if the slices differ (order matters).
func MustEqualStrings(t *testing.T, got, want []string, op string) {
	t.Helper()

	if len(got) == 0 && len(want) == 0 {
		return
	}
	if reflect.DeepEqual(got, want) {
		return
	}

	t.Fatalf("%s: got %v; want %v", op, got, want)
}

// ExtractEdgeIDs RETURNS edge IDs in the order given.
func ExtractEdgeIDs(edges []*core.Edge) []string {
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.ID)
	}

	return ids
}

// buildABC RETURNS the directed multigraph A→B, A→C, B→C.
func buildABC(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewMultiDigraph()
	_, err := g.AddEdge(VertexA, VertexB)
	MustNoError(t, err, "AddEdge(A,B)")
	_, err = g.AddEdge(VertexA, VertexC)
	MustNoError(t, err, "AddEdge(A,C)")
	_, err = g.AddEdge(VertexB, VertexC)
	MustNoError(t, err, "AddEdge(B,C)")

	return g
}
