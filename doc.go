// Package socnet is your in-memory workbench for turning social-media posts
// into interaction networks: who retweets, quotes, replies to and mentions
// whom, reduced to the part of the network worth looking at.
//
// 🚀 What is socnet?
//
//	A thread-safe graph core plus a small pipeline that brings together:
//		• Ingestion: twitwi-style CSV → tweet.Batch
//		• Extraction: per-kind column semantics, mention expansion
//		• Construction: directed multigraph with author profiles on every vertex
//		• Reduction: giant component, soft and hard degree aggregation
//		• Reporting: in/out-degree rankings, render-ready snapshots
//
// ✨ Why socnet?
//
//   - Deterministic – vertex insertion order drives every ranking and tie-break
//   - Honest data – unresolvable authors are errors, never invented profiles
//   - Observable – logrus entries tagged per run, prometheus stage metrics
//   - Concurrent – all four interaction kinds over one batch via errgroup
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       — Graph, Vertex, Edge: insertion-ordered multigraph with metadata
//	bfs/        — breadth-first traversal with out / in / weak direction
//	components/ — weakly-connected components and giant-component extraction
//	tweet/      — Record, Batch, Kind, Window, CSV loader, error kinds
//	edgelist/   — Extract: batch → typed edge tuples for one kind
//	network/    — Build, metadata Directory, Snapshot and Cytoscape Elements
//	reduce/     — Policy and Reduce: giant / soft / hard
//	centrality/ — InDegree and OutDegree rankings
//	config/     — YAML run configuration
//	logging/    — logrus construction
//	pipeline/   — Runner: build → reduce → rank, metrics, multi-kind runs
//	cmd/socnet/ — cobra CLI: build, summary
//
// Quick ASCII example (retweets):
//
//	    alice ──► bob
//	      │
//	      └────► carol
//
//	in-degree:  bob 1, carol 1, alice 0
//	out-degree: alice 2, bob 0, carol 0
//
// See examples/ for runnable scenarios.
package socnet
