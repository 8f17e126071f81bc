// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Build, the record batch → interaction multigraph step.
// Steps:
//  1. window filter (nil window keeps everything);
//  2. original posts (neither retweet nor quote), used for bookkeeping only;
//  3. edgelist.Extract for the requested kind;
//  4. one vertex per edge endpoint, one edge per tuple (parallel edges and
//     self-loops kept);
//  5. per-vertex metadata from the Directory, plus the originated and
//     interaction post id lists.
// Complexity: O(R + E + V) for R records, E tuples and V endpoints.

package network

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/edgelist"
	"github.com/katalvlaran/socnet/logging"
	"github.com/katalvlaran/socnet/tweet"
)

// Vertex metadata keys.
const (
	KeyScreenName     = "screen_name"
	KeyFollowers      = "followers"
	KeyFriends        = "friends"
	KeyOriginalTweets = "original_tweets"
	KeyInteractions   = "interactions"
)

// Edge metadata keys.
const (
	KeyTweetID   = "tweet_id"
	KeyTimestamp = "timestamp"
)

// Option configures Build.
type Option func(*options)

type options struct {
	log logrus.FieldLogger
}

// WithLogger routes Build's debug output to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Build constructs the directed interaction multigraph of kind over the
// records of b that fall in w.
//
// Errors:
//   - tweet.ErrInvalidArgument: unknown kind, malformed window, malformed
//     mention lists.
//   - tweet.ErrIntegrity: an endpoint has no profile in either metadata table.
//
// An empty tuple stream yields an empty graph and no error.
func Build(b tweet.Batch, w *tweet.Window, kind tweet.Kind, opts ...Option) (*core.Graph, error) {
	o := options{log: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown interaction type %q", tweet.ErrInvalidArgument, kind)
	}
	if w != nil {
		if err := w.Validate(); err != nil {
			return nil, err
		}
	}

	scoped := b.Within(w)
	originals := groupIDs(scoped.Originals())
	x, err := edgelist.Extract(scoped, kind)
	if err != nil {
		return nil, err
	}

	g := core.NewMultiDigraph()
	for _, tp := range x.Tuples {
		_, err := g.AddEdge(tp.Source, tp.Target,
			core.WithEdgeMetadata(KeyTweetID, tp.TweetID),
			core.WithEdgeMetadata(KeyTimestamp, tp.Timestamp),
		)
		if err != nil {
			return nil, fmt.Errorf("network: edge %s→%s (post %q): %w", tp.Source, tp.Target, tp.TweetID, err)
		}
	}

	dir := NewDirectory(b, x)
	acted := groupIDs(x.Interactions)
	secondary := 0
	for _, id := range g.Vertices() {
		p, src, err := dir.Resolve(id)
		if err != nil {
			return nil, err
		}
		if src == Secondary {
			secondary++
		}
		attrs := map[string]interface{}{
			KeyScreenName:     p.ScreenName,
			KeyFollowers:      p.Followers,
			KeyFriends:        p.Friends,
			KeyOriginalTweets: nonNil(originals[id]),
			KeyInteractions:   nonNil(acted[id]),
		}
		for k, v := range attrs {
			if err := g.SetVertexMetadata(id, k, v); err != nil {
				return nil, fmt.Errorf("network: vertex %q: %w", id, err)
			}
		}
	}

	o.log.WithFields(logrus.Fields{
		"kind":      kind,
		"records":   len(scoped),
		"tuples":    len(x.Tuples),
		"vertices":  g.VertexCount(),
		"edges":     g.EdgeCount(),
		"secondary": secondary,
	}).Debug("interaction graph built")

	return g, nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
