// Package network turns a batch of interaction records into a directed
// interaction multigraph and exposes it as plain values for rendering.
//
// Build runs one interaction kind over one optional time window. Every edge
// endpoint becomes a vertex labelled from two metadata tables: the primary
// table (the author's own posts, last seen profile wins) and, when the author
// never posted, the secondary table (the name embedded on the target side of
// other posts, with follower and friend counts reported as 0). An author
// missing from both is a tweet.ErrIntegrity error.
//
// Vertex metadata keys:
//
//	screen_name      string
//	followers        int64
//	friends          int64
//	original_tweets  []string  ids of the author's original posts in the window
//	interactions     []string  ids of the author's posts of the selected kind
//
// Edge metadata keys: tweet_id (string) and timestamp (int64).
//
// Snapshot copies a graph into a View of Nodes and Links; View.Elements gives
// the Cytoscape element list.
package network
