package network

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

// Node is the render-ready form of one vertex.
type Node struct {
	ID             string   `json:"id"`
	Label          string   `json:"label"` // see ScreenName
	Followers      int64    `json:"followers"`
	Friends        int64    `json:"friends"`
	OriginalTweets []string `json:"original_tweets"`
	Interactions   []string `json:"interactions"`
}

// Link is the render-ready form of one edge.
type Link struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	Target    string `json:"target"`
	TweetID   string `json:"tweet_id"`
	Timestamp int64  `json:"timestamp"`
}

// View is a plain-value copy of a graph that a visualization layer can
// render without touching core types.
type View struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Element is one entry of the Cytoscape elements list: {"data": {...}}.
type Element struct {
	Data map[string]interface{} `json:"data"`
}

// Snapshot copies g into a View, nodes in vertex order and links in edge
// creation order. Missing or mistyped attributes read as zero values.
func Snapshot(g *core.Graph) (*View, error) {
	if g == nil {
		return nil, fmt.Errorf("network: snapshot of nil graph")
	}
	ids := g.Vertices()
	view := &View{Nodes: make([]Node, 0, len(ids))}
	for _, id := range ids {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, fmt.Errorf("network: vertex %q: %w", id, err)
		}
		view.Nodes = append(view.Nodes, nodeOf(v))
	}

	edges := g.Edges()
	view.Links = make([]Link, 0, len(edges))
	for _, e := range edges {
		view.Links = append(view.Links, Link{
			ID:        e.ID,
			Source:    e.From,
			Target:    e.To,
			TweetID:   stringAttr(e.Metadata, KeyTweetID),
			Timestamp: intAttr(e.Metadata, KeyTimestamp),
		})
	}

	return view, nil
}

// Elements flattens the view into the Cytoscape element list: nodes first,
// then edges.
func (v *View) Elements() []Element {
	out := make([]Element, 0, len(v.Nodes)+len(v.Links))
	for _, n := range v.Nodes {
		out = append(out, Element{Data: map[string]interface{}{
			"id":              n.ID,
			"label":           n.Label,
			"followers":       n.Followers,
			"friends":         n.Friends,
			"original_tweets": n.OriginalTweets,
			"interactions":    n.Interactions,
		}})
	}
	for _, l := range v.Links {
		out = append(out, Element{Data: map[string]interface{}{
			"id":        l.ID,
			"source":    l.Source,
			"target":    l.Target,
			"tweet_id":  l.TweetID,
			"timestamp": l.Timestamp,
		}})
	}
	return out
}

func nodeOf(v *core.Vertex) Node {
	return Node{
		ID:             v.ID,
		Label:          ScreenName(v),
		Followers:      intAttr(v.Metadata, KeyFollowers),
		Friends:        intAttr(v.Metadata, KeyFriends),
		OriginalTweets: listAttr(v.Metadata, KeyOriginalTweets),
		Interactions:   listAttr(v.Metadata, KeyInteractions),
	}
}

// ScreenName returns the display name Build attached to v, or its id when
// none was attached. The fallback is for display only: the vertex's
// KeyScreenName metadata keeps the resolved name, empty when no post named
// the author.
func ScreenName(v *core.Vertex) string {
	if name := stringAttr(v.Metadata, KeyScreenName); name != "" {
		return name
	}
	return v.ID
}

func stringAttr(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func intAttr(m map[string]interface{}, key string) int64 {
	switch n := m[key].(type) {
	case int64:
		return n
	case int:
		return int64(n)
	}
	return 0
}

func listAttr(m map[string]interface{}, key string) []string {
	l, ok := m[key].([]string)
	if !ok || l == nil {
		return []string{}
	}
	out := make([]string, len(l))
	copy(out, l)
	return out
}
