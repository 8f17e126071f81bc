package network_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/network"
	"github.com/katalvlaran/socnet/tweet"
)

func TestSnapshot(t *testing.T) {
	g, err := network.Build(fiveRecords(), nil, tweet.Retweet)
	require.NoError(t, err)

	view, err := network.Snapshot(g)
	require.NoError(t, err)
	require.Len(t, view.Nodes, 3)
	require.Len(t, view.Links, 2)

	assert.Equal(t, network.Node{
		ID: "A", Label: "alice", Followers: 32, Friends: 4,
		OriginalTweets: []string{"3"}, Interactions: []string{"4", "5"},
	}, view.Nodes[0])
	assert.Equal(t, network.Link{ID: "e1", Source: "A", Target: "B", TweetID: "4", Timestamp: 103}, view.Links[0])

	// the view is detached from the graph
	view.Nodes[0].Interactions[0] = "mutated"
	v, err := g.Vertex("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "5"}, v.Metadata[network.KeyInteractions])

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"original_tweets":["3"]`)
}

func TestSnapshotBareGraph(t *testing.T) {
	g := core.NewMultiDigraph()
	_, err := g.AddEdge("u", "v")
	require.NoError(t, err)

	view, err := network.Snapshot(g)
	require.NoError(t, err)
	assert.Equal(t, "u", view.Nodes[0].Label, "label falls back to the id")
	assert.Equal(t, []string{}, view.Nodes[0].Interactions)

	_, err = network.Snapshot(nil)
	require.Error(t, err)
}

func TestElements(t *testing.T) {
	g, err := network.Build(fiveRecords(), nil, tweet.Retweet)
	require.NoError(t, err)
	view, err := network.Snapshot(g)
	require.NoError(t, err)

	els := view.Elements()
	require.Len(t, els, 5)
	assert.Equal(t, "A", els[0].Data["id"])
	assert.Equal(t, "alice", els[0].Data["label"])
	assert.Equal(t, "B", els[3].Data["target"])
	assert.Equal(t, "5", els[4].Data["tweet_id"])
}
