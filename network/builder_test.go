package network_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/edgelist"
	"github.com/katalvlaran/socnet/network"
	"github.com/katalvlaran/socnet/tweet"
)

// fiveRecords holds three original posts and two retweets by A (of B and C).
func fiveRecords() tweet.Batch {
	return tweet.Batch{
		{ID: "1", TimestampUTC: 100, UserID: "B", UserScreenName: "bob", UserFollowers: 10, UserFriends: 1},
		{ID: "2", TimestampUTC: 101, UserID: "C", UserScreenName: "carol", UserFollowers: 20, UserFriends: 2},
		{ID: "3", TimestampUTC: 102, UserID: "A", UserScreenName: "alice", UserFollowers: 30, UserFriends: 3},
		{ID: "4", TimestampUTC: 103, UserID: "A", UserScreenName: "alice", UserFollowers: 31, UserFriends: 3,
			RetweetedID: "1", RetweetedUserID: "B", RetweetedUser: "bob"},
		{ID: "5", TimestampUTC: 104, UserID: "A", UserScreenName: "alice", UserFollowers: 32, UserFriends: 4,
			RetweetedID: "2", RetweetedUserID: "C", RetweetedUser: "carol"},
	}
}

func meta(t *testing.T, g *core.Graph, id string) map[string]interface{} {
	t.Helper()
	v, err := g.Vertex(id)
	require.NoError(t, err)
	return v.Metadata
}

func TestBuildRetweetExample(t *testing.T) {
	g, err := network.Build(fiveRecords(), nil, tweet.Retweet)
	require.NoError(t, err)

	require.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	require.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("A", "C"))

	a := meta(t, g, "A")
	assert.Equal(t, "alice", a[network.KeyScreenName])
	assert.Equal(t, int64(32), a[network.KeyFollowers], "last record wins")
	assert.Equal(t, int64(4), a[network.KeyFriends])
	assert.Equal(t, []string{"3"}, a[network.KeyOriginalTweets])
	assert.Equal(t, []string{"4", "5"}, a[network.KeyInteractions])

	b := meta(t, g, "B")
	assert.Equal(t, []string{"1"}, b[network.KeyOriginalTweets])
	assert.Equal(t, []string{}, b[network.KeyInteractions])

	edges := g.Edges()
	assert.Equal(t, "4", edges[0].Metadata[network.KeyTweetID])
	assert.Equal(t, int64(103), edges[0].Metadata[network.KeyTimestamp])
}

func TestBuildSecondaryFallback(t *testing.T) {
	b := tweet.Batch{
		{ID: "1", TimestampUTC: 1, UserID: "A", UserScreenName: "alice", UserFollowers: 5, UserFriends: 6,
			RetweetedID: "99", RetweetedUserID: "X", RetweetedUser: "old-x"},
		{ID: "2", TimestampUTC: 2, UserID: "A", UserScreenName: "alice", UserFollowers: 5, UserFriends: 6,
			RetweetedID: "98", RetweetedUserID: "X", RetweetedUser: "xavier"},
	}
	g, err := network.Build(b, nil, tweet.Retweet)
	require.NoError(t, err)

	x := meta(t, g, "X")
	assert.Equal(t, "xavier", x[network.KeyScreenName])
	assert.Equal(t, int64(0), x[network.KeyFollowers])
	assert.Equal(t, int64(0), x[network.KeyFriends])
	assert.Equal(t, []string{}, x[network.KeyOriginalTweets])
	assert.Equal(t, 2, g.EdgeCount(), "parallel edges are kept")
}

func TestBuildEmpty(t *testing.T) {
	for _, kind := range tweet.Kinds() {
		g, err := network.Build(nil, nil, kind)
		require.NoError(t, err, kind)
		assert.Zero(t, g.VertexCount(), kind)
		assert.Zero(t, g.EdgeCount(), kind)
	}

	// records exist, none of the selected kind
	g, err := network.Build(fiveRecords(), nil, tweet.Quote)
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
}

func TestBuildWindow(t *testing.T) {
	w, err := tweet.NewWindow(100, 103)
	require.NoError(t, err)
	g, err := network.Build(fiveRecords(), w, tweet.Retweet)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, g.Vertices())

	// primary profile still comes from the whole batch
	assert.Equal(t, int64(32), meta(t, g, "A")[network.KeyFollowers])
	assert.Equal(t, []string{"4"}, meta(t, g, "A")[network.KeyInteractions])
}

func TestBuildInvalidArguments(t *testing.T) {
	_, err := network.Build(fiveRecords(), nil, tweet.Kind("like"))
	require.ErrorIs(t, err, tweet.ErrInvalidArgument)

	_, err = network.Build(fiveRecords(), &tweet.Window{Start: 5, End: 1}, tweet.Retweet)
	require.ErrorIs(t, err, tweet.ErrInvalidArgument)

	bad := tweet.Batch{{ID: "1", UserID: "A", MentionedIDs: "B|C", MentionedNames: "bob"}}
	_, err = network.Build(bad, nil, tweet.Mention)
	require.ErrorIs(t, err, tweet.ErrInvalidArgument)
}

func TestBuildMentionInteractionsListedOnce(t *testing.T) {
	b := tweet.Batch{
		{ID: "1", TimestampUTC: 1, UserID: "A", UserScreenName: "alice", MentionedIDs: "B|C", MentionedNames: "bob|carol"},
		{ID: "2", TimestampUTC: 2, UserID: "A", UserScreenName: "alice", MentionedIDs: "A", MentionedNames: "alice"},
	}
	g, err := network.Build(b, nil, tweet.Mention)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2"}, meta(t, g, "A")[network.KeyInteractions])
	assert.Equal(t, "carol", meta(t, g, "C")[network.KeyScreenName])
	in, out, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 1, in, "self-mention is a loop")
	assert.Equal(t, 3, out)
}

func TestBuildLogsCounts(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	_, err := network.Build(fiveRecords(), nil, tweet.Retweet, network.WithLogger(l))
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, 2, entry.Data["tuples"])
	assert.Equal(t, 3, entry.Data["vertices"])
}

func TestDirectory(t *testing.T) {
	b := fiveRecords()
	x, err := edgelist.Extract(b, tweet.Retweet)
	require.NoError(t, err)
	dir := network.NewDirectory(b, x)

	p, src := dir.Lookup("B")
	assert.Equal(t, network.Primary, src)
	assert.Equal(t, network.Profile{ScreenName: "bob", Followers: 10, Friends: 1}, p)

	_, src, err = dir.Resolve("Z")
	assert.Equal(t, network.NotFound, src)
	require.ErrorIs(t, err, tweet.ErrIntegrity)
	assert.Equal(t, "not-found", src.String())

	// Secondary-only author: an entry exists even without a name.
	b = tweet.Batch{{ID: "9", UserID: "A", ToUserID: "Q"}}
	x, err = edgelist.Extract(b, tweet.Reply)
	require.NoError(t, err)
	p, src, err = network.NewDirectory(b, x).Resolve("Q")
	require.NoError(t, err)
	assert.Equal(t, network.Secondary, src)
	assert.Equal(t, network.Profile{}, p)
}

func TestBuildMentionSecondaryFallback(t *testing.T) {
	b := tweet.Batch{
		{ID: "1", TimestampUTC: 1, UserID: "A", UserScreenName: "alice", MentionedIDs: "Z|Y", MentionedNames: "zoe|"},
	}
	g, err := network.Build(b, nil, tweet.Mention)
	require.NoError(t, err)

	z := meta(t, g, "Z")
	assert.Equal(t, "zoe", z[network.KeyScreenName], "name taken from the mention list")
	assert.Equal(t, int64(0), z[network.KeyFollowers])
	assert.Equal(t, int64(0), z[network.KeyFriends])

	x, err := edgelist.Extract(b, tweet.Mention)
	require.NoError(t, err)
	p, src := network.NewDirectory(b, x).Lookup("Z")
	assert.Equal(t, network.Secondary, src)
	assert.Equal(t, "zoe", p.ScreenName)

	// An unnamed mention keeps its empty name; only the rendered label
	// falls back to the id.
	assert.Equal(t, "", meta(t, g, "Y")[network.KeyScreenName])
	view, err := network.Snapshot(g)
	require.NoError(t, err)
	labels := map[string]string{}
	for _, n := range view.Nodes {
		labels[n.ID] = n.Label
	}
	assert.Equal(t, map[string]string{"A": "alice", "Z": "zoe", "Y": "Y"}, labels)
}
