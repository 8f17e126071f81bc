package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socnet/tweet"
)

const fixture = `id,timestamp_utc,user_id,user_screen_name,user_followers,user_friends,retweeted_id,retweeted_user_id,retweeted_user,to_userid,to_username,mentioned_ids,mentioned_names
1,100,B,bob,10,1,,,,,,C,carol
2,101,C,carol,20,2,,,,,,,
3,102,A,alice,30,3,1,B,bob,,,,
4,103,A,alice,30,3,2,C,carol,,,,
5,104,C,carol,20,2,,,,A,alice,,
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posts.csv")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestBuildText(t *testing.T) {
	out, err := execute(t, "build", "-i", writeFixture(t), "-t", "retweet")
	require.NoError(t, err)
	assert.Contains(t, out, "retweet network: 3 vertices, 2 edges")
	assert.Contains(t, out, "IN-DEGREE")
	assert.Contains(t, out, "alice")
}

func TestBuildJSON(t *testing.T) {
	out, err := execute(t, "build", "-i", writeFixture(t), "-t", "retweet", "--json", "--giant", "--aggregation", "hard", "--threshold", "1")
	require.NoError(t, err)

	var doc struct {
		Kind  string `json:"kind"`
		Graph struct {
			Nodes []struct {
				ID string `json:"id"`
			} `json:"nodes"`
		} `json:"graph"`
		InDegree []struct {
			ID     string `json:"id"`
			Degree int    `json:"degree"`
		} `json:"in_degree"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "retweet", doc.Kind)
	// hard(1) drops A, leaving B and C unconnected; B comes first.
	require.Len(t, doc.Graph.Nodes, 1)
	assert.Equal(t, "B", doc.Graph.Nodes[0].ID)
}

func TestBuildElements(t *testing.T) {
	out, err := execute(t, "build", "-i", writeFixture(t), "-t", "reply", "--json", "--elements")
	require.NoError(t, err)
	var doc struct {
		Graph []map[string]map[string]interface{} `json:"graph"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Graph, 3)
	assert.Equal(t, "C", doc.Graph[2]["data"]["source"])
}

func TestSummary(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "socnet.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("reduction: {aggregation: none}\n"), 0o600))

	out, err := execute(t, "summary", "-i", writeFixture(t), "-c", cfg, "-p", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+len(tweet.Kinds()))
	assert.True(t, strings.HasPrefix(lines[1], "mention"))
	assert.True(t, strings.HasPrefix(lines[2], "retweet"))
}

func TestFlagErrors(t *testing.T) {
	_, err := execute(t, "build", "-t", "retweet")
	require.ErrorIs(t, err, tweet.ErrInvalidArgument, "missing input")

	_, err = execute(t, "build", "-i", writeFixture(t), "-t", "like")
	require.ErrorIs(t, err, tweet.ErrInvalidArgument)

	_, err = execute(t, "build", "-i", writeFixture(t), "--start", "5")
	require.ErrorIs(t, err, tweet.ErrInvalidArgument, "half window")
}
