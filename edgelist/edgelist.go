// Package edgelist maps a batch of interaction records to the typed edge
// tuples of one interaction kind.
//
// Column semantics per kind:
//
//	retweet: RetweetedID present                 → UserID → RetweetedUserID
//	quote:   QuotedID and QuotedUserID present   → UserID → QuotedUserID
//	reply:   ToUserID present                    → UserID → ToUserID
//	mention: both mention lists non-empty and the post is not a retweet,
//	         quote or reply; one tuple per mentioned id → UserID → mentioned id
//
// Mentions are only counted on otherwise untagged posts so the same edge is
// never counted under two kinds.
package edgelist

import (
	"fmt"

	"github.com/katalvlaran/socnet/tweet"
)

// Tuple is one directed interaction.
type Tuple struct {
	Source    string
	Target    string
	TweetID   string
	Timestamp int64

	// TargetName is the target's display name as embedded in the source post
	// (retweeted user, quoted user, reply-to user, mentioned name).
	TargetName string
}

// Extraction is the result of Extract.
type Extraction struct {
	Kind tweet.Kind

	// Interactions is the filtered sub-batch. For mentions it holds one row
	// per mention, each carrying a single id/name pair.
	Interactions tweet.Batch

	// Tuples lists the edges in batch order (mention order within a post).
	Tuples []Tuple
}

// rule describes how one kind selects records and names the target.
type rule struct {
	keep   func(tweet.Record) bool
	target func(tweet.Record) (id, name string)
}

var rules = map[tweet.Kind]rule{
	tweet.Retweet: {
		keep:   func(r tweet.Record) bool { return r.RetweetedID != "" },
		target: func(r tweet.Record) (string, string) { return r.RetweetedUserID, r.RetweetedUser },
	},
	tweet.Quote: {
		keep:   func(r tweet.Record) bool { return r.QuotedID != "" && r.QuotedUserID != "" },
		target: func(r tweet.Record) (string, string) { return r.QuotedUserID, r.QuotedUser },
	},
	tweet.Reply: {
		keep:   func(r tweet.Record) bool { return r.ToUserID != "" },
		target: func(r tweet.Record) (string, string) { return r.ToUserID, r.ToUsername },
	},
	tweet.Mention: {
		keep: func(r tweet.Record) bool {
			return r.HasMentions() && !r.IsRetweet() && !r.IsQuote() && !r.IsReply()
		},
		// expanded rows carry exactly one pair
		target: func(r tweet.Record) (string, string) { return r.MentionedIDs, r.MentionedNames },
	},
}

// Extract selects the records relevant to kind and turns them into tuples.
//
// Errors:
//   - tweet.ErrInvalidArgument for an unknown kind, for mention lists of
//     different length, and for a retained record with an empty target id.
func Extract(b tweet.Batch, kind tweet.Kind) (*Extraction, error) {
	rl, ok := rules[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown interaction type %q", tweet.ErrInvalidArgument, kind)
	}

	rows := b.Filter(rl.keep)
	if kind == tweet.Mention {
		var err error
		if rows, err = expandMentions(rows); err != nil {
			return nil, err
		}
	}

	x := &Extraction{Kind: kind, Interactions: rows, Tuples: make([]Tuple, 0, len(rows))}
	for _, r := range rows {
		id, name := rl.target(r)
		if id == "" {
			return nil, fmt.Errorf("%w: %s post %q has no target author id", tweet.ErrInvalidArgument, kind, r.ID)
		}
		x.Tuples = append(x.Tuples, Tuple{
			Source:     r.UserID,
			Target:     id,
			TweetID:    r.ID,
			Timestamp:  r.TimestampUTC,
			TargetName: name,
		})
	}

	return x, nil
}

// expandMentions turns each record into one row per mentioned id.
func expandMentions(b tweet.Batch) (tweet.Batch, error) {
	out := make(tweet.Batch, 0, len(b))
	for _, r := range b {
		ids, names, err := r.Mentions()
		if err != nil {
			return nil, err
		}
		for i := range ids {
			row := r
			row.MentionedIDs, row.MentionedNames = ids[i], names[i]
			out = append(out, row)
		}
	}
	return out, nil
}

// TargetOf returns the target author of r for kind, as embedded in r itself.
// For mentions only single-pair (expanded) rows are meaningful. ok is false
// when kind is unknown or r carries no target id.
func TargetOf(kind tweet.Kind, r tweet.Record) (id, name string, ok bool) {
	rl, known := rules[kind]
	if !known {
		return "", "", false
	}
	id, name = rl.target(r)
	return id, name, id != ""
}
