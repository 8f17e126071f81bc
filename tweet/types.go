// Package tweet defines the interaction record batch the network pipeline
// consumes: one Record per post in the twitwi column layout, the interaction
// Kind selector, the optional time Window, and the error kinds shared by the
// pipeline stages.
package tweet

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds shared by every pipeline stage. Stages wrap them with context;
// callers test with errors.Is.
var (
	// ErrInvalidArgument reports caller input that cannot be honoured: unknown
	// interaction kind, malformed window, negative threshold, or mismatched
	// mention lists.
	ErrInvalidArgument = errors.New("tweet: invalid argument")

	// ErrIntegrity reports data the pipeline cannot reconcile, such as a
	// vertex whose profile is in neither metadata source.
	ErrIntegrity = errors.New("tweet: integrity violation")
)

// ListSeparator joins multi-valued cells (mentioned ids and names).
const ListSeparator = "|"

// Kind selects the interaction type a network is built from.
type Kind string

// Supported interaction kinds.
const (
	Retweet Kind = "retweet"
	Quote   Kind = "quote"
	Reply   Kind = "reply"
	Mention Kind = "mention"
)

// Kinds lists every supported interaction kind in display order.
func Kinds() []Kind {
	return []Kind{Mention, Retweet, Reply, Quote}
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case Retweet, Quote, Reply, Mention:
		return true
	}
	return false
}

// ParseKind converts s into a Kind. There is no default: anything outside
// the four supported names fails with ErrInvalidArgument.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: unknown interaction type %q", ErrInvalidArgument, s)
	}
	return k, nil
}

// Record is one post. Empty strings stand for absent (null) values.
type Record struct {
	ID             string
	TimestampUTC   int64
	UserID         string
	UserScreenName string
	UserFollowers  int64
	UserFriends    int64
	Text           string

	RetweetedID     string
	RetweetedUserID string
	RetweetedUser   string

	QuotedID     string
	QuotedUserID string
	QuotedUser   string

	ToUserID   string
	ToUsername string

	// MentionedIDs and MentionedNames are ListSeparator-joined and pair up
	// positionally.
	MentionedIDs   string
	MentionedNames string
}

// IsRetweet reports whether the record retweets another post.
func (r Record) IsRetweet() bool { return r.RetweetedID != "" }

// IsQuote reports whether the record quotes another post.
func (r Record) IsQuote() bool { return r.QuotedID != "" }

// IsReply reports whether the record replies to another author.
func (r Record) IsReply() bool { return r.ToUserID != "" }

// IsOriginal reports whether the record is neither a retweet nor a quote.
func (r Record) IsOriginal() bool { return !r.IsRetweet() && !r.IsQuote() }

// HasMentions reports whether both mention lists are non-empty.
func (r Record) HasMentions() bool { return r.MentionedIDs != "" && r.MentionedNames != "" }

// Mentions splits the mention lists and pairs them. Lists of different
// length, or an empty id, are reported as ErrInvalidArgument.
func (r Record) Mentions() (ids, names []string, err error) {
	ids = SplitList(r.MentionedIDs)
	names = SplitList(r.MentionedNames)
	if len(ids) != len(names) {
		return nil, nil, fmt.Errorf("%w: post %q has %d mentioned ids but %d names",
			ErrInvalidArgument, r.ID, len(ids), len(names))
	}
	for i, id := range ids {
		if id == "" {
			return nil, nil, fmt.Errorf("%w: post %q has an empty mentioned id at position %d",
				ErrInvalidArgument, r.ID, i)
		}
	}
	return ids, names, nil
}

// SplitList splits a ListSeparator-joined cell. An empty cell yields nil.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ListSeparator)
}

// Batch is an ordered set of records. Pipeline stages never mutate it.
type Batch []Record

// Filter returns the records satisfying keep, preserving order.
func (b Batch) Filter(keep func(Record) bool) Batch {
	out := make(Batch, 0, len(b))
	for _, r := range b {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Within returns the records whose timestamp lies in w. A nil window keeps
// the whole batch.
func (b Batch) Within(w *Window) Batch {
	if w == nil {
		return b
	}
	return b.Filter(func(r Record) bool { return w.Contains(r.TimestampUTC) })
}

// Originals returns the records that are neither retweets nor quotes.
func (b Batch) Originals() Batch {
	return b.Filter(Record.IsOriginal)
}

// Window is an inclusive [Start, End] range of epoch timestamps.
type Window struct {
	Start int64
	End   int64
}

// NewWindow validates and returns a window. Start after End is malformed.
func NewWindow(start, end int64) (*Window, error) {
	w := &Window{Start: start, End: end}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Validate reports a malformed window.
func (w *Window) Validate() error {
	if w.Start > w.End {
		return fmt.Errorf("%w: time window start %d is after end %d", ErrInvalidArgument, w.Start, w.End)
	}
	return nil
}

// Contains reports whether ts lies in the window, bounds included.
func (w *Window) Contains(ts int64) bool {
	return ts >= w.Start && ts <= w.End
}

// WindowFrom builds a window from optional bounds. Both must be given
// together or both omitted (nil result, no error).
func WindowFrom(start, end *int64) (*Window, error) {
	switch {
	case start == nil && end == nil:
		return nil, nil
	case start == nil || end == nil:
		return nil, fmt.Errorf("%w: time window needs both start and end", ErrInvalidArgument)
	}
	return NewWindow(*start, *end)
}
