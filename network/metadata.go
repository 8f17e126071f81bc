package network

import (
	"fmt"

	"github.com/katalvlaran/socnet/edgelist"
	"github.com/katalvlaran/socnet/tweet"
)

// Source tags where a vertex profile was found.
type Source int

const (
	// NotFound means neither table knows the author.
	NotFound Source = iota
	// Primary means the author's own posts supplied the profile.
	Primary
	// Secondary means only the interaction side of other posts named the
	// author; follower and friend counts are unknown and reported as 0.
	Secondary
)

// String implements fmt.Stringer.
func (s Source) String() string {
	switch s {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return "not-found"
	}
}

// Profile is the resolved display data of one author.
type Profile struct {
	ScreenName string
	Followers  int64
	Friends    int64
}

// Directory holds the two metadata tables used to label vertices.
type Directory struct {
	primary   map[string]Profile
	secondary map[string]string
}

// NewDirectory builds both tables.
//
// The primary table maps every UserID of all to the last seen profile (the
// last non-empty screen name and the last follower/friend counts). The
// secondary table maps every target id of kind to the last non-empty name
// seen for it: over all for retweet/quote/reply, over the expanded mention
// rows of x for mentions.
func NewDirectory(all tweet.Batch, x *edgelist.Extraction) *Directory {
	d := &Directory{
		primary:   make(map[string]Profile),
		secondary: make(map[string]string),
	}
	for _, r := range all {
		p := d.primary[r.UserID]
		if r.UserScreenName != "" {
			p.ScreenName = r.UserScreenName
		}
		p.Followers, p.Friends = r.UserFollowers, r.UserFriends
		d.primary[r.UserID] = p
	}

	rows := all
	if x.Kind == tweet.Mention {
		rows = x.Interactions
	}
	for _, r := range rows {
		id, name, ok := edgelist.TargetOf(x.Kind, r)
		if !ok {
			continue
		}
		if prev, seen := d.secondary[id]; seen && name == "" {
			name = prev
		}
		d.secondary[id] = name
	}

	return d
}

// Lookup tries the primary table, then the secondary one.
func (d *Directory) Lookup(id string) (Profile, Source) {
	if p, ok := d.primary[id]; ok {
		return p, Primary
	}
	if name, ok := d.secondary[id]; ok {
		return Profile{ScreenName: name}, Secondary
	}
	return Profile{}, NotFound
}

// Resolve is Lookup with the not-found case surfaced as tweet.ErrIntegrity.
func (d *Directory) Resolve(id string) (Profile, Source, error) {
	p, src := d.Lookup(id)
	if src == NotFound {
		return Profile{}, NotFound, fmt.Errorf("%w: no profile for author %q in either metadata source", tweet.ErrIntegrity, id)
	}
	return p, src, nil
}

// groupIDs maps each author to the ids of their posts in b, in batch order,
// each post listed once.
func groupIDs(b tweet.Batch) map[string][]string {
	out := make(map[string][]string)
	seen := make(map[[2]string]bool)
	for _, r := range b {
		key := [2]string{r.UserID, r.ID}
		if seen[key] {
			continue
		}
		seen[key] = true
		out[r.UserID] = append(out[r.UserID], r.ID)
	}
	return out
}
