package tweet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Column names of the twitwi CSV export.
const (
	ColID              = "id"
	ColTimestampUTC    = "timestamp_utc"
	ColUserID          = "user_id"
	ColUserScreenName  = "user_screen_name"
	ColUserFollowers   = "user_followers"
	ColUserFriends     = "user_friends"
	ColText            = "text"
	ColRetweetedID     = "retweeted_id"
	ColRetweetedUserID = "retweeted_user_id"
	ColRetweetedUser   = "retweeted_user"
	ColQuotedID        = "quoted_id"
	ColQuotedUserID    = "quoted_user_id"
	ColQuotedUser      = "quoted_user"
	ColToUserID        = "to_userid"
	ColToUsername      = "to_username"
	ColMentionedIDs    = "mentioned_ids"
	ColMentionedNames  = "mentioned_names"
)

// requiredColumns must appear in every header; the rest default to empty.
var requiredColumns = []string{ColID, ColTimestampUTC, ColUserID}

// ReadCSV parses a twitwi-style CSV export with a header row. Columns may
// appear in any order and unknown columns are ignored. Numeric cells may be
// empty (read as 0); anything else unparsable is ErrInvalidArgument with the
// offending line.
func ReadCSV(r io.Reader) (Batch, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: csv input has no header", ErrInvalidArgument)
	}
	if err != nil {
		return nil, fmt.Errorf("tweet: read csv header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: csv header lacks column %q", ErrInvalidArgument, name)
		}
	}

	var batch Batch
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tweet: read csv line %d: %w", line, err)
		}
		rec, err := decodeRow(cols, row)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		batch = append(batch, rec)
	}

	return batch, nil
}

// decodeRow maps one CSV row onto a Record.
func decodeRow(cols map[string]int, row []string) (Record, error) {
	cell := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	num := func(name string) (int64, error) {
		s := cell(name)
		if s == "" {
			return 0, nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			// pandas exports integer columns with NaNs as floats ("12.0").
			f, ferr := strconv.ParseFloat(s, 64)
			if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
				return 0, fmt.Errorf("%w: column %q: %q is not a number", ErrInvalidArgument, name, s)
			}
			n = int64(f)
		}
		return n, nil
	}

	rec := Record{
		ID:              cell(ColID),
		UserID:          cell(ColUserID),
		UserScreenName:  cell(ColUserScreenName),
		Text:            cell(ColText),
		RetweetedID:     cell(ColRetweetedID),
		RetweetedUserID: cell(ColRetweetedUserID),
		RetweetedUser:   cell(ColRetweetedUser),
		QuotedID:        cell(ColQuotedID),
		QuotedUserID:    cell(ColQuotedUserID),
		QuotedUser:      cell(ColQuotedUser),
		ToUserID:        cell(ColToUserID),
		ToUsername:      cell(ColToUsername),
		MentionedIDs:    cell(ColMentionedIDs),
		MentionedNames:  cell(ColMentionedNames),
	}
	var err error
	if rec.TimestampUTC, err = num(ColTimestampUTC); err != nil {
		return Record{}, err
	}
	if rec.UserFollowers, err = num(ColUserFollowers); err != nil {
		return Record{}, err
	}
	if rec.UserFriends, err = num(ColUserFriends); err != nil {
		return Record{}, err
	}
	if rec.ID == "" || rec.UserID == "" {
		return Record{}, fmt.Errorf("%w: post id and user id are required", ErrInvalidArgument)
	}

	return rec, nil
}
