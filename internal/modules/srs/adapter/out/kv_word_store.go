package out

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"sukhan/internal/modules/srs/domain"
	srsout "sukhan/internal/modules/srs/port/out"
	"sukhan/internal/platform/clock"
	"sukhan/internal/platform/kvstore"
)

const (
	TableKey   = "sukhan_word_progress"
	dateLayout = "2006-01-02"
)

type KVWordStateStore struct {
	store kvstore.Store
	log   logrus.FieldLogger
}

func NewKVWordStateStore(store kvstore.Store, log logrus.FieldLogger) srsout.WordStateStore {
	return &KVWordStateStore{store: store, log: log}
}

type wordStateRecord struct {
	Rating      domain.Rating `json:"rating"`
	Interval    int           `json:"interval"`
	Ease        float64       `json:"ease"`
	NextReview  *string       `json:"nextReview"`
	ReviewCount int           `json:"reviewCount"`
	LastSeen    string        `json:"lastSeen"`
}

// Load decodes the table entry by entry. An unreadable entry is skipped with
// a warning so the remaining words survive the next save.
func (s *KVWordStateStore) Load(ctx context.Context) (domain.Table, error) {
	entries := map[string]json.RawMessage{}
	if err := kvstore.GetJSON(ctx, s.store, TableKey, &entries); err != nil {
		return nil, err
	}
	table := make(domain.Table, len(entries))
	for wordID, raw := range entries {
		state, err := decodeEntry(raw)
		if err != nil {
			s.log.WithError(err).WithField("word_id", wordID).Warn("skipping unreadable word state")
			continue
		}
		table[wordID] = state
	}
	return table, nil
}

func (s *KVWordStateStore) Save(ctx context.Context, table domain.Table) error {
	records := make(map[string]wordStateRecord, len(table))
	for wordID, state := range table {
		records[wordID] = toRecord(state)
	}
	return kvstore.SetJSON(ctx, s.store, TableKey, records)
}

func (s *KVWordStateStore) Reset(ctx context.Context) error {
	return s.store.Delete(ctx, TableKey)
}

func toRecord(state domain.WordState) wordStateRecord {
	record := wordStateRecord{
		Rating:      state.Rating,
		Interval:    state.Interval,
		Ease:        state.Ease,
		ReviewCount: state.ReviewCount,
		LastSeen:    state.LastSeen.Format(dateLayout),
	}
	if state.NextReview != nil {
		next := state.NextReview.Format(dateLayout)
		record.NextReview = &next
	}
	return record
}

func decodeEntry(raw json.RawMessage) (domain.WordState, error) {
	var record wordStateRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return domain.WordState{}, err
	}
	return fromRecord(record)
}

func fromRecord(record wordStateRecord) (domain.WordState, error) {
	state := domain.WordState{
		Rating:      record.Rating,
		Interval:    record.Interval,
		Ease:        record.Ease,
		ReviewCount: record.ReviewCount,
	}
	if record.LastSeen != "" {
		lastSeen, err := parseDay(record.LastSeen)
		if err != nil {
			return domain.WordState{}, fmt.Errorf("parse lastSeen: %w", err)
		}
		state.LastSeen = lastSeen
	}
	if record.NextReview != nil {
		next, err := parseDay(*record.NextReview)
		if err != nil {
			return domain.WordState{}, fmt.Errorf("parse nextReview: %w", err)
		}
		state.NextReview = &next
	}
	return state.Normalize(), nil
}

// parseDay accepts a calendar day or a full RFC 3339 timestamp, which is
// truncated to its UTC day.
func parseDay(value string) (time.Time, error) {
	if day, err := time.Parse(dateLayout, value); err == nil {
		return day, nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", value, err)
	}
	return clock.Day(ts), nil
}
