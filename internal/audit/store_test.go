package audit

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/talent-concierge/fit-scorer/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestRecordAndList(t *testing.T) {
	store := openTestStore(t)

	first := &Entry{
		Timestamp: time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC),
		Candidate: "Aisha Khan",
		Priority:  true,
		Role:      "Guest Experience Supervisor",
		Score:     0.7,
	}
	require.NoError(t, store.Record(first))
	require.NotEmpty(t, first.ID)

	second := &Entry{
		Timestamp: time.Date(2025, time.March, 3, 11, 0, 0, 0, time.UTC),
		Candidate: "Armaan Satish",
		Role:      "Guest Experience Supervisor",
		Score:     0.2,
	}
	require.NoError(t, store.Record(second))

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "Aisha Khan", entries[0].Candidate)
	require.True(t, entries[0].Priority)
	require.Equal(t, first.Timestamp, entries[0].Timestamp)
	require.Equal(t, "Armaan Satish", entries[1].Candidate)
	require.False(t, entries[1].Priority)
}

func TestRecordAssignsTimestamp(t *testing.T) {
	store := openTestStore(t)

	e := &Entry{Candidate: "Aisha Khan", Role: "Supervisor", Score: 0.5}
	require.NoError(t, store.Record(e))
	require.False(t, e.Timestamp.IsZero())
}

func TestExportCSV(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Record(&Entry{
		Timestamp:       time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC),
		Candidate:       "Aisha Khan",
		Priority:        true,
		Role:            "Guest Experience Supervisor",
		Score:           0.667,
		MatchedCriteria: "Customer Empathy (guest experience)",
		Weights:         `{"Customer Empathy":30}`,
	}))

	var buf bytes.Buffer
	require.NoError(t, store.ExportCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t,
		"timestamp,candidate_id,candidate_name,priority_program,role_title,fit_score,matched_criteria,criteria_weights_json",
		lines[0],
	)
	require.Contains(t, lines[1], "Aisha Khan")
	require.Contains(t, lines[1], "66.70")
	require.Contains(t, lines[1], "true")
}

func TestNewEntry(t *testing.T) {
	criteria := []scoring.Criterion{
		{Name: "Customer Empathy", Weight: 2, Keywords: []string{"guest experience"}},
		{Name: "Arabic", Weight: 1, Keywords: []string{"arabic"}},
	}

	result, err := scoring.Score(context.Background(), scoring.Input{
		ResumeText: "Led guest experience programs.",
		Criteria:   criteria,
	})
	require.NoError(t, err)

	entry, err := NewEntry("Aisha Khan", "Supervisor", true, criteria, result)
	require.NoError(t, err)

	require.Equal(t, "Aisha Khan", entry.Candidate)
	require.True(t, entry.Priority)
	require.Equal(t, result.Total, entry.Score)
	require.Equal(t, "Customer Empathy (guest experience)", entry.MatchedCriteria)
	require.JSONEq(t, `{"Customer Empathy": 2, "Arabic": 1}`, entry.Weights)
}

func TestNewEntryNothingMatched(t *testing.T) {
	criteria := []scoring.Criterion{{Name: "Python", Weight: 1}}

	result, err := scoring.Score(context.Background(), scoring.Input{
		ResumeText: "hospitality background",
		Criteria:   criteria,
	})
	require.NoError(t, err)

	entry, err := NewEntry("Armaan Satish", "Supervisor", false, criteria, result)
	require.NoError(t, err)
	require.Equal(t, "None", entry.MatchedCriteria)
}
