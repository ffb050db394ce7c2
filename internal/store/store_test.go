package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testRun(id string, created time.Time) Run {
	return Run{
		ID:         id,
		Document:   "article.md",
		Mode:       "check",
		Style:      "apa",
		CreatedAt:  created,
		Accuracy:   0.75,
		Citations:  2,
		Claims:     3,
		ResultJSON: `{"run_id":"` + id + `"}`,
	}
}

func TestStore_SaveAndGetRun(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	created := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
	require.NoError(t, s.SaveRun(ctx, testRun("run-1", created)))

	got, err := s.GetRun(ctx, "run-1")
	require.NoError(t, err)

	assert.Equal(t, "run-1", got.ID)
	assert.Equal(t, "article.md", got.Document)
	assert.Equal(t, "check", got.Mode)
	assert.Equal(t, 0.75, got.Accuracy)
	assert.Equal(t, 2, got.Citations)
	assert.Equal(t, 3, got.Claims)
	assert.True(t, got.CreatedAt.Equal(created))
}

func TestStore_ListRuns_NewestFirst(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	base := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveRun(ctx, testRun("run-old", base)))
	require.NoError(t, s.SaveRun(ctx, testRun("run-new", base.Add(time.Hour))))

	runs, err := s.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, "run-new", runs[0].ID)
	assert.Equal(t, "run-old", runs[1].ID)
}

func TestStore_ListRuns_Limit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	base := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.SaveRun(ctx, testRun(string(rune('a'+i)), base.Add(time.Duration(i)*time.Minute))))
	}

	runs, err := s.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestStore_DuplicateID(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	run := testRun("run-1", time.Now().UTC())
	require.NoError(t, s.SaveRun(ctx, run))
	assert.Error(t, s.SaveRun(ctx, run))
}
