package db

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "nested", "data.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestOpen_AppliesMigrations(t *testing.T) {
	database := openTestDB(t)

	var versions []int
	rows, err := database.Query("SELECT version FROM schema_migrations ORDER BY version")
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var v int
		require.NoError(t, rows.Scan(&v))
		versions = append(versions, v)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []int{1, 2}, versions)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")
	first, err := Open(path)
	require.NoError(t, err)
	_, err = InsertTrim(first, "/videos/a.mp4", time.Minute, Trim{Start: time.Second, End: 2 * time.Second})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	trims, err := SelectTrimsByVideoPath(second, "/videos/a.mp4")
	require.NoError(t, err)
	assert.Len(t, trims, 1)
}

func TestEnsureVideo(t *testing.T) {
	database := openTestDB(t)

	id, err := EnsureVideo(database, "/videos/match.mkv", 90*time.Second)
	require.NoError(t, err)

	again, err := EnsureVideo(database, "/videos/match.mkv", 95*time.Second)
	require.NoError(t, err)
	assert.Equal(t, id, again)

	var filename, ext string
	var durationMs int64
	err = database.QueryRow("SELECT filename, extension, duration_ms FROM videos WHERE id = ?", id).Scan(&filename, &ext, &durationMs)
	require.NoError(t, err)
	assert.Equal(t, "match.mkv", filename)
	assert.Equal(t, "mkv", ext)
	assert.Equal(t, int64(95000), durationMs)
}

func TestTrims_RoundTrip(t *testing.T) {
	database := openTestDB(t)

	laterID, err := InsertTrim(database, "/videos/a.mp4", time.Minute, Trim{
		Name:  "second half",
		Start: 30 * time.Second,
		End:   45 * time.Second,
	})
	require.NoError(t, err)
	earlierID, err := InsertTrim(database, "/videos/a.mp4", time.Minute, Trim{
		Name:  "intro",
		Note:  "keep the title card",
		Start: 2500 * time.Millisecond,
		End:   10 * time.Second,
	})
	require.NoError(t, err)
	_, err = InsertTrim(database, "/videos/b.mp4", time.Minute, Trim{Start: 0, End: time.Second})
	require.NoError(t, err)

	trims, err := SelectTrimsByVideoPath(database, "/videos/a.mp4")
	require.NoError(t, err)
	require.Len(t, trims, 2)
	assert.Equal(t, earlierID, trims[0].ID)
	assert.Equal(t, "intro", trims[0].Name)
	assert.Equal(t, "keep the title card", trims[0].Note)
	assert.Equal(t, 2500*time.Millisecond, trims[0].Start)
	assert.Equal(t, 7500*time.Millisecond, trims[0].Length())
	assert.Equal(t, laterID, trims[1].ID)

	got, err := SelectTrimByID(database, laterID)
	require.NoError(t, err)
	assert.Equal(t, "second half", got.Name)
	assert.Equal(t, "/videos/a.mp4", got.VideoPath)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestInsertTrim_RejectsInvertedRange(t *testing.T) {
	database := openTestDB(t)
	_, err := InsertTrim(database, "/videos/a.mp4", time.Minute, Trim{Start: 5 * time.Second, End: time.Second})
	assert.Error(t, err)
}

func TestDeleteTrim(t *testing.T) {
	database := openTestDB(t)
	id, err := InsertTrim(database, "/videos/a.mp4", time.Minute, Trim{Start: 0, End: time.Second})
	require.NoError(t, err)

	require.NoError(t, DeleteTrim(database, id))

	_, err = SelectTrimByID(database, id)
	assert.ErrorIs(t, err, ErrTrimNotFound)

	err = DeleteTrim(database, id)
	assert.ErrorIs(t, err, ErrTrimNotFound)
}

func TestSelectTrimsByVideoPath_UnknownVideo(t *testing.T) {
	database := openTestDB(t)
	trims, err := SelectTrimsByVideoPath(database, "/nope.mp4")
	require.NoError(t, err)
	assert.Empty(t, trims)
}

func TestSelectAllTrims(t *testing.T) {
	database := openTestDB(t)
	_, err := InsertTrim(database, "/videos/b.mp4", time.Minute, Trim{Name: "b", End: time.Second})
	require.NoError(t, err)
	_, err = InsertTrim(database, "/videos/a.mp4", time.Minute, Trim{Name: "a2", Start: 5 * time.Second, End: 6 * time.Second})
	require.NoError(t, err)
	_, err = InsertTrim(database, "/videos/a.mp4", time.Minute, Trim{Name: "a1", End: time.Second})
	require.NoError(t, err)

	trims, err := SelectAllTrims(database)
	require.NoError(t, err)
	require.Len(t, trims, 3)

	var names []string
	for _, tr := range trims {
		names = append(names, tr.Name)
	}
	assert.Equal(t, []string{"a1", "a2", "b"}, names)
	assert.Equal(t, "/videos/b.mp4", trims[2].VideoPath)
}

func TestListMigrations_Sorted(t *testing.T) {
	ms, err := listMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, ms)
	for i := 1; i < len(ms); i++ {
		assert.Less(t, ms[i-1].version, ms[i].version)
	}
	assert.Equal(t, "001_trims_video_index.sql", ms[0].file)
}
