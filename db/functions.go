package db

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ErrTrimNotFound is returned when a trim ID does not exist.
var ErrTrimNotFound = errors.New("trim not found")

// EnsureVideo returns the existing video ID for the given path, or inserts a new row and returns its ID.
// A positive duration is always written so the stored length stays current.
func EnsureVideo(db *sql.DB, path string, duration time.Duration) (int64, error) {
	var videoID int64
	err := db.QueryRow(SelectVideoByPathSQL, path).Scan(&videoID)
	if err == nil {
		if duration > 0 {
			if _, err := db.Exec(UpdateVideoDurationSQL, duration.Milliseconds(), videoID); err != nil {
				return 0, fmt.Errorf("update video duration: %w", err)
			}
		}
		return videoID, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("select video by path: %w", err)
	}

	base := filepath.Base(path)
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	result, err := db.Exec(InsertVideoSQL, path, base, ext, duration.Milliseconds())
	if err != nil {
		return 0, fmt.Errorf("insert video: %w", err)
	}
	return result.LastInsertId()
}

// InsertTrim saves a selection for the video at videoPath and returns its ID.
func InsertTrim(db *sql.DB, videoPath string, videoDuration time.Duration, t Trim) (int64, error) {
	if t.End < t.Start {
		return 0, fmt.Errorf("insert trim: end %v before start %v", t.End, t.Start)
	}
	videoID, err := EnsureVideo(db, videoPath, videoDuration)
	if err != nil {
		return 0, err
	}
	result, err := db.Exec(InsertTrimSQL, videoID, t.Name, t.Note, t.Start.Milliseconds(), t.End.Milliseconds())
	if err != nil {
		return 0, fmt.Errorf("insert trim: %w", err)
	}
	return result.LastInsertId()
}

// SelectTrimsByVideoPath returns the saved selections of a video ordered by start.
func SelectTrimsByVideoPath(db *sql.DB, videoPath string) ([]Trim, error) {
	return queryTrims(db, SelectTrimsByVideoPathSQL, videoPath)
}

// SelectAllTrims returns every saved selection, grouped by video.
func SelectAllTrims(db *sql.DB) ([]Trim, error) {
	return queryTrims(db, SelectAllTrimsSQL)
}

func queryTrims(db *sql.DB, query string, args ...any) ([]Trim, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("select trims: %w", err)
	}
	defer rows.Close()

	var trims []Trim
	for rows.Next() {
		t, err := scanTrim(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trim: %w", err)
		}
		trims = append(trims, t)
	}
	return trims, rows.Err()
}

// SelectTrimByID returns a single saved selection.
func SelectTrimByID(db *sql.DB, id int64) (*Trim, error) {
	t, err := scanTrim(db.QueryRow(SelectTrimByIDSQL, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %d", ErrTrimNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("select trim %d: %w", id, err)
	}
	return &t, nil
}

// DeleteTrim removes a saved selection.
func DeleteTrim(db *sql.DB, id int64) error {
	result, err := db.Exec(DeleteTrimSQL, id)
	if err != nil {
		return fmt.Errorf("delete trim %d: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete trim %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrTrimNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrim(s scanner) (Trim, error) {
	var t Trim
	var startMs, endMs int64
	var createdAt sql.NullTime
	if err := s.Scan(&t.ID, &t.VideoID, &t.VideoPath, &t.Name, &t.Note, &startMs, &endMs, &createdAt); err != nil {
		return Trim{}, err
	}
	t.Start = time.Duration(startMs) * time.Millisecond
	t.End = time.Duration(endMs) * time.Millisecond
	if createdAt.Valid {
		t.CreatedAt = createdAt.Time
	}
	return t, nil
}
