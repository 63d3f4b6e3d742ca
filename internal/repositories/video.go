package repositories

import (
	"database/sql"
	"fmt"

	"github.com/desertthunder/ytplayer/internal/models"
	"github.com/desertthunder/ytplayer/internal/shared"
)

// VideoRepository stores catalog videos and their tags.
type VideoRepository struct {
	db *sql.DB
}

// NewVideoRepository creates a new VideoRepository with the given database connection
func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create inserts a video and its tags, keeping tag order.
func (r *VideoRepository) Create(video models.Video) error {
	if err := video.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sequence, err := NextSequence(r.db, "videos")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO videos (id, sequence, title) VALUES (?, ?, ?)`, video.ID, sequence, video.Title)
	if isConstraintViolation(err) {
		return fmt.Errorf("%w: %s", shared.ErrDuplicateID, video.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to insert video: %w", err)
	}

	for i, tag := range video.Tags {
		if _, err := tx.Exec(`INSERT INTO video_tags (video_id, position, tag) VALUES (?, ?, ?)`, video.ID, i, tag); err != nil {
			return fmt.Errorf("failed to insert tag %q: %w", tag, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit video: %w", err)
	}

	return nil
}

// Seed inserts every video not already stored and returns how many were added.
func (r *VideoRepository) Seed(videos []models.Video) (int, error) {
	added := 0
	for _, v := range videos {
		if _, err := r.Get(v.ID); err == nil {
			continue
		}
		if err := r.Create(v); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// Get retrieves a video by id with its tags.
func (r *VideoRepository) Get(id string) (models.Video, error) {
	var title string
	err := r.db.QueryRow(`SELECT title FROM videos WHERE id = ?`, id).Scan(&title)
	if err == sql.ErrNoRows {
		return models.Video{}, fmt.Errorf("%w: %s", shared.ErrVideoNotFound, id)
	}
	if err != nil {
		return models.Video{}, fmt.Errorf("failed to scan video: %w", err)
	}

	tags, err := r.tags(`SELECT video_id, tag FROM video_tags WHERE video_id = ? ORDER BY position ASC`, id)
	if err != nil {
		return models.Video{}, err
	}

	return models.NewVideo(id, title, tags[id]...), nil
}

// List returns every video in insertion order.
func (r *VideoRepository) List() ([]models.Video, error) {
	rows, err := r.db.Query(`SELECT id, title FROM videos ORDER BY sequence ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer rows.Close()

	var videos []models.Video
	for rows.Next() {
		var id, title string
		if err := rows.Scan(&id, &title); err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, models.Video{ID: id, Title: title})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	tags, err := r.tags(`SELECT video_id, tag FROM video_tags ORDER BY video_id, position ASC`)
	if err != nil {
		return nil, err
	}
	for i := range videos {
		videos[i].Tags = tags[videos[i].ID]
	}

	return videos, nil
}

// Count returns the number of stored videos.
func (r *VideoRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM videos`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count videos: %w", err)
	}
	return n, nil
}

// Delete removes a video; its tags go with it.
func (r *VideoRepository) Delete(id string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM video_tags WHERE video_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete tags: %w", err)
	}

	result, err := tx.Exec(`DELETE FROM videos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrVideoNotFound, id)
	}

	return tx.Commit()
}

// tags groups tag rows by video id.
func (r *VideoRepository) tags(query string, args ...any) (map[string][]string, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	tags := make(map[string][]string)
	for rows.Next() {
		var videoID, tag string
		if err := rows.Scan(&videoID, &tag); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags[videoID] = append(tags[videoID], tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return tags, nil
}
