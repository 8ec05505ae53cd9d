package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/amnayelamri/ResinByDounia/internal/logger"
	"github.com/amnayelamri/ResinByDounia/models"
)

// tutorialRepository is the PostgreSQL-backed implementation of
// [TutorialRepository].
type tutorialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTutorialRepository constructs a [TutorialRepository] backed by the
// provided database connection and logger.
func NewTutorialRepository(db *DB, logger *logger.Logger) TutorialRepository {
	logger.Debug().Msg("creating tutorial repository")
	return &tutorialRepository{
		db:     db,
		logger: logger,
	}
}

// ListTutorials returns every tutorial ordered by creation time, newest first.
func (r *tutorialRepository) ListTutorials(ctx context.Context) ([]models.Tutorial, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTutorials)
	if err != nil {
		log.Err(err).Str("func", "*tutorialRepository.ListTutorials").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tutorials := make([]models.Tutorial, 0)
	for rows.Next() {
		var tutorial models.Tutorial

		if err := rows.Scan(&tutorial.ID, &tutorial.Title, &tutorial.Description, &tutorial.VideoURL, &tutorial.Thumbnail, &tutorial.CreatedAt); err != nil {
			log.Err(err).Str("func", "*tutorialRepository.ListTutorials").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		tutorials = append(tutorials, tutorial)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tutorials, nil
}

// CreateTutorial persists a new tutorial and returns it with server-assigned
// fields populated from the RETURNING clause.
func (r *tutorialRepository) CreateTutorial(ctx context.Context, tutorial models.Tutorial) (models.Tutorial, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTutorial, tutorial.Title, tutorial.Description, tutorial.VideoURL, tutorial.Thumbnail)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*tutorialRepository.CreateTutorial").Msg("error: row is nil")
		return models.Tutorial{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return scanTutorial(row)
}

// UpdateTutorial applies a partial update and returns the updated row.
// Returns [ErrTutorialNotFound] when no row matches the given id.
func (r *tutorialRepository) UpdateTutorial(ctx context.Context, update models.TutorialUpdate) (models.Tutorial, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("tutorials").PlaceholderFormat(sq.Dollar)

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.VideoURL != nil {
		builder = builder.Set("video_url", *update.VideoURL)
	}
	if update.Thumbnail != nil {
		builder = builder.Set("thumbnail", *update.Thumbnail)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING id, title, description, video_url, thumbnail, created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*tutorialRepository.UpdateTutorial").Msg("error building update query")
		return models.Tutorial{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*tutorialRepository.UpdateTutorial").Msg("error: row is nil")
		return models.Tutorial{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	tutorial, err := scanTutorial(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tutorial{}, ErrTutorialNotFound
	}

	return tutorial, err
}

// DeleteTutorial removes the tutorial with the given id; missing ids are a
// no-op.
func (r *tutorialRepository) DeleteTutorial(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteTutorial, id); err != nil {
		log.Err(err).Str("func", "*tutorialRepository.DeleteTutorial").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func scanTutorial(row *sql.Row) (models.Tutorial, error) {
	var tutorial models.Tutorial

	if err := row.Scan(&tutorial.ID, &tutorial.Title, &tutorial.Description, &tutorial.VideoURL, &tutorial.Thumbnail, &tutorial.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tutorial{}, err
		}
		return models.Tutorial{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return tutorial, nil
}
