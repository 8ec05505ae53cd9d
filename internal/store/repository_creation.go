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

// creationRepository is the PostgreSQL-backed implementation of
// [CreationRepository]. It mirrors the product repository minus the price
// column.
type creationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCreationRepository constructs a [CreationRepository] backed by the
// provided database connection and logger.
func NewCreationRepository(db *DB, logger *logger.Logger) CreationRepository {
	logger.Debug().Msg("creating creation repository")
	return &creationRepository{
		db:     db,
		logger: logger,
	}
}

// ListCreations returns every creation ordered by creation time, newest first.
func (r *creationRepository) ListCreations(ctx context.Context) ([]models.Creation, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCreations)
	if err != nil {
		log.Err(err).Str("func", "*creationRepository.ListCreations").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	creations := make([]models.Creation, 0)
	for rows.Next() {
		var creation models.Creation
		var rawImages []byte

		if err := rows.Scan(&creation.ID, &creation.Name, &creation.Description, &rawImages, &creation.CreatedAt); err != nil {
			log.Err(err).Str("func", "*creationRepository.ListCreations").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if creation.Images, err = decodeImages(rawImages); err != nil {
			return nil, err
		}

		creations = append(creations, creation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return creations, nil
}

// CreateCreation persists a new creation and returns it with server-assigned
// fields populated from the RETURNING clause.
func (r *creationRepository) CreateCreation(ctx context.Context, creation models.Creation) (models.Creation, error) {
	log := logger.FromContext(ctx)

	images, err := encodeImages(creation.Images)
	if err != nil {
		return models.Creation{}, err
	}

	row := r.db.QueryRowContext(ctx, createCreation, creation.Name, creation.Description, images)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*creationRepository.CreateCreation").Msg("error: row is nil")
		return models.Creation{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return scanCreation(row)
}

// UpdateCreation applies a partial update and returns the updated row.
// Returns [ErrCreationNotFound] when no row matches the given id.
func (r *creationRepository) UpdateCreation(ctx context.Context, update models.CreationUpdate) (models.Creation, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("creations").PlaceholderFormat(sq.Dollar)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Images != nil {
		images, err := encodeImages(*update.Images)
		if err != nil {
			return models.Creation{}, err
		}
		builder = builder.Set("images", images)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING id, name, description, images, created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*creationRepository.UpdateCreation").Msg("error building update query")
		return models.Creation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*creationRepository.UpdateCreation").Msg("error: row is nil")
		return models.Creation{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	creation, err := scanCreation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Creation{}, ErrCreationNotFound
	}

	return creation, err
}

// DeleteCreation removes the creation with the given id; missing ids are a
// no-op.
func (r *creationRepository) DeleteCreation(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteCreation, id); err != nil {
		log.Err(err).Str("func", "*creationRepository.DeleteCreation").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func scanCreation(row *sql.Row) (models.Creation, error) {
	var creation models.Creation
	var rawImages []byte

	if err := row.Scan(&creation.ID, &creation.Name, &creation.Description, &rawImages, &creation.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Creation{}, err
		}
		return models.Creation{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	images, err := decodeImages(rawImages)
	if err != nil {
		return models.Creation{}, err
	}
	creation.Images = images

	return creation, nil
}
