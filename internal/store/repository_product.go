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

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository].
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// ListProducts returns every product ordered by creation time, newest first.
func (r *productRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listProducts)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var product models.Product
		var rawImages []byte

		if err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &rawImages, &product.CreatedAt); err != nil {
			log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if product.Images, err = decodeImages(rawImages); err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

// CreateProduct persists a new product and returns it with server-assigned
// fields (ID, CreatedAt) populated from the RETURNING clause.
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	images, err := encodeImages(product.Images)
	if err != nil {
		return models.Product{}, err
	}

	row := r.db.QueryRowContext(ctx, createProduct, product.Name, product.Description, product.Price, images)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error: row is nil")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return scanProduct(row)
}

// UpdateProduct applies a partial update and returns the updated row.
// Only the fields set in update are touched; a nil Images pointer keeps
// the stored image list.
//
// Returns [ErrProductNotFound] when no row matches the given id.
func (r *productRepository) UpdateProduct(ctx context.Context, update models.ProductUpdate) (models.Product, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("products").PlaceholderFormat(sq.Dollar)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Price != nil {
		builder = builder.Set("price", *update.Price)
	}
	if update.Images != nil {
		images, err := encodeImages(*update.Images)
		if err != nil {
			return models.Product{}, err
		}
		builder = builder.Set("images", images)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING id, name, description, price, images, created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error building update query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error: row is nil")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	product, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}

	return product, err
}

// DeleteProduct removes the product with the given id. Deleting an id that
// no longer exists is a no-op, matching the idempotent delete semantics of
// the admin panel.
func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteProduct, id); err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func scanProduct(row *sql.Row) (models.Product, error) {
	var product models.Product
	var rawImages []byte

	if err := row.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &rawImages, &product.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, err
		}
		return models.Product{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	images, err := decodeImages(rawImages)
	if err != nil {
		return models.Product{}, err
	}
	product.Images = images

	return product, nil
}
