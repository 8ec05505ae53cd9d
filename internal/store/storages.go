package store

import (
	"context"
	"fmt"

	"github.com/amnayelamri/ResinByDounia/internal/config"
	"github.com/amnayelamri/ResinByDounia/internal/logger"
)

// Storages bundles every persistence-layer dependency the service layer
// needs: the repositories over the relational database and the disk-backed
// media store.
type Storages struct {
	UserRepository     UserRepository
	ProductRepository  ProductRepository
	CreationRepository CreationRepository
	TutorialRepository TutorialRepository
	MediaStore         MediaStore
}

// NewStorages connects to the database, runs pending migrations, and wires
// up all repositories plus the media store.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	mediaStore, err := NewMediaFileStore(cfg.Files, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating media store: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		ProductRepository:  NewProductRepository(db, logger),
		CreationRepository: NewCreationRepository(db, logger),
		TutorialRepository: NewTutorialRepository(db, logger),
		MediaStore:         mediaStore,
	}, nil
}
