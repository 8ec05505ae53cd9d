package service

import (
	"context"
	"fmt"

	"github.com/amnayelamri/ResinByDounia/internal/logger"
	"github.com/amnayelamri/ResinByDounia/internal/store"
	"github.com/amnayelamri/ResinByDounia/internal/validators"
	"github.com/amnayelamri/ResinByDounia/models"
)

// Media kinds determine the subdirectory (and public URL segment) uploaded
// files are stored under.
const (
	mediaKindProducts  = "products"
	mediaKindCreations = "creations"
	mediaKindTutorials = "tutorials"
)

// catalogService is the concrete implementation of CatalogService.
// It orchestrates media persistence and repository writes: uploaded files
// go to the media store first, then the resulting URL paths are written to
// the database together with the text fields.
type catalogService struct {
	products  store.ProductRepository
	creations store.CreationRepository
	tutorials store.TutorialRepository
	media     store.MediaStore

	validator validators.Validator
	logger    *logger.Logger
}

// NewCatalogService constructs a CatalogService over the given storages.
func NewCatalogService(storages *store.Storages, logger *logger.Logger) CatalogService {
	return &catalogService{
		products:  storages.ProductRepository,
		creations: storages.CreationRepository,
		tutorials: storages.TutorialRepository,
		media:     storages.MediaStore,
		validator: validators.NewCatalogValidator(),
		logger:    logger,
	}
}

// ListProducts returns the public product catalog, newest first.
func (c *catalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return c.products.ListProducts(ctx)
}

// CreateProduct stores the uploaded photos and persists a new product.
func (c *catalogService) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	log := logger.FromContext(ctx)

	if len(input.Images) > validators.MaxImagesPerItem {
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrTooManyImages)
	}

	images, err := c.saveUploads(ctx, mediaKindProducts, input.Images)
	if err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Images:      images,
	}

	if err := c.validator.Validate(ctx, product); err != nil {
		log.Err(err).Msg("invalid product data provided")
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return c.products.CreateProduct(ctx, product)
}

// UpdateProduct applies a partial edit; new photos replace the stored list
// only when the request carries files.
func (c *catalogService) UpdateProduct(ctx context.Context, input models.ProductUpdateInput) (models.Product, error) {
	log := logger.FromContext(ctx)

	update := models.ProductUpdate{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	}

	if len(input.Images) > 0 {
		if len(input.Images) > validators.MaxImagesPerItem {
			return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrTooManyImages)
		}

		images, err := c.saveUploads(ctx, mediaKindProducts, input.Images)
		if err != nil {
			return models.Product{}, err
		}
		update.Images = &images
	}

	if err := c.validator.Validate(ctx, update); err != nil {
		log.Err(err).Int64("id", input.ID).Msg("invalid product update provided")
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return c.products.UpdateProduct(ctx, update)
}

// DeleteProduct removes a product from the catalog. Stored media files are
// kept on disk; the public site never links to them again.
func (c *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	return c.products.DeleteProduct(ctx, id)
}

// ListCreations returns the public gallery, newest first.
func (c *catalogService) ListCreations(ctx context.Context) ([]models.Creation, error) {
	return c.creations.ListCreations(ctx)
}

// CreateCreation stores the uploaded photos and persists a new creation.
func (c *catalogService) CreateCreation(ctx context.Context, input models.CreationInput) (models.Creation, error) {
	log := logger.FromContext(ctx)

	if len(input.Images) > validators.MaxImagesPerItem {
		return models.Creation{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrTooManyImages)
	}

	images, err := c.saveUploads(ctx, mediaKindCreations, input.Images)
	if err != nil {
		return models.Creation{}, err
	}

	creation := models.Creation{
		Name:        input.Name,
		Description: input.Description,
		Images:      images,
	}

	if err := c.validator.Validate(ctx, creation); err != nil {
		log.Err(err).Msg("invalid creation data provided")
		return models.Creation{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return c.creations.CreateCreation(ctx, creation)
}

// UpdateCreation applies a partial edit; new photos replace the stored
// list only when the request carries files.
func (c *catalogService) UpdateCreation(ctx context.Context, input models.CreationUpdateInput) (models.Creation, error) {
	log := logger.FromContext(ctx)

	update := models.CreationUpdate{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
	}

	if len(input.Images) > 0 {
		if len(input.Images) > validators.MaxImagesPerItem {
			return models.Creation{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrTooManyImages)
		}

		images, err := c.saveUploads(ctx, mediaKindCreations, input.Images)
		if err != nil {
			return models.Creation{}, err
		}
		update.Images = &images
	}

	if err := c.validator.Validate(ctx, update); err != nil {
		log.Err(err).Int64("id", input.ID).Msg("invalid creation update provided")
		return models.Creation{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return c.creations.UpdateCreation(ctx, update)
}

// DeleteCreation removes a creation from the gallery.
func (c *catalogService) DeleteCreation(ctx context.Context, id int64) error {
	return c.creations.DeleteCreation(ctx, id)
}

// ListTutorials returns the public tutorials page content, newest first.
func (c *catalogService) ListTutorials(ctx context.Context) ([]models.Tutorial, error) {
	return c.tutorials.ListTutorials(ctx)
}

// CreateTutorial stores the uploaded video (required) and thumbnail
// (optional) and persists a new tutorial.
func (c *catalogService) CreateTutorial(ctx context.Context, input models.TutorialInput) (models.Tutorial, error) {
	log := logger.FromContext(ctx)

	if input.Video == nil {
		return models.Tutorial{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyVideo)
	}

	videoURL, err := c.media.SaveFile(ctx, mediaKindTutorials, *input.Video)
	if err != nil {
		return models.Tutorial{}, fmt.Errorf("error saving tutorial video: %w", err)
	}

	var thumbnail string
	if input.Thumbnail != nil {
		if thumbnail, err = c.media.SaveFile(ctx, mediaKindTutorials, *input.Thumbnail); err != nil {
			return models.Tutorial{}, fmt.Errorf("error saving tutorial thumbnail: %w", err)
		}
	}

	tutorial := models.Tutorial{
		Title:       input.Title,
		Description: input.Description,
		VideoURL:    videoURL,
		Thumbnail:   thumbnail,
	}

	if err := c.validator.Validate(ctx, tutorial); err != nil {
		log.Err(err).Msg("invalid tutorial data provided")
		return models.Tutorial{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return c.tutorials.CreateTutorial(ctx, tutorial)
}

// UpdateTutorial applies a partial edit; new media files replace the
// stored URLs only when present in the request.
func (c *catalogService) UpdateTutorial(ctx context.Context, input models.TutorialUpdateInput) (models.Tutorial, error) {
	log := logger.FromContext(ctx)

	update := models.TutorialUpdate{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
	}

	if input.Video != nil {
		videoURL, err := c.media.SaveFile(ctx, mediaKindTutorials, *input.Video)
		if err != nil {
			return models.Tutorial{}, fmt.Errorf("error saving tutorial video: %w", err)
		}
		update.VideoURL = &videoURL
	}

	if input.Thumbnail != nil {
		thumbnail, err := c.media.SaveFile(ctx, mediaKindTutorials, *input.Thumbnail)
		if err != nil {
			return models.Tutorial{}, fmt.Errorf("error saving tutorial thumbnail: %w", err)
		}
		update.Thumbnail = &thumbnail
	}

	if err := c.validator.Validate(ctx, update); err != nil {
		log.Err(err).Int64("id", input.ID).Msg("invalid tutorial update provided")
		return models.Tutorial{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return c.tutorials.UpdateTutorial(ctx, update)
}

// DeleteTutorial removes a tutorial.
func (c *catalogService) DeleteTutorial(ctx context.Context, id int64) error {
	return c.tutorials.DeleteTutorial(ctx, id)
}

// saveUploads persists each upload under the given media kind and returns
// the public URL paths in upload order.
func (c *catalogService) saveUploads(ctx context.Context, kind string, uploads []models.FileUpload) ([]string, error) {
	paths := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		saved, err := c.media.SaveFile(ctx, kind, upload)
		if err != nil {
			return nil, fmt.Errorf("error saving uploaded file: %w", err)
		}
		paths = append(paths, saved)
	}

	return paths, nil
}
