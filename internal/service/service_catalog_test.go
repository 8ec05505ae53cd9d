package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/amnayelamri/ResinByDounia/internal/logger"
	"github.com/amnayelamri/ResinByDounia/internal/mock"
	"github.com/amnayelamri/ResinByDounia/internal/store"
	"github.com/amnayelamri/ResinByDounia/internal/validators"
	"github.com/amnayelamri/ResinByDounia/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type catalogMocks struct {
	products  *mock.MockProductRepository
	creations *mock.MockCreationRepository
	tutorials *mock.MockTutorialRepository
	media     *mock.MockMediaStore
}

func newTestCatalogSvc(t *testing.T, ctrl *gomock.Controller) (*catalogService, catalogMocks) {
	t.Helper()

	mocks := catalogMocks{
		products:  mock.NewMockProductRepository(ctrl),
		creations: mock.NewMockCreationRepository(ctrl),
		tutorials: mock.NewMockTutorialRepository(ctrl),
		media:     mock.NewMockMediaStore(ctrl),
	}

	svc := &catalogService{
		products:  mocks.products,
		creations: mocks.creations,
		tutorials: mocks.tutorials,
		media:     mocks.media,
		validator: validators.NewCatalogValidator(),
		logger:    logger.Nop(),
	}

	return svc, mocks
}

func upload(name, content string) models.FileUpload {
	return models.FileUpload{Name: name, Content: strings.NewReader(content)}
}

// ── Products ─────────────────────────────────────────────────────────────────

func TestCatalogService_CreateProduct_SavesMediaBeforeInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	input := models.ProductInput{
		Name:        "Ocean tray",
		Description: "resin tray",
		Price:       45,
		Images:      []models.FileUpload{upload("a.jpg", "img-a"), upload("b.jpg", "img-b")},
	}

	gomock.InOrder(
		mocks.media.EXPECT().SaveFile(ctx, "products", gomock.Any()).Return("/uploads/products/1-a.jpg", nil),
		mocks.media.EXPECT().SaveFile(ctx, "products", gomock.Any()).Return("/uploads/products/2-b.jpg", nil),
		mocks.products.EXPECT().CreateProduct(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, p models.Product) (models.Product, error) {
				assert.Equal(t, []string{"/uploads/products/1-a.jpg", "/uploads/products/2-b.jpg"}, p.Images)
				p.ID = 1
				return p, nil
			},
		),
	)

	product, err := svc.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), product.ID)
}

func TestCatalogService_CreateProduct_TooManyImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestCatalogSvc(t, ctrl)

	input := models.ProductInput{Name: "Tray", Price: 10}
	for i := 0; i < validators.MaxImagesPerItem+1; i++ {
		input.Images = append(input.Images, upload("a.jpg", "x"))
	}

	// no media or repository calls expected: the count check comes first
	_, err := svc.CreateProduct(context.Background(), input)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrTooManyImages)
}

func TestCatalogService_CreateProduct_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestCatalogSvc(t, ctrl)

	_, err := svc.CreateProduct(context.Background(), models.ProductInput{Name: "", Price: 10})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCatalogService_CreateProduct_MediaError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mocks.media.EXPECT().SaveFile(ctx, "products", gomock.Any()).Return("", errors.New("disk full"))

	_, err := svc.CreateProduct(ctx, models.ProductInput{
		Name:   "Tray",
		Price:  10,
		Images: []models.FileUpload{upload("a.jpg", "x")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error saving uploaded file")
}

func TestCatalogService_UpdateProduct_NoNewImagesKeepsStoredList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	name := "Renamed tray"
	mocks.products.EXPECT().UpdateProduct(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.ProductUpdate) (models.Product, error) {
			assert.Nil(t, u.Images, "image list must stay untouched without uploads")
			require.NotNil(t, u.Name)
			assert.Equal(t, name, *u.Name)
			return models.Product{ID: u.ID, Name: *u.Name}, nil
		},
	)

	product, err := svc.UpdateProduct(ctx, models.ProductUpdateInput{ID: 3, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, product.Name)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	name := "Ghost"
	mocks.products.EXPECT().UpdateProduct(ctx, gomock.Any()).Return(models.Product{}, store.ErrProductNotFound)

	_, err := svc.UpdateProduct(ctx, models.ProductUpdateInput{ID: 99, Name: &name})
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mocks.products.EXPECT().DeleteProduct(ctx, int64(5)).Return(nil)

	require.NoError(t, svc.DeleteProduct(ctx, 5))
}

// ── Creations ────────────────────────────────────────────────────────────────

func TestCatalogService_CreateCreation_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mocks.media.EXPECT().SaveFile(ctx, "creations", gomock.Any()).Return("/uploads/creations/1-a.jpg", nil),
		mocks.creations.EXPECT().CreateCreation(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, c models.Creation) (models.Creation, error) {
				c.ID = 1
				return c, nil
			},
		),
	)

	creation, err := svc.CreateCreation(ctx, models.CreationInput{
		Name:        "Wave wall piece",
		Description: "deep blue resin wave",
		Images:      []models.FileUpload{upload("a.jpg", "x")},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), creation.ID)
	assert.Equal(t, []string{"/uploads/creations/1-a.jpg"}, creation.Images)
}

func TestCatalogService_CreateCreation_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestCatalogSvc(t, ctrl)

	_, err := svc.CreateCreation(context.Background(), models.CreationInput{Name: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCatalogService_ListCreations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mocks.creations.EXPECT().ListCreations(ctx).Return([]models.Creation{{ID: 2}, {ID: 1}}, nil)

	creations, err := svc.ListCreations(ctx)
	require.NoError(t, err)
	assert.Len(t, creations, 2)
}

// ── Tutorials ────────────────────────────────────────────────────────────────

func TestCatalogService_CreateTutorial_RequiresVideo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestCatalogSvc(t, ctrl)

	_, err := svc.CreateTutorial(context.Background(), models.TutorialInput{
		Title: "Pouring basics",
	})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyVideo)
}

func TestCatalogService_CreateTutorial_WithThumbnail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	video := upload("pour.mp4", "video-bytes")
	thumbnail := upload("pour.jpg", "thumb-bytes")

	gomock.InOrder(
		mocks.media.EXPECT().SaveFile(ctx, "tutorials", gomock.Any()).Return("/uploads/tutorials/1-pour.mp4", nil),
		mocks.media.EXPECT().SaveFile(ctx, "tutorials", gomock.Any()).Return("/uploads/tutorials/2-pour.jpg", nil),
		mocks.tutorials.EXPECT().CreateTutorial(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, tu models.Tutorial) (models.Tutorial, error) {
				assert.Equal(t, "/uploads/tutorials/1-pour.mp4", tu.VideoURL)
				assert.Equal(t, "/uploads/tutorials/2-pour.jpg", tu.Thumbnail)
				tu.ID = 1
				return tu, nil
			},
		),
	)

	tutorial, err := svc.CreateTutorial(ctx, models.TutorialInput{
		Title:       "Pouring basics",
		Description: "first steps with resin",
		Video:       &video,
		Thumbnail:   &thumbnail,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), tutorial.ID)
}

func TestCatalogService_CreateTutorial_WithoutThumbnail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	video := upload("pour.mp4", "video-bytes")

	gomock.InOrder(
		mocks.media.EXPECT().SaveFile(ctx, "tutorials", gomock.Any()).Return("/uploads/tutorials/1-pour.mp4", nil),
		mocks.tutorials.EXPECT().CreateTutorial(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, tu models.Tutorial) (models.Tutorial, error) {
				assert.Empty(t, tu.Thumbnail)
				return tu, nil
			},
		),
	)

	_, err := svc.CreateTutorial(ctx, models.TutorialInput{
		Title:       "Pouring basics",
		Description: "first steps with resin",
		Video:       &video,
	})
	require.NoError(t, err)
}

func TestCatalogService_UpdateTutorial_TextOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	title := "Pouring, revisited"
	mocks.tutorials.EXPECT().UpdateTutorial(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.TutorialUpdate) (models.Tutorial, error) {
			assert.Nil(t, u.VideoURL, "video must stay untouched without an upload")
			assert.Nil(t, u.Thumbnail)
			require.NotNil(t, u.Title)
			return models.Tutorial{ID: u.ID, Title: *u.Title}, nil
		},
	)

	tutorial, err := svc.UpdateTutorial(ctx, models.TutorialUpdateInput{ID: 4, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, tutorial.Title)
}
