package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amnayelamri/ResinByDounia/internal/service"
	"github.com/amnayelamri/ResinByDounia/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTutorial_WithVideoAndThumbnail(t *testing.T) {
	catalog := &mockCatalogService{
		createTutorialFn: func(_ context.Context, input models.TutorialInput) (models.Tutorial, error) {
			assert.Equal(t, "Pouring basics", input.Title)
			require.NotNil(t, input.Video)
			assert.Equal(t, "pour.mp4", input.Video.Name)
			require.NotNil(t, input.Thumbnail)
			assert.Equal(t, "pour.jpg", input.Thumbnail.Name)
			return models.Tutorial{ID: 1, Title: input.Title}, nil
		},
	}
	h := newTestHandler(t, nil, catalog)

	req := multipartRequest(t, http.MethodPost, "/api/tutorials",
		map[string]string{"title": "Pouring basics", "description": "first steps"},
		map[string]map[string]string{
			"video":     {"pour.mp4": "video-bytes"},
			"thumbnail": {"pour.jpg": "thumb-bytes"},
		},
	)
	rec := httptest.NewRecorder()

	h.createTutorial(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var tutorial models.Tutorial
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tutorial))
	assert.Equal(t, int64(1), tutorial.ID)
}

func TestCreateTutorial_MissingVideo(t *testing.T) {
	catalog := &mockCatalogService{
		createTutorialFn: func(_ context.Context, input models.TutorialInput) (models.Tutorial, error) {
			assert.Nil(t, input.Video)
			return models.Tutorial{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(t, nil, catalog)

	req := multipartRequest(t, http.MethodPost, "/api/tutorials",
		map[string]string{"title": "Pouring basics", "description": "first steps"},
		nil,
	)
	rec := httptest.NewRecorder()

	h.createTutorial(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTutorial_TextOnlyLeavesMediaNil(t *testing.T) {
	catalog := &mockCatalogService{
		updateTutorialFn: func(_ context.Context, input models.TutorialUpdateInput) (models.Tutorial, error) {
			assert.Equal(t, int64(4), input.ID)
			require.NotNil(t, input.Title)
			assert.Nil(t, input.Video)
			assert.Nil(t, input.Thumbnail)
			return models.Tutorial{ID: 4, Title: *input.Title}, nil
		},
	}
	h := newTestHandler(t, nil, catalog)

	req := multipartRequest(t, http.MethodPut, "/api/tutorials/4",
		map[string]string{"title": "Pouring, revisited"},
		nil,
	)
	req = withURLParam(req, "id", "4")
	rec := httptest.NewRecorder()

	h.updateTutorial(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
