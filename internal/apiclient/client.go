package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/amnayelamri/ResinByDounia/models"
	"github.com/go-resty/resty/v2"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type restAdminClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewAdminClient(cfg Config) AdminClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &restAdminClient{client: cli}
}

func (c *restAdminClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *restAdminClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *restAdminClient) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Email: email, Password: password}).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var login models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &login); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	c.SetToken(login.Token)
	return login, nil
}

func (c *restAdminClient) Health(ctx context.Context) (models.MessageResponse, error) {
	resp, err := c.client.R().SetContext(ctx).Get("/")
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	var message models.MessageResponse
	if err = json.Unmarshal(resp.Body(), &message); err != nil {
		return models.MessageResponse{}, fmt.Errorf("decode health response: %w", err)
	}
	return message, nil
}

func (c *restAdminClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, "/api/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *restAdminClient) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	req := c.authedRequest(ctx).
		SetMultipartFormData(map[string]string{
			"name":        input.Name,
			"description": input.Description,
			"price":       strconv.FormatFloat(input.Price, 'f', -1, 64),
		})
	attachUploads(req, "images", input.Images)

	var product models.Product
	if err := c.doMultipart(req.Post, "/api/products", &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (c *restAdminClient) UpdateProduct(ctx context.Context, input models.ProductUpdateInput) (models.Product, error) {
	req := c.authedRequest(ctx)
	setOptionalField(req, "name", input.Name)
	setOptionalField(req, "description", input.Description)
	if input.Price != nil {
		req.SetMultipartFormData(map[string]string{"price": strconv.FormatFloat(*input.Price, 'f', -1, 64)})
	}
	attachUploads(req, "images", input.Images)

	var product models.Product
	if err := c.doMultipart(req.Put, fmt.Sprintf("/api/products/%d", input.ID), &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (c *restAdminClient) DeleteProduct(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/products/%d", id))
}

func (c *restAdminClient) ListCreations(ctx context.Context) ([]models.Creation, error) {
	var creations []models.Creation
	if err := c.getJSON(ctx, "/api/creations", &creations); err != nil {
		return nil, err
	}
	return creations, nil
}

func (c *restAdminClient) CreateCreation(ctx context.Context, input models.CreationInput) (models.Creation, error) {
	req := c.authedRequest(ctx).
		SetMultipartFormData(map[string]string{
			"name":        input.Name,
			"description": input.Description,
		})
	attachUploads(req, "images", input.Images)

	var creation models.Creation
	if err := c.doMultipart(req.Post, "/api/creations", &creation); err != nil {
		return models.Creation{}, err
	}
	return creation, nil
}

func (c *restAdminClient) UpdateCreation(ctx context.Context, input models.CreationUpdateInput) (models.Creation, error) {
	req := c.authedRequest(ctx)
	setOptionalField(req, "name", input.Name)
	setOptionalField(req, "description", input.Description)
	attachUploads(req, "images", input.Images)

	var creation models.Creation
	if err := c.doMultipart(req.Put, fmt.Sprintf("/api/creations/%d", input.ID), &creation); err != nil {
		return models.Creation{}, err
	}
	return creation, nil
}

func (c *restAdminClient) DeleteCreation(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/creations/%d", id))
}

func (c *restAdminClient) ListTutorials(ctx context.Context) ([]models.Tutorial, error) {
	var tutorials []models.Tutorial
	if err := c.getJSON(ctx, "/api/tutorials", &tutorials); err != nil {
		return nil, err
	}
	return tutorials, nil
}

func (c *restAdminClient) CreateTutorial(ctx context.Context, input models.TutorialInput) (models.Tutorial, error) {
	req := c.authedRequest(ctx).
		SetMultipartFormData(map[string]string{
			"title":       input.Title,
			"description": input.Description,
		})
	if input.Video != nil {
		req.SetFileReader("video", input.Video.Name, input.Video.Content)
	}
	if input.Thumbnail != nil {
		req.SetFileReader("thumbnail", input.Thumbnail.Name, input.Thumbnail.Content)
	}

	var tutorial models.Tutorial
	if err := c.doMultipart(req.Post, "/api/tutorials", &tutorial); err != nil {
		return models.Tutorial{}, err
	}
	return tutorial, nil
}

func (c *restAdminClient) UpdateTutorial(ctx context.Context, input models.TutorialUpdateInput) (models.Tutorial, error) {
	req := c.authedRequest(ctx)
	setOptionalField(req, "title", input.Title)
	setOptionalField(req, "description", input.Description)
	if input.Video != nil {
		req.SetFileReader("video", input.Video.Name, input.Video.Content)
	}
	if input.Thumbnail != nil {
		req.SetFileReader("thumbnail", input.Thumbnail.Name, input.Thumbnail.Content)
	}

	var tutorial models.Tutorial
	if err := c.doMultipart(req.Put, fmt.Sprintf("/api/tutorials/%d", input.ID), &tutorial); err != nil {
		return models.Tutorial{}, err
	}
	return tutorial, nil
}

func (c *restAdminClient) DeleteTutorial(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/tutorials/%d", id))
}

func (c *restAdminClient) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (c *restAdminClient) getJSON(ctx context.Context, url string, out any) error {
	resp, err := c.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return fmt.Errorf("get %s request: %w", url, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", url, err)
	}
	return nil
}

func (c *restAdminClient) delete(ctx context.Context, url string) error {
	resp, err := c.authedRequest(ctx).Delete(url)
	if err != nil {
		return fmt.Errorf("delete %s request: %w", url, err)
	}
	return mapHTTPError(resp)
}

// doMultipart executes a prepared multipart request with the given verb
// (req.Post or req.Put) and decodes the JSON response into out.
func (c *restAdminClient) doMultipart(do func(url string) (*resty.Response, error), url string, out any) error {
	resp, err := do(url)
	if err != nil {
		return fmt.Errorf("request %s: %w", url, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", url, err)
	}
	return nil
}

func attachUploads(req *resty.Request, field string, uploads []models.FileUpload) {
	for _, upload := range uploads {
		req.SetFileReader(field, upload.Name, upload.Content)
	}
}

func setOptionalField(req *resty.Request, field string, value *string) {
	if value != nil {
		req.SetMultipartFormData(map[string]string{field: *value})
	}
}
