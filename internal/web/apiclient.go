package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"animal-id-card/internal/domain/reference"
	"animal-id-card/internal/platform/httpclient"
)

// APIClient habla con la API REST por HTTP, igual que lo haría el navegador.
type APIClient struct {
	http *httpclient.Client
}

func NewAPIClient(c *httpclient.Client) *APIClient {
	return &APIClient{http: c}
}

type envelope struct {
	Results  bool            `json:"results"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	Image    *string         `json:"image"`
	ImageURL string          `json:"imageUrl"`
}

// APIError es una respuesta con results=false o status no-2xx.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d message=%s", e.Status, e.Message)
}

// asAPIError convierte HTTPError en APIError; el resto (red, timeouts) pasa tal cual.
func asAPIError(err error) error {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		msg := httpErr.Message
		if msg == "" {
			msg = http.StatusText(httpErr.StatusCode)
		}
		return &APIError{Status: httpErr.StatusCode, Message: msg}
	}
	return err
}

func (c *APIClient) get(ctx context.Context, path string, data any) error {
	var env envelope
	if err := c.http.DoJSON(ctx, http.MethodGet, path, nil, nil, &env); err != nil {
		return asAPIError(err)
	}
	if !env.Results {
		return &APIError{Status: http.StatusOK, Message: env.Message}
	}
	if err := json.Unmarshal(env.Data, data); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *APIClient) ListProfiles(ctx context.Context) ([]Profile, error) {
	var out []Profile
	if err := c.get(ctx, "/api/profile", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) GetProfile(ctx context.Context, id int64) (Profile, error) {
	var out Profile
	if err := c.get(ctx, "/api/profile/"+strconv.FormatInt(id, 10), &out); err != nil {
		return Profile{}, err
	}
	return out, nil
}

func (c *APIClient) ListOwners(ctx context.Context) ([]reference.Owner, error) {
	var out []reference.Owner
	if err := c.get(ctx, "/api/owner", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) ListAddresses(ctx context.Context) ([]reference.Address, error) {
	var out []reference.Address
	if err := c.get(ctx, "/api/address", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProfile devuelve el mensaje de la API.
func (c *APIClient) CreateProfile(ctx context.Context, f Fields) (string, error) {
	return c.send(ctx, http.MethodPost, "/api/addProfile", f)
}

func (c *APIClient) UpdateProfile(ctx context.Context, id int64, f Fields) (string, error) {
	return c.send(ctx, http.MethodPut, "/api/editProfile/"+strconv.FormatInt(id, 10), f)
}

func (c *APIClient) send(ctx context.Context, method, path string, f Fields) (string, error) {
	var env envelope
	if err := c.http.DoMultipart(ctx, method, path, nil, f.FormValues(), nil, &env); err != nil {
		return "", asAPIError(err)
	}
	if !env.Results {
		return "", &APIError{Status: http.StatusOK, Message: env.Message}
	}
	return env.Message, nil
}

func (c *APIClient) DeleteProfile(ctx context.Context, id int64) (string, error) {
	var env envelope
	err := c.http.DoJSON(ctx, http.MethodDelete, "/api/deleteProfile/"+strconv.FormatInt(id, 10), nil, nil, &env)
	if err != nil {
		return "", asAPIError(err)
	}
	if !env.Results {
		return "", &APIError{Status: http.StatusOK, Message: env.Message}
	}
	return env.Message, nil
}

// Upload sube una imagen y devuelve el nombre con el que quedó guardada.
func (c *APIClient) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	var env envelope
	file := &httpclient.FilePart{Field: "image", Filename: filename, ContentType: contentType, Body: body}
	if err := c.http.DoMultipart(ctx, http.MethodPost, "/api/upload", nil, nil, file, &env); err != nil {
		return "", asAPIError(err)
	}
	if !env.Results || env.ImageURL == "" {
		return "", &APIError{Status: http.StatusOK, Message: env.Message}
	}
	return env.ImageURL, nil
}
