package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_DecodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/profile", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"results":true,"data":[{"id":1}]}`)
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL+"/", time.Second)
	require.NoError(t, err)

	var out struct {
		Results bool `json:"results"`
		Data    []struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, c.DoJSON(context.Background(), http.MethodGet, "api/profile", nil, nil, &out))
	assert.True(t, out.Results)
	require.Len(t, out.Data, 1)
	assert.Equal(t, int64(1), out.Data[0].ID)
}

func TestDoJSON_ErrorCarriesEnvelopeMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"results":false,"message":"Missing required fields"}`)
	}))
	defer srv.Close()

	c := New(time.Second)
	err := c.DoJSON(context.Background(), http.MethodPost, srv.URL+"/api/addProfile", nil, map[string]string{}, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "Missing required fields", httpErr.Message)
}

func TestDoMultipart_SendsFieldsAndFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Rex", r.FormValue("name"))

		f, hdr, err := r.FormFile("image")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		assert.Equal(t, "rex.png", hdr.Filename)
		assert.Equal(t, "image/png", hdr.Header.Get("Content-Type"))
		assert.Equal(t, "bytes", string(b))

		_, _ = io.WriteString(w, `{"results":true,"imageUrl":"1rex.png"}`)
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL, time.Second)
	require.NoError(t, err)

	var out struct {
		ImageURL string `json:"imageUrl"`
	}
	err = c.DoMultipart(context.Background(), http.MethodPost, "/api/upload", nil,
		map[string]string{"name": "Rex"},
		&FilePart{Field: "image", Filename: "rex.png", ContentType: "image/png", Body: strings.NewReader("bytes")},
		&out)
	require.NoError(t, err)
	assert.Equal(t, "1rex.png", out.ImageURL)
}

func TestResolveURL_RelativeWithoutBase(t *testing.T) {
	c := New(0)
	err := c.DoJSON(context.Background(), http.MethodGet, "/api/profile", nil, nil, nil)
	assert.Error(t, err)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestNewWithTransport_NetworkFailure(t *testing.T) {
	refused := errors.New("connection refused")
	c := NewWithTransport(0, roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, refused
	}))
	c.BaseURL = "http://api.invalid"

	err := c.DoJSON(context.Background(), http.MethodGet, "/api/profile", nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, refused)

	var httpErr *HTTPError
	assert.False(t, errors.As(err, &httpErr))
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)
}

func TestNewWithTransport_UsesTransport(t *testing.T) {
	var gotURL string
	c := NewWithTransport(time.Second, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		gotURL = r.URL.String()
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(strings.NewReader(`{"results":false,"message":"Profile not found"}`)),
			Header:     make(http.Header),
			Request:    r,
		}, nil
	}))

	err := c.DoJSON(context.Background(), http.MethodGet, "http://api.invalid/api/profile/9", nil, nil, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "Profile not found", httpErr.Message)
	assert.Equal(t, "http://api.invalid/api/profile/9", gotURL)
}
