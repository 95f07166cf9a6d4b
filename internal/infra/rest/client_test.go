//go:build unit

package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"vinyl-storefront/internal/infra/rest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vinylPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/vinyl/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(vinylPayload{ID: 1, Name: "Kind of Blue", Price: 8000})
	}))
	defer srv.Close()

	var out vinylPayload
	err := rest.NewClient(srv.URL).Get(context.Background(), "/vinyl/1", &out)
	require.NoError(t, err)
	assert.Equal(t, vinylPayload{ID: 1, Name: "Kind of Blue", Price: 8000}, out)
}

func TestClient_PostEncodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, float64(2), in["user_id"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":10,"user_id":2}`))
	}))
	defer srv.Close()

	var out struct {
		ID     int64 `json:"id"`
		UserID int64 `json:"user_id"`
	}
	err := rest.NewClient(srv.URL).Post(context.Background(), "/cart", map[string]any{"user_id": 2}, &out)
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.ID)
}

func TestClient_ErrorResponses(t *testing.T) {
	cases := []struct {
		name            string
		status          int
		body            string
		contentType     string
		wantCode        string
		wantDescription string
	}{
		{
			name:            "server-supplied machine code",
			status:          http.StatusBadRequest,
			body:            `{"code":"STOCK","description":"quantity exceeds available stock"}`,
			contentType:     "application/json",
			wantCode:        "STOCK",
			wantDescription: "quantity exceeds available stock",
		},
		{
			name:            "missing code synthesizes HTTP_<status>",
			status:          http.StatusNotFound,
			body:            `{"description":"no such vinyl"}`,
			contentType:     "application/json",
			wantCode:        "HTTP_404",
			wantDescription: "no such vinyl",
		},
		{
			name:            "non-JSON error body tolerated",
			status:          http.StatusBadGateway,
			body:            "upstream exploded",
			contentType:     "text/plain",
			wantCode:        "HTTP_502",
			wantDescription: "Bad Gateway",
		},
		{
			name:            "empty error body tolerated",
			status:          http.StatusInternalServerError,
			body:            "",
			wantCode:        "HTTP_500",
			wantDescription: "Internal Server Error",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if c.contentType != "" {
					w.Header().Set("Content-Type", c.contentType)
				}
				w.WriteHeader(c.status)
				_, _ = w.Write([]byte(c.body))
			}))
			defer srv.Close()

			err := rest.NewClient(srv.URL).Get(context.Background(), "/vinyl/1", nil)
			require.Error(t, err)

			var apiErr *rest.Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, c.status, apiErr.Status)
			assert.Equal(t, c.wantCode, apiErr.Code)
			assert.Equal(t, c.wantDescription, apiErr.Description)
			assert.True(t, rest.IsStatus(err, c.status))
		})
	}
}

func TestClient_EmptySuccessBodyTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	var out vinylPayload
	err := rest.NewClient(srv.URL).Get(context.Background(), "/vinyl/1", &out)
	require.NoError(t, err)
	assert.Zero(t, out)
}

func TestClient_MalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": not-json`))
	}))
	defer srv.Close()

	var out vinylPayload
	err := rest.NewClient(srv.URL).Get(context.Background(), "/vinyl/1", &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rest.ErrDecode))
}

func TestClient_UploadDoesNotForceContentType(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Blue Train"))
	fw, err := mw.CreateFormFile("image", "cover.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("jpegdata"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Blue Train", r.FormValue("name"))
		_, header, err := r.FormFile("image")
		require.NoError(t, err)
		assert.Equal(t, "cover.jpg", header.Filename)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err = rest.NewClient(srv.URL).Upload(context.Background(), http.MethodPut, "/vinyl/1", mw.FormDataContentType(), &buf, nil)
	require.NoError(t, err)
}
