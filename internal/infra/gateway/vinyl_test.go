//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vinyl-storefront/internal/infra"
	"vinyl-storefront/internal/infra/gateway"
	"vinyl-storefront/internal/infra/rest"
	"vinyl-storefront/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVinylGateway(t *testing.T, handler http.HandlerFunc) *gateway.VinylGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return gateway.NewVinylGateway(rest.NewClient(srv.URL))
}

func TestVinylGateway_List(t *testing.T) {
	t.Run("decodes rows with nested images", func(t *testing.T) {
		gw := newVinylGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/vinyl", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"id":1,"name":"Kind of Blue","category":"jazz","price":15990,"stock":4,"image":[{"url":"https://cdn.example.com/kob.jpg"}]},
				{"id":2,"name":"Abraxas","category":"rock","price":12500}
			]`))
		})

		vinyls, err := gw.List(context.Background())
		require.NoError(t, err)
		require.Len(t, vinyls, 2)
		assert.Equal(t, "Kind of Blue", vinyls[0].Name)
		require.Len(t, vinyls[0].Images, 1)
		require.NotNil(t, vinyls[0].Stock)
		assert.Equal(t, int64(4), *vinyls[0].Stock)
		assert.Nil(t, vinyls[1].Stock)
	})

	t.Run("row missing required fields is a bad payload", func(t *testing.T) {
		gw := newVinylGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":1,"price":100}]`))
		})

		_, err := gw.List(context.Background())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindBadPayload))
	})
}

func TestVinylGateway_FindByID(t *testing.T) {
	t.Run("backend 404 maps to not found", func(t *testing.T) {
		gw := newVinylGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"code":"NOT_FOUND","description":"no such vinyl"}`))
		})

		_, err := gw.FindByID(context.Background(), 99)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unreachable backend maps to unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()
		gw := gateway.NewVinylGateway(rest.NewClient(srv.URL))

		_, err := gw.FindByID(context.Background(), 1)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
	})
}

func TestVinylGateway_Update(t *testing.T) {
	gw := newVinylGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/vinyl/7", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// Only the changed field travels.
		assert.Equal(t, map[string]any{"price": float64(9990)}, body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"name":"Abraxas","category":"rock","price":9990}`))
	})

	view, err := gw.Update(context.Background(), 7, gateway.VinylPatch{Price: patch.Of(int64(9990))})
	require.NoError(t, err)
	assert.Equal(t, int64(9990), view.Price)
}

func TestVinylGateway_UpdateWithImage(t *testing.T) {
	gw := newVinylGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Moondance", r.FormValue("name"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "cover.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"name":"Moondance","category":"rock","price":11000,"image":[{"url":"https://cdn.example.com/moondance.jpg"}]}`))
	})

	view, err := gw.UpdateWithImage(
		context.Background(),
		7,
		map[string]string{"name": "Moondance"},
		"cover.jpg",
		strings.NewReader("jpeg-bytes"),
	)
	require.NoError(t, err)
	require.Len(t, view.Images, 1)
}
