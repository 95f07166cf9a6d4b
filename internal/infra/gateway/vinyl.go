package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"vinyl-storefront/internal/infra"
	"vinyl-storefront/internal/infra/rest"
	"vinyl-storefront/internal/pkg/errs"
	"vinyl-storefront/internal/usecase/queries"
)

type vinylRow struct {
	ID       int64      `json:"id" validate:"required"`
	Name     string     `json:"name" validate:"required"`
	Category string     `json:"category"`
	Price    int64      `json:"price" validate:"gte=0"`
	Stock    *int64     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Image    []imageRow `json:"image"`
}

type imageRow struct {
	URL string `json:"url" validate:"required"`
}

// VinylCreate is the write payload for a new catalog entry.
type VinylCreate struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    int64    `json:"price"`
	Stock    *int64   `json:"stock,omitempty"`
	Images   []string `json:"-"`
}

// VinylPatch carries only the fields to change; nil fields are omitted
// from the PATCH body.
type VinylPatch struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Price    *int64  `json:"price,omitempty"`
	Stock    *int64  `json:"stock,omitempty"`
}

type VinylGateway struct {
	api *rest.Client
}

func NewVinylGateway(api *rest.Client) *VinylGateway {
	return &VinylGateway{api: api}
}

func (g *VinylGateway) List(ctx context.Context) ([]*queries.VinylView, error) {
	var rows []vinylRow
	if err := g.api.Get(ctx, "/vinyl", &rows); err != nil {
		return nil, infra.WrapBackendErr("failed to list vinyls", err)
	}
	if err := checkRows("malformed vinyl payload", rows); err != nil {
		return nil, err
	}

	vinyls := make([]*queries.VinylView, len(rows))
	for i, row := range rows {
		vinyls[i] = toVinylView(row)
	}
	return vinyls, nil
}

func (g *VinylGateway) FindByID(ctx context.Context, id int64) (*queries.VinylView, error) {
	var row vinylRow
	if err := g.api.Get(ctx, fmt.Sprintf("/vinyl/%d", id), &row); err != nil {
		return nil, infra.WrapBackendErr("failed to find vinyl", err)
	}
	if err := checkRow("malformed vinyl payload", row); err != nil {
		return nil, err
	}
	return toVinylView(row), nil
}

func (g *VinylGateway) Create(ctx context.Context, create VinylCreate) (*queries.VinylView, error) {
	payload := map[string]any{
		"name":     create.Name,
		"category": create.Category,
		"price":    create.Price,
	}
	if create.Stock != nil {
		payload["stock"] = *create.Stock
	}
	if len(create.Images) > 0 {
		images := make([]map[string]string, len(create.Images))
		for i, url := range create.Images {
			images[i] = map[string]string{"url": url}
		}
		payload["image"] = images
	}

	var row vinylRow
	if err := g.api.Post(ctx, "/vinyl", payload, &row); err != nil {
		return nil, infra.WrapBackendErr("failed to create vinyl", err)
	}
	if err := checkRow("malformed vinyl payload", row); err != nil {
		return nil, err
	}
	return toVinylView(row), nil
}

func (g *VinylGateway) Update(ctx context.Context, id int64, patch VinylPatch) (*queries.VinylView, error) {
	var row vinylRow
	if err := g.api.Patch(ctx, fmt.Sprintf("/vinyl/%d", id), patch, &row); err != nil {
		return nil, infra.WrapBackendErr("failed to update vinyl", err)
	}
	if err := checkRow("malformed vinyl payload", row); err != nil {
		return nil, err
	}
	return toVinylView(row), nil
}

// UpdateWithImage replaces the catalog entry through the multipart
// endpoint, streaming the cover image alongside the scalar fields.
func (g *VinylGateway) UpdateWithImage(ctx context.Context, id int64, fields map[string]string, filename string, image io.Reader) (*queries.VinylView, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			return nil, errs.Wrap(err, "failed to encode form field")
		}
	}
	fw, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create form file")
	}
	if _, err := io.Copy(fw, image); err != nil {
		return nil, errs.Wrap(err, "failed to copy image data")
	}
	if err := mw.Close(); err != nil {
		return nil, errs.Wrap(err, "failed to finalize multipart body")
	}

	var row vinylRow
	if err := g.api.Upload(ctx, http.MethodPut, fmt.Sprintf("/vinyl/%d", id), mw.FormDataContentType(), &buf, &row); err != nil {
		return nil, infra.WrapBackendErr("failed to update vinyl with image", err)
	}
	if err := checkRow("malformed vinyl payload", row); err != nil {
		return nil, err
	}
	return toVinylView(row), nil
}

func (g *VinylGateway) Delete(ctx context.Context, id int64) error {
	if err := g.api.Delete(ctx, fmt.Sprintf("/vinyl/%d", id)); err != nil {
		return infra.WrapBackendErr("failed to delete vinyl", err)
	}
	return nil
}

func toVinylView(row vinylRow) *queries.VinylView {
	view := &queries.VinylView{
		ID:       row.ID,
		Name:     row.Name,
		Category: row.Category,
		Price:    row.Price,
		Stock:    row.Stock,
	}
	for _, img := range row.Image {
		view.Images = append(view.Images, queries.VinylImageView{URL: img.URL})
	}
	return view
}
