package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/chronicle/core"
)

const (
	defaultTimeout = 10 * time.Second
)

var tracer = otel.Tracer("client")

// Client talks to the chronicle api
type Client interface {
	ListMaps(ctx context.Context) ([]core.WorldMap, error)
	GetMap(ctx context.Context, id uint) (core.WorldMap, error)
	CreateRegion(ctx context.Context, region core.Region) (core.Region, error)
	UpdateRegion(ctx context.Context, region core.Region) (core.Region, error)
	DeleteRegion(ctx context.Context, id uint) error
	Health(ctx context.Context) (core.Health, error)
}

type client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the api at baseURL
func NewClient(baseURL string) Client {
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *client) do(ctx context.Context, method, path string, body any, result any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, respBody)
	}

	if result == nil || len(respBody) == 0 {
		return nil
	}
	return json.Unmarshal(respBody, result)
}

func statusError(status int, body []byte) error {
	var response core.ErrorResponse
	_ = json.Unmarshal(body, &response)

	switch status {
	case http.StatusNotFound:
		return core.NewErrorNotFound()
	case http.StatusBadRequest:
		return core.NewErrorInvalidArgument(response.Error)
	}

	if response.Error == "" {
		return fmt.Errorf("api responded %d", status)
	}
	return fmt.Errorf("api responded %d: %s", status, response.Error)
}

func idPath(prefix string, id uint) string {
	return prefix + "/" + strconv.FormatUint(uint64(id), 10)
}

func (c *client) ListMaps(ctx context.Context) ([]core.WorldMap, error) {
	ctx, span := tracer.Start(ctx, "Client.ListMaps")
	defer span.End()

	var maps []core.WorldMap
	err := c.do(ctx, http.MethodGet, "/maps", nil, &maps)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return maps, nil
}

func (c *client) GetMap(ctx context.Context, id uint) (core.WorldMap, error) {
	ctx, span := tracer.Start(ctx, "Client.GetMap")
	defer span.End()

	var worldMap core.WorldMap
	err := c.do(ctx, http.MethodGet, idPath("/maps", id), nil, &worldMap)
	if err != nil {
		span.RecordError(err)
		return core.WorldMap{}, err
	}
	return worldMap, nil
}

func (c *client) CreateRegion(ctx context.Context, region core.Region) (core.Region, error) {
	ctx, span := tracer.Start(ctx, "Client.CreateRegion")
	defer span.End()

	var created core.Region
	err := c.do(ctx, http.MethodPost, "/map_regions", regionPayload(region), &created)
	if err != nil {
		span.RecordError(err)
		return core.Region{}, err
	}
	return created, nil
}

func (c *client) UpdateRegion(ctx context.Context, region core.Region) (core.Region, error) {
	ctx, span := tracer.Start(ctx, "Client.UpdateRegion")
	defer span.End()

	var updated core.Region
	err := c.do(ctx, http.MethodPut, idPath("/map_regions", region.ID), regionPayload(region), &updated)
	if err != nil {
		span.RecordError(err)
		return core.Region{}, err
	}
	return updated, nil
}

func (c *client) DeleteRegion(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Client.DeleteRegion")
	defer span.End()

	err := c.do(ctx, http.MethodDelete, idPath("/map_regions", id), nil, nil)
	if err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (c *client) Health(ctx context.Context) (core.Health, error) {
	ctx, span := tracer.Start(ctx, "Client.Health")
	defer span.End()

	var health core.Health
	err := c.do(ctx, http.MethodGet, "/api/health", nil, &health)
	if err != nil {
		span.RecordError(err)
		return core.Health{}, err
	}
	return health, nil
}

func regionPayload(region core.Region) map[string]any {
	return map[string]any{
		"world_map_id": region.WorldMapID,
		"name":         region.Name,
		"description":  region.Description,
		"color":        region.Color,
		"path":         region.Path,
	}
}
