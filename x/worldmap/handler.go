// Package worldmap is handling uploaded world maps
package worldmap

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/chronicle/core"
)

var tracer = otel.Tracer("worldmap")

// Handler is the interface for handling HTTP requests
type Handler interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	service core.MapService
}

// NewHandler creates a new handler
func NewHandler(service core.MapService) Handler {
	return &handler{service: service}
}

func (h handler) respondError(c echo.Context, err error) error {
	if errors.Is(err, core.ErrorNotFound{}) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Map not found"})
	}
	if errors.Is(err, core.ErrorInvalidArgument{}) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": errors.Cause(err).Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

// List returns every map
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "WorldMap.Handler.List")
	defer span.End()

	maps, err := h.service.List(ctx)
	if err != nil {
		span.RecordError(err)
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, maps)
}

// Get returns a map with its regions
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "WorldMap.Handler.Get")
	defer span.End()

	id, err := core.ParseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	worldMap, err := h.service.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return h.respondError(c, err)
	}
	detail := mapDetail{WorldMap: worldMap, Regions: worldMap.Regions}
	if detail.Regions == nil {
		detail.Regions = []core.Region{}
	}

	return c.JSON(http.StatusOK, detail)
}

// Create accepts a multipart form with name, description and image
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "WorldMap.Handler.Create")
	defer span.End()

	image, err := c.FormFile("image")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		image = nil
	}

	worldMap := core.WorldMap{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
	}

	created, err := h.service.Create(ctx, worldMap, image)
	if err != nil {
		span.RecordError(err)
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// Update replaces name, description and image url of a map
func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "WorldMap.Handler.Update")
	defer span.End()

	id, err := core.ParseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	var request mapRequest
	err = c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	updated, err := h.service.Update(ctx, core.WorldMap{
		ID:          id,
		Name:        request.Name,
		Description: request.Description,
		ImageURL:    request.imageURL(),
	})
	if err != nil {
		span.RecordError(err)
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}

// Delete removes a map and its regions
func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "WorldMap.Handler.Delete")
	defer span.End()

	id, err := core.ParseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	err = h.service.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		return h.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
