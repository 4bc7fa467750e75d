// Package region is handling the polygons drawn on world maps
package region

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/chronicle/core"
)

var tracer = otel.Tracer("region")

// Handler is the interface for handling HTTP requests
type Handler interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	service core.RegionService
}

// NewHandler creates a new handler
func NewHandler(service core.RegionService) Handler {
	return &handler{service: service}
}

func (r regionRequest) toRegion(id uint) core.Region {
	return core.Region{
		ID:          id,
		WorldMapID:  r.WorldMapID,
		Name:        r.Name,
		Description: r.Description,
		Color:       r.Color,
		Path:        r.Path,
	}
}

func (h handler) respondError(c echo.Context, err error) error {
	if errors.Is(err, core.ErrorNotFound{}) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Region not found"})
	}
	if errors.Is(err, core.ErrorInvalidArgument{}) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": errors.Cause(err).Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

// List returns every region, optionally filtered by ?world_map_id=
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Region.Handler.List")
	defer span.End()

	var (
		regions []core.Region
		err     error
	)

	if raw := c.QueryParam("world_map_id"); raw != "" {
		mapID, perr := core.ParseID(raw)
		if perr != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": perr.Error()})
		}
		regions, err = h.service.ListByMap(ctx, mapID)
	} else {
		regions, err = h.service.List(ctx)
	}
	if err != nil {
		span.RecordError(err)
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, regions)
}

// Get returns a single region
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Region.Handler.Get")
	defer span.End()

	id, err := core.ParseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	region, err := h.service.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, region)
}

// Create stores a region drawn on a map
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Region.Handler.Create")
	defer span.End()

	var request regionRequest
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	created, err := h.service.Create(ctx, request.toRegion(0))
	if err != nil {
		span.RecordError(err)
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// Update replaces a region
func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Region.Handler.Update")
	defer span.End()

	id, err := core.ParseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	var request regionRequest
	err = c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	updated, err := h.service.Update(ctx, request.toRegion(id))
	if err != nil {
		span.RecordError(err)
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}

// Delete removes a region
func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Region.Handler.Delete")
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
