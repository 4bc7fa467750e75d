// Package character is handling the campaign character roster
package character

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/chronicle/core"
)

var tracer = otel.Tracer("character")

// Handler is the interface for handling HTTP requests
type Handler interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	service core.CharacterService
}

// NewHandler creates a new handler
func NewHandler(service core.CharacterService) Handler {
	return &handler{service: service}
}

func (r characterRequest) toCharacter(id uint) core.Character {
	return core.Character{
		ID:          id,
		Name:        r.Name,
		Type:        core.CharacterType(r.Type),
		Location:    r.Location,
		Description: r.Description,
		Notes:       r.Notes,
		Tags:        r.Tags,
	}
}

func (h handler) respondError(c echo.Context, err error) error {
	if errors.Is(err, core.ErrorNotFound{}) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Character not found"})
	}
	if errors.Is(err, core.ErrorInvalidArgument{}) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

// List returns the whole roster
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.List")
	defer span.End()

	characters, err := h.service.List(ctx)
	if err != nil {
		span.RecordError(err)
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, characters)
}

// Create adds a character to the roster
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.Create")
	defer span.End()

	var request characterRequest
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	created, err := h.service.Create(ctx, request.toCharacter(0))
	if err != nil {
		span.RecordError(err)
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// Update replaces a character
func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.Update")
	defer span.End()

	id, err := core.ParseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	var request characterRequest
	err = c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	updated, err := h.service.Update(ctx, request.toCharacter(id))
	if err != nil {
		span.RecordError(err)
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}

// Delete removes a character
func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.Delete")
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
