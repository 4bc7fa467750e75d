// Package blog is handling campaign blog posts
package blog

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/chronicle/core"
)

var tracer = otel.Tracer("blog")

// Handler is the interface for handling HTTP requests
type Handler interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	service core.BlogService
}

// NewHandler creates a new handler
func NewHandler(service core.BlogService) Handler {
	return &handler{service: service}
}

// List returns every post, newest first
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Blog.Handler.List")
	defer span.End()

	posts, err := h.service.List(ctx)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, posts)
}

// Create creates a new post
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Blog.Handler.Create")
	defer span.End()

	var request postRequest
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	created, err := h.service.Create(ctx, core.Post{
		Title:   request.Title,
		Content: request.Content,
		Tags:    request.Tags,
	})
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, created)
}

// Update replaces a post
func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Blog.Handler.Update")
	defer span.End()

	id, err := core.ParseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	var request postRequest
	err = c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	updated, err := h.service.Update(ctx, core.Post{
		ID:      id,
		Title:   request.Title,
		Content: request.Content,
		Tags:    request.Tags,
	})
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Post not found"})
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, updated)
}

// Delete removes a post
func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Blog.Handler.Delete")
	defer span.End()

	id, err := core.ParseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	err = h.service.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Post not found"})
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}
