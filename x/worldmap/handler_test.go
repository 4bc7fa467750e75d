package worldmap

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/chronicle/core"
	"github.com/totegamma/chronicle/core/mock"
	"github.com/totegamma/chronicle/internal/testutil"
)

func TestHandlerCreateWithoutImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockMapService(ctrl)
	mockService.EXPECT().Create(gomock.Any(), core.WorldMap{Name: "Faerun"}, nil).Return(core.WorldMap{}, core.NewErrorInvalidArgument("Image is required."))

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	assert.NoError(t, writer.WriteField("name", "Faerun"))
	assert.NoError(t, writer.Close())

	c, req, rec, _ := testutil.CreateHttpRequest(http.MethodPost, "/maps", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	h := NewHandler(mockService)
	err := h.Create(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Image is required."}`, rec.Body.String())
	}
}

func TestHandlerCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockMapService(ctrl)
	mockService.EXPECT().Create(gomock.Any(), core.WorldMap{Name: "Faerun", Description: "The realms"}, gomock.Not(gomock.Nil())).
		Return(core.WorldMap{ID: 1, Name: "Faerun", ImageURL: "/backend/uploads/x.png"}, nil)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	assert.NoError(t, writer.WriteField("name", "Faerun"))
	assert.NoError(t, writer.WriteField("description", "The realms"))
	part, err := writer.CreateFormFile("image", "x.png")
	assert.NoError(t, err)
	_, err = part.Write([]byte("png bytes"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	c, req, rec, _ := testutil.CreateHttpRequest(http.MethodPost, "/maps", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	h := NewHandler(mockService)
	err = h.Create(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusCreated, rec.Code)
	}
}

func TestHandlerGetIncludesEmptyRegions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockMapService(ctrl)
	mockService.EXPECT().Get(gomock.Any(), uint(2)).Return(core.WorldMap{ID: 2, Name: "Eberron"}, nil)

	c, _, rec, _ := testutil.CreateHttpRequest(http.MethodGet, "/maps/2", nil)
	c.SetParamNames("id")
	c.SetParamValues("2")

	h := NewHandler(mockService)
	err := h.Get(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, []any{}, body["regions"])
		assert.Equal(t, "Eberron", body["name"])
	}
}

func TestHandlerGetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockMapService(ctrl)
	mockService.EXPECT().Get(gomock.Any(), uint(8)).Return(core.WorldMap{}, core.NewErrorNotFound())

	c, _, rec, _ := testutil.CreateHttpRequest(http.MethodGet, "/maps/8", nil)
	c.SetParamNames("id")
	c.SetParamValues("8")

	h := NewHandler(mockService)
	err := h.Get(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}

func TestHandlerUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockMapService(ctrl)
	mockService.EXPECT().Update(gomock.Any(), core.WorldMap{ID: 3, Name: "Greyhawk", ImageURL: "/backend/uploads/g.png"}).
		Return(core.WorldMap{ID: 3, Name: "Greyhawk", ImageURL: "/backend/uploads/g.png"}, nil)

	body := `{"name":"Greyhawk","image_url":"/backend/uploads/g.png"}`
	c, req, rec, _ := testutil.CreateHttpRequest(http.MethodPut, "/maps/3", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c.SetParamNames("id")
	c.SetParamValues("3")

	h := NewHandler(mockService)
	err := h.Update(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestHandlerUpdateImageURLKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bodies := []string{
		`{"name":"Greyhawk","imageUrl":"/backend/uploads/g.png"}`,
		`{"name":"Greyhawk","image_url":"/backend/uploads/g.png","imageUrl":"/backend/uploads/old.png"}`,
	}

	mockService := mock_core.NewMockMapService(ctrl)
	mockService.EXPECT().Update(gomock.Any(), core.WorldMap{ID: 3, Name: "Greyhawk", ImageURL: "/backend/uploads/g.png"}).
		Return(core.WorldMap{ID: 3, Name: "Greyhawk", ImageURL: "/backend/uploads/g.png"}, nil).
		Times(len(bodies))

	h := NewHandler(mockService)
	for _, body := range bodies {
		c, req, rec, _ := testutil.CreateHttpRequest(http.MethodPut, "/maps/3", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c.SetParamNames("id")
		c.SetParamValues("3")

		err := h.Update(c)
		if assert.NoError(t, err) {
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	}
}
