package region

import (
	"encoding/json"
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

func TestHandlerCreate(t *testing.T) {
	spanChecker := testutil.SetupMockTraceProvider()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockRegionService(ctrl)
	mockService.EXPECT().Create(gomock.Any(), core.Region{
		WorldMapID: 2,
		Name:       "Marsh",
		Path:       "M 10 10 L 50 10 L 50 40 Z",
	}).Return(core.Region{ID: 11, WorldMapID: 2, Name: "Marsh", Color: "#3b82f6", Path: "M 10 10 L 50 10 L 50 40 Z"}, nil)

	body := `{"world_map_id":2,"name":"Marsh","path":"M 10 10 L 50 10 L 50 40 Z"}`
	c, req, rec, traceID := testutil.CreateHttpRequest(http.MethodPost, "/map_regions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	h := NewHandler(mockService)
	err := h.Create(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusCreated, rec.Code)

		var created core.Region
		err = json.Unmarshal(rec.Body.Bytes(), &created)
		assert.NoError(t, err)
		assert.Equal(t, uint(11), created.ID)
		assert.Equal(t, "#3b82f6", created.Color)
	}

	assert.Contains(t, testutil.SpanNames(spanChecker.GetSpans(), traceID), "Region.Handler.Create")
}

func TestHandlerCreateInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockRegionService(ctrl)
	mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(core.Region{}, core.NewErrorInvalidArgument("world map does not exist"))

	body := `{"world_map_id":404,"name":"Nowhere","path":"M 0 0 Z"}`
	c, req, rec, _ := testutil.CreateHttpRequest(http.MethodPost, "/map_regions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	h := NewHandler(mockService)
	err := h.Create(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"world map does not exist"}`, rec.Body.String())
	}
}

func TestHandlerGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockRegionService(ctrl)
	mockService.EXPECT().Get(gomock.Any(), uint(3)).Return(core.Region{}, core.NewErrorNotFound())

	c, _, rec, _ := testutil.CreateHttpRequest(http.MethodGet, "/map_regions/3", nil)
	c.SetParamNames("id")
	c.SetParamValues("3")

	h := NewHandler(mockService)
	err := h.Get(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Region not found"}`, rec.Body.String())
	}
}

func TestHandlerListByMap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockRegionService(ctrl)
	mockService.EXPECT().ListByMap(gomock.Any(), uint(5)).Return([]core.Region{{ID: 1, WorldMapID: 5}}, nil)

	c, _, rec, _ := testutil.CreateHttpRequest(http.MethodGet, "/map_regions?world_map_id=5", nil)

	h := NewHandler(mockService)
	err := h.List(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)

		var regions []core.Region
		err = json.Unmarshal(rec.Body.Bytes(), &regions)
		assert.NoError(t, err)
		assert.Len(t, regions, 1)
	}
}

func TestHandlerDeleteMalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockRegionService(ctrl)

	c, _, rec, _ := testutil.CreateHttpRequest(http.MethodDelete, "/map_regions/abc", nil)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	h := NewHandler(mockService)
	err := h.Delete(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}
