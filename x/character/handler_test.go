package character

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
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockCharacterService(ctrl)
	mockService.EXPECT().Create(gomock.Any(), core.Character{
		Name:     "Mira Thorne",
		Type:     core.CharacterTypeAlly,
		Location: "Harbor district",
		Tags:     []string{"smuggler"},
	}).Return(core.Character{ID: 1, Name: "Mira Thorne", Type: core.CharacterTypeAlly}, nil)

	body := `{"name":"Mira Thorne","type":"ally","location":"Harbor district","tags":["smuggler"]}`
	c, req, rec, _ := testutil.CreateHttpRequest(http.MethodPost, "/characters", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	h := NewHandler(mockService)
	err := h.Create(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusCreated, rec.Code)

		var created core.Character
		err = json.Unmarshal(rec.Body.Bytes(), &created)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), created.ID)
		assert.Equal(t, core.CharacterTypeAlly, created.Type)
	}
}

func TestHandlerCreateInvalidType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockCharacterService(ctrl)
	mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(core.Character{}, core.NewErrorInvalidArgument("unknown character type: dragon"))

	body := `{"name":"Vermithrax","type":"dragon"}`
	c, req, rec, _ := testutil.CreateHttpRequest(http.MethodPost, "/characters", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	h := NewHandler(mockService)
	err := h.Create(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown character type: dragon")
	}
}

func TestHandlerUpdateNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockCharacterService(ctrl)
	mockService.EXPECT().Update(gomock.Any(), gomock.Any()).Return(core.Character{}, core.NewErrorNotFound())

	body := `{"name":"Nobody","type":"npc"}`
	c, req, rec, _ := testutil.CreateHttpRequest(http.MethodPut, "/characters/5", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c.SetParamNames("id")
	c.SetParamValues("5")

	h := NewHandler(mockService)
	err := h.Update(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}
