package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kahvecikaan/menu-api/internal/domain"
	"github.com/kahvecikaan/menu-api/internal/events"
	"github.com/kahvecikaan/menu-api/internal/repository"
	"github.com/kahvecikaan/menu-api/internal/service"
	websocketTransport "github.com/kahvecikaan/menu-api/internal/transport/websocket"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := hclog.NewNullLogger()
	bus := events.NewEventBus[any]()
	ms := service.NewMenuService(repository.NewMemoryDishRepository(), bus, logger)
	dh := NewDishHandler(ms, logger)
	wh := websocketTransport.NewHandler(logger, bus)

	server := httptest.NewServer(NewRouter(dh, logger, wh))
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body map[string]any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func validDishBody() map[string]any {
	return map[string]any{
		"id":       1,
		"name":     "Margherita Pizza",
		"price":    11.5,
		"category": "MainCourse",
		"nutrition": map[string]any{
			"calories":      850,
			"protein":       30,
			"carbohydrates": 95,
			"fat":           35,
		},
	}
}

func TestListDishesEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/dishes")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dishes []domain.Dish
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dishes))
	assert.Len(t, dishes, 2)
}

func TestListDishesByCategory(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/dishes?category=Beverage")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dishes []domain.Dish
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dishes))
	require.Len(t, dishes, 1)
	assert.Equal(t, "Fresh Lemonade", dishes[0].Name)
}

func TestListDishesUnknownCategory(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/dishes?category=Brunch")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetDishByIDEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/dishes/1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dish domain.Dish
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dish))
	assert.Equal(t, "Spaghetti Carbonara", dish.Name)

	missing, err := http.Get(server.URL + "/dishes/99")
	require.NoError(t, err)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestAddDishEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/dishes", validDishBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var dish domain.Dish
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dish))
	// repository assigns the next free ID, not the one in the payload
	assert.Equal(t, uint32(3), dish.ID)
	assert.Equal(t, "Margherita Pizza", dish.Name)
	assert.Equal(t, domain.DefaultDescription, dish.Description)
}

func TestAddDishMissingRequiredFields(t *testing.T) {
	server := newTestServer(t)

	body := validDishBody()
	delete(body, "nutrition")

	resp := postJSON(t, server.URL+"/dishes", body)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Contains(t, errResp.Message, "missing required field")
}

func TestAddDishInvalidName(t *testing.T) {
	server := newTestServer(t)

	body := validDishBody()
	body["name"] = "X"

	resp := postJSON(t, server.URL+"/dishes", body)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Contains(t, errResp.Message, "name")
}

func TestAddDishUnknownCategory(t *testing.T) {
	server := newTestServer(t)

	body := validDishBody()
	body["category"] = "Brunch"

	resp := postJSON(t, server.URL+"/dishes", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateDishEndpoint(t *testing.T) {
	server := newTestServer(t)

	body := validDishBody()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, server.URL+"/dishes/1", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	got, err := http.Get(server.URL + "/dishes/1")
	require.NoError(t, err)
	defer got.Body.Close()

	var dish domain.Dish
	require.NoError(t, json.NewDecoder(got.Body).Decode(&dish))
	assert.Equal(t, "Margherita Pizza", dish.Name)
}

func TestDeleteDishEndpoint(t *testing.T) {
	server := newTestServer(t)

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/dishes/2", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	again, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer again.Body.Close()
	assert.Equal(t, http.StatusNotFound, again.StatusCode)
}
