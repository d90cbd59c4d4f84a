package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chimichangapp/internal/model"
	"chimichangapp/internal/service"
	serviceMocks "chimichangapp/internal/service/mocks"
	"chimichangapp/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHello(t *testing.T) {
	app := fiber.New()
	app.Get("/", Hello())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body MessageResponse
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "Hello World", body.Message)
}

func TestListItems(t *testing.T) {
	app := fiber.New()
	app.Get("/items/", ListItems())

	req := httptest.NewRequest(http.MethodGet, "/items/", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []model.ItemSummary
	json.NewDecoder(resp.Body).Decode(&items)
	require.Len(t, items, 2)
	assert.Equal(t, "wand", items[0].Name)
	assert.Equal(t, "flying broom", items[1].Name)
}

func TestListUsers(t *testing.T) {
	app := fiber.New()
	app.Get("/users/", ListUsers())

	t.Run("fixed listing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var users []model.User
		json.NewDecoder(resp.Body).Decode(&users)
		require.Len(t, users, 2)
		assert.Equal(t, "Harry", users[0].Name)
		assert.Equal(t, "Ron", users[1].Name)
	})

	t.Run("id query is documentation only", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/?id=010", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var users []model.User
		json.NewDecoder(resp.Body).Decode(&users)
		assert.Len(t, users, 2)
	})
}

func TestUpdateItem(t *testing.T) {
	app := fiber.New()
	app.Put("/items/:item_id", UpdateItem())

	jsonReq := func(path, payload string) *http.Request {
		req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	t.Run("echoes the full item", func(t *testing.T) {
		resp, _ := app.Test(jsonReq("/items/42", `{"name":"Bartolo","description":"The best","price":10.5,"tax":1.2}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result ItemUpdateResponse
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, 42, result.ItemID)
		assert.Equal(t, "Bartolo", result.Item.Name)
		require.NotNil(t, result.Item.Description)
		assert.Equal(t, "The best", *result.Item.Description)
		assert.Equal(t, 10.5, result.Item.Price)
		require.NotNil(t, result.Item.Tax)
		assert.Equal(t, 1.2, *result.Item.Tax)
	})

	t.Run("omitted optional fields round-trip as null", func(t *testing.T) {
		resp, _ := app.Test(jsonReq("/items/7", `{"name":"wand","price":3}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var raw map[string]any
		json.NewDecoder(resp.Body).Decode(&raw)
		assert.Equal(t, float64(7), raw["item_id"])

		item, ok := raw["item"].(map[string]any)
		require.True(t, ok)
		desc, present := item["description"]
		assert.True(t, present)
		assert.Nil(t, desc)
		tax, present := item["tax"]
		assert.True(t, present)
		assert.Nil(t, tax)
	})

	t.Run("non-integer id", func(t *testing.T) {
		resp, _ := app.Test(jsonReq("/items/abc", `{"name":"wand","price":3}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res ErrorResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_ITEM_ID", res.Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, _ := app.Test(jsonReq("/items/42", `{not-json`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res ErrorResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_BODY", res.Error.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		resp, _ := app.Test(jsonReq("/items/42", `{"price":3}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res ErrorResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
	})

	t.Run("missing price", func(t *testing.T) {
		resp, _ := app.Test(jsonReq("/items/42", `{"name":"wand"}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res ErrorResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
	})
}

func TestListNewItems(t *testing.T) {
	app := fiber.New()
	app.Get("/new_items/", ListNewItems())

	t.Run("without q the field stays absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/new_items/", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var raw map[string]any
		json.NewDecoder(resp.Body).Decode(&raw)
		_, present := raw["q"]
		assert.False(t, present)

		items, ok := raw["items"].([]any)
		require.True(t, ok)
		assert.Len(t, items, 2)
	})

	t.Run("q is echoed back", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/new_items/?q=wand", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result ItemSearchResponse
		json.NewDecoder(resp.Body).Decode(&result)
		require.NotNil(t, result.Q)
		assert.Equal(t, "wand", *result.Q)
		require.Len(t, result.Items, 2)
		assert.Equal(t, "Foo", result.Items[0].ItemID)
		assert.Equal(t, "Bar", result.Items[1].ItemID)
	})

	t.Run("q shorter than three characters", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/new_items/?q=ab", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res ErrorResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "QUERY_TOO_SHORT", res.Error.Code)
	})
}

func TestGetUser(t *testing.T) {
	mockSvc := new(serviceMocks.MockDirectoryService)
	app := fiber.New()
	app.Get("/get-user", GetUser(mockSvc))

	t.Run("known id", func(t *testing.T) {
		mockSvc.On("Lookup", mock.Anything, "001").
			Return(&model.DirectoryUser{ID: "001", Name: "Wai Foong"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/get-user?id=001", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body UserLookupResponse
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "success", body.Status)
		require.NotNil(t, body.Data)
		assert.Equal(t, "001", body.Data.ID)
		assert.Equal(t, "Wai Foong", body.Data.Name)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing id", func(t *testing.T) {
		mockSvc.On("Lookup", mock.Anything, "").
			Return(nil, service.ErrIDRequired).Once()

		req := httptest.NewRequest(http.MethodGet, "/get-user", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res ErrorResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "ID_REQUIRED", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("reserved id", func(t *testing.T) {
		mockSvc.On("Lookup", mock.Anything, "007").
			Return(nil, service.ErrReservedID).Once()

		req := httptest.NewRequest(http.MethodGet, "/get-user?id=007", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		var body UserForbiddenResponse
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "forbidden", body.Status)
		assert.Equal(t, "Insufficient privileges!", body.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockSvc.On("Lookup", mock.Anything, "999").
			Return(nil, service.ErrUserNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/get-user?id=999", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body UserNotFoundResponse
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "not_found", body.Status)
		assert.Equal(t, "User not found!", body.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Lookup", mock.Anything, "001").
			Return(nil, errors.New("db fail")).Once()

		req := httptest.NewRequest(http.MethodGet, "/get-user?id=001", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		var res ErrorResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INTERNAL_ERROR", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body HealthResponse
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body.Status)
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body ErrorResponse
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})

	t.Run("no database configured", func(t *testing.T) {
		noDB := fiber.New()
		noDB.Get("/health", HealthCheck(nil))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := noDB.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body HealthResponse
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body.Status)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetSpecSnapshot(t *testing.T) {
	const doc = `{"swagger": "2.0"}`

	t.Run("streams the published document", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockSnapshotService)
		mockSvc.On("Open", mock.Anything).
			Return(io.NopCloser(strings.NewReader(doc)), storage.ObjectInfo{
				Key:         "specs/chimichangapp-0.0.1.json",
				Size:        int64(len(doc)),
				ContentType: "application/json",
			}, nil).Once()

		app := fiber.New()
		app.Get("/spec-snapshot", GetSpecSnapshot(mockSvc))

		req := httptest.NewRequest(http.MethodGet, "/spec-snapshot", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, doc, string(body))
		mockSvc.AssertExpectations(t)
	})

	t.Run("nothing published", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockSnapshotService)
		mockSvc.On("Open", mock.Anything).
			Return(nil, storage.ObjectInfo{}, service.ErrSnapshotUnavailable).Once()

		app := fiber.New()
		app.Get("/spec-snapshot", GetSpecSnapshot(mockSvc))

		req := httptest.NewRequest(http.MethodGet, "/spec-snapshot", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res ErrorResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "SNAPSHOT_UNAVAILABLE", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockSnapshotService)
		mockSvc.On("Open", mock.Anything).
			Return(nil, storage.ObjectInfo{}, errors.New("connection reset")).Once()

		app := fiber.New()
		app.Get("/spec-snapshot", GetSpecSnapshot(mockSvc))

		req := httptest.NewRequest(http.MethodGet, "/spec-snapshot", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		var res ErrorResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INTERNAL_ERROR", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	mockDir := new(serviceMocks.MockDirectoryService)
	mockSnap := new(serviceMocks.MockSnapshotService)
	// Register all routes
	RegisterRoutes(app, nil, mockDir, mockSnap)

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res ErrorResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		// Health endpoint only allows GET
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		// Fiber returns 405 by default if route exists but method doesn't match
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		var res ErrorResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "METHOD_NOT_ALLOWED", res.Error.Code)
	})
}
