package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ticket_reseller/handler"
	"ticket_reseller/model"
	"ticket_reseller/router"
	"ticket_reseller/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func newTestApp() *fiber.App {
	app := fiber.New()
	router.SetupRoutes(app, handler.NewHandler(store.New(1)))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "success", env.Status)
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
}

func TestGetEvents(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/v1/event", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var events []model.Event
	decodeData(t, resp, &events)
	assert.Len(t, events, 65)
}

func TestGetSessions(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/v1/event/101/sessions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sessions []model.Session
	decodeData(t, resp, &sessions)
	assert.Len(t, sessions, 3)

	resp = doRequest(t, app, http.MethodGet, "/api/v1/event/999999/sessions", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/v1/event/abc/sessions", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetSessionAreas(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/v1/session/201/areas", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var areas []model.Area
	decodeData(t, resp, &areas)
	require.Len(t, areas, 5)
	assert.Equal(t, "特區 Rock A", areas[0].Name)

	resp = doRequest(t, app, http.MethodGet, "/api/v1/session/999999/areas", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetSessionTickets(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/v1/session/201/tickets", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tickets []model.Ticket
	decodeData(t, resp, &tickets)
	require.NotEmpty(t, tickets)
	for _, tk := range tickets {
		assert.Equal(t, uint(201), tk.SessionID)
	}
}

func TestGetPricePosition(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/v1/area/320101/position?price=4500", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pos model.PricePosition
	decodeData(t, resp, &pos)
	assert.Equal(t, model.PriceBargain, pos.Classification)
	assert.InDelta(t, 11.46, pos.Percent, 0.01)

	resp = doRequest(t, app, http.MethodGet, "/api/v1/area/320101/position", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "price query is required")

	resp = doRequest(t, app, http.MethodGet, "/api/v1/area/999999/position?price=100", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAddTicket(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/v1/ticket", fiber.Map{
		"area_id": "320101", "price": 5500, "quantity": 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var ticket model.Ticket
	decodeData(t, resp, &ticket)
	assert.True(t, strings.HasPrefix(ticket.ID, "TKT-"))
	assert.Equal(t, "draft", ticket.Status)
	assert.Equal(t, "特區 Rock A", ticket.AreaName)

	resp = doRequest(t, app, http.MethodPost, "/api/v1/ticket", fiber.Map{
		"area_id": "320101", "price": 0, "quantity": 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateTicketOverHTTP(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/v1/ticket", fiber.Map{
		"area_id": "320101", "price": 5000, "quantity": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.Ticket
	decodeData(t, resp, &created)

	resp = doRequest(t, app, http.MethodPut, "/api/v1/ticket/"+created.ID, fiber.Map{"price": 6000})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated model.Ticket
	decodeData(t, resp, &updated)
	assert.Equal(t, 6000, updated.Price)
	assert.Equal(t, created.AreaID, updated.AreaID)

	resp = doRequest(t, app, http.MethodPut, "/api/v1/ticket/TKT-missing", fiber.Map{"price": 6000})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTicketStatusOverHTTP(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/v1/ticket", fiber.Map{
		"area_id": "320101", "price": 5000, "quantity": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.Ticket
	decodeData(t, resp, &created)

	resp = doRequest(t, app, http.MethodPatch, "/api/v1/ticket/"+created.ID+"/status", fiber.Map{"status": "sold"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "draft cannot jump to sold")

	resp = doRequest(t, app, http.MethodPatch, "/api/v1/ticket/"+created.ID+"/status", fiber.Map{"status": "on_shelf"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed model.Ticket
	decodeData(t, resp, &listed)
	assert.Equal(t, "on_shelf", listed.Status)

	resp = doRequest(t, app, http.MethodPatch, "/api/v1/ticket/"+created.ID+"/status", fiber.Map{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "unknown status rejected by validation")

	resp = doRequest(t, app, http.MethodPatch, "/api/v1/ticket/TKT-missing/status", fiber.Map{"status": "on_shelf"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteTicketOverHTTP(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, http.MethodDelete, "/api/v1/ticket/TKT-never-existed", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "idempotent delete")

	resp = doRequest(t, app, http.MethodPost, "/api/v1/ticket", fiber.Map{
		"area_id": "320101", "price": 100, "quantity": 1,
	})
	var created model.Ticket
	decodeData(t, resp, &created)

	resp = doRequest(t, app, http.MethodDelete, "/api/v1/ticket/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPut, "/api/v1/ticket/"+created.ID, fiber.Map{"price": 200})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetOrders(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/v1/order", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var orders []model.Order
	decodeData(t, resp, &orders)
	assert.Len(t, orders, 5)
}

func TestGetRecentOrders(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/v1/order/recent", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var orders []model.Order
	decodeData(t, resp, &orders)
	assert.Len(t, orders, 5, "default window")

	resp = doRequest(t, app, http.MethodGet, "/api/v1/order/recent?limit=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeData(t, resp, &orders)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-2025-001", orders[0].ID)

	resp = doRequest(t, app, http.MethodGet, "/api/v1/order/recent?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateOrderOverHTTP(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, http.MethodPut, "/api/v1/order/ORD-2025-009", fiber.Map{
		"payment_status":  "paid",
		"tracking_number": "TRK-9",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var order model.Order
	decodeData(t, resp, &order)
	assert.Equal(t, "paid", order.PaymentStatus)
	require.NotNil(t, order.TrackingNumber)
	assert.Equal(t, "TRK-9", *order.TrackingNumber)
	require.NotEmpty(t, order.Logs)
	assert.Equal(t, "payment", order.Logs[len(order.Logs)-1].StatusType)

	resp = doRequest(t, app, http.MethodPut, "/api/v1/order/ORD-2025-009", fiber.Map{
		"payment_status": "refunded",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "unknown payment status rejected")

	resp = doRequest(t, app, http.MethodPut, "/api/v1/order/ORD-missing", fiber.Map{
		"payment_status": "paid",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTransitionOrderOverHTTP(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, http.MethodPatch, "/api/v1/order/ORD-2025-009/status", fiber.Map{
		"status_type": "payment", "status": "paid",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var order model.Order
	decodeData(t, resp, &order)
	assert.Equal(t, "paid", order.PaymentStatus)

	resp = doRequest(t, app, http.MethodPatch, "/api/v1/order/ORD-2025-009/status", fiber.Map{
		"status_type": "payment", "status": "unpaid",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "payment is one-way")

	resp = doRequest(t, app, http.MethodPatch, "/api/v1/order/ORD-2025-009/status", fiber.Map{
		"status_type": "refund", "status": "done",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "unknown axis rejected by validation")
}

func TestGetDashboardStats(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/v1/statistic", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats store.DashboardStats
	decodeData(t, resp, &stats)
	assert.Equal(t, 40600, stats.TotalRevenue)
	assert.Equal(t, 4, stats.ProcessingOrders)
	assert.Greater(t, stats.ActiveTickets, 0)
}

func TestRegisterSellerOverHTTP(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/v1/seller/register", fiber.Map{
		"username": "resale_pro", "shopName": "好票多多",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var seller model.Seller
	decodeData(t, resp, &seller)
	assert.True(t, strings.HasPrefix(seller.ID, "SLR-"))
	assert.Equal(t, "pending", seller.Status)

	resp = doRequest(t, app, http.MethodPost, "/api/v1/seller/register", fiber.Map{
		"username": "no_shop_name",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubAccountsOverHTTP(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/v1/sub-account", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var accounts []model.SubAccount
	decodeData(t, resp, &accounts)
	assert.Len(t, accounts, 2)

	resp = doRequest(t, app, http.MethodPost, "/api/v1/sub-account", fiber.Map{
		"username": "op_three", "password": "secret7",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotContains(t, string(raw), "password", "hash never leaves the API")

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	var created model.SubAccount
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, uint(3), created.ID)

	resp = doRequest(t, app, http.MethodPatch, "/api/v1/sub-account/1/toggle", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var toggled model.SubAccount
	decodeData(t, resp, &toggled)
	assert.Equal(t, "inactive", toggled.Status)

	resp = doRequest(t, app, http.MethodPatch, "/api/v1/sub-account/999/toggle", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, http.MethodDelete, "/api/v1/sub-account/2", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/v1/sub-account", nil)
	decodeData(t, resp, &accounts)
	assert.Len(t, accounts, 2, "one deleted, one created")
}

func TestValidationShortCircuitsBeforeHandler(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ticket", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
