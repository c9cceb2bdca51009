package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"petty-marketplace/internal/adapters/storage/memory"
	"petty-marketplace/internal/platform/logger"
	"petty-marketplace/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	h := router.NewRouter(router.Options{
		Store:  memory.NewStore(),
		Logger: logger.New(logger.Options{Level: logger.Error}),
	})
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, out
}

func TestHTTP_Health(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", st, string(body))
	}
}

func TestHTTP_Login_BadCredentials(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/auth/login", map[string]any{
		"role":     "owner",
		"email":    "anna@petty.ru",
		"password": "nope",
	})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", st, string(body))
	}

	var out map[string]string
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal 401 body: %v", err)
	}
	if out["error"] == "" {
		t.Fatalf("expected auth error message in body, got %s", string(body))
	}
}

func TestHTTP_EndToEnd_SitterFlow(t *testing.T) {
	ts := newTestServer(t)

	// 1) Sitter nuevo se registra (queda autenticado)
	var sitterID string
	{
		st, body := doReq(t, ts.URL, "POST", "/auth/register/sitter", map[string]any{
			"fullName": "Мария Дубль",
			"email":    "maria@petty.ru",
			"password": "petty123",
			"city":     "Санкт-Петербург",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 register sitter, got %d body=%s", st, string(body))
		}

		var out struct {
			Session struct {
				Role   string `json:"role"`
				UserID string `json:"userId"`
			} `json:"session"`
			Sitter struct {
				ID     string  `json:"id"`
				Rating float64 `json:"rating"`
				Age    int     `json:"age"`
			} `json:"sitter"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("unmarshal register response: %v", err)
		}
		if out.Session.Role != "sitter" || out.Session.UserID == "" {
			t.Fatalf("expected sitter session, got %+v", out.Session)
		}
		if out.Sitter.Rating != 4 || out.Sitter.Age != 20 {
			t.Fatalf("expected defaults rating=4 age=20, got %+v", out.Sitter)
		}
		sitterID = out.Sitter.ID
	}

	// 2) La sesión queda visible
	{
		st, body := doReq(t, ts.URL, "GET", "/auth/session", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 session, got %d body=%s", st, string(body))
		}
	}

	// 3) Se postula al pedido abierto
	{
		st, body := doReq(t, ts.URL, "POST", "/orders/order-1/applications", map[string]any{
			"sitterId": sitterID,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 apply, got %d body=%s", st, string(body))
		}
	}

	// 4) Chatear antes de la asignación está prohibido
	{
		st, _ := doReq(t, ts.URL, "POST", "/orders/order-1/chat", map[string]any{
			"senderRole": "sitter",
			"senderId":   sitterID,
			"text":       "Здравствуйте!",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 chat before assignment, got %d", st)
		}
	}

	// 5) El owner asigna al sitter nuevo
	{
		st, body := doReq(t, ts.URL, "POST", "/orders/order-1/assignment", map[string]any{
			"sitterId": sitterID,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 assign, got %d body=%s", st, string(body))
		}

		var ord struct {
			Status           string   `json:"status"`
			AssignedSitterID *string  `json:"assignedSitterId"`
			Applicants       []string `json:"applicants"`
			Chat             []any    `json:"chat"`
		}
		if err := json.Unmarshal(body, &ord); err != nil {
			t.Fatalf("unmarshal order: %v", err)
		}
		if ord.Status != "assigned" {
			t.Fatalf("expected status assigned, got %s", ord.Status)
		}
		if ord.AssignedSitterID == nil || *ord.AssignedSitterID != sitterID {
			t.Fatalf("expected assigned %s, got %v", sitterID, ord.AssignedSitterID)
		}
		if len(ord.Chat) != 0 {
			t.Fatalf("expected empty chat right after assignment")
		}
	}

	// 6) Ahora sí puede chatear
	{
		st, body := doReq(t, ts.URL, "POST", "/orders/order-1/chat", map[string]any{
			"senderRole": "sitter",
			"senderId":   sitterID,
			"text":       "Во сколько подойти?",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 chat message, got %d body=%s", st, string(body))
		}
	}

	// 7) El pedido aparece en sus pedidos tomados
	{
		st, body := doReq(t, ts.URL, "GET", "/orders?sitterId="+sitterID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list orders, got %d", st)
		}

		var orders []struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(body, &orders); err != nil {
			t.Fatalf("unmarshal orders: %v", err)
		}
		found := false
		for _, o := range orders {
			if o.ID == "order-1" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected order-1 among sitter's orders, got %s", string(body))
		}
	}
}

func TestHTTP_OwnerFlow_PetsAndOrders(t *testing.T) {
	ts := newTestServer(t)

	// login como owner semilla
	{
		st, body := doReq(t, ts.URL, "POST", "/auth/login", map[string]any{
			"role":     "owner",
			"email":    "anna@petty.ru",
			"password": "petty123",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}
	}

	// alta de mascota
	var petID string
	{
		st, body := doReq(t, ts.URL, "POST", "/owners/owner-1/pets", map[string]any{
			"family": "Собака",
			"gender": "Девочка",
			"age":    1,
			"name":   "Белла",
			"breed":  "Шпиц",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 add pet, got %d body=%s", st, string(body))
		}

		var pet struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(body, &pet); err != nil {
			t.Fatalf("unmarshal pet: %v", err)
		}
		petID = pet.ID
	}

	// nuevo pedido para esa mascota, queda primero en la lista
	{
		st, body := doReq(t, ts.URL, "POST", "/orders", map[string]any{
			"ownerId": "owner-1",
			"petId":   petID,
			"date":    "2025-03-01",
			"address": "Санкт-Петербург, Литейный, 5",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create order, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/orders?ownerId=owner-1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list orders, got %d", st)
		}

		var orders []struct {
			PetID  string `json:"petId"`
			Status string `json:"status"`
		}
		if err := json.Unmarshal(body, &orders); err != nil {
			t.Fatalf("unmarshal orders: %v", err)
		}
		if len(orders) != 2 {
			t.Fatalf("expected 2 orders for owner-1, got %d", len(orders))
		}
		if orders[0].PetID != petID || orders[0].Status != "open" {
			t.Fatalf("expected newest order first, got %+v", orders[0])
		}
	}

	// mascota ajena: el pedido se rechaza
	{
		st, _ := doReq(t, ts.URL, "POST", "/orders", map[string]any{
			"ownerId": "owner-1",
			"petId":   "pet-3",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for foreign pet, got %d", st)
		}
	}
}
