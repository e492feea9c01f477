package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"reservabook-backend/config"
	"reservabook-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Service{}, &models.Booking{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := config.SeedServices(db); err != nil {
		t.Fatalf("failed to seed services: %v", err)
	}
	return SetupRouter(db)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func bookingPayload() map[string]any {
	return map[string]any{
		"service":    "consultation",
		"date":       "2030-06-10",
		"time":       "10:00 AM",
		"first_name": "Jane",
		"last_name":  "Doe",
		"email":      "jane@example.com",
		"phone":      "555-0100",
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET / = %d, want 200", w.Code)
	}
	var body map[string]any
	decode(t, w, &body)
	if body["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", body["status"])
	}
}

func TestServiceEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/services", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/services = %d, want 200", w.Code)
	}
	var services []map[string]any
	decode(t, w, &services)
	if len(services) != 4 {
		t.Fatalf("expected 4 seeded services, got %d", len(services))
	}
	if services[0]["code"] != "consultation" || services[0]["price"] != "$50" {
		t.Errorf("unexpected first service: %v", services[0])
	}

	w = doJSON(t, r, http.MethodGet, "/api/services/repair", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/services/repair = %d, want 200", w.Code)
	}
	var service map[string]any
	decode(t, w, &service)
	if service["name"] != "Repair Service" || service["price"] != "$85" {
		t.Errorf("unexpected service payload: %v", service)
	}

	w = doJSON(t, r, http.MethodGet, "/api/services/haircut", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("GET unknown service = %d, want 404", w.Code)
	}
}

func TestBookingLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", bookingPayload())
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d (%s), want 201", w.Code, w.Body.String())
	}
	var created struct {
		Message   string `json:"message"`
		BookingID uint   `json:"booking_id"`
	}
	decode(t, w, &created)
	if created.Message != "Booking confirmed" || created.BookingID == 0 {
		t.Fatalf("unexpected create response: %+v", created)
	}

	// Same slot again: conflict regardless of the differing customer.
	dup := bookingPayload()
	dup["service"] = "repair"
	dup["email"] = "other@example.com"
	if w := doJSON(t, r, http.MethodPost, "/api/bookings", dup); w.Code != http.StatusConflict {
		t.Errorf("duplicate slot = %d, want 409", w.Code)
	}

	path := fmt.Sprintf("/api/bookings/%d", created.BookingID)
	w = doJSON(t, r, http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get = %d, want 200", w.Code)
	}
	var booking map[string]any
	decode(t, w, &booking)
	if booking["service_name"] != "Consultation" || booking["booking_time"] != "10:00 AM" {
		t.Errorf("unexpected booking payload: %v", booking)
	}

	w = doJSON(t, r, http.MethodPut, path, map[string]any{"first_name": "Janet"})
	if w.Code != http.StatusOK {
		t.Errorf("partial update = %d (%s), want 200", w.Code, w.Body.String())
	}

	if w := doJSON(t, r, http.MethodDelete, path, nil); w.Code != http.StatusOK {
		t.Errorf("delete = %d, want 200", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, path, nil); w.Code != http.StatusNotFound {
		t.Errorf("get after delete = %d, want 404", w.Code)
	}
	if w := doJSON(t, r, http.MethodDelete, path, nil); w.Code != http.StatusNotFound {
		t.Errorf("second delete = %d, want 404", w.Code)
	}
}

func TestBookingValidationStatuses(t *testing.T) {
	r := newTestRouter(t)

	missing := map[string]any{"service": "consultation"}
	if w := doJSON(t, r, http.MethodPost, "/api/bookings", missing); w.Code != http.StatusBadRequest {
		t.Errorf("missing fields = %d, want 400", w.Code)
	}

	badDate := bookingPayload()
	badDate["date"] = "10/06/2030"
	if w := doJSON(t, r, http.MethodPost, "/api/bookings", badDate); w.Code != http.StatusBadRequest {
		t.Errorf("invalid date = %d, want 400", w.Code)
	}

	unknown := bookingPayload()
	unknown["service"] = "haircut"
	w := doJSON(t, r, http.MethodPost, "/api/bookings", unknown)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown service = %d, want 400", w.Code)
	}
	var errBody map[string]string
	decode(t, w, &errBody)
	if errBody["error"] != "Unknown service" {
		t.Errorf("error = %q, want %q", errBody["error"], "Unknown service")
	}

	if w := doJSON(t, r, http.MethodGet, "/api/bookings/999", nil); w.Code != http.StatusNotFound {
		t.Errorf("get missing booking = %d, want 404", w.Code)
	}

	// Update failure cases need an existing booking.
	w = doJSON(t, r, http.MethodPost, "/api/bookings", bookingPayload())
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d, want 201", w.Code)
	}
	var created struct {
		BookingID uint `json:"booking_id"`
	}
	decode(t, w, &created)
	path := fmt.Sprintf("/api/bookings/%d", created.BookingID)

	if w := doJSON(t, r, http.MethodPut, path, map[string]any{}); w.Code != http.StatusBadRequest {
		t.Errorf("update with no fields = %d, want 400", w.Code)
	}
	if w := doJSON(t, r, http.MethodPut, path, map[string]any{"service": "haircut"}); w.Code != http.StatusBadRequest {
		t.Errorf("update unknown service = %d, want 400", w.Code)
	}
	if w := doJSON(t, r, http.MethodPut, "/api/bookings/999", map[string]any{"first_name": "X"}); w.Code != http.StatusNotFound {
		t.Errorf("update missing booking = %d, want 404", w.Code)
	}
}

func TestBookingListFilters(t *testing.T) {
	r := newTestRouter(t)

	first := bookingPayload()
	second := bookingPayload()
	second["time"] = "11:00 AM"
	second["email"] = "other@example.com"
	for _, payload := range []map[string]any{first, second} {
		if w := doJSON(t, r, http.MethodPost, "/api/bookings", payload); w.Code != http.StatusCreated {
			t.Fatalf("create = %d, want 201", w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/bookings?email=other@example.com", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("filtered list = %d, want 200", w.Code)
	}
	var list []map[string]any
	decode(t, w, &list)
	if len(list) != 1 || list[0]["booking_time"] != "11:00 AM" {
		t.Errorf("unexpected filtered list: %v", list)
	}

	w = doJSON(t, r, http.MethodGet, "/api/bookings?email=nobody@example.com", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("empty list = %d, want 200", w.Code)
	}
	decode(t, w, &list)
	if len(list) != 0 {
		t.Errorf("expected empty array, got %v", list)
	}
}

func TestSlotEndpoint(t *testing.T) {
	r := newTestRouter(t)

	if w := doJSON(t, r, http.MethodGet, "/api/slots", nil); w.Code != http.StatusBadRequest {
		t.Errorf("missing date = %d, want 400", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/slots?date=junk", nil); w.Code != http.StatusBadRequest {
		t.Errorf("invalid date = %d, want 400", w.Code)
	}

	payload := bookingPayload()
	payload["time"] = "2:30 PM"
	if w := doJSON(t, r, http.MethodPost, "/api/bookings", payload); w.Code != http.StatusCreated {
		t.Fatalf("create = %d, want 201", w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/slots?date=2030-06-10", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("slots = %d, want 200", w.Code)
	}
	var slots []struct {
		Time      string `json:"time"`
		Available bool   `json:"available"`
		Booked    bool   `json:"booked"`
	}
	decode(t, w, &slots)
	if len(slots) != 17 {
		t.Fatalf("expected 17 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s.Time == "2:30 PM" {
			if !s.Booked || s.Available {
				t.Errorf("booked slot flags wrong: %+v", s)
			}
		} else if s.Booked {
			t.Errorf("%s should not be booked", s.Time)
		}
	}
}
