package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/raselhq/studyhub/internal/db"
)

// testNow pins reporting to mid-March so month-window assertions are
// stable regardless of when the suite runs.
var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "studyhub.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	handler := NewHandler(database, time.UTC)
	handler.now = func() time.Time { return testNow }

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func readMessage(t *testing.T, response *http.Response) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	decodeJSON(t, response, &body)
	return body.Message
}

func requireStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()
	if response.StatusCode != want {
		t.Fatalf("expected status %d, got %d", want, response.StatusCode)
	}
}
