package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fisiotrack/fisiotrack/internal/db"
	"github.com/fisiotrack/fisiotrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

const (
	testTherapistEmail    = "fisio@test.local"
	testTherapistPassword = "senha-segura-para-testes"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "fisiotrack-api-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repos := db.NewRepositories(database)
	setup := services.NewSetupService(repos.Users, repos.Exercises)
	if err := setup.EnsureExerciseCatalog(); err != nil {
		t.Fatalf("seed exercise catalog: %v", err)
	}
	if _, err := setup.EnsureTherapist("Fisio Teste", testTherapistEmail, testTherapistPassword); err != nil {
		t.Fatalf("seed therapist: %v", err)
	}

	handler := NewHandler(database, "test-secret-key-with-enough-length", false)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method string, path string, body any, cookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func loginCookie(t *testing.T, app *fiber.App) string {
	t.Helper()

	response := doRequest(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    testTherapistEmail,
		"password": testTherapistPassword,
	}, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("login returned status %d", response.StatusCode)
	}
	response.Body.Close()

	for _, cookie := range response.Cookies() {
		if cookie.Name == "fisiotrack_session" && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("expected session cookie after login")
	return ""
}

func createTestPatient(t *testing.T, app *fiber.App, cookie string, name string) map[string]any {
	t.Helper()

	response := doRequest(t, app, http.MethodPost, "/api/patients", map[string]string{
		"name":  name,
		"email": strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
	}, cookie)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create patient returned status %d", response.StatusCode)
	}

	var patient map[string]any
	decodeBody(t, response, &patient)
	return patient
}
