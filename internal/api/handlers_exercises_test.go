package api

import (
	"net/http"
	"testing"
)

func TestListExercisesReturnsSeededCatalog(t *testing.T) {
	app := newTestApp(t)
	cookie := loginCookie(t, app)

	response := doRequest(t, app, http.MethodGet, "/api/exercises", nil, cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("list exercises returned %d", response.StatusCode)
	}

	var exercises []map[string]any
	decodeBody(t, response, &exercises)
	if len(exercises) == 0 {
		t.Fatal("expected the seeded exercise catalog")
	}
	for _, exercise := range exercises {
		if exercise["id"] == "" || exercise["name"] == "" {
			t.Fatalf("expected id and name on every exercise, got %+v", exercise)
		}
	}
}
