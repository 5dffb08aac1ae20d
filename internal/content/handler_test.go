// Mr_Evra | 2025
// handler_test.go

package content

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(repo Repository, cache ViewCache) chi.Router {
	handler := NewHandler(newTestService(repo, cache))

	router := chi.NewRouter()
	handler.RegisterPublicRoutes(router)
	router.Route("/admin", func(r chi.Router) {
		handler.RegisterAdminRoutes(r)
	})

	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) MutationResult {
	t.Helper()

	var result MutationResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	return result
}

func TestCreateProjectEndpoint(t *testing.T) {
	router := newTestRouter(newFakeRepository(), &fakeViewCache{})

	rec := doJSON(t, router, http.MethodPost, "/admin/projects/", validProjectPayload())
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body)
	}

	result := decodeResult(t, rec)
	if !result.Success || result.ID == "" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestCreateProjectEndpointValidation(t *testing.T) {
	router := newTestRouter(newFakeRepository(), &fakeViewCache{})

	payload := validProjectPayload()
	payload.TitleEn = ""

	rec := doJSON(t, router, http.MethodPost, "/admin/projects/", payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	result := decodeResult(t, rec)
	if result.Success {
		t.Error("expected failure result")
	}
	if result.Code != CodeValidation {
		t.Errorf("code = %q, want %q", result.Code, CodeValidation)
	}
}

func TestCreateProjectEndpointMalformedBody(t *testing.T) {
	router := newTestRouter(newFakeRepository(), &fakeViewCache{})

	req := httptest.NewRequest(
		http.MethodPost,
		"/admin/projects/",
		strings.NewReader("{not json"),
	)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestDeleteProjectEndpointNotFound(t *testing.T) {
	router := newTestRouter(newFakeRepository(), &fakeViewCache{})

	rec := doJSON(t, router, http.MethodDelete, "/admin/projects/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	result := decodeResult(t, rec)
	if result.Code != CodeNotFound {
		t.Errorf("code = %q, want %q", result.Code, CodeNotFound)
	}
}

func TestDeleteCategoryEndpointConflict(t *testing.T) {
	repo := newFakeRepository()
	router := newTestRouter(repo, &fakeViewCache{})

	catRec := doJSON(t, router, http.MethodPost, "/admin/skill-categories/", SkillCategoryPayload{
		NameEn: "Languages",
		NameFr: "Langages",
		Order:  intp(1),
	})
	cat := decodeResult(t, catRec)

	skillRec := doJSON(t, router, http.MethodPost, "/admin/skills/", SkillPayload{
		CategoryID: cat.ID,
		NameEn:     "Go",
		NameFr:     "Go",
		Level:      intp(90),
		Order:      intp(1),
	})
	if skillRec.Code != http.StatusCreated {
		t.Fatalf("create skill status = %d: %s", skillRec.Code, skillRec.Body)
	}

	rec := doJSON(t, router, http.MethodDelete, "/admin/skill-categories/"+cat.ID, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}

	result := decodeResult(t, rec)
	if result.Code != CodeConflict {
		t.Errorf("code = %q, want %q", result.Code, CodeConflict)
	}
}

func TestUpsertHeroEndpoint(t *testing.T) {
	repo := newFakeRepository()
	router := newTestRouter(repo, &fakeViewCache{})

	first := decodeResult(t, doJSON(
		t, router, http.MethodPut, "/admin/hero", validHeroPayload(),
	))
	if !first.Success {
		t.Fatalf("first upsert: %+v", first)
	}

	second := decodeResult(t, doJSON(
		t, router, http.MethodPut, "/admin/hero", validHeroPayload(),
	))
	if !second.Success {
		t.Fatalf("second upsert: %+v", second)
	}
	if second.ID != first.ID {
		t.Errorf("hero id changed across saves: %q then %q", first.ID, second.ID)
	}
}

func TestPortfolioEndpoint(t *testing.T) {
	repo := newFakeRepository()
	router := newTestRouter(repo, &fakeViewCache{})

	if rec := doJSON(t, router, http.MethodPut, "/admin/hero", validHeroPayload()); rec.Code != http.StatusOK {
		t.Fatalf("seed hero: %d %s", rec.Code, rec.Body)
	}
	if rec := doJSON(t, router, http.MethodPost, "/admin/projects/", validProjectPayload()); rec.Code != http.StatusCreated {
		t.Fatalf("seed project: %d %s", rec.Code, rec.Body)
	}

	rec := doJSON(t, router, http.MethodGet, "/portfolio", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	var envelope struct {
		Success bool       `json:"success"`
		Data    PublicView `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if !envelope.Success {
		t.Error("expected success envelope")
	}
	if envelope.Data.Hero == nil {
		t.Error("expected hero in public view")
	}
	if len(envelope.Data.Projects) != 1 {
		t.Errorf("projects = %d, want 1", len(envelope.Data.Projects))
	}
	if envelope.Data.Categories == nil || envelope.Data.Hackathons == nil {
		t.Error("empty collections should serialize as arrays, not null")
	}
}

func TestDashboardEndpoint(t *testing.T) {
	repo := newFakeRepository()
	router := newTestRouter(repo, &fakeViewCache{})

	if rec := doJSON(t, router, http.MethodPost, "/admin/projects/", validProjectPayload()); rec.Code != http.StatusCreated {
		t.Fatalf("seed project: %d", rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/admin/dashboard", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	var envelope struct {
		Data DashboardCounts `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Data.ProjectsCount != 1 {
		t.Errorf("projects count = %d, want 1", envelope.Data.ProjectsCount)
	}
}
