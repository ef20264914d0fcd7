package module

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"writer/internal/core/rewrite"
	"writer/internal/modkit"
	"writer/internal/modkit/httpkit"
	"writer/internal/platform/config"
	"writer/internal/services/api/rewrite/service"

	"github.com/go-chi/chi/v5"
)

func mount(m modkit.Module) http.Handler {
	mux := chi.NewRouter()
	m.MountRoutes(httpkit.AdaptChi(mux))
	return mux
}

func TestWeb_RootMounted(t *testing.T) {
	m := New(modkit.Deps{}, modkit.WithPorts(Ports{Humanizer: service.New(rewrite.New(), nil)}))
	if m.Name() != "web" {
		t.Fatalf("name = %q", m.Name())
	}
	h := mount(m)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/humanize", strings.NewReader(`{"text":"assist"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("humanize code = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("static should default on, got %d", rec.Code)
	}
}

func TestWeb_StaticToggle(t *testing.T) {
	t.Setenv("WEBTEST_API_WEB", "false")

	h := mount(New(modkit.Deps{Cfg: config.New().Prefix("WEBTEST_")}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("static should be off, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health code = %d", rec.Code)
	}
}
