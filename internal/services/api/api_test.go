package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"writer/internal/platform/config"
	"writer/internal/platform/metrics"
	phttp "writer/internal/platform/net/http"
	"writer/internal/platform/testkit"
)

func newAPI(t *testing.T, scope string) http.Handler {
	t.Helper()
	cfg := config.New().Prefix(scope)
	srv := phttp.NewServer(cfg.Prefix("API_"))
	mods := Mount(srv.Router(), Options{Config: cfg, Metrics: metrics.New("apitest")})
	if len(mods) != 3 {
		t.Fatalf("mounted %d modules", len(mods))
	}
	return srv.Handler()
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	h.ServeHTTP(rec, req)
	return rec
}

func TestMount_LegacyRoutes(t *testing.T) {
	h := newAPI(t, "APIT1_")

	rec := do(h, http.MethodGet, "/health", "")
	if rec.Body.String() != "Writer API is running ✅" {
		t.Fatalf("health = %q", rec.Body.String())
	}

	rec = do(h, http.MethodPost, "/humanize", `{"Text":"Therefore, it is done."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d body=%s", rec.Code, rec.Body.String())
	}
	got := testkit.MustDecode[map[string]string](t, rec.Body.Bytes())
	if got["result"] != "Here’s a cleaner version:\n\nso, it's done." {
		t.Fatalf("result = %q", got["result"])
	}

	rec = do(h, http.MethodPost, "/humanize", `{"Text":""}`)
	if rec.Code != http.StatusBadRequest || strings.TrimSpace(rec.Body.String()) != `{"error":"Text is required."}` {
		t.Fatalf("got %d %s", rec.Code, rec.Body.String())
	}
}

func TestMount_VersionedRoutes(t *testing.T) {
	h := newAPI(t, "APIT2_")

	rec := do(h, http.MethodPost, "/api/v1/rewrite/humanize", `{"text":"Additionally, we commence.","tone":"casual"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d body=%s", rec.Code, rec.Body.String())
	}
	testkit.MustContain(t, rec.Body.String(), `"result":"Here’s a cleaner version:\n\nplus, we start."`)
	testkit.MustContain(t, rec.Body.String(), `"request_id":"`)

	for _, path := range []string{"/api/v1/rewrite/tones", "/api/v1/meta/health", "/api/v1/meta/phrasebook", "/api/v1/meta/version/"} {
		if rec := do(h, http.MethodGet, path, ""); rec.Code != http.StatusOK {
			t.Fatalf("%s: code = %d", path, rec.Code)
		}
	}
}

func TestMount_MetricsAndStatic(t *testing.T) {
	h := newAPI(t, "APIT3_")

	_ = do(h, http.MethodPost, "/humanize", `{"text":"assist"}`)
	rec := do(h, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics code = %d", rec.Code)
	}
	testkit.MustContain(t, rec.Body.String(), `apitest_http_requests_total{method="POST",route="/humanize",status="200"} 1`)
	testkit.MustContain(t, rec.Body.String(), `apitest_rewrite_requests_total{outcome="ok",tone="neutral"} 1`)

	rec = do(h, http.MethodGet, "/", "")
	testkit.MustContain(t, rec.Body.String(), "<title>Writer</title>")
}

func TestMount_Flags(t *testing.T) {
	t.Setenv("APIT4_API_SWAGGER", "true")
	t.Setenv("APIT4_API_METRICS", "false")
	t.Setenv("APIT4_API_WEB", "false")
	t.Setenv("APIT4_API_PROFILER", "true")
	h := newAPI(t, "APIT4_")

	if rec := do(h, http.MethodGet, "/api/docs/doc.json", ""); rec.Code != http.StatusOK {
		t.Fatalf("docs code = %d", rec.Code)
	}
	if rec := do(h, http.MethodGet, "/metrics", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("metrics should be off, got %d", rec.Code)
	}
	if rec := do(h, http.MethodGet, "/", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("static should be off, got %d", rec.Code)
	}
	if rec := do(h, http.MethodGet, "/debug/pprof/", ""); rec.Code != http.StatusOK {
		t.Fatalf("profiler code = %d", rec.Code)
	}
}
