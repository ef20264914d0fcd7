package http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "writer/internal/platform/errors"
	pnet "writer/internal/platform/net"
	phttp "writer/internal/platform/net/http"
	kit "writer/internal/platform/testkit"
)

// reqWithReqID builds a request with a request id on the context
func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid, pnet.OriginHTTP))
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("JSON status: expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content-type = %q", ct)
	}
}

func TestHandle_OKEnvelope(t *testing.T) {
	rec := serve(phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.OK(map[string]string{"result": "done"})
	}), reqWithReqID("GET", "/x", "rid-1"))

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	env := kit.MustDecode[phttp.Envelope](t, rec.Body.Bytes())
	if env.StatusCode != 200 || env.Status != "OK" || env.RequestID != "rid-1" || env.Data == nil {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestHandle_EnvelopeKeepsStatusAndData(t *testing.T) {
	rec := serve(phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Response{Status: http.StatusCreated, Body: map[string]string{"result": "made"}}
	}), reqWithReqID("POST", "/x", "rid-4"))

	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d", rec.Code)
	}
	type created struct {
		StatusCode int               `json:"status_code"`
		Status     string            `json:"status"`
		RequestID  string            `json:"request_id"`
		Data       map[string]string `json:"data"`
	}
	env := kit.MustDecode[created](t, rec.Body.Bytes())
	if env.StatusCode != 201 || env.Status != "Created" || env.RequestID != "rid-4" || env.Data["result"] != "made" {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestHandle_ErrorEnvelope(t *testing.T) {
	rec := serve(phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Error(perr.WithField(perr.Validationf("Text is required."), "text"))
	}), reqWithReqID("POST", "/x", "rid-2"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", rec.Code)
	}
	env := kit.MustDecode[phttp.Envelope](t, rec.Body.Bytes())
	if env.Code != perr.ErrorCodeValidation || env.Error != "Text is required." || env.Field != "text" || env.RequestID != "rid-2" {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestHandle_BareAndText(t *testing.T) {
	rec := serve(phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Bare(http.StatusBadRequest, map[string]string{"error": "Text is required."})
	}), reqWithReqID("POST", "/humanize", ""))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bare code = %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Text is required."}` {
		t.Fatalf("bare body = %s", got)
	}

	rec = serve(phttp.Handle(func(*http.Request) phttp.Response {
		r := phttp.Text(0, "running")
		r.Header = http.Header{"X-Extra": {"1"}}
		return r
	}), reqWithReqID("GET", "/health", ""))
	if rec.Code != http.StatusOK || rec.Body.String() != "running" {
		t.Fatalf("text = %d %q", rec.Code, rec.Body.String())
	}
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain") || rec.Header().Get("X-Extra") != "1" {
		t.Fatalf("text headers = %v", rec.Header())
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondError(rec, reqWithReqID("GET", "/x", "rid-3"), errors.New("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", rec.Code)
	}
	env := kit.MustDecode[phttp.Envelope](t, rec.Body.Bytes())
	if env.Error != "boom" || env.RequestID != "rid-3" {
		t.Fatalf("bad envelope: %+v", env)
	}
}
