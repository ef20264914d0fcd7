package httpkit

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "writer/internal/platform/errors"
	"writer/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

// run executes a Handler and returns status code and body
func run(h Handler, r *http.Request) (int, string) {
	rec := httptest.NewRecorder()
	h(rec, r)
	res := rec.Result()
	defer func() { _ = res.Body.Close() }()

	b, _ := io.ReadAll(res.Body)
	return rec.Code, string(b)
}

type echoIn struct {
	Text string `json:"text" validate:"required"`
}

func TestJSON_BindsAndEnvelopes(t *testing.T) {
	h := JSON(func(_ *http.Request, in echoIn) (any, error) {
		return map[string]string{"echo": in.Text}, nil
	})

	code, body := run(h, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"hi"}`)))
	if code != http.StatusOK {
		t.Fatalf("code = %d body=%s", code, body)
	}
	env := testkit.MustDecode[Envelope](t, []byte(body))
	if env.Status != "OK" {
		t.Fatalf("status = %q", env.Status)
	}
	testkit.MustContain(t, body, `"echo":"hi"`)
}

func TestJSON_ValidationFailureIs400(t *testing.T) {
	h := JSON(func(_ *http.Request, in echoIn) (any, error) { return in, nil })

	code, body := run(h, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))
	if code != http.StatusBadRequest {
		t.Fatalf("code = %d body=%s", code, body)
	}
	env := testkit.MustDecode[Envelope](t, []byte(body))
	if env.Field != "text" {
		t.Fatalf("field = %q", env.Field)
	}
}

func TestCall_ErrorAndPassThrough(t *testing.T) {
	h := Call(func(*http.Request) (any, error) { return nil, perr.New(perr.ErrorCodeNotFound, "no such tone") })
	if code, _ := run(h, httptest.NewRequest(http.MethodGet, "/", nil)); code != http.StatusNotFound {
		t.Fatalf("code = %d", code)
	}

	h = Call(func(*http.Request) (any, error) { return Text(http.StatusTeapot, "short and stout"), nil })
	code, body := run(h, httptest.NewRequest(http.MethodGet, "/", nil))
	if code != http.StatusTeapot || body != "short and stout" {
		t.Fatalf("got %d %q", code, body)
	}
}

func TestHandle_BareAndError(t *testing.T) {
	h := Handle(func(*http.Request) Response { return Bare(http.StatusBadRequest, map[string]string{"error": "x"}) })
	code, body := run(h, httptest.NewRequest(http.MethodGet, "/", nil))
	if code != http.StatusBadRequest || strings.TrimSpace(body) != `{"error":"x"}` {
		t.Fatalf("got %d %q", code, body)
	}

	h = Handle(func(*http.Request) Response { return Error(errors.New("boom")) })
	if code, _ := run(h, httptest.NewRequest(http.MethodGet, "/", nil)); code != http.StatusInternalServerError {
		t.Fatalf("code = %d", code)
	}
}

func TestSugar_MountsOnChi(t *testing.T) {
	r := AdaptChi(chi.NewRouter())
	Get(r, "/a", func(*http.Request) (any, error) { return "a", nil })
	Post(r, "/b", func(*http.Request) (any, error) { return "b", nil })
	PostJSON(r, "/c", func(_ *http.Request, in echoIn) (any, error) { return in.Text, nil })

	cases := []struct {
		method, path, body string
		want               string
	}{
		{http.MethodGet, "/a", "", `"data":"a"`},
		{http.MethodPost, "/b", "", `"data":"b"`},
		{http.MethodPost, "/c", `{"text":"c"}`, `"data":"c"`},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body)))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s %s: code %d body=%s", tc.method, tc.path, rec.Code, rec.Body.String())
		}
		testkit.MustContain(t, rec.Body.String(), tc.want)
	}
}

func TestBind_LenientOptions(t *testing.T) {
	type loose struct {
		Text string `json:"text"`
	}
	o := DefaultBindOptions()
	o.DisallowUnknown = false

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"Text":"hi","extra":1}`))
	in, err := Bind[loose](r, o)
	if err != nil || in.Text != "hi" {
		t.Fatalf("got %+v err=%v", in, err)
	}

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"Text":"hi","extra":1}`))
	if _, err := Bind[loose](r); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("default options should reject unknown fields, got %v", err)
	}
}
