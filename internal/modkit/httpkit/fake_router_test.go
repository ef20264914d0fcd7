package httpkit

import (
	"net/http"

	phttp "writer/internal/platform/net/http"
)

type verbCall struct {
	verb string
	path string
	ph   phttp.Handler
	h    http.Handler
}

// fakeRouter records what gets mounted; Route and Group pass itself as the subrouter
type fakeRouter struct {
	prefixes  []string
	useCalls  int
	lastMWLen int
	mountHits int
	calls     []verbCall
}

func (f *fakeRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}

func (f *fakeRouter) Group(fn func(Router)) { fn(f) }

func (f *fakeRouter) Use(mw ...func(http.Handler) http.Handler) {
	f.useCalls++
	f.lastMWLen = len(mw)
}

func (f *fakeRouter) Handle(path string, h http.Handler) {
	f.calls = append(f.calls, verbCall{verb: "HANDLE", path: path, h: h})
}

func (f *fakeRouter) Mount(pattern string, h http.Handler) {
	f.calls = append(f.calls, verbCall{verb: "MOUNT", path: pattern, h: h})
}

func (f *fakeRouter) Get(path string, h phttp.Handler) {
	f.calls = append(f.calls, verbCall{verb: "GET", path: path, ph: h})
}

func (f *fakeRouter) Post(path string, h phttp.Handler) {
	f.calls = append(f.calls, verbCall{verb: "POST", path: path, ph: h})
}

func (f *fakeRouter) Mux() http.Handler { return http.NewServeMux() }
