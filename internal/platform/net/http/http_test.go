package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"c4ctexts/internal/platform/config"
	perr "c4ctexts/internal/platform/errors"
	pnet "c4ctexts/internal/platform/net"
	phttp "c4ctexts/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type ticketIn struct {
	TicketID string `json:"ticketId" validate:"required,max=8"`
}

func serve(t *testing.T, r phttp.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader = stdhttp.NoBody
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req = req.WithContext(pnet.WithRequestID(req.Context(), "rid-test"))
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return env
}

func TestAdaptChi_GroupRouteAndMiddleware(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	r.Use(func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.Header().Set("X-Root", "1")
			next.ServeHTTP(w, req)
		})
	})
	r.Group(func(g phttp.Router) {
		g.Get("/g", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { _, _ = io.WriteString(w, "g") })
	})
	r.Route("/c4c", func(sr phttp.Router) {
		if sr.Mux() == nil {
			t.Fatalf("route Mux() returned nil")
		}
		sr.Post("/x", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(stdhttp.StatusAccepted) })
	})
	r.Handle("/raw", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { _, _ = io.WriteString(w, "raw") }))

	if rr := serve(t, r, "GET", "/g", ""); rr.Body.String() != "g" || rr.Header().Get("X-Root") != "1" {
		t.Fatalf("group: %d %q", rr.Code, rr.Body.String())
	}
	if rr := serve(t, r, "POST", "/c4c/x", ""); rr.Code != stdhttp.StatusAccepted {
		t.Fatalf("route: %d", rr.Code)
	}
	if rr := serve(t, r, "GET", "/raw", ""); rr.Body.String() != "raw" {
		t.Fatalf("handle: %q", rr.Body.String())
	}
}

func TestPostJSON_SuccessAndErrors(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	phttp.PostJSON(r, "/t", func(_ *stdhttp.Request, in ticketIn) (any, error) {
		if in.TicketID == "MISSING" {
			return nil, perr.NotFoundf("Ticket not found or missing ObjectID.")
		}
		return map[string]string{"objectId": "obj-" + in.TicketID}, nil
	})

	rr := serve(t, r, "POST", "/t", `{"ticketId":"TCK-1"}`)
	env := decode(t, rr)
	if rr.Code != stdhttp.StatusOK || env.RequestID != "rid-test" {
		t.Fatalf("ok: %d %+v", rr.Code, env)
	}
	if env.Data.(map[string]any)["objectId"] != "obj-TCK-1" {
		t.Fatalf("data: %+v", env.Data)
	}

	cases := []struct {
		name   string
		body   string
		status int
		code   perr.ErrorCode
	}{
		{"bad json", `{`, stdhttp.StatusBadRequest, perr.ErrorCodeJSON},
		{"validation", `{"ticketId":""}`, stdhttp.StatusBadRequest, perr.ErrorCodeValidation},
		{"handler error", `{"ticketId":"MISSING"}`, stdhttp.StatusNotFound, perr.ErrorCodeNotFound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rr := serve(t, r, "POST", "/t", c.body)
			env := decode(t, rr)
			if rr.Code != c.status || env.Code != c.code || env.Error == "" {
				t.Fatalf("got %d %+v", rr.Code, env)
			}
		})
	}
}

func TestGetJSON(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	phttp.GetJSON(r, "/h", func(*stdhttp.Request) (any, error) { return map[string]string{"status": "ok"}, nil })
	phttp.GetJSON(r, "/e", func(*stdhttp.Request) (any, error) { return nil, errors.New("boom") })

	if rr := serve(t, r, "GET", "/h", ""); !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("body %q", rr.Body.String())
	}
	rr := serve(t, r, "GET", "/e", "")
	if rr.Code != stdhttp.StatusInternalServerError || !strings.Contains(rr.Body.String(), "boom") {
		t.Fatalf("error path: %d %q", rr.Code, rr.Body.String())
	}
}

func TestPostBind_Attachment(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	phttp.PostBind(r, "/export", func(_ *stdhttp.Request, in ticketIn) phttp.Response {
		return phttp.Attachment("notes-"+in.TicketID+".csv", "text/csv; charset=utf-8", []byte(`"a","b"`))
	})

	rr := serve(t, r, "POST", "/export", `{"ticketId":"TCK-1"}`)
	if rr.Code != stdhttp.StatusOK || rr.Body.String() != `"a","b"` {
		t.Fatalf("got %d %q", rr.Code, rr.Body.String())
	}
	if got := rr.Header().Get("Content-Disposition"); got != `attachment; filename="notes-TCK-1.csv"` {
		t.Fatalf("Content-Disposition = %q", got)
	}
	if !strings.HasPrefix(rr.Header().Get("Content-Type"), "text/csv") {
		t.Fatalf("Content-Type = %q", rr.Header().Get("Content-Type"))
	}

	// bind errors still answer with the JSON envelope
	rr = serve(t, r, "POST", "/export", `{}`)
	if rr.Code != stdhttp.StatusBadRequest || decode(t, rr).Code != perr.ErrorCodeValidation {
		t.Fatalf("bind error: %d %q", rr.Code, rr.Body.String())
	}
}

func TestMountProfiler(t *testing.T) {
	on := phttp.AdaptChi(chi.NewRouter())
	phttp.MountProfiler(on, "/debug", true)
	if rr := serve(t, on, "GET", "/debug/pprof/cmdline", ""); rr.Code != stdhttp.StatusOK {
		t.Fatalf("enabled: %d", rr.Code)
	}

	off := phttp.AdaptChi(chi.NewRouter())
	phttp.MountProfiler(off, "/debug", false)
	if rr := serve(t, off, "GET", "/debug/pprof/", ""); rr.Code != stdhttp.StatusNotFound {
		t.Fatalf("disabled: %d", rr.Code)
	}
}

func TestServer_ServeAndShutdown(t *testing.T) {
	t.Setenv("SRV_API_PORT", "127.0.0.1:0")
	optCalled := false
	srv := phttp.NewServer(config.New().Prefix("SRV_"), func(*chi.Mux) { optCalled = true })
	if !optCalled || srv.Addr() != "127.0.0.1:0" {
		t.Fatalf("option not applied or addr wrong: %q", srv.Addr())
	}
	srv.Router().Get("/ping", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { _, _ = io.WriteString(w, "pong") })

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln, time.Second) }()

	resp, err := stdhttp.Get("http://" + ln.Addr().String() + "/ping")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(b) != "pong" {
		t.Fatalf("body %q", b)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop")
	}
}

func TestNewServer_DefaultAddr(t *testing.T) {
	if got := phttp.NewServer(config.New().Prefix("NOPE_")).Addr(); got != ":4000" {
		t.Fatalf("Addr = %q, want :4000", got)
	}
}
