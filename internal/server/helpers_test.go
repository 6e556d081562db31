package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/pixil98/union-domain/internal/commands"
	"github.com/pixil98/union-domain/internal/game"
	"github.com/pixil98/union-domain/internal/hub"
	"github.com/pixil98/union-domain/internal/world"
)

const testSecret = "s3cret"

type hubCall struct {
	Path string
	Body map[string]any
}

// fakeHub plays the hub's side of registration, transfer and score.
type fakeHub struct {
	mu     sync.Mutex
	calls  []hubCall
	status map[string]int
	body   map[string]string
}

func (f *fakeHub) set(path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status[path] = status
	f.body[path] = body
}

func (f *fakeHub) paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []string{}
	for _, c := range f.calls {
		out = append(out, c.Path)
	}
	return out
}

func (f *fakeHub) last() hubCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func (f *fakeHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(data, &body)

	f.mu.Lock()
	f.calls = append(f.calls, hubCall{Path: r.URL.Path, Body: body})
	status, ok := f.status[r.URL.Path]
	resp := f.body[r.URL.Path]
	f.mu.Unlock()

	if !ok {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = io.WriteString(w, resp)
}

type fixture struct {
	hub       *fakeHub
	hubURL    string
	store     *game.Store
	client    *hub.Client
	registrar *Registrar
	domain    *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	fh := &fakeHub{
		status: map[string]int{},
		body: map[string]string{
			"/register": `{"id": 7, "secret": "` + testSecret + `", "items": [1, 2, 3, 4, 5, 6]}`,
			"/transfer": `{"ok": "transferred"}`,
			"/score":    `{"ok": "scored"}`,
		},
	}
	hubSrv := httptest.NewServer(fh)
	t.Cleanup(hubSrv.Close)

	graph, catalog, err := world.Load(world.DefaultAssets())
	if err != nil {
		t.Fatalf("loading assets: %v", err)
	}

	store := game.NewStore(&game.World{Graph: graph, Catalog: catalog})
	client := hub.NewClient()
	registrar := NewRegistrar(client, store, graph, catalog, DomainInfo{
		URL:         "http://domain.test",
		Name:        "Illini Union",
		Description: "A snapshot of the Union.",
	}, "")
	cmds := commands.NewHandler(store, client, nil)
	srv := NewServer("127.0.0.1", 0, store, cmds, registrar, client, nil)

	domain := httptest.NewServer(srv.Handler())
	t.Cleanup(domain.Close)

	return &fixture{
		hub:       fh,
		hubURL:    hubSrv.URL,
		store:     store,
		client:    client,
		registrar: registrar,
		domain:    domain,
	}
}

func (f *fixture) post(t *testing.T, path, body string) (int, string, http.Header) {
	t.Helper()

	resp, err := http.Post(f.domain.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading %s response: %v", path, err)
	}
	return resp.StatusCode, string(data), resp.Header
}

func (f *fixture) register(t *testing.T) {
	t.Helper()

	status, body, _ := f.post(t, "/newhub", f.hubURL)
	if status != http.StatusOK {
		t.Fatalf("newhub: %d %s", status, body)
	}
}

func (f *fixture) arrive(t *testing.T, user, from, owned string) {
	t.Helper()

	if owned == "" {
		owned = "[]"
	}
	body := `{"user": "` + user + `", "from": "` + from + `", "secret": "` + testSecret + `",
		"owned": ` + owned + `, "carried": [], "dropped": [], "prize": []}`
	status, resp, _ := f.post(t, "/arrive", body)
	if status != http.StatusOK {
		t.Fatalf("arrive: %d %s", status, resp)
	}
}

func (f *fixture) command(t *testing.T, user string, tokens ...string) (int, string) {
	t.Helper()

	data, err := json.Marshal(map[string]any{"user": user, "command": tokens})
	if err != nil {
		t.Fatalf("encoding command: %v", err)
	}
	status, body, _ := f.post(t, "/command", string(data))
	return status, body
}

func (f *fixture) roomText(t *testing.T, id string) string {
	t.Helper()

	r, ok := f.store.World().Graph.Room(id)
	if !ok {
		t.Fatalf("no room %q", id)
	}
	return r.Description
}

func decodeBody(resp *http.Response, v any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
