package fetcher

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
)

func actressJSON(id int, name string) string {
	return fmt.Sprintf(`{"id":%d,"name":%q,"birth_year":1949,"death_year":2020,"biography":"bio",`+
		`"image":"http://img/%d.jpg","most_famous_movies":["a","b","c"],"awards":"none","nationality":"American"}`,
		id, name, id)
}

// fakeService serves GET /actresses and GET /actresses/:id from canned bodies.
type fakeService struct {
	records    map[int]string
	statuses   map[int]int
	delay      func(id int) time.Duration
	list       string
	listStatus int

	mu      sync.Mutex
	headers []http.Header

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (f *fakeService) start(t *testing.T) *httptest.Server {
	t.Helper()

	router := httprouter.New()
	router.GET("/actresses", f.handleList)
	router.GET("/actresses/:id", f.handleOne)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

func (f *fakeService) handleList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	f.record(r)

	status := f.listStatus
	if status == 0 {
		status = http.StatusOK
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(f.list))
}

func (f *fakeService) handleOne(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	f.record(r)

	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)

	for {
		current := f.maxInFlight.Load()
		if n <= current || f.maxInFlight.CompareAndSwap(current, n) {
			break
		}
	}

	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		http.Error(w, `{"error":"bad id"}`, http.StatusBadRequest)
		return
	}

	if f.delay != nil {
		select {
		case <-time.After(f.delay(id)):
		case <-r.Context().Done():
			return
		}
	}

	body, ok := f.records[id]

	status := http.StatusOK
	if !ok {
		status = http.StatusNotFound
		body = `{"error":"not found"}`
	}

	if s, ok := f.statuses[id]; ok {
		status = s
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (f *fakeService) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.headers = append(f.headers, r.Header.Clone())
}

func (f *fakeService) requestHeaders() []http.Header {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]http.Header(nil), f.headers...)
}

type entry struct {
	fields map[string]any
	level  string
	msg    string
}

// recordingSink collects diagnostics; safe for concurrent use.
type recordingSink struct {
	mu      sync.Mutex
	entries []entry
}

func (s *recordingSink) Warn(msg string, args ...any)  { s.add("warn", msg, args) }
func (s *recordingSink) Error(msg string, args ...any) { s.add("error", msg, args) }

func (s *recordingSink) add(level, msg string, args []any) {
	fields := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		fields[fmt.Sprint(args[i])] = args[i+1]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry{level: level, msg: msg, fields: fields})
}

func (s *recordingSink) all() []entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]entry(nil), s.entries...)
}

func newTestClient(t *testing.T, srv *httptest.Server, mutate ...func(*Options)) (*Client, *recordingSink) {
	t.Helper()

	sink := &recordingSink{}
	opts := Options{
		HTTPClient: srv.Client(),
		Sink:       sink,
		BaseURL:    srv.URL,
	}

	for _, m := range mutate {
		m(&opts)
	}

	c, err := New(opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	return c, sink
}
