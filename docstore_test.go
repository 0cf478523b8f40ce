package projectflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// call records one request the fake document service received.
type call struct {
	method string
	path   string
}

// fakeDocService is an httptest-backed document database preloaded with
// raw documents per collection.
type fakeDocService struct {
	docs  map[Collection][]string
	calls []call
}

func (f *fakeDocService) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls = append(f.calls, call{method: r.Method, path: r.URL.Path})
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusOK)
			return
		}
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		col := Collection(parts[len(parts)-2]) // .../collections/<col>/documents
		fmt.Fprintf(w, `{"total":%d,"documents":[%s]}`, len(f.docs[col]), strings.Join(f.docs[col], ","))
	})
}

func newTestDocStore(t *testing.T, f *fakeDocService) *DocStore {
	t.Helper()
	if f.docs == nil {
		f.docs = map[Collection][]string{}
	}
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	d := NewDocStore(srv.URL+"/v1", "proj-1", "db-1", "key-1")
	d.Client = srv.Client()
	return d
}

func TestDocStoreLoad(t *testing.T) {
	f := &fakeDocService{docs: map[Collection][]string{
		ColProjects: {
			`{"id":"p1","name":"E-commerce Redesign","client":"TechCorp Inc.","status":"Active","actualHours":2}`,
			`{"id":"p2","name":"Brand Refresh","client":"Acme"}`,
		},
		ColTasks: {
			`{"id":"t1","projectId":"p1","title":"Mockups","status":"todo","workLogs":[{"date":"2025-04-09","hours":2}]}`,
		},
	}}
	d := newTestDocStore(t, f)

	snap, err := d.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	if len(snap.Projects) != 2 || len(snap.Tasks) != 1 || len(snap.Expenses) != 0 {
		t.Fatalf("Load() = %d projects, %d tasks, %d expenses", len(snap.Projects), len(snap.Tasks), len(snap.Expenses))
	}
	if !snap.Projects[0].ActualHours.Equal(H(2)) {
		t.Errorf("project hours = %s, want 2", snap.Projects[0].ActualHours)
	}
	if !snap.Tasks[0].WorkLogs[0].Hours.Equal(H(2)) {
		t.Errorf("work log hours = %s, want 2", snap.Tasks[0].WorkLogs[0].Hours)
	}
}

func TestDocStoreLoadSkipsMalformedDocuments(t *testing.T) {
	f := &fakeDocService{docs: map[Collection][]string{
		ColProjects: {
			`{"id":"p1","name":"ok","client":"c","actualHours":"not a number"}`,
			`{"id":"p2","name":"Brand Refresh","client":"Acme"}`,
		},
	}}
	d := newTestDocStore(t, f)

	snap, err := d.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	if len(snap.Projects) != 1 || snap.Projects[0].ID != "p2" {
		t.Errorf("Load() kept %+v, want only p2", snap.Projects)
	}
}

// A whole-collection save diffs against the loaded state: documents already
// on the service are patched, new ones posted, disappeared ones deleted.
func TestDocStoreSaveDiffs(t *testing.T) {
	f := &fakeDocService{docs: map[Collection][]string{
		ColProjects: {
			`{"id":"p1","name":"E-commerce Redesign","client":"TechCorp Inc."}`,
			`{"id":"p2","name":"Brand Refresh","client":"Acme"}`,
		},
	}}
	d := newTestDocStore(t, f)
	if _, err := d.Load(context.Background()); err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	f.calls = nil

	next := []Project{
		{ID: "p1", Name: "E-commerce Redesign v2", Client: "TechCorp Inc."},
		{ID: "p3", Name: "Mobile App", Client: "Initech"},
	}
	if err := d.SaveProjects(context.Background(), next); err != nil {
		t.Fatalf("SaveProjects() unexpected error = %v", err)
	}

	base := "/v1/databases/db-1/collections/projects/documents"
	want := []call{
		{http.MethodPatch, base + "/p1"},
		{http.MethodPost, base},
		{http.MethodDelete, base + "/p2"},
	}
	if len(f.calls) != len(want) {
		t.Fatalf("service received %+v, want %+v", f.calls, want)
	}
	for i := range want {
		if f.calls[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, f.calls[i], want[i])
		}
	}

	// The next save patches p3 instead of re-posting it.
	f.calls = nil
	if err := d.SaveProjects(context.Background(), next); err != nil {
		t.Fatalf("SaveProjects() unexpected error = %v", err)
	}
	for _, c := range f.calls {
		if c.method == http.MethodPost {
			t.Errorf("second save re-posted an existing document: %+v", f.calls)
		}
	}
}

func TestDocStoreSendsCredentials(t *testing.T) {
	var gotProject, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotProject = r.Header.Get("X-Project")
		gotKey = r.Header.Get("X-API-Key")
		fmt.Fprint(w, `{"total":0,"documents":[]}`)
	}))
	defer srv.Close()

	d := NewDocStore(srv.URL+"/v1", "proj-1", "db-1", "key-1")
	d.Client = srv.Client()
	if _, err := d.Load(context.Background()); err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	if gotProject != "proj-1" || gotKey != "key-1" {
		t.Errorf("credentials = %q/%q, want proj-1/key-1", gotProject, gotKey)
	}
}

func TestDocStoreErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			fmt.Fprint(w, `{"total":0,"documents":[]}`)
			return
		}
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	d := NewDocStore(srv.URL+"/v1", "proj-1", "db-1", "bad-key")
	d.Client = srv.Client()

	s, err := NewStore(context.Background(), d)
	if err != nil {
		t.Fatalf("NewStore() unexpected error = %v", err)
	}
	_, err = s.AddProject(context.Background(), Project{Name: "Doomed", Client: "Acme"})
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("AddProject() error = %v, want PersistenceError", err)
	}
	if perr.Collection != ColProjects {
		t.Errorf("error collection = %q, want %q", perr.Collection, ColProjects)
	}
	// The project is in memory regardless.
	if got := len(s.Projects()); got != 1 {
		t.Errorf("in-memory projects = %d, want 1", got)
	}
}

func TestDocStoreLoadRejectsBadEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"items": []any{}})
	}))
	defer srv.Close()

	d := NewDocStore(srv.URL+"/v1", "proj-1", "db-1", "key-1")
	d.Client = srv.Client()
	if _, err := d.Load(context.Background()); err == nil {
		t.Fatal("Load() expected an error on a missing documents field")
	}
}
