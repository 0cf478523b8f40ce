package projectflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// DocStore persists collections in a hosted document database, the remote
// counterpart of FileStrategy. Documents live in named collections scoped by
// a database id; every whole-collection save is translated into per-document
// create, update and delete calls against the service.
//
// Unlike local persistence, remote failures are surfaced to the caller as
// PersistenceError: the in-memory store stays authoritative and diverges
// from the service until a later save succeeds.
type DocStore struct {
	Endpoint string // service base URL, e.g. "https://cloud.example.com/v1"
	Project  string // hosting project identifier
	Database string // database identifier
	Key      string // API key
	Client   *http.Client

	// known tracks the document ids present remotely per collection, so a
	// whole-collection save can be diffed into per-document calls.
	known map[Collection]map[string]bool
}

// NewDocStore returns a DocStore for the given service coordinates.
func NewDocStore(endpoint, project, database, key string) *DocStore {
	return &DocStore{
		Endpoint: endpoint,
		Project:  project,
		Database: database,
		Key:      key,
		Client:   http.DefaultClient,
		known:    make(map[Collection]map[string]bool),
	}
}

func (d *DocStore) collectionURL(col Collection) string {
	return fmt.Sprintf("%s/databases/%s/collections/%s/documents", d.Endpoint, d.Database, col)
}

// do runs one request against the service and decodes the JSON response into
// out (when out is non-nil). Any transport error or non-2xx status wraps
// into a PersistenceError.
func (d *DocStore) do(ctx context.Context, op string, col Collection, method, url string, body any, out *any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &PersistenceError{Op: op, Collection: col, Err: err}
		}
		payload = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return &PersistenceError{Op: op, Collection: col, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Project", d.Project)
	req.Header.Set("X-API-Key", d.Key)

	resp, err := d.Client.Do(req)
	if err != nil {
		return &PersistenceError{Op: op, Collection: col, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &PersistenceError{Op: op, Collection: col,
			Err: fmt.Errorf("cannot %s %s/%s: %s", method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)}
	}
	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &PersistenceError{Op: op, Collection: col, Err: err}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &PersistenceError{Op: op, Collection: col, Err: err}
	}
	return nil
}

// listDocuments fetches every document of a collection. The service wraps
// them in an envelope; the documents are extracted by path rather than by a
// full envelope type, since services disagree on the surrounding fields.
func (d *DocStore) listDocuments(col Collection) ([]json.RawMessage, error) {
	var jobj any
	if err := d.do(context.Background(), "list", col, http.MethodGet, d.collectionURL(col), nil, &jobj); err != nil {
		return nil, err
	}

	jval, err := jsonpath.Get("$.documents", jobj)
	if err != nil {
		return nil, &PersistenceError{Op: "list", Collection: col, Err: fmt.Errorf("no documents in response: %w", err)}
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, &PersistenceError{Op: "list", Collection: col, Err: fmt.Errorf("documents is not a list: %T", jval)}
	}

	docs := make([]json.RawMessage, 0, len(jlist))
	for _, j := range jlist {
		data, err := json.Marshal(j)
		if err != nil {
			return nil, &PersistenceError{Op: "list", Collection: col, Err: err}
		}
		docs = append(docs, data)
	}
	return docs, nil
}

// Load fetches all three collections. Remote load failures are real errors,
// not the local-storage "treat as empty" case: serving an empty dashboard
// because the network blinked would look like data loss.
func (d *DocStore) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	if err := loadDocuments(d, ColProjects, &snap.Projects); err != nil {
		return Snapshot{}, err
	}
	if err := loadDocuments(d, ColTasks, &snap.Tasks); err != nil {
		return Snapshot{}, err
	}
	if err := loadDocuments(d, ColExpenses, &snap.Expenses); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func loadDocuments[T any](d *DocStore, col Collection, into *[]T) error {
	docs, err := d.listDocuments(col)
	if err != nil {
		return err
	}
	ids := make(map[string]bool, len(docs))
	for _, doc := range docs {
		var v T
		if err := json.Unmarshal(doc, &v); err != nil {
			// One bad document should not hide the rest of the collection.
			log.Printf("skipping malformed %s document: %v", col, err)
			continue
		}
		*into = append(*into, v)
		var identified struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(doc, &identified); err == nil && identified.ID != "" {
			ids[identified.ID] = true
		}
	}
	d.known[col] = ids
	return nil
}

// syncDocuments diffs the desired collection state against the documents the
// service is known to hold, and issues one create, update or delete call per
// changed document.
func syncDocuments[T any](ctx context.Context, d *DocStore, col Collection, list []T, idOf func(T) string) error {
	if d.known[col] == nil {
		d.known[col] = make(map[string]bool)
	}
	known := d.known[col]

	present := make(map[string]bool, len(list))
	for _, v := range list {
		id := idOf(v)
		present[id] = true
		if known[id] {
			if err := d.do(ctx, "update", col, http.MethodPatch, d.collectionURL(col)+"/"+id, v, nil); err != nil {
				return err
			}
			continue
		}
		if err := d.do(ctx, "create", col, http.MethodPost, d.collectionURL(col), v, nil); err != nil {
			return err
		}
		known[id] = true
	}

	for id := range known {
		if present[id] {
			continue
		}
		if err := d.do(ctx, "delete", col, http.MethodDelete, d.collectionURL(col)+"/"+id, nil, nil); err != nil {
			return err
		}
		delete(known, id)
	}
	return nil
}

func (d *DocStore) SaveProjects(ctx context.Context, projects []Project) error {
	return syncDocuments(ctx, d, ColProjects, projects, func(p Project) string { return p.ID })
}

func (d *DocStore) SaveTasks(ctx context.Context, tasks []Task) error {
	return syncDocuments(ctx, d, ColTasks, tasks, func(t Task) string { return t.ID })
}

func (d *DocStore) SaveExpenses(ctx context.Context, expenses []Expense) error {
	return syncDocuments(ctx, d, ColExpenses, expenses, func(e Expense) string { return e.ID })
}

var _ Strategy = (*DocStore)(nil)
