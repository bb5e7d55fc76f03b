package loader_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/thalesmg/hocon/internal/loader"
	"github.com/thalesmg/hocon/pkg/schema"
)

const payload = "namespace: x\nroots:\n  - name: a\n    type: string\n"

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := loader.New(schema.NewLoaderOptions())
	doc, err := l.Load(context.Background(), schema.SourceFromFile(path))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(doc.Raw()) != payload {
		t.Fatalf("raw = %q", doc.Raw())
	}
	if doc.Source().Kind() != schema.SourceKindFile {
		t.Fatalf("kind = %q", doc.Source().Kind())
	}
}

func TestLoadFileMissing(t *testing.T) {
	l := loader.New(schema.NewLoaderOptions())
	missing := filepath.Join(t.TempDir(), "absent.yaml")
	if _, err := l.Load(context.Background(), schema.SourceFromFile(missing)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want not-exist", err)
	}
}

func TestLoadFromFS(t *testing.T) {
	files := fstest.MapFS{
		"schemas/broker.yaml": {Data: []byte(payload)},
	}
	l := loader.New(schema.NewLoaderOptions(schema.WithFileSystem(files)))

	doc, err := l.Load(context.Background(), schema.SourceFromFS("schemas/broker.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(doc.Raw()) != payload {
		t.Fatalf("raw = %q", doc.Raw())
	}
}

func TestLoadFromFSWithoutFilesystem(t *testing.T) {
	l := loader.New(schema.NewLoaderOptions())
	if _, err := l.Load(context.Background(), schema.SourceFromFS("x.yaml")); err == nil || !strings.Contains(err.Error(), "fs is nil") {
		t.Fatalf("error = %v", err)
	}
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method", http.StatusMethodNotAllowed)
			return
		}
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	l := loader.New(schema.NewLoaderOptions(schema.WithHTTPFallback(0)))
	doc, err := l.Load(context.Background(), schema.SourceFromURL(srv.URL+"/schema.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(doc.Raw()) != payload {
		t.Fatalf("raw = %q", doc.Raw())
	}
}

func TestLoadHTTPDisabledByDefault(t *testing.T) {
	l := loader.New(schema.NewLoaderOptions())
	_, err := l.Load(context.Background(), schema.SourceFromURL("http://127.0.0.1:1/schema.yaml"))
	if err == nil || !strings.Contains(err.Error(), "http support disabled") {
		t.Fatalf("error = %v", err)
	}
}

func TestLoadHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	l := loader.New(schema.NewLoaderOptions(schema.WithHTTPFallback(0)))
	_, err := l.Load(context.Background(), schema.SourceFromURL(srv.URL))
	if err == nil || !strings.Contains(err.Error(), "unexpected status") {
		t.Fatalf("error = %v", err)
	}
}

func TestLoadHTTPUsesInjectedClient(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	client := &http.Client{Transport: agentTransport{inner: http.DefaultTransport}}
	l := loader.New(schema.NewLoaderOptions(schema.WithHTTPClient(client)))

	if _, err := l.Load(context.Background(), schema.SourceFromURL(srv.URL)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if gotAgent != "hocon-loader-test" {
		t.Fatalf("user agent = %q", gotAgent)
	}
}

func TestLoadHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "schema.yaml")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := loader.New(schema.NewLoaderOptions())
	if _, err := l.Load(ctx, schema.SourceFromFile(path)); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestLoadNilSource(t *testing.T) {
	l := loader.New(schema.NewLoaderOptions())
	if _, err := l.Load(context.Background(), nil); err == nil || !strings.Contains(err.Error(), "source is nil") {
		t.Fatalf("error = %v", err)
	}
}

type agentTransport struct {
	inner http.RoundTripper
}

func (t agentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "hocon-loader-test")
	return t.inner.RoundTrip(req)
}
