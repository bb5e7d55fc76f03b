// Package desc resolves field and struct descriptions to localized text.
// Schemas may attach descriptions as plain strings, as per-language maps, or
// as Key markers resolved against a Store loaded from a JSON or YAML
// description file. A Store holds its backing file open until Close so report
// generation can treat it as a scoped resource.
package desc

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLang is the fallback language tag consulted when the requested
// language has no entry.
const DefaultLang = "en"

// Key marks a description for lookup in a Store. The ID is a dotted path
// into the description file.
type Key struct {
	ID string
}

// Store maps description keys to per-language text.
type Store struct {
	entries map[string]map[string]string
	closer  io.Closer
	closed  bool
}

// Empty returns a store with no entries. Key lookups miss; plain values
// still resolve.
func Empty() *Store {
	return &Store{}
}

// Open reads and parses the description file at path. The file handle stays
// open until Close releases it.
func Open(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("desc: open %s: %w", path, err)
	}
	st, err := fromReader(f, path)
	if err != nil {
		f.Close()
		return nil, err
	}
	st.closer = f
	return st, nil
}

// OpenFS reads and parses a description file from an fs.FS.
func OpenFS(fsys fs.FS, name string) (*Store, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("desc: open %s: %w", name, err)
	}
	st, err := fromReader(f, name)
	if err != nil {
		f.Close()
		return nil, err
	}
	st.closer = f
	return st, nil
}

// Parse builds an in-memory store from raw JSON or YAML. The name identifies
// the payload in error messages.
func Parse(raw []byte, name string) (*Store, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, fmt.Errorf("desc: document %s is empty", name)
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		if err := yaml.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("desc: parse %s: invalid JSON or YAML", name)
		}
	}
	st := &Store{entries: make(map[string]map[string]string)}
	for key, value := range payload {
		if err := st.flatten(key, value, name); err != nil {
			return nil, err
		}
	}
	return st, nil
}

func fromReader(r io.Reader, name string) (*Store, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("desc: read %s: %w", name, err)
	}
	return Parse(raw, name)
}

// Close releases the store's entries and backing file. Closing twice, or
// closing a nil store, is a no-op.
func (s *Store) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true
	s.entries = nil
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// Len reports the number of keys the store holds.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Resolve turns a raw description value into text for the given language.
// Strings, byte slices, and Stringers pass through as-is. Key markers and
// per-language maps are looked up with the requested language first, then
// DefaultLang, then a language-neutral entry. ok is false when the value is
// absent or no suitable text exists.
func (s *Store) Resolve(raw any, lang string) (text string, ok bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case []byte:
		return string(v), len(v) > 0
	case Key:
		return s.lookup(v.ID, lang)
	case map[string]string:
		return pickLang(v, lang)
	case map[string]any:
		langs := make(map[string]string, len(v))
		for k, val := range v {
			langs[k] = coerce(val)
		}
		return pickLang(langs, lang)
	case fmt.Stringer:
		text = v.String()
		return text, text != ""
	case bool, int, int32, int64, uint, uint32, uint64, float32, float64:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}

func (s *Store) lookup(id, lang string) (string, bool) {
	if s == nil || s.entries == nil {
		return "", false
	}
	langs, ok := s.entries[id]
	if !ok {
		return "", false
	}
	return pickLang(langs, lang)
}

func pickLang(langs map[string]string, lang string) (string, bool) {
	if text, ok := langs[lang]; ok && text != "" {
		return text, true
	}
	if text, ok := langs[DefaultLang]; ok && text != "" {
		return text, true
	}
	if text, ok := langs[""]; ok && text != "" {
		return text, true
	}
	return "", false
}

// langTag matches language keys such as "en", "zh", or "en-US". A mapping
// whose keys all look like language tags is a per-language leaf; anything
// else nests.
var langTag = regexp.MustCompile(`^[a-z]{2}(-[A-Za-z0-9]+)?$`)

func (s *Store) flatten(key string, value any, source string) error {
	switch v := value.(type) {
	case string:
		s.entries[key] = map[string]string{"": v}
		return nil
	case map[string]any:
		if isLangMap(v) {
			langs := make(map[string]string, len(v))
			for lang, text := range v {
				langs[lang] = coerce(text)
			}
			s.entries[key] = langs
			return nil
		}
		for sub, child := range v {
			if err := s.flatten(key+"."+sub, child, source); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("desc: document %s key %q holds %T, want string or mapping", source, key, value)
	}
}

func isLangMap(m map[string]any) bool {
	if len(m) == 0 {
		return false
	}
	for k, v := range m {
		if !langTag.MatchString(k) {
			return false
		}
		if _, ok := v.(string); !ok {
			return false
		}
	}
	return true
}

func coerce(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
