package doc

import (
	"errors"
	"strings"

	"github.com/thalesmg/hocon/pkg/desc"
	"github.com/thalesmg/hocon/pkg/schema"
)

// Options configures a single Generate call.
type Options struct {
	// Formatter renders individual fields. Defaults to
	// DefaultFieldFormatter.
	Formatter FieldFormatter
	// DescFile optionally points at a JSON or YAML description file. The
	// store built from it lives exactly as long as the Generate call.
	DescFile string
	// Lang selects the description language. Defaults to desc.DefaultLang.
	Lang string
	// Printer formats default values. Defaults to DefaultPrinter.
	Printer Printer
}

// Option mutates Options prior to generation.
type Option func(*Options)

// WithFormatter overrides the per-field rendering function.
func WithFormatter(f FieldFormatter) Option {
	return func(o *Options) {
		o.Formatter = f
	}
}

// WithDescFile points generation at a localized description file.
func WithDescFile(path string) Option {
	return func(o *Options) {
		o.DescFile = path
	}
}

// WithLang selects the description language tag.
func WithLang(lang string) Option {
	return func(o *Options) {
		o.Lang = lang
	}
}

// WithPrinter overrides the default-value printer.
func WithPrinter(p Printer) Option {
	return func(o *Options) {
		o.Printer = p
	}
}

func applyDefaults(cfg *Options) {
	if cfg.Formatter == nil {
		cfg.Formatter = DefaultFieldFormatter
	}
	if cfg.Printer == nil {
		cfg.Printer = DefaultPrinter()
	}
	if strings.TrimSpace(cfg.Lang) == "" {
		cfg.Lang = desc.DefaultLang
	}
}

// Generate renders the documentation report for a schema. The schema must
// not change while the call runs; generation itself is single-threaded and
// performs no I/O beyond opening the optional description file. Every
// failure is fatal to the call: the report is all-or-nothing, and the
// description store is released on each exit path.
func Generate(src schema.Schema, opts ...Option) (Report, error) {
	if src == nil {
		return nil, errors.New("doc: schema is required")
	}

	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	applyDefaults(&cfg)

	store := desc.Empty()
	if cfg.DescFile != "" {
		opened, err := desc.Open(cfg.DescFile)
		if err != nil {
			return nil, err
		}
		store = opened
	}
	defer store.Close()

	return generate(src, cfg, store)
}

func generate(src schema.Schema, cfg Options, store *desc.Store) (Report, error) {
	found, err := discover(src)
	if err != nil {
		return nil, err
	}

	fc := FieldContext{
		Namespace: src.Namespace(),
		Lang:      cfg.Lang,
		Descs:     store,
		Printer:   cfg.Printer,
	}

	report := make(Report, 0, len(found)+1)

	roots := src.Roots()
	if err := checkDuplicates(RootStructName, roots); err != nil {
		return nil, err
	}
	rootFields, err := renderFields(fc, cfg.Formatter, roots)
	if err != nil {
		return nil, err
	}
	report = append(report, StructDoc{
		FullName: RootStructName,
		Paths:    []string{},
		Tags:     []string{},
		Fields:   rootFields,
	})

	for _, d := range found {
		fullName := schema.FullName(src.Namespace(), d.name)
		if err := checkDuplicates(fullName, d.def.Fields); err != nil {
			return nil, err
		}
		fields, err := renderFields(fc, cfg.Formatter, d.def.Fields)
		if err != nil {
			return nil, err
		}

		sd := StructDoc{
			FullName: fullName,
			Paths:    sortedSet(d.paths),
			Tags:     sortedSet(d.tags),
			Fields:   fields,
		}
		if text, ok := store.Resolve(d.def.Desc, cfg.Lang); ok {
			sd.Desc = text
		}
		if len(fields) == 0 {
			return nil, &EmptyVisibleStructError{
				Namespace: src.Namespace(),
				Name:      d.name,
				Meta:      sd,
			}
		}
		report = append(report, sd)
	}

	return report, nil
}
