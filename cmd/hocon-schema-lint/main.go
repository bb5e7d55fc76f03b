package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/thalesmg/hocon/pkg/desc"
	"github.com/thalesmg/hocon/pkg/doc"
	"github.com/thalesmg/hocon/pkg/schema"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [paths...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint schema documents for authoring problems.\n\n"); err != nil {
			panic(err)
		}
		flag.PrintDefaults()
	}
	descFile := flag.String("desc-file", "", "description file desc keys must resolve against")
	lang := flag.String("lang", desc.DefaultLang, "description language")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"examples/data-schema/schema.yaml"}
	}

	store := desc.Empty()
	if *descFile != "" {
		opened, err := desc.Open(*descFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint: %v\n", err)
			os.Exit(1)
		}
		store = opened
	}
	defer store.Close()

	var violations []violation
	for _, path := range paths {
		linted, err := lintFile(path, store, *lang)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		violations = append(violations, linted...)
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].file == violations[j].file {
				if violations[i].location == violations[j].location {
					return violations[i].message < violations[j].message
				}
				return violations[i].location < violations[j].location
			}
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
		}
		os.Exit(1)
	}
}

func lintFile(path string, store *desc.Store, lang string) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	src, err := schema.ParseMapSchema(raw, path)
	if err != nil {
		return nil, err
	}

	var result []violation
	result = append(result, lintFields(path, []string{"roots"}, src.Roots(), store, lang)...)
	for _, name := range src.StructNames() {
		def, ok := src.Struct(name)
		if !ok {
			continue
		}
		result = append(result, lintFields(path, []string{"structs", name}, def.Fields, store, lang)...)
	}

	report, err := doc.Generate(src)
	if err != nil {
		result = append(result, violation{
			file:     path,
			location: "generate",
			message:  err.Error(),
		})
		return result, nil
	}

	reached := make(map[string]struct{}, len(report))
	for _, sd := range report {
		reached[sd.FullName] = struct{}{}
	}
	for _, name := range src.StructNames() {
		full := schema.FullName(src.Namespace(), name)
		if _, ok := reached[full]; !ok {
			result = append(result, violation{
				file:     path,
				location: formatLocation([]string{"structs", name}),
				message:  "struct is declared but not reachable from any root",
			})
		}
	}

	return result, nil
}

func lintFields(file string, base []string, fields []schema.Field, store *desc.Store, lang string) []violation {
	var result []violation
	for _, field := range fields {
		location := formatLocation(appendPath(base, field.Name))

		if field.Schema.Hidden && field.Schema.Deprecated != "" {
			result = append(result, violation{
				file:     file,
				location: location,
				message:  "field is both hidden and deprecated; hidden already suppresses it",
			})
		}

		seen := make(map[string]struct{}, len(field.Schema.Aliases))
		for _, alias := range field.Schema.Aliases {
			if alias == field.Name {
				result = append(result, violation{
					file:     file,
					location: location,
					message:  fmt.Sprintf("alias %q duplicates the field name", alias),
				})
			}
			if _, dup := seen[alias]; dup {
				result = append(result, violation{
					file:     file,
					location: location,
					message:  fmt.Sprintf("alias %q repeated", alias),
				})
			}
			seen[alias] = struct{}{}
		}

		if key, ok := field.Schema.Desc.(desc.Key); ok && store.Len() > 0 {
			if _, resolved := store.Resolve(key, lang); !resolved {
				result = append(result, violation{
					file:     file,
					location: location,
					message:  fmt.Sprintf("desc key %q not present in description file", key.ID),
				})
			}
		}
	}
	return result
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	next = append(next, segment)
	return next
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}
