// Package oracle loads native symbol values from HCL files so the catalog
// can be checked against the values of a client library release.
//
// A symbol file looks like:
//
//	library "aerospike-c-client" {
//	  version = "4.3.1"
//	}
//
//	symbol "AS_POLICY_RETRY_NONE" {
//	  value = 0
//	}
//
// Symbol files are maintained by hand from the headers of the release named
// in the library block.
package oracle

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/aeroconst/internal/ctxlog"
	"github.com/specialistvlad/aeroconst/internal/fsutil"
	"github.com/specialistvlad/aeroconst/internal/native"
)

var (
	// ErrNoFiles is returned when none of the given paths contain symbol files.
	ErrNoFiles = errors.New("no .hcl symbol files found")
	// ErrConflictingSymbol is returned when two files define a symbol differently.
	ErrConflictingSymbol = errors.New("symbol defined with conflicting values")
)

type fileSchema struct {
	Library *libraryBlock `hcl:"library,block"`
	Symbols []symbolBlock `hcl:"symbol,block"`
}

type libraryBlock struct {
	Name    string `hcl:"name,label"`
	Version string `hcl:"version,optional"`
}

type symbolBlock struct {
	Name  string `hcl:"name,label"`
	Value int64  `hcl:"value"`
}

// Oracle is a native.Source loaded from symbol files.
type Oracle struct {
	Library string
	Version string
	Files   []string

	symbols native.Table
	origin  map[string]string
}

var _ native.Source = (*Oracle)(nil)

// Lookup implements native.Source.
func (o *Oracle) Lookup(symbol string) (int64, bool) {
	return o.symbols.Lookup(symbol)
}

// Table returns a copy of the loaded symbols.
func (o *Oracle) Table() native.Table {
	out := make(native.Table, len(o.symbols))
	for k, v := range o.symbols {
		out[k] = v
	}
	return out
}

// Load reads every .hcl file under the given paths. A symbol may appear in
// several files only if the values agree.
func Load(ctx context.Context, paths ...string) (*Oracle, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, p := range paths {
		found, err := fsutil.FindFilesByExtension(p, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", p, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoFiles, paths)
	}
	logger.Debug("Found symbol files.", "files", files)

	o := &Oracle{
		Files:   files,
		symbols: make(native.Table),
		origin:  make(map[string]string),
	}
	parser := hclparse.NewParser()

	for _, path := range files {
		f, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
		}

		var content fileSchema
		if diags := gohcl.DecodeBody(f.Body, nil, &content); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
		}

		if lib := content.Library; lib != nil {
			if o.Library == "" {
				o.Library, o.Version = lib.Name, lib.Version
			} else if o.Library != lib.Name || o.Version != lib.Version {
				logger.Warn("Symbol files describe different libraries.",
					"first", o.Library+" "+o.Version, "file", path, "library", lib.Name+" "+lib.Version)
			}
		}

		for _, s := range content.Symbols {
			if prev, ok := o.symbols[s.Name]; ok && prev != s.Value {
				return nil, fmt.Errorf("%w: %s is %d in %s and %d in %s",
					ErrConflictingSymbol, s.Name, prev, o.origin[s.Name], s.Value, path)
			}
			o.symbols[s.Name] = s.Value
			o.origin[s.Name] = path
		}
		logger.Debug("Loaded symbol file.", "file", path, "symbols", len(content.Symbols))
	}

	logger.Info("Symbol oracle loaded.", "library", o.Library, "version", o.Version, "symbols", len(o.symbols))
	return o, nil
}
