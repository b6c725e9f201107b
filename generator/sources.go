package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/erraggy/jsonschema2pojo/config"
	"github.com/erraggy/jsonschema2pojo/internal/naming"
	"github.com/erraggy/jsonschema2pojo/schema"
)

// schemaExtensions are the file extensions picked up from a source directory.
var schemaExtensions = []string{".json", ".yaml", ".yml"}

// sourceFile is a schema file and the package its classes go to.
type sourceFile struct {
	path string
	pkg  string
}

// sourceRoot is a schema that produces a top-level class.
type sourceRoot struct {
	schema.Root
	pkg    string
	source string
}

// collectSources expands path into the schema files it names. A directory
// is walked recursively in lexical order; each subdirectory adds its name as
// a segment of the package, so dir/billing/invoice.json lands in
// <pkg>.billing.
func collectSources(path, pkg string) ([]sourceFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("generator: failed to read source: %w", err)
	}
	if !info.IsDir() {
		return []sourceFile{{path: path, pkg: pkg}}, nil
	}

	var files []sourceFile
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != path && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !slices.Contains(schemaExtensions, strings.ToLower(filepath.Ext(p))) {
			return nil
		}
		rel, err := filepath.Rel(path, filepath.Dir(p))
		if err != nil {
			return err
		}
		files = append(files, sourceFile{path: p, pkg: childPackage(pkg, rel)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("generator: failed to walk source directory %s: %w", path, err)
	}
	return files, nil
}

// childPackage appends the segments of the relative directory rel to pkg.
func childPackage(pkg, rel string) string {
	if rel == "." || rel == "" {
		return pkg
	}
	var segments []string
	if pkg != "" {
		segments = append(segments, pkg)
	}
	for _, s := range strings.Split(filepath.ToSlash(rel), "/") {
		segments = append(segments, strings.ToLower(naming.Sanitize(s)))
	}
	return strings.Join(segments, ".")
}

// loadRoots reads every source into the store and returns the roots in
// source order.
func (g *Generator) loadRoots(ctx context.Context, store *schema.Store, paths []string, contents []Content) ([]sourceRoot, error) {
	var roots []sourceRoot
	for _, path := range paths {
		files, err := collectSources(path, g.Config.TargetPackage)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			found, err := g.loadFile(ctx, store, f.path)
			if err != nil {
				return nil, fmt.Errorf("generator: failed to load %s: %w", f.path, err)
			}
			for _, r := range found {
				roots = append(roots, sourceRoot{Root: r, pkg: f.pkg, source: f.path})
			}
		}
	}

	for _, c := range contents {
		found, err := g.loadContent(ctx, store, c)
		if err != nil {
			return nil, fmt.Errorf("generator: failed to load %s: %w", c.Name, err)
		}
		for _, r := range found {
			roots = append(roots, sourceRoot{Root: r, pkg: g.Config.TargetPackage, source: c.Name})
		}
	}
	return roots, nil
}

func (g *Generator) loadFile(ctx context.Context, store *schema.Store, path string) ([]schema.Root, error) {
	if g.Config.SourceType == config.SourceOpenAPI {
		return store.LoadOpenAPI(ctx, path)
	}
	doc, err := store.Load(path)
	if err != nil {
		return nil, err
	}
	return []schema.Root{schema.DocumentRoot(doc)}, nil
}

func (g *Generator) loadContent(ctx context.Context, store *schema.Store, c Content) ([]schema.Root, error) {
	if store.Contains(c.Name) {
		return nil, fmt.Errorf("a document named %s is already loaded", c.Name)
	}
	if g.Config.SourceType == config.SourceOpenAPI {
		return store.LoadOpenAPIData(ctx, c.Name, c.Data)
	}
	doc, err := schema.Parse(c.Name, c.Data)
	if err != nil {
		return nil, err
	}
	store.Add(doc)
	return []schema.Root{schema.DocumentRoot(doc)}, nil
}
