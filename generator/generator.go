package generator

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/erraggy/jsonschema2pojo/codemodel"
	"github.com/erraggy/jsonschema2pojo/config"
	"github.com/erraggy/jsonschema2pojo/internal/issues"
	"github.com/erraggy/jsonschema2pojo/internal/options"
	"github.com/erraggy/jsonschema2pojo/internal/severity"
	"github.com/erraggy/jsonschema2pojo/rules"
	"github.com/erraggy/jsonschema2pojo/schema"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates schema values that were ignored
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates problems that make the output wrong
	SeverityError = severity.SeverityError
)

// GenerateIssue represents a single non-fatal generation issue
type GenerateIssue = issues.Issue

// GeneratedFile represents a single generated source file
type GeneratedFile struct {
	// Name is the slash-separated path relative to the output directory
	// (e.g., "com/example/Person.java")
	Name string
	// Class is the qualified name of the top-level class in the file
	Class string
	// Content is the generated source code
	Content []byte
}

// ClassSummary describes one generated class or enum.
type ClassSummary struct {
	// Name is the qualified class name (nested classes use Outer.Inner)
	Name string `json:"name" yaml:"name" msgpack:"name"`
	// Kind is "class" or "enum"
	Kind string `json:"kind" yaml:"kind" msgpack:"kind"`
	// Fields is the number of fields (enum constants for enums)
	Fields int `json:"fields" yaml:"fields" msgpack:"fields"`
	// Methods is the number of declared methods
	Methods int `json:"methods" yaml:"methods" msgpack:"methods"`
	// File is the generated file the class lives in
	File string `json:"file" yaml:"file" msgpack:"file"`
}

// GenerateResult contains the results of generating classes from schemas
type GenerateResult struct {
	// Files contains all generated files, one per top-level class
	Files []GeneratedFile
	// Classes summarises every generated class, nested ones included
	Classes []ClassSummary
	// Sources lists the schema files that produced top-level classes
	Sources []string
	// PackageName is the target package
	PackageName string
	// Language is the target language
	Language config.Language
	// Issues contains all generation issues
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// ErrorCount is the total number of error issues
	ErrorCount int
	// Success is true if generation completed without error issues
	Success bool
	// LoadTime is the time taken to read the sources
	LoadTime time.Duration
	// GenerateTime is the time taken to build and emit the classes
	GenerateTime time.Duration
}

// HasErrors returns true if there are any error issues
func (r *GenerateResult) HasErrors() bool {
	return r.ErrorCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator turns JSON Schema documents into class source files.
type Generator struct {
	// Config controls the rules and the emitter.
	Config config.GenerationConfig

	// StrictMode causes generation to fail on any warning or error issue
	StrictMode bool

	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool

	// BaseDir, when set, confines file references to this directory
	BaseDir string

	// Logger receives debug output from the rules. Nil discards it.
	Logger *slog.Logger
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		Config:      config.Default(),
		IncludeInfo: true,
	}
}

// Content is an in-memory schema document.
type Content struct {
	// Name identifies the document; its base name becomes the class name
	// and relative references resolve against its directory.
	Name string
	Data []byte
}

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input sources (at least one must be set)
	filePaths []string
	contents  []Content

	ctx         context.Context
	config      config.GenerationConfig
	strictMode  bool
	includeInfo bool
	baseDir     string
	logger      *slog.Logger
}

// GenerateWithOptions generates classes using functional options.
// This combines input source selection and configuration in a single call.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("schemas/person.json"),
//	    generator.WithPackageName("com.example"),
//	    generator.WithBuilders(true),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	g := &Generator{
		Config:      cfg.config,
		StrictMode:  cfg.strictMode,
		IncludeInfo: cfg.includeInfo,
		BaseDir:     cfg.baseDir,
		Logger:      cfg.logger,
	}
	return g.generate(cfg.ctx, cfg.filePaths, cfg.contents)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		ctx:         context.Background(),
		config:      config.Default(),
		includeInfo: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateInputSource(
		"must specify an input source (use WithFilePath or WithContent)",
		len(cfg.filePaths), len(cfg.contents),
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath adds a schema file or a directory of schema files as input.
// May be given more than once.
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		if path == "" {
			return fmt.Errorf("file path cannot be empty")
		}
		cfg.filePaths = append(cfg.filePaths, path)
		return nil
	}
}

// WithContent adds an in-memory schema document as input.
func WithContent(name string, data []byte) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return fmt.Errorf("content name cannot be empty")
		}
		for _, c := range cfg.contents {
			if c.Name == name {
				return fmt.Errorf("duplicate content name %q", name)
			}
		}
		cfg.contents = append(cfg.contents, Content{Name: name, Data: data})
		return nil
	}
}

// WithContext sets the context used while loading OpenAPI sources
func WithContext(ctx context.Context) Option {
	return func(cfg *generateConfig) error {
		if ctx == nil {
			return fmt.Errorf("context cannot be nil")
		}
		cfg.ctx = ctx
		return nil
	}
}

// WithConfig replaces the whole generation configuration.
// Options applied after it still override single settings.
func WithConfig(c config.GenerationConfig) Option {
	return func(cfg *generateConfig) error {
		cfg.config = c
		return nil
	}
}

// WithPackageName specifies the target package (e.g., "com.example")
// Default: the default package
func WithPackageName(name string) Option {
	return func(cfg *generateConfig) error {
		cfg.config.TargetPackage = name
		return nil
	}
}

// WithLanguage specifies the target language
// Default: java
func WithLanguage(lang config.Language) Option {
	return func(cfg *generateConfig) error {
		cfg.config.TargetLanguage = lang
		return nil
	}
}

// WithSourceType specifies how source files are read
// Default: jsonschema
func WithSourceType(st config.SourceType) Option {
	return func(cfg *generateConfig) error {
		cfg.config.SourceType = st
		return nil
	}
}

// WithTargetVersion specifies the Java source level (e.g., "1.6", "11")
// Default: 1.8
func WithTargetVersion(v string) Option {
	return func(cfg *generateConfig) error {
		cfg.config.TargetVersion = v
		return nil
	}
}

// WithBuilders enables or disables fluent with-methods
// Default: false
func WithBuilders(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.config.GenerateBuilders = enabled
		return nil
	}
}

// WithPrimitives enables or disables primitive types for scalars
// Default: true
func WithPrimitives(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.config.UsePrimitives = enabled
		return nil
	}
}

// WithLongIntegers maps "integer" to long instead of int
// Default: false
func WithLongIntegers(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.config.UseLongIntegers = enabled
		return nil
	}
}

// WithDoubleNumbers maps "number" to double instead of float
// Default: true
func WithDoubleNumbers(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.config.UseDoubleNumbers = enabled
		return nil
	}
}

// WithJSR303 enables or disables @NotNull and @Valid annotations
// Default: false
func WithJSR303(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.config.IncludeJSR303Annotations = enabled
		return nil
	}
}

// WithStrictMode enables or disables strict mode (fail on any warning)
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithBaseDir confines file references to dir
func WithBaseDir(dir string) Option {
	return func(cfg *generateConfig) error {
		cfg.baseDir = dir
		return nil
	}
}

// WithLogger sets the logger that receives rule debug output
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.logger = logger
		return nil
	}
}

// Generate generates classes from the given schema files or directories
func (g *Generator) Generate(paths ...string) (*GenerateResult, error) {
	return g.GenerateContext(context.Background(), paths...)
}

// GenerateContext is Generate with a context for loading OpenAPI sources
func (g *Generator) GenerateContext(ctx context.Context, paths ...string) (*GenerateResult, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("generator: no source paths given")
	}
	return g.generate(ctx, paths, nil)
}

// generate runs one session over every source. All sources share the
// store and the model, so a schema referenced from several files becomes
// a single class.
func (g *Generator) generate(ctx context.Context, paths []string, contents []Content) (*GenerateResult, error) {
	if err := g.Config.Validate(); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	em, err := newEmitter(g.Config)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	result := &GenerateResult{
		PackageName: g.Config.TargetPackage,
		Language:    g.Config.TargetLanguage,
	}

	loadStart := time.Now()
	var storeOpts []schema.StoreOption
	if g.BaseDir != "" {
		storeOpts = append(storeOpts, schema.WithBaseDir(g.BaseDir))
	}
	store := schema.NewStore(storeOpts...)
	roots, err := g.loadRoots(ctx, store, paths, contents)
	if err != nil {
		return nil, err
	}
	result.LoadTime = time.Since(loadStart)

	generateStart := time.Now()
	factory := rules.NewFactory(g.Config)
	model := codemodel.NewModel()
	session := factory.NewContext(store, model, g.Logger)
	for _, root := range roots {
		pkg := model.Package(root.pkg)
		if _, err := factory.SchemaRule().Apply(root.Name, root.Node, pkg, session); err != nil {
			return nil, fmt.Errorf("generator: %s: %w", root.source, err)
		}
		result.Sources = appendUnique(result.Sources, root.source)
	}

	for _, cls := range model.Classes() {
		file, err := em.emit(cls)
		if err != nil {
			return nil, fmt.Errorf("generator: failed to emit %s: %w", cls.QualifiedName(), err)
		}
		result.Files = append(result.Files, file)
		result.Classes = append(result.Classes, summarize(cls, file.Name)...)
	}

	result.Issues = session.Issues()
	result.GenerateTime = time.Since(generateStart)
	g.updateCounts(result)
	result.Success = result.ErrorCount == 0

	// In strict mode, fail on any issues
	if g.StrictMode && (result.ErrorCount > 0 || result.WarningCount > 0) {
		return result, fmt.Errorf("generator: generation failed in strict mode: %d error(s), %d warning(s)",
			result.ErrorCount, result.WarningCount)
	}

	// Filter info messages if not included
	if !g.IncludeInfo {
		filtered := make([]GenerateIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

// updateCounts updates the issue counts in the result
func (g *Generator) updateCounts(result *GenerateResult) {
	result.InfoCount, result.WarningCount, result.ErrorCount = issues.Count(result.Issues)
}

// summarize lists cls and its nested classes, outermost first.
func summarize(cls *codemodel.Class, file string) []ClassSummary {
	fields := len(cls.Fields)
	if cls.Kind == codemodel.ClassEnum {
		fields = len(cls.EnumConstants)
	}
	out := []ClassSummary{{
		Name:    cls.QualifiedName(),
		Kind:    cls.Kind.String(),
		Fields:  fields,
		Methods: len(cls.Methods),
		File:    file,
	}}
	for _, nested := range cls.Nested {
		out = append(out, summarize(nested, file)...)
	}
	return out
}

func appendUnique(list []string, s string) []string {
	if slices.Contains(list, s) {
		return list
	}
	return append(list, s)
}
