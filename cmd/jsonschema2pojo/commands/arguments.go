// Package commands provides CLI command handlers for jsonschema2pojo.
package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erraggy/jsonschema2pojo/internal/cliutil"
)

// Output format constants
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
)

// UsageError reports a command line that cannot be run. It is never
// produced by the generator itself.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return "usage: " + e.Message
}

// ErrHelp is returned by Parse after printing the usage for -h/--help.
var ErrHelp = &UsageError{Message: "help requested"}

// Arguments holds the parsed command line.
type Arguments struct {
	Sources          []string
	Target           string
	Package          string
	GenerateBuilders bool
	Language         string
	SourceType       string
	ConfigFile       string
	Format           string
	Strict           bool
	Verbose          bool
	Help             bool
	ShowVersion      bool

	// Exit receives the exit status instead of the process being
	// terminated directly. Defaults to os.Exit.
	Exit func(int)
	// Stdout receives results and the usage text; Stderr receives
	// diagnostics.
	Stdout io.Writer
	Stderr io.Writer

	// set records which flags appeared on the command line.
	set map[string]bool
}

// NewArguments returns Arguments bound to the process.
func NewArguments() *Arguments {
	return &Arguments{
		Format: FormatText,
		Exit:   os.Exit,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// sourceList collects repeated or comma separated -s values.
type sourceList struct {
	values *[]string
}

func (s sourceList) String() string {
	if s.values == nil {
		return ""
	}
	return strings.Join(*s.values, ",")
}

func (s sourceList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s.values = append(*s.values, part)
		}
	}
	return nil
}

func (a *Arguments) flagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("jsonschema2pojo", flag.ContinueOnError)
	fs.SetOutput(a.Stdout)

	sources := sourceList{values: &a.Sources}
	fs.Var(sources, "s", "schema file or directory to read (repeatable, required)")
	fs.Var(sources, "source", "schema file or directory to read (repeatable, required)")
	fs.StringVar(&a.Target, "t", "", "output directory for generated files (required)")
	fs.StringVar(&a.Target, "target", "", "output directory for generated files (required)")
	fs.StringVar(&a.Package, "p", "", "package of the generated classes")
	fs.StringVar(&a.Package, "package", "", "package of the generated classes")
	fs.BoolVar(&a.GenerateBuilders, "b", false, "add fluent with<Name> builder methods")
	fs.BoolVar(&a.GenerateBuilders, "generate-builders", false, "add fluent with<Name> builder methods")
	fs.StringVar(&a.Language, "l", "", "target language: java or go (default java)")
	fs.StringVar(&a.Language, "language", "", "target language: java or go (default java)")
	fs.StringVar(&a.SourceType, "source-type", "", "input kind: jsonschema, yamlschema or openapi (default jsonschema)")
	fs.StringVar(&a.ConfigFile, "config", "", "YAML file with generation settings")
	fs.StringVar(&a.Format, "format", FormatText, "summary format: text, json, yaml or msgpack")
	fs.BoolVar(&a.Strict, "strict", false, "fail when generation reports warnings or errors")
	fs.BoolVar(&a.Verbose, "verbose", false, "log rule activity to stderr")
	fs.BoolVar(&a.Help, "h", false, "print this help")
	fs.BoolVar(&a.Help, "help", false, "print this help")
	fs.BoolVar(&a.ShowVersion, "version", false, "print the version and exit")

	fs.Usage = func() {
		out := fs.Output()
		cliutil.Writef(out, "Usage: jsonschema2pojo [flags] --source <path> --target <dir>\n")
		cliutil.Writef(out, "       jsonschema2pojo mcp\n\n")
		cliutil.Writef(out, "Generate Java or Go classes from JSON Schema documents.\n\n")
		cliutil.Writef(out, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(out, "\nExamples:\n")
		cliutil.Writef(out, "  jsonschema2pojo -s schemas -t src/main/java -p com.example\n")
		cliutil.Writef(out, "  jsonschema2pojo -s person.json -s address.json -t out -b\n")
		cliutil.Writef(out, "  jsonschema2pojo -s petstore.yaml --source-type openapi -t out\n")
		cliutil.Writef(out, "  jsonschema2pojo -s schemas -t model -l go -p model --format json\n")
		cliutil.Writef(out, "\nEnvironment:\n")
		cliutil.Writef(out, "  JSONSCHEMA2POJO_* variables (e.g. JSONSCHEMA2POJO_TARGET_PACKAGE) override\n")
		cliutil.Writef(out, "  the --config file; a .env file in the working directory is read first.\n")
	}
	return fs
}

// Parse reads args into a. When the command line cannot be run, or help is
// requested, it prints the usage, hands status 1 to Exit and returns a
// *UsageError so the caller stops before generating anything.
func (a *Arguments) Parse(args []string) error {
	fs := a.flagSet()
	if err := fs.Parse(args); err != nil {
		// flag has already reported the problem and printed the usage.
		a.Exit(1)
		return &UsageError{Message: err.Error()}
	}

	a.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { a.set[f.Name] = true })
	a.Sources = append(a.Sources, fs.Args()...)

	if a.Help {
		fs.Usage()
		a.Exit(1)
		return ErrHelp
	}
	if a.ShowVersion {
		return nil
	}

	var missing []string
	if len(a.Sources) == 0 {
		missing = append(missing, "--source")
	}
	if a.Target == "" {
		missing = append(missing, "--target")
	}
	if len(missing) > 0 {
		return a.fail(fs, fmt.Sprintf("missing required %s", strings.Join(missing, " and ")))
	}

	if err := ValidateOutputFormat(a.Format); err != nil {
		return a.fail(fs, err.Error())
	}
	return nil
}

func (a *Arguments) fail(fs *flag.FlagSet, msg string) error {
	cliutil.Writef(a.Stderr, "Error: %s\n\n", msg)
	fs.Usage()
	a.Exit(1)
	return &UsageError{Message: msg}
}

// IsSet reports whether any of the named flags appeared on the command line.
func (a *Arguments) IsSet(names ...string) bool {
	for _, name := range names {
		if a.set[name] {
			return true
		}
	}
	return false
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML, FormatMsgpack:
		return nil
	}
	return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s, %s", format, FormatText, FormatJSON, FormatYAML, FormatMsgpack)
}
