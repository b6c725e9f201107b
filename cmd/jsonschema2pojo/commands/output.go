package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bndr/gotabulate"
	"github.com/vmihailenco/msgpack/v5"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/jsonschema2pojo"
	"github.com/erraggy/jsonschema2pojo/generator"
	"github.com/erraggy/jsonschema2pojo/internal/cliutil"
)

// Summary is the machine-readable report of a generation run.
type Summary struct {
	Version      string                   `json:"version" yaml:"version" msgpack:"version"`
	Target       string                   `json:"target" yaml:"target" msgpack:"target"`
	Package      string                   `json:"package,omitempty" yaml:"package,omitempty" msgpack:"package,omitempty"`
	Language     string                   `json:"language" yaml:"language" msgpack:"language"`
	Files        []string                 `json:"files" yaml:"files" msgpack:"files"`
	Classes      []generator.ClassSummary `json:"classes" yaml:"classes" msgpack:"classes"`
	InfoCount    int                      `json:"infoCount" yaml:"infoCount" msgpack:"infoCount"`
	WarningCount int                      `json:"warningCount" yaml:"warningCount" msgpack:"warningCount"`
	ErrorCount   int                      `json:"errorCount" yaml:"errorCount" msgpack:"errorCount"`
	Success      bool                     `json:"success" yaml:"success" msgpack:"success"`
}

func newSummary(target string, result *generator.GenerateResult) Summary {
	s := Summary{
		Version:      jsonschema2pojo.Version(),
		Target:       target,
		Package:      result.PackageName,
		Language:     string(result.Language),
		Classes:      result.Classes,
		InfoCount:    result.InfoCount,
		WarningCount: result.WarningCount,
		ErrorCount:   result.ErrorCount,
		Success:      result.Success,
	}
	for _, f := range result.Files {
		s.Files = append(s.Files, f.Name)
	}
	return s
}

// MarshalSummary encodes s in one of the structured formats.
func MarshalSummary(s Summary, format string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(s, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(s)
	case FormatMsgpack:
		data, err = msgpack.Marshal(s)
	default:
		return nil, fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return data, nil
}

func writeSummary(a *Arguments, s Summary) error {
	if a.Format == FormatText {
		cliutil.Writef(a.Stdout, "%s", RenderClassTable(s.Classes))
		cliutil.Writef(a.Stdout, "Generated %s (%s) in %s\n",
			cliutil.Plural(len(s.Files), "file"), cliutil.Plural(len(s.Classes), "type"), s.Target)
		return nil
	}

	data, err := MarshalSummary(s, a.Format)
	if err != nil {
		return err
	}
	if _, err := a.Stdout.Write(data); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	if a.Format == FormatJSON {
		cliutil.Writef(a.Stdout, "\n")
	}
	return nil
}

// RenderClassTable renders the class summaries as a grid. An empty list
// renders as an empty string.
func RenderClassTable(classes []generator.ClassSummary) string {
	if len(classes) == 0 {
		return ""
	}
	rows := make([][]any, 0, len(classes))
	for _, c := range classes {
		rows = append(rows, []any{c.Name, c.Kind, strconv.Itoa(c.Fields), strconv.Itoa(c.Methods), c.File})
	}
	t := gotabulate.Create(rows)
	t.SetHeaders([]string{"Class", "Kind", "Fields", "Methods", "File"})
	t.SetAlign("left")
	return t.Render("grid")
}
