package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/jsonschema2pojo/generator"
)

type inspectInput struct {
	Schema   schemaInput     `json:"schema"              jsonschema:"The schema document to inspect"`
	Options  generationInput `json:"options,omitempty"   jsonschema:"Generation settings; unset fields use the JSONSCHEMA2POJO_* environment"`
	Kind     string          `json:"kind,omitempty"      jsonschema:"Only list classes of this kind: class or enum"`
	ShowFile string          `json:"show_file,omitempty" jsonschema:"Name of a generated file (as listed in files) whose source to return"`
	Offset   int             `json:"offset,omitempty"    jsonschema:"Skip the first N classes"`
	Limit    int             `json:"limit,omitempty"     jsonschema:"Maximum number of classes to return (default 100)"`
}

type inspectOutput struct {
	Sources      []string                 `json:"sources,omitempty"`
	PackageName  string                   `json:"package_name,omitempty"`
	Language     string                   `json:"language"`
	Files        []string                 `json:"files"`
	ClassCount   int                      `json:"class_count"`
	Returned     int                      `json:"returned"`
	Classes      []generator.ClassSummary `json:"classes,omitempty"`
	WarningCount int                      `json:"warning_count"`
	ErrorCount   int                      `json:"error_count"`
	Issues       []issueInfo              `json:"issues,omitempty"`
	Source       string                   `json:"source,omitempty"`
}

func handleInspect(ctx context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	switch input.Kind {
	case "", "class", "enum":
	default:
		return errResult(fmt.Errorf("invalid kind %q: must be class or enum", input.Kind)), inspectOutput{}, nil
	}

	result, err := input.Schema.resolve(ctx, input.Options)
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	output := inspectOutput{
		PackageName:  result.PackageName,
		Language:     string(result.Language),
		WarningCount: result.WarningCount,
		ErrorCount:   result.ErrorCount,
		Issues:       issueInfos(result.Issues),
	}
	for _, src := range result.Sources {
		output.Sources = append(output.Sources, pathPattern.ReplaceAllString(src, "<path>"))
	}
	output.Files = makeSlice[string](len(result.Files))
	for _, f := range result.Files {
		output.Files = append(output.Files, f.Name)
	}

	if input.ShowFile != "" {
		file := result.GetFile(input.ShowFile)
		if file == nil {
			return errResult(fmt.Errorf("no generated file named %q", input.ShowFile)), inspectOutput{}, nil
		}
		output.Source = string(file.Content)
	}

	var matched []generator.ClassSummary
	for _, c := range result.Classes {
		if input.Kind == "" || c.Kind == input.Kind {
			matched = append(matched, c)
		}
	}
	output.ClassCount = len(matched)
	output.Classes = paginate(matched, input.Offset, input.Limit)
	output.Returned = len(output.Classes)

	return nil, output, nil
}
