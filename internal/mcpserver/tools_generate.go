package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type generateInput struct {
	Schema    schemaInput     `json:"schema"             jsonschema:"The schema document to generate classes from"`
	Options   generationInput `json:"options,omitempty"  jsonschema:"Generation settings; unset fields use the JSONSCHEMA2POJO_* environment"`
	OutputDir string          `json:"output_dir"         jsonschema:"Directory to write generated files to"`
}

type generatedFileInfo struct {
	Name  string `json:"name"`
	Class string `json:"class"`
	Size  int    `json:"size"`
}

type generateOutput struct {
	Success      bool                `json:"success"`
	OutputDir    string              `json:"output_dir"`
	PackageName  string              `json:"package_name,omitempty"`
	Language     string              `json:"language"`
	FileCount    int                 `json:"file_count"`
	Files        []generatedFileInfo `json:"files"`
	ClassCount   int                 `json:"class_count"`
	WarningCount int                 `json:"warning_count"`
	ErrorCount   int                 `json:"error_count"`
	Issues       []issueInfo         `json:"issues,omitempty"`
}

func handleGenerate(ctx context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	if input.OutputDir == "" {
		return errResult(fmt.Errorf("output_dir is required")), generateOutput{}, nil
	}

	result, err := input.Schema.resolve(ctx, input.Options)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	if err := result.WriteFiles(input.OutputDir); err != nil {
		return errResult(fmt.Errorf("failed to write generated files: %w", err)), generateOutput{}, nil
	}

	output := generateOutput{
		Success:      result.Success,
		OutputDir:    input.OutputDir,
		PackageName:  result.PackageName,
		Language:     string(result.Language),
		FileCount:    len(result.Files),
		ClassCount:   len(result.Classes),
		WarningCount: result.WarningCount,
		ErrorCount:   result.ErrorCount,
		Issues:       issueInfos(result.Issues),
	}

	output.Files = makeSlice[generatedFileInfo](len(result.Files))
	for _, f := range result.Files {
		output.Files = append(output.Files, generatedFileInfo{
			Name:  f.Name,
			Class: f.Class,
			Size:  len(f.Content),
		})
	}

	return nil, output, nil
}
