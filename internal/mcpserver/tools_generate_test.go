package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTool_WritesFiles(t *testing.T) {
	resultCache.reset()
	dir := t.TempDir()

	input := generateInput{
		Schema:    schemaInput{Content: personSchema, Name: "person.json"},
		Options:   generationInput{PackageName: "com.example", GenerateBuilders: true},
		OutputDir: dir,
	}
	res, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, res)

	assert.True(t, output.Success)
	assert.Equal(t, dir, output.OutputDir)
	assert.Equal(t, "com.example", output.PackageName)
	assert.Equal(t, "java", output.Language)
	assert.Equal(t, 1, output.FileCount)
	assert.Equal(t, 2, output.ClassCount, "Person and its nested Status enum")
	require.Len(t, output.Files, 1)
	assert.Equal(t, "com/example/Person.java", output.Files[0].Name)
	assert.Equal(t, "com.example.Person", output.Files[0].Class)

	content, err := os.ReadFile(filepath.Join(dir, "com", "example", "Person.java"))
	require.NoError(t, err)
	assert.Equal(t, output.Files[0].Size, len(content))
	assert.Contains(t, string(content), "public Person withName(String name) {")
}

func TestGenerateTool_Go(t *testing.T) {
	resultCache.reset()
	dir := t.TempDir()

	input := generateInput{
		Schema:    schemaInput{Content: personSchema, Name: "person.json"},
		Options:   generationInput{Language: "go", PackageName: "model"},
		OutputDir: dir,
	}
	_, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.Len(t, output.Files, 1)
	assert.Equal(t, "model/person.go", output.Files[0].Name)
	_, err = os.Stat(filepath.Join(dir, "model", "person.go"))
	assert.NoError(t, err)
}

func TestGenerateTool_MissingOutputDir(t *testing.T) {
	res, _, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, generateInput{
		Schema: schemaInput{Content: personSchema},
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
}

func TestGenerateTool_InvalidSchema(t *testing.T) {
	resultCache.reset()
	dir := t.TempDir()

	res, _, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, generateInput{
		Schema:    schemaInput{Content: `{"type":"object","properties":{"a":{"$ref":"#/definitions/nope"}}}`},
		OutputDir: dir,
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing is written when generation fails")
}

func TestGenerateTool_StrictReportsWarnings(t *testing.T) {
	resultCache.reset()
	schema := `{"type":"object","properties":{"count":{"type":"integer","default":"many"}}}`

	_, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, generateInput{
		Schema:    schemaInput{Content: schema, Name: "bag.json"},
		OutputDir: t.TempDir(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, output.WarningCount)
	var severities []string
	for _, i := range output.Issues {
		severities = append(severities, i.Severity)
	}
	assert.Contains(t, severities, "warning")

	res, _, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, generateInput{
		Schema:    schemaInput{Content: schema, Name: "bag.json"},
		Options:   generationInput{Strict: true},
		OutputDir: t.TempDir(),
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
}
