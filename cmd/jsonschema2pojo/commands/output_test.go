package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/jsonschema2pojo/generator"
)

func sampleSummary() Summary {
	return Summary{
		Version:  "dev",
		Target:   "out",
		Package:  "com.example",
		Language: "java",
		Files:    []string{"com/example/Ticket.java"},
		Classes: []generator.ClassSummary{
			{Name: "com.example.Ticket", Kind: "class", Fields: 1, Methods: 2, File: "com/example/Ticket.java"},
			{Name: "com.example.Ticket.Status", Kind: "enum", Fields: 2, File: "com/example/Ticket.java"},
		},
		Success: true,
	}
}

func TestRenderClassTable(t *testing.T) {
	out := RenderClassTable(sampleSummary().Classes)

	for _, want := range []string{"Class", "Kind", "Methods", "com.example.Ticket.Status", "enum", "com/example/Ticket.java"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderClassTable_Empty(t *testing.T) {
	assert.Empty(t, RenderClassTable(nil))
}

func TestMarshalSummary_YAML(t *testing.T) {
	data, err := MarshalSummary(sampleSummary(), FormatYAML)
	require.NoError(t, err)

	var decoded Summary
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, sampleSummary(), decoded)
}

func TestMarshalSummary_InvalidFormat(t *testing.T) {
	_, err := MarshalSummary(sampleSummary(), FormatText)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format for structured output")
}
