package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var diamond = []string{"A", "B", "C", "D"}

func TestDecode_Formats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{
			name:   "json",
			format: FormatJSON,
			input: `{"topics": [
				{"name": "A", "prerequisites": []},
				{"name": "B", "prerequisites": ["A"]},
				{"name": "C", "prerequisites": ["A"], "category": "core"},
				{"name": "D", "prerequisites": ["B", "C"], "description": "the goal"}
			]}`,
		},
		{
			name:   "yaml",
			format: FormatYAML,
			input: `
topics:
  - name: A
    prerequisites: []
  - name: B
    prerequisites: [A]
  - name: C
    category: core
    prerequisites: [A]
  - name: D
    description: the goal
    prerequisites: [B, C]
`,
		},
		{
			name:   "cue",
			format: FormatCUE,
			input: `
topics: [
	{name: "A", prerequisites: []},
	{name: "B", prerequisites: ["A"]},
	{name: "C", category: "core", prerequisites: ["A"]},
	{name: "D", description: "the goal", prerequisites: ["B", "C"]},
]
`,
		},
		{
			name:   "hcl",
			format: FormatHCL,
			input: `
topic "A" {}

topic "B" {
  prerequisites = ["A"]
}

topic "C" {
  category      = "core"
  prerequisites = ["A"]
}

topic "D" {
  description   = "the goal"
  prerequisites = ["B", "C"]
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Decode([]byte(tt.input), tt.format)
			require.NoError(t, err)
			assert.Equal(t, diamond, c.Topics())
			assert.Equal(t, []string{"B", "C"}, c.DirectPrerequisites("D"))
			assert.Empty(t, c.DirectPrerequisites("A"))

			cTopic, ok := c.Topic("C")
			require.True(t, ok)
			assert.Equal(t, "core", cTopic.Category)
			dTopic, _ := c.Topic("D")
			assert.Equal(t, "the goal", dTopic.Description)
		})
	}
}

func TestDecode_FormatsAgreeOnFingerprint(t *testing.T) {
	j, err := Decode([]byte(`{"topics":[{"name":"A"},{"name":"B","prerequisites":["A"]}]}`), FormatJSON)
	require.NoError(t, err)
	y, err := Decode([]byte("topics:\n  - name: A\n  - name: B\n    prerequisites: [A]\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, j.Fingerprint(), y.Fingerprint())
}

func TestDecodeJSON_SchemaViolations(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing topics", `{}`},
		{"unknown field", `{"topics": [], "extra": 1}`},
		{"missing name", `{"topics": [{"prerequisites": []}]}`},
		{"empty name", `{"topics": [{"name": ""}]}`},
		{"prerequisites not strings", `{"topics": [{"name": "A", "prerequisites": [1]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input), FormatJSON)
			require.Error(t, err)
			var verr *jsonschema.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte(`{not json`), FormatJSON)
	assert.Error(t, err)

	_, err = Decode([]byte("topics:\n  - name: A\n    color: red\n"), FormatYAML)
	assert.Error(t, err, "unknown YAML fields should be rejected")

	_, err = Decode([]byte(`topics: [{name: string}]`), FormatCUE)
	assert.Error(t, err, "non-concrete CUE should be rejected")

	_, err = Decode([]byte(`topic {}`), FormatHCL)
	assert.Error(t, err, "HCL topic blocks need a label")

	_, err = Decode([]byte(`{"topics":[{"name":"A"},{"name":"A"}]}`), FormatJSON)
	assert.ErrorIs(t, err, ErrDuplicateTopic)

	_, err = Decode(nil, Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeYAML_Empty(t *testing.T) {
	c, err := Decode([]byte(""), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"topics.json", FormatJSON, false},
		{"topics.YAML", FormatYAML, false},
		{"dir/topics.yml", FormatYAML, false},
		{"topics.cue", FormatCUE, false},
		{"topics.hcl", FormatHCL, false},
		{"topics.toml", "", true},
		{"topics", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topics.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topics:\n  - name: A\n  - name: B\n    prerequisites: [A, Ghost]\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, c.Topics())
	assert.Equal(t, []string{"A", "Ghost"}, c.DirectPrerequisites("B"))

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 39, c.Len())
	assert.Len(t, c.Categories(), 10)
	assert.Equal(t, []string{"Graphs", "DFS"}, c.DirectPrerequisites("Topological Sort"))

	arrays, ok := c.Topic("Arrays")
	require.True(t, ok)
	assert.Equal(t, "Basic Data Structures", arrays.Category)
	assert.NotEmpty(t, arrays.Description)

	for _, name := range c.Topics() {
		for _, p := range c.DirectPrerequisites(name) {
			assert.True(t, c.Has(p), "topic %q has undefined prerequisite %q", name, p)
		}
	}
}
