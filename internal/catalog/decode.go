package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Format identifies a catalog file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCUE  Format = "cue"
	FormatHCL  Format = "hcl"
)

// ErrUnsupportedFormat is returned for file extensions with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

//go:embed schema.json
var schemaJSON []byte

//go:embed data/dsa.json
var defaultJSON []byte

// document is the on-disk shape shared by every format.
type document struct {
	Topics []Topic `json:"topics" yaml:"topics"`
}

// hclDocument mirrors document with one labelled block per topic:
//
//	topic "Strings" {
//	  prerequisites = ["Arrays"]
//	}
type hclDocument struct {
	Topics []hclTopic `hcl:"topic,block"`
}

type hclTopic struct {
	Name          string   `hcl:"name,label"`
	Category      string   `hcl:"category,optional"`
	Description   string   `hcl:"description,optional"`
	Prerequisites []string `hcl:"prerequisites,optional"`
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cue":
		return FormatCUE, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and decodes the catalog file at path.
func Load(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Default returns the built-in data structures and algorithms catalog.
func Default() (*Catalog, error) {
	c, err := Decode(defaultJSON, FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("default catalog: %w", err)
	}
	return c, nil
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*Catalog, error) {
	var (
		doc document
		err error
	)
	switch format {
	case FormatJSON:
		doc, err = decodeJSON(data)
	case FormatYAML:
		doc, err = decodeYAML(data)
	case FormatCUE:
		doc, err = decodeCUE(data)
	case FormatHCL:
		doc, err = decodeHCL(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s catalog: %w", format, err)
	}
	return New(doc.Topics)
}

func decodeJSON(data []byte) (document, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return document{}, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return document{}, err
	}
	if err := schema.Validate(parsed); err != nil {
		return document{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, err
	}
	return doc, nil
}

func decodeYAML(data []byte) (document, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return document{}, err
	}
	return doc, nil
}

func decodeCUE(data []byte) (document, error) {
	v := cuecontext.New().CompileBytes(data, cue.Filename("catalog.cue"))
	if err := v.Err(); err != nil {
		return document{}, err
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return document{}, err
	}
	var doc document
	if err := v.Decode(&doc); err != nil {
		return document{}, err
	}
	return doc, nil
}

func decodeHCL(data []byte) (document, error) {
	var hdoc hclDocument
	if err := hclsimple.Decode("catalog.hcl", data, nil, &hdoc); err != nil {
		return document{}, err
	}
	doc := document{Topics: make([]Topic, 0, len(hdoc.Topics))}
	for _, t := range hdoc.Topics {
		doc.Topics = append(doc.Topics, Topic(t))
	}
	return doc, nil
}

var (
	schemaOnce    sync.Once
	catalogSchema *jsonschema.Schema
	schemaErr     error
)

// compiledSchema compiles the embedded catalog schema once.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://catalog.json"
		if err := c.AddResource(url, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		catalogSchema, schemaErr = c.Compile(url)
	})
	return catalogSchema, schemaErr
}
