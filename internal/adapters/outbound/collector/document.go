package collector

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/designqa/designqa/internal/domain"
)

// ErrNoElements is returned for documents without an elements list.
var ErrNoElements = errors.New("document has no elements list")

// FileLoader implements domain.DocumentLoader for JSON and YAML files. A
// document is either a bare list of host records or a mapping with an
// elements list and optional analysisOptions.
type FileLoader struct{}

// NewFileLoader creates a FileLoader.
func NewFileLoader() *FileLoader { return &FileLoader{} }

// Load reads and decodes the document at path.
func (l *FileLoader) Load(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// ParseDocument decodes a document body. JSON is accepted as a YAML subset.
func ParseDocument(data []byte) (*domain.Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrNoElements
	}
	node := root.Content[0]

	switch node.Kind {
	case yaml.SequenceNode:
		var elements []map[string]any
		if err := node.Decode(&elements); err != nil {
			return nil, err
		}
		return &domain.Document{Elements: elements}, nil

	case yaml.MappingNode:
		var body struct {
			Elements []map[string]any        `yaml:"elements"`
			Options  *domain.AnalysisOptions `yaml:"analysisOptions"`
		}
		if err := node.Decode(&body); err != nil {
			return nil, err
		}
		if body.Elements == nil {
			return nil, ErrNoElements
		}
		return &domain.Document{Elements: body.Elements, Options: body.Options}, nil

	default:
		return nil, fmt.Errorf("unexpected top-level %s", kindName(node.Kind))
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("node kind %d", k)
	}
}

// LoadDocument reads the document at path with a FileLoader.
func LoadDocument(path string) (*domain.Document, error) {
	return NewFileLoader().Load(path)
}
