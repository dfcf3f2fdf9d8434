package converters

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
)

// DecodeYAML decodes a GridFile from YAML or JSON.
func DecodeYAML(data []byte) (*Document, error) {
	var f GridFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("converters: decode: %w", err)
	}

	doc := &Document{Cells: f.Cells}
	if len(doc.Cells) == 0 && len(f.Rows) > 0 {
		doc.Cells = make([][]int, 0, len(f.Rows))
		for i, text := range f.Rows {
			row, err := parseCharRow(strings.TrimSpace(text))
			if err != nil {
				return nil, fmt.Errorf("%w: rows[%d]", err, i)
			}
			doc.Cells = append(doc.Cells, row)
		}
	}
	if len(doc.Cells) == 0 {
		return nil, ErrEmptyInput
	}

	var err error
	if doc.Start, doc.HasStart, err = Endpoint(f.Start); err != nil {
		return nil, fmt.Errorf("%w: start %v", err, f.Start)
	}
	if doc.Goal, doc.HasGoal, err = Endpoint(f.Goal); err != nil {
		return nil, fmt.Errorf("%w: goal %v", err, f.Goal)
	}
	return doc, nil
}

// EncodeYAML writes doc back in the GridFile layout.
func EncodeYAML(doc *Document) ([]byte, error) {
	f := GridFile{Cells: doc.Cells}
	if doc.HasStart {
		f.Start = []int{doc.Start.Row, doc.Start.Col}
	}
	if doc.HasGoal {
		f.Goal = []int{doc.Goal.Row, doc.Goal.Col}
	}
	return yaml.Marshal(f)
}

// LoadFile reads a grid document. ".yaml", ".yml" and ".json" go through
// DecodeYAML; anything else is parsed as plain text without endpoints.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("converters: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return DecodeYAML(data)
	default:
		cells, err := ParseText(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return &Document{Cells: cells}, nil
	}
}
