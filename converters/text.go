package converters

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseText reads a plain-text grid. Row lengths are not checked here;
// grid.FromInts reports ragged input.
func ParseText(r io.Reader) ([][]int, error) {
	var cells [][]int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || isComment(text) {
			continue
		}
		row, err := parseRow(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d", err, line)
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("converters: read: %w", err)
	}
	if len(cells) == 0 {
		return nil, ErrEmptyInput
	}
	return cells, nil
}

// isComment matches "//" lines. '#' always starts a row: it is the
// blocked token in both row forms.
func isComment(text string) bool {
	return strings.HasPrefix(text, "//")
}

// parseRow accepts "0 1 0", "0,1,0" and "..#" forms.
func parseRow(text string) ([]int, error) {
	if isCharRow(text) {
		return parseCharRow(text)
	}
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	row := make([]int, 0, len(fields))
	for _, f := range fields {
		switch f {
		case "0", ".":
			row = append(row, 0)
		case "1", "#":
			row = append(row, 1)
		default:
			return nil, fmt.Errorf("%w %q", ErrBadToken, f)
		}
	}
	return row, nil
}

func isCharRow(text string) bool {
	for _, r := range text {
		if r != '.' && r != '#' {
			return false
		}
	}
	return true
}

// parseCharRow maps '.' to 0 and '#' to 1.
func parseCharRow(text string) ([]int, error) {
	row := make([]int, 0, len(text))
	for _, r := range text {
		switch r {
		case '.':
			row = append(row, 0)
		case '#':
			row = append(row, 1)
		default:
			return nil, fmt.Errorf("%w %q", ErrBadToken, r)
		}
	}
	return row, nil
}
