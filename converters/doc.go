// Package converters reads occupancy grids from files.
//
// Two input families are supported:
//
//  1. Plain text (ParseText). One row per line, either whitespace
//     separated integers (0 = passable, 1 = blocked) or a character map
//     where '.' is passable and '#' is blocked:
//
//     // 0/1 form         // character form
//     0 0 1               ..#
//     1 0 0               #..
//
//     Empty lines and lines starting with "//" are skipped. A line made
//     only of '.' and '#' is always a character row; "# # ." is a spaced
//     row starting with a blocked cell.
//
//  2. YAML or JSON (DecodeYAML), decoded with github.com/ghodss/yaml so a
//     single set of json tags serves both:
//
//     start: [0, 0]
//     goal:  [2, 2]
//     cells:
//     - [0, 0, 1]
//     - [1, 0, 0]
//     - [0, 0, 0]
//
//     "rows" may replace "cells" with character rows ("..#").
//
// LoadFile picks the decoder from the file extension.
package converters
