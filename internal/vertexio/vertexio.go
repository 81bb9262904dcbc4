// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package vertexio reads vertex loops written one "x,y" pair per line.
//
// Blank lines and spaces after the comma are ignored. Lines starting with
// '#' are comments.
package vertexio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/rectfit"
)

// ErrSyntax is returned for a line that is not a pair of unsigned integers.
var ErrSyntax = errors.New("vertexio: syntax error")

// Read parses every vertex from r.
// Syntax errors wrap [ErrSyntax] and name the offending line.
func Read(r io.Reader) ([]rectfit.Vertex, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	cr.ReuseRecord = true

	var vs []rectfit.Vertex
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return vs, nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, perr.Line, perr.Err)
			}
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		x, err := parseCoord(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: x: %v", ErrSyntax, line, err)
		}
		y, err := parseCoord(rec[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: y: %v", ErrSyntax, line, err)
		}
		vs = append(vs, rectfit.Vertex{X: x, Y: y})
	}
}

func parseCoord(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(s), 10, 64)
}

// Write emits vs in the format Read accepts.
func Write(w io.Writer, vs []rectfit.Vertex) error {
	cw := csv.NewWriter(w)
	for _, v := range vs {
		if err := cw.Write([]string{
			strconv.FormatUint(v.X, 10),
			strconv.FormatUint(v.Y, 10),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
