package store

import "time"

// File is one scanned source file.
type File struct {
	ID          int64
	Path        string
	Language    string
	Hash        string
	LastScanned time.Time
}

// Definition is one indexed definition row. Path and Language are joined in
// from the owning file on reads.
type Definition struct {
	ID             int64  `json:"-"`
	FileID         int64  `json:"-"`
	Path           string `json:"path"`
	Language       string `json:"language"`
	Kind           string `json:"kind"`
	Name           string `json:"name"`
	EnclosingClass string `json:"enclosing_class,omitempty"`
	StartLine      int    `json:"start_line"`
	StartCol       int    `json:"start_col"`
	EndLine        int    `json:"end_line"`
	EndCol         int    `json:"end_col"`
	BodyStartLine  int    `json:"body_start_line"`
	BodyStartCol   int    `json:"body_start_col"`
	BodyEndLine    int    `json:"body_end_line"`
	BodyEndCol     int    `json:"body_end_col"`
	HasDocstring   bool   `json:"has_docstring"`
	DecoratorCount int    `json:"decorator_count"`
}
