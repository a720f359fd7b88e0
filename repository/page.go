/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package repository

// Page is a window over an ordered collection. Numbering starts at 0, and a
// Size of 0 yields an always-empty page.
type Page struct {
	// Number is the page number, starting from 0.
	Number int
	// Size is the number of results per page.
	Size int
}

// NewPage creates a page, clamping negative inputs to 0.
func NewPage(number, size int) Page {
	if number < 0 {
		number = 0
	}
	if size < 0 {
		size = 0
	}
	return Page{Number: number, Size: size}
}

// Offset is the index of the first record on the page.
func (p Page) Offset() int {
	return p.Number * p.Size
}

// Sort is a sort direction. It carries no field selector — the dimension
// sorted on is the identity key unless a backend documents otherwise.
type Sort int

const (
	// Ascending orders smallest-first by the sort dimension.
	Ascending Sort = iota
	// Descending is the exact reverse of Ascending.
	Descending
)

func (s Sort) String() string {
	switch s {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}
