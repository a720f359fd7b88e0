/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package repository

import "testing"

func TestPageOffset(t *testing.T) {
	tests := []struct {
		name   string
		number int
		size   int
		offset int
	}{
		{name: "first page", number: 0, size: 10, offset: 0},
		{name: "second page", number: 1, size: 10, offset: 10},
		{name: "large page", number: 7, size: 25, offset: 175},
		{name: "zero size", number: 3, size: 0, offset: 0},
		{name: "single element pages", number: 42, size: 1, offset: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(tt.number, tt.size)
			if got := p.Offset(); got != tt.offset {
				t.Errorf("NewPage(%d, %d).Offset() = %d, want %d", tt.number, tt.size, got, tt.offset)
			}
		})
	}
}

func TestNewPageClampsNegatives(t *testing.T) {
	p := NewPage(-3, -5)
	if p.Number != 0 || p.Size != 0 {
		t.Errorf("NewPage(-3, -5) = %+v, want zero page", p)
	}
	if p.Offset() != 0 {
		t.Errorf("clamped page offset = %d, want 0", p.Offset())
	}
}

func TestSortString(t *testing.T) {
	if Ascending.String() != "ascending" {
		t.Errorf("Ascending.String() = %q", Ascending.String())
	}
	if Descending.String() != "descending" {
		t.Errorf("Descending.String() = %q", Descending.String())
	}
	if Sort(99).String() != "unknown" {
		t.Errorf("Sort(99).String() = %q", Sort(99).String())
	}
}
