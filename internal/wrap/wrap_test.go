package wrap

import "testing"

func TestRoundTrip(t *testing.T) {
	for width := 1; width <= 12; width++ {
		for idx := 0; idx <= 64; idx++ {
			pos := Position(idx, width)
			if pos.Col < 0 || pos.Col >= width {
				t.Fatalf("width %d: column %d out of range for index %d", width, pos.Col, idx)
			}
			if got := Index(pos.Row, pos.Col, width); got != idx {
				t.Fatalf("width %d: expected %d, got %d", width, idx, got)
			}
		}
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		name  string
		index int
		width int
		exp   Pos
	}{
		{name: "origin", index: 0, width: 5, exp: Pos{0, 0}},
		{name: "mid row", index: 3, width: 5, exp: Pos{0, 3}},
		{name: "last column", index: 4, width: 5, exp: Pos{0, 4}},
		{name: "row boundary", index: 5, width: 5, exp: Pos{1, 0}},
		{name: "second row", index: 7, width: 5, exp: Pos{1, 2}},
		{name: "width one", index: 3, width: 1, exp: Pos{3, 0}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Position(test.index, test.width)
			if got != test.exp {
				t.Fatalf("expected %+v, got %+v", test.exp, got)
			}
		})
	}
}

func TestRowHelpers(t *testing.T) {
	if got := RowStart(7, 5); got != 5 {
		t.Fatalf("RowStart: expected 5, got %d", got)
	}
	if got := RowStart(5, 5); got != 5 {
		t.Fatalf("RowStart on boundary: expected 5, got %d", got)
	}
	if got := NextRow(7, 5); got != 10 {
		t.Fatalf("NextRow: expected 10, got %d", got)
	}

	tests := []struct {
		length, width, lastRow, rows int
	}{
		{0, 4, 0, 1},
		{3, 4, 0, 1},
		{4, 4, 0, 1},
		{5, 4, 1, 2},
		{8, 4, 1, 2},
		{9, 4, 2, 3},
	}
	for _, test := range tests {
		if got := LastRow(test.length, test.width); got != test.lastRow {
			t.Errorf("LastRow(%d, %d): expected %d, got %d", test.length, test.width, test.lastRow, got)
		}
		if got := Rows(test.length, test.width); got != test.rows {
			t.Errorf("Rows(%d, %d): expected %d, got %d", test.length, test.width, test.rows, got)
		}
	}
}
