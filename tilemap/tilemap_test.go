package tilemap

import (
	"errors"
	"testing"
)

const testMapJSON = `{
	"default": "g",
	"border": "b",
	"tiles": {"g": "grs", "b": "brd", "w": "wtr", "m": "mtn"},
	"layers": [["gwg", "wmw", "g g"]]
}`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(testMapJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if m.Rows() != 3 {
		t.Errorf("expected 3 rows, got %d", m.Rows())
	}
	if m.Cols() != 3 {
		t.Errorf("expected 3 cols, got %d", m.Cols())
	}
	if m.Depth() != 1 {
		t.Errorf("expected 1 layer, got %d", m.Depth())
	}
	if m.DefaultKey() != 'g' {
		t.Errorf("expected default key 'g', got %q", m.DefaultKey())
	}
	if m.BorderKey() != 'b' {
		t.Errorf("expected border key 'b', got %q", m.BorderKey())
	}
	if m.DefaultSprite() != "grs" {
		t.Errorf("expected default sprite grs, got %q", m.DefaultSprite())
	}
	if m.BorderSprite() != "brd" {
		t.Errorf("expected border sprite brd, got %q", m.BorderSprite())
	}

	name, ok := m.Sprite('w')
	if !ok || name != "wtr" {
		t.Errorf("Sprite('w'): expected wtr, got %q (ok=%v)", name, ok)
	}
	if _, ok := m.Sprite('?'); ok {
		t.Error("Sprite('?') should not resolve")
	}
}

func TestParseUnicodeKeys(t *testing.T) {
	data := `{
		"default": "g",
		"border": "g",
		"tiles": {"g": "grs", "≈": "wtr"},
		"layers": [["g≈g", "≈≈≈"]]
	}`

	m, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Cols() != 3 {
		t.Errorf("expected 3 cols (rune counted), got %d", m.Cols())
	}
	if got := m.At(1, 0, 0).Key; got != '≈' {
		t.Errorf("At(1,0): expected '≈', got %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "malformed JSON",
			data: `{"default": "g",`,
			want: nil, // any error
		},
		{
			name: "no layers",
			data: `{"default": "g", "border": "g", "tiles": {"g": "grs"}, "layers": []}`,
			want: ErrNoLayers,
		},
		{
			name: "empty layer",
			data: `{"default": "g", "border": "g", "tiles": {"g": "grs"}, "layers": [[]]}`,
			want: ErrEmptyLayer,
		},
		{
			name: "empty row",
			data: `{"default": "g", "border": "g", "tiles": {"g": "grs"}, "layers": [[""]]}`,
			want: ErrEmptyLayer,
		},
		{
			name: "ragged rows",
			data: `{"default": "g", "border": "g", "tiles": {"g": "grs"}, "layers": [["gg", "g"]]}`,
			want: ErrRaggedGrid,
		},
		{
			name: "layer size mismatch",
			data: `{"default": "g", "border": "g", "tiles": {"g": "grs"}, "layers": [["gg"], ["gg", "gg"]]}`,
			want: ErrRaggedGrid,
		},
		{
			name: "multi-character key",
			data: `{"default": "g", "border": "g", "tiles": {"g": "grs", "xy": "mtn"}, "layers": [["g"]]}`,
			want: ErrBadKey,
		},
		{
			name: "default missing from tiles",
			data: `{"default": "d", "border": "g", "tiles": {"g": "grs"}, "layers": [["g"]]}`,
			want: ErrUnknownKey,
		},
		{
			name: "border missing from tiles",
			data: `{"default": "g", "border": "x", "tiles": {"g": "grs"}, "layers": [["g"]]}`,
			want: ErrUnknownKey,
		},
		{
			name: "unknown key in grid",
			data: `{"default": "g", "border": "g", "tiles": {"g": "grs"}, "layers": [["g?g"]]}`,
			want: ErrUnknownKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestKeyErrorPosition(t *testing.T) {
	data := `{
		"default": "g",
		"border": "g",
		"tiles": {"g": "grs"},
		"layers": [["ggg", "ggg"], ["ggg", "g?g"]]
	}`

	_, err := Parse([]byte(data))
	var keyErr *KeyError
	if !errors.As(err, &keyErr) {
		t.Fatalf("expected a KeyError, got %v", err)
	}
	if keyErr.Key != '?' || keyErr.X != 1 || keyErr.Y != 1 || keyErr.Z != 1 {
		t.Errorf("expected '?' at (1,1) layer 1, got %q at (%d,%d) layer %d",
			keyErr.Key, keyErr.X, keyErr.Y, keyErr.Z)
	}
}

func TestBlankCells(t *testing.T) {
	m, err := Parse([]byte(testMapJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	c := m.At(1, 2, 0)
	if c.Key != Blank {
		t.Errorf("expected blank cell, got %q", c.Key)
	}
	if c.OutOfBounds {
		t.Error("blank cell should be in bounds")
	}
}

func TestAt(t *testing.T) {
	m, err := Parse([]byte(testMapJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	c := m.At(1, 1, 0)
	if c.Key != 'm' || c.OutOfBounds {
		t.Errorf("At(1,1): expected 'm' in bounds, got %q (oob=%v)", c.Key, c.OutOfBounds)
	}

	oob := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {-5, -5}, {10, 10},
	}
	for _, p := range oob {
		c := m.At(p.x, p.y, 0)
		if !c.OutOfBounds {
			t.Errorf("At(%d,%d) should be out of bounds", p.x, p.y)
		}
		if c.Key != 'b' {
			t.Errorf("At(%d,%d): expected border key 'b', got %q", p.x, p.y, c.Key)
		}
	}
}

func TestNeighbors(t *testing.T) {
	m, err := Parse([]byte(testMapJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Around the center 'm': N, S, E, W, NW, SW, SE, NE.
	got := m.Neighbors(1, 1, 0)
	want := []rune{'w', ' ', 'w', 'w', 'g', 'g', 'g', 'g'}
	for i, key := range want {
		if got[i].Key != key {
			t.Errorf("neighbor %s: expected %q, got %q", Directions[i], key, got[i].Key)
		}
		if got[i].OutOfBounds {
			t.Errorf("neighbor %s should be in bounds", Directions[i])
		}
	}

	// The top-left corner has out-of-bounds neighbors everywhere but S, E, SE.
	corner := m.Neighbors(0, 0, 0)
	inBounds := map[Direction]bool{South: true, East: true, SouthEast: true}
	for i, d := range Directions {
		if corner[i].OutOfBounds == inBounds[d] {
			t.Errorf("corner neighbor %s: expected oob=%v", d, !inBounds[d])
		}
	}
}
