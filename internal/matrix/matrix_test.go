package matrix

import "testing"

func TestPageTransform(t *testing.T) {
	// The pixel-to-point page transform: scale by 0.75 and flip Y
	// around the page height.
	m := New(0.75, 0, 0, -0.75, 0, 1000*0.75)

	if x, y := m.Apply(0, 0); x != 0 || y != 750 {
		t.Errorf("top-left corner mapped to (%g,%g), want (0,750)", x, y)
	}
	if x, y := m.Apply(100, 100); x != 75 || y != 675 {
		t.Errorf("(100,100) mapped to (%g,%g), want (75,675)", x, y)
	}
	if dx, dy := m.ApplyDistance(40, 20); dx != 30 || dy != -15 {
		t.Errorf("distance (40,20) mapped to (%g,%g), want (30,-15)", dx, dy)
	}
}

func TestApplyTranslation(t *testing.T) {
	m := New(1, 0, 0, 1, 10, 20)
	if x, y := m.Apply(3, 4); x != 13 || y != 24 {
		t.Errorf("translation moved (3,4) to (%g,%g), want (13,24)", x, y)
	}
	if dx, dy := m.ApplyDistance(3, 4); dx != 3 || dy != 4 {
		t.Errorf("translation changed distance (3,4) to (%g,%g)", dx, dy)
	}
}
