package common

import "testing"

func TestRectEdgesAndAnchors(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	if r.Left() != 10 || r.Right() != 40 || r.Top() != 20 || r.Bottom() != 60 {
		t.Fatalf("edges = %v %v %v %v", r.Left(), r.Right(), r.Top(), r.Bottom())
	}

	x, y := r.MidBottom()
	if x != 25 || y != 60 {
		t.Fatalf("MidBottom = (%v, %v), want (25, 60)", x, y)
	}

	r.SetMidBottom(100, 200)
	if r.Left() != 85 || r.Bottom() != 200 {
		t.Fatalf("after SetMidBottom: left=%v bottom=%v", r.Left(), r.Bottom())
	}

	r.SetBottom(300)
	if r.Bottom() != 300 || r.Left() != 85 {
		t.Fatalf("SetBottom must only move vertically: left=%v bottom=%v", r.Left(), r.Bottom())
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 3, Height: 3}, true},
		{"touching_right_edge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{"touching_bottom_edge", Rect{X: 0, Y: 10, Width: 5, Height: 5}, false},
		{"disjoint", Rect{X: 50, Y: 50, Width: 5, Height: 5}, false},
		{"one_pixel_overlap", Rect{X: 9, Y: 9, Width: 5, Height: 5}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(c.other); got != c.want {
				t.Fatalf("Intersects(%+v) = %v, want %v", c.other, got, c.want)
			}
			if got := c.other.Intersects(base); got != c.want {
				t.Fatalf("Intersects must be symmetric for %+v", c.other)
			}
		})
	}
}

func TestMsToTicks(t *testing.T) {
	cases := []struct {
		ms   int
		want uint64
	}{
		{1000, 60},
		{100, 6},
		{350, 21},
		{180, 10},
		{1, 1}, // shorter than one tick still takes one
		{16, 1},
	}
	for _, c := range cases {
		if got := MsToTicks(c.ms); got != c.want {
			t.Fatalf("MsToTicks(%d) = %d, want %d", c.ms, got, c.want)
		}
	}
}

func TestClampAndRound(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Fatal("Clamp")
	}
	if Round(2.5) != 3 || Round(-2.5) != -3 || Round(2.4) != 2 {
		t.Fatal("Round must round half away from zero")
	}
}

func TestLerp(t *testing.T) {
	if Lerp(0, 10, 0.5) != 5 {
		t.Fatal("Lerp midpoint")
	}
	if Lerp(2, 8, 0) != 2 || Lerp(2, 8, 1) != 8 {
		t.Fatal("Lerp endpoints")
	}
	if Lerp(1, 0, 0.25) != 0.75 {
		t.Fatal("Lerp descending")
	}
}
