package input

import "testing"

type fakeSurface struct {
	ListenerSet
	x, y, w, h float64
}

func (s *fakeSurface) Bounds() (float64, float64, float64, float64) {
	return s.x, s.y, s.w, s.h
}

func (s *fakeSurface) AddPointerListener(fn Listener) Registration {
	return s.Add(fn)
}

func TestNormalizedCoords(t *testing.T) {
	s := &fakeSurface{w: 800, h: 600}

	cases := []struct {
		name     string
		px, py   float64
		nx, ny   float64
	}{
		{"center", 400, 300, 0, 0},
		{"top_left", 0, 0, -1, 1},
		{"bottom_right", 800, 600, 1, -1},
		{"quarter", 200, 150, -0.5, 0.5},
	}
	for _, tc := range cases {
		nx, ny := NormalizedCoords(s, tc.px, tc.py)
		if nx != tc.nx || ny != tc.ny {
			t.Fatalf("%s: got (%g, %g), want (%g, %g)", tc.name, nx, ny, tc.nx, tc.ny)
		}
	}
}

func TestNormalizedCoords_OffsetSurface(t *testing.T) {
	s := &fakeSurface{x: 100, y: 50, w: 200, h: 100}
	nx, ny := NormalizedCoords(s, 200, 100)
	if nx != 0 || ny != 0 {
		t.Fatalf("offset surface center: got (%g, %g), want (0, 0)", nx, ny)
	}
}

func TestNormalizedCoords_DegenerateSurface(t *testing.T) {
	s := &fakeSurface{}
	nx, ny := NormalizedCoords(s, 10, 10)
	if nx != 0 || ny != 0 {
		t.Fatalf("degenerate surface: got (%g, %g), want (0, 0)", nx, ny)
	}
}

func TestListenerSet_AddDispatchRemove(t *testing.T) {
	var set ListenerSet
	var got []PointerKind
	reg := set.Add(func(ev PointerEvent) {
		got = append(got, ev.Kind)
	})

	set.Dispatch(PointerEvent{Kind: PointerDown})
	set.Dispatch(PointerEvent{Kind: PointerUp})
	if len(got) != 2 || got[0] != PointerDown || got[1] != PointerUp {
		t.Fatalf("dispatched kinds = %v", got)
	}

	reg.Remove()
	set.Dispatch(PointerEvent{Kind: PointerMove})
	if len(got) != 2 {
		t.Fatalf("expected no events after removal, got %d", len(got))
	}

	// Removing twice must not panic or disturb other listeners.
	reg.Remove()
}

func TestListenerSet_IndependentSets(t *testing.T) {
	var a, b ListenerSet
	fired := 0
	a.Add(func(PointerEvent) { fired++ })

	b.Dispatch(PointerEvent{Kind: PointerMove})
	if fired != 0 {
		t.Fatalf("listener on set a fired from set b dispatch")
	}
	if a.Len() != 1 || b.Len() != 0 {
		t.Fatalf("unexpected listener counts: a=%d b=%d", a.Len(), b.Len())
	}
}

func TestState_LatestEventWins(t *testing.T) {
	var st State
	st.SetCoords(0.1, 0.2)
	st.SetCoords(0.5, -0.5)

	if st.CoordsX != 0.5 || st.CoordsY != -0.5 {
		t.Fatalf("coords = (%g, %g), want latest event", st.CoordsX, st.CoordsY)
	}
	if !st.HasCoords {
		t.Fatalf("expected HasCoords after SetCoords")
	}

	st.Reset()
	if st.HasCoords || st.Pressed {
		t.Fatalf("expected cleared state after Reset")
	}
}

func TestSourceString(t *testing.T) {
	if SourceTrackedDevice.String() != "tracked_device" {
		t.Fatalf("tracked device string = %q", SourceTrackedDevice.String())
	}
	if SourcePointer.String() != "pointer" {
		t.Fatalf("pointer string = %q", SourcePointer.String())
	}
	var def Source
	if def != SourceTrackedDevice {
		t.Fatalf("zero value source must be tracked device")
	}
}
