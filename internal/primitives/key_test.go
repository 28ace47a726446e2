package primitives

import "testing"

func TestKeyDeterministic(t *testing.T) {
	a := NewState(4, Tube{1, 2}, Tube{}, Tube{3, 3, 3})
	b := NewState(4, Tube{1, 2}, Tube{}, Tube{3, 3, 3})
	if a.Key() != b.Key() {
		t.Errorf("equal states produced different keys: %q vs %q", a.Key(), b.Key())
	}
}

func TestKeyDistinguishesStates(t *testing.T) {
	tests := []struct {
		name string
		a, b State
	}{
		{
			name: "tube order matters",
			a:    NewState(2, Tube{1}, Tube{2}),
			b:    NewState(2, Tube{2}, Tube{1}),
		},
		{
			name: "unit order matters",
			a:    NewState(2, Tube{1, 2}),
			b:    NewState(2, Tube{2, 1}),
		},
		{
			name: "boundary between tubes",
			a:    NewState(3, Tube{1, 1}, Tube{1}),
			b:    NewState(3, Tube{1}, Tube{1, 1}),
		},
		{
			name: "empty tube position",
			a:    NewState(3, Tube{}, Tube{1}),
			b:    NewState(3, Tube{1}, Tube{}),
		},
		{
			name: "unit value equal to a length byte",
			a:    NewState(3, Tube{2, 1}, Tube{}),
			b:    NewState(3, Tube{2}, Tube{1}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.a.Key() == tt.b.Key() {
				t.Errorf("distinct states %v and %v share key %q", tt.a, tt.b, tt.a.Key())
			}
		})
	}
}

func TestKeyLength(t *testing.T) {
	s := NewState(4, Tube{1, 2, 3}, Tube{}, Tube{4})
	// one length byte per tube plus one byte per unit
	if got, want := len(s.Key()), 3+4; got != want {
		t.Errorf("len(Key()) = %d, want %d", got, want)
	}
}

func TestFingerprint(t *testing.T) {
	a := NewState(4, Tube{1, 2}, Tube{})
	b := NewState(4, Tube{1, 2}, Tube{})
	c := NewState(3, Tube{1, 2}, Tube{})

	if Fingerprint(a) != Fingerprint(b) {
		t.Error("equal states produced different fingerprints")
	}
	if Fingerprint(a) == Fingerprint(c) {
		t.Error("capacity change did not change fingerprint")
	}
	if got := len(Fingerprint(a)); got != 16 {
		t.Errorf("fingerprint length = %d, want 16", got)
	}
}
