package primitives

import "testing"

func TestTubeTopRun(t *testing.T) {
	tests := []struct {
		tube    Tube
		wantTop Color
		wantRun int
	}{
		{Tube{}, NoColor, 0},
		{Tube{1}, 1, 1},
		{Tube{1, 2, 2}, 2, 2},
		{Tube{2, 2, 2}, 2, 3},
		{Tube{2, 1, 2}, 2, 1},
	}
	for _, tt := range tests {
		if got := tt.tube.Top(); got != tt.wantTop {
			t.Errorf("%v.Top() = %d, want %d", tt.tube, got, tt.wantTop)
		}
		if got := tt.tube.TopRun(); got != tt.wantRun {
			t.Errorf("%v.TopRun() = %d, want %d", tt.tube, got, tt.wantRun)
		}
	}
}

func TestNewStateCopiesTubes(t *testing.T) {
	src := Tube{1, 2}
	s := NewState(3, src)
	src[0] = 9
	if s.Tubes[0][0] != 1 {
		t.Error("NewState aliased the caller's tube")
	}
}

func TestStateCloneIsIndependent(t *testing.T) {
	s := NewState(3, Tube{1, 2}, Tube{3})
	c := s.Clone()
	c.Tubes[0][0] = 7
	c.Tubes[1] = append(c.Tubes[1], 3)
	if !s.Equal(NewState(3, Tube{1, 2}, Tube{3})) {
		t.Errorf("original mutated through clone: %v", s)
	}
}

func TestStateUnits(t *testing.T) {
	s := NewState(4, Tube{1, 2, 1}, Tube{}, Tube{2})
	u := s.Units()
	if u[1] != 2 || u[2] != 2 || len(u) != 2 {
		t.Errorf("Units() = %v", u)
	}
}

func TestStateEqual(t *testing.T) {
	a := NewState(2, Tube{1}, Tube{})
	if !a.Equal(NewState(2, Tube{1}, Tube{})) {
		t.Error("expected equal")
	}
	if a.Equal(NewState(3, Tube{1}, Tube{})) {
		t.Error("capacity ignored")
	}
	if a.Equal(NewState(2, Tube{}, Tube{1})) {
		t.Error("tube order ignored")
	}
}

func TestMoveAndSolutionString(t *testing.T) {
	if got := (Move{From: 0, To: 2}).String(); got != "(0, 2)" {
		t.Errorf("Move.String() = %q", got)
	}
	sol := Solution{{From: 0, To: 2}, {From: 1, To: 0}}
	if got := sol.String(); got != "(0, 2) (1, 0)" {
		t.Errorf("Solution.String() = %q", got)
	}
	if got := (Solution{}).String(); got != "" {
		t.Errorf("empty Solution.String() = %q", got)
	}
}

func TestStateString(t *testing.T) {
	s := NewState(3, Tube{1, 2}, Tube{}, Tube{3})
	if got := s.String(); got != "[1 2] [] [3]" {
		t.Errorf("String() = %q", got)
	}
}
