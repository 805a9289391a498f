package cabdriver

import (
	"errors"
	"testing"
)

func newDefault(t testing.TB, seed uint64) *CabDriver {
	t.Helper()
	cab, err := New(DefaultConfig(), seed)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return cab
}

func TestActionSpace(t *testing.T) {
	cab := newDefault(t, 1)
	actions := cab.ActionSpace()

	if len(actions) != 1+5*4 {
		t.Fatalf("action space size: want 21, got %v", len(actions))
	}
	if !actions[0].IsIdle() {
		t.Errorf("action 0: want idle, got %v", actions[0])
	}

	want := []Action{{1, 2}, {1, 3}, {1, 4}, {1, 5}, {2, 1}, {2, 3}}
	for i, a := range want {
		if actions[i+1] != a {
			t.Errorf("action %v: want %v, got %v", i+1, a, actions[i+1])
		}
	}
	if last := actions[len(actions)-1]; last != (Action{5, 4}) {
		t.Errorf("last action: want 5 -> 4, got %v", last)
	}

	seen := make(map[Action]bool)
	for i, a := range actions {
		if seen[a] {
			t.Errorf("duplicate action %v", a)
		}
		seen[a] = true

		if index, ok := cab.ActionIndex(a); !ok || index != i {
			t.Errorf("actionIndex(%v): want (%v, true), got (%v, %v)", a,
				i, index, ok)
		}
	}

	if _, ok := cab.ActionIndex(Action{3, 3}); ok {
		t.Error("actionIndex: 3 -> 3 should not be in the action space")
	}
}

func TestStateSpace(t *testing.T) {
	cab := newDefault(t, 1)
	states := cab.StateSpace()

	if len(states) != 5*24*7 {
		t.Fatalf("state space size: want 840, got %v", len(states))
	}
	if states[0] != (State{1, 0, 0}) || states[1] != (State{1, 0, 1}) {
		t.Errorf("state space order: got %v, %v", states[0], states[1])
	}

	seen := make(map[State]bool)
	for _, s := range states {
		if seen[s] {
			t.Errorf("duplicate state %v", s)
		}
		seen[s] = true
	}

	// Changing the returned copy must not change the environment
	states[0] = State{99, 99, 99}
	if cab.StateSpace()[0] != (State{1, 0, 0}) {
		t.Error("state space should not be modifiable through a copy")
	}
}

func TestResetInStateSpace(t *testing.T) {
	cab := newDefault(t, 2023)
	c := cab.Config()

	if err := c.validState(cab.State()); err != nil {
		t.Errorf("initial state: %v", err)
	}

	seen := make(map[State]bool)
	for i := 0; i < 50_000; i++ {
		actions, states, s := cab.Reset()
		if len(actions) != 21 || len(states) != 840 {
			t.Fatalf("reset: got %v actions and %v states", len(actions),
				len(states))
		}
		if err := c.validState(s); err != nil {
			t.Fatalf("reset: %v", err)
		}
		if cab.State() != s {
			t.Fatalf("reset: current state %v != returned state %v",
				cab.State(), s)
		}
		seen[s] = true
	}

	// 50k uniform draws over 840 states should reach most of them
	if len(seen) < 800 {
		t.Errorf("reset: only %v distinct states drawn, expected the "+
			"draws to be uniform over all 840", len(seen))
	}
}

func TestSeedReproducible(t *testing.T) {
	a, b := newDefault(t, 77), newDefault(t, 77)

	for i := 0; i < 100; i++ {
		_, _, sa := a.Reset()
		_, _, sb := b.Reset()
		if sa != sb {
			t.Fatalf("reset %v: same seed gave states %v and %v", i, sa, sb)
		}

		ia, _, err := a.Requests(sa)
		if err != nil {
			t.Fatal(err)
		}
		ib, _, err := b.Requests(sb)
		if err != nil {
			t.Fatal(err)
		}
		if len(ia) != len(ib) {
			t.Fatalf("requests %v: same seed gave %v and %v", i, ia, ib)
		}
		for j := range ia {
			if ia[j] != ib[j] {
				t.Fatalf("requests %v: same seed gave %v and %v", i, ia, ib)
			}
		}
	}
}

func TestEncodeAllStates(t *testing.T) {
	cab := newDefault(t, 1)
	const m, hours, days = 5, 24, 7

	for _, s := range cab.StateSpace() {
		v, err := cab.Encode(s)
		if err != nil {
			t.Fatalf("encode(%v): %v", s, err)
		}
		if v.Len() != m+hours+days {
			t.Fatalf("encode(%v): length %v, want %v", s, v.Len(),
				m+hours+days)
		}

		hot := map[int]bool{
			s.Location - 1:    true,
			m + s.Hour:        true,
			m + hours + s.Day: true,
		}
		for i := 0; i < v.Len(); i++ {
			want := 0.0
			if hot[i] {
				want = 1.0
			}
			if v.AtVec(i) != want {
				t.Fatalf("encode(%v)[%v]: want %v, got %v", s, i, want,
					v.AtVec(i))
			}
		}

		decoded, err := cab.Decode(v)
		if err != nil {
			t.Fatalf("decode(encode(%v)): %v", s, err)
		}
		if decoded != s {
			t.Fatalf("decode(encode(%v)) = %v", s, decoded)
		}
	}
}

func TestEncodeInvalidState(t *testing.T) {
	cab := newDefault(t, 1)

	invalid := []State{
		{0, 0, 0},
		{6, 0, 0},
		{1, -1, 0},
		{1, 24, 0},
		{1, 0, -1},
		{1, 0, 7},
	}
	for _, s := range invalid {
		if _, err := cab.Encode(s); !errors.Is(err, ErrInvalidState) {
			t.Errorf("encode(%v): want ErrInvalidState, got %v", s, err)
		}
	}
}

func TestAction(t *testing.T) {
	cab := newDefault(t, 1)

	a, err := cab.Action(0)
	if err != nil || !a.IsIdle() {
		t.Errorf("action(0): want idle, got %v, %v", a, err)
	}
	for _, i := range []int{-1, 21} {
		if _, err := cab.Action(i); !errors.Is(err, ErrInvalidAction) {
			t.Errorf("action(%v): want ErrInvalidAction, got %v", i, err)
		}
	}
}
