package component

import "testing"

func TestSpikeAddDeath(t *testing.T) {
	for _, n := range []int{0, 1, 2, 17} {
		var s Spike
		prev := s.Deaths()
		for i := 0; i < n; i++ {
			s.AddDeath()
			if s.Deaths() <= prev {
				t.Fatalf("counter must grow, got %d after %d", s.Deaths(), prev)
			}
			prev = s.Deaths()
		}
		if s.Deaths() != uint64(n) {
			t.Fatalf("expected %d deaths, got %d", n, s.Deaths())
		}
	}
}
