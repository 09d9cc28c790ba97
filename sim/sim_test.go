package sim

import "testing"

func TestScaleRezeroBaselines(t *testing.T) {
	// values chosen so the offset subtraction is exact in binary
	s := &Scale{Readings: []float64{100.0, 100.25, 100.25}}

	s.Rezero(10)
	if got := s.ReadAveraged(5); got != 0.0 {
		t.Errorf("reading after rezero=%v, want 0.0", got)
	}
	if got := s.ReadAveraged(5); got != 0.25 {
		t.Errorf("second reading=%v, want 0.25 above baseline", got)
	}
}

func TestScaleRepeatsLastReading(t *testing.T) {
	s := &Scale{Readings: []float64{1.0}}
	s.ReadAveraged(1)
	if got := s.ReadAveraged(1); got != 1.0 {
		t.Errorf("exhausted script returned %v, want 1.0", got)
	}
}

func TestDisplayClampsWrites(t *testing.T) {
	d := NewDisplay()
	d.WriteAt(3, 10, "0123456789") // runs off the right edge
	if got := d.Line(3); got != "          012345" {
		t.Errorf("row=%q", got)
	}
	d.WriteAt(7, 0, "x") // out-of-range line ignored
}

func TestByteQueueOrder(t *testing.T) {
	q := &ByteQueue{}
	if _, err := q.ReadByte(); err == nil {
		t.Error("empty queue must return an error")
	}

	q.Push('H', 'C', 'W')
	for _, want := range []byte{'H', 'C', 'W'} {
		b, err := q.ReadByte()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b != want {
			t.Errorf("got %q, want %q", b, want)
		}
	}
}

func TestSettlingReadingsConverge(t *testing.T) {
	r := SettlingReadings(10.0, 2.0, 4)
	if len(r) != 5 {
		t.Fatalf("len=%d, want 5", len(r))
	}
	if r[0] != 12.0 {
		t.Errorf("first reading=%v, want 12.0", r[0])
	}
	if r[len(r)-1] != 10.0 {
		t.Errorf("final reading=%v, want 10.0", r[len(r)-1])
	}
}
