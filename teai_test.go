package teai

import "testing"

func TestStationLines(t *testing.T) {
	tests := []struct {
		station Station
		moving  string
		arrived string
	}{
		{StationHome, "MOVING: HOME", "AT_HOME"},
		{StationCapture, "MOVING: CAPTURE", "AT_CAPTURE"},
		{StationWeigh, "MOVING: WEIGH", "AT_WEIGH"},
	}

	for _, tt := range tests {
		if got := MovingLine(tt.station); got != tt.moving {
			t.Errorf("MovingLine(%v)=%q, want %q", tt.station, got, tt.moving)
		}
		if got := ArrivedLine(tt.station); got != tt.arrived {
			t.Errorf("ArrivedLine(%v)=%q, want %q", tt.station, got, tt.arrived)
		}
	}
}

func TestMeasurementLine(t *testing.T) {
	m := Measurement{
		WeightG:        1.2,
		TemperatureC:   26.5,
		HasTemperature: true,
		HumidityPct:    60.2,
		HasHumidity:    true,
	}
	want := "MEASURED W=1.2g T=26.5C H=60.2%"
	if got := m.Line(); got != want {
		t.Errorf("Line()=%q, want %q", got, want)
	}
}

func TestMeasurementLineAbsentAmbient(t *testing.T) {
	m := Measurement{WeightG: 0.0}
	want := "MEASURED W=0.0g T=nanC H=nan%"
	if got := m.Line(); got != want {
		t.Errorf("Line()=%q, want %q", got, want)
	}
}

func TestParseMeasuredLine(t *testing.T) {
	m, err := ParseMeasuredLine("MEASURED W=1.23g T=27.4C H=61.2%")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.WeightG != 1.23 {
		t.Errorf("WeightG=%v, want 1.23", m.WeightG)
	}
	if !m.HasTemperature || m.TemperatureC != 27.4 {
		t.Errorf("TemperatureC=%v (present=%v), want 27.4", m.TemperatureC, m.HasTemperature)
	}
	if !m.HasHumidity || m.HumidityPct != 61.2 {
		t.Errorf("HumidityPct=%v (present=%v), want 61.2", m.HumidityPct, m.HasHumidity)
	}
}

func TestParseMeasuredLineAbsentValues(t *testing.T) {
	m, err := ParseMeasuredLine("MEASURED W=-0.5g T=nanC H=nan%")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.WeightG != -0.5 {
		t.Errorf("WeightG=%v, want -0.5", m.WeightG)
	}
	if m.HasTemperature || m.HasHumidity {
		t.Errorf("expected absent ambient values, got %+v", m)
	}
}

func TestParseMeasuredLineRejectsOtherLines(t *testing.T) {
	if _, err := ParseMeasuredLine("WEIGH_DONE"); err == nil {
		t.Error("expected error for non-measured line")
	}
}

func TestRoundTrip(t *testing.T) {
	in := Measurement{WeightG: 10.1, TemperatureC: 31.0, HasTemperature: true}
	out, err := ParseMeasuredLine(in.Line())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != in {
		t.Errorf("round trip: got %+v, want %+v", out, in)
	}
}
