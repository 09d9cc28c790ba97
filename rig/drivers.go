package rig

// PositionDriver moves the tray actuator. MoveAbsolute blocks until the
// target position is reached; the motion profile it uses to get there is
// the driver's own business. A returned error means the actuator could not
// reach the target and the rig's physical state is unknown.
type PositionDriver interface {
	MoveAbsolute(steps int32) error
	SetCurrentPosition(steps int32)
}

// MassSensor is the load cell. ReadAveraged returns the mean of the given
// number of raw samples in grams. Rezero re-baselines the sensor so the
// current load reads as zero.
type MassSensor interface {
	ReadAveraged(samples int) float64
	Rezero(samples int)
	SetScaleFactor(factor float64)
}

// AmbientSensor reads temperature and humidity. The bool result is false
// when no reading is available on this poll, which is normal for these
// sensors and must not be treated as a failure.
type AmbientSensor interface {
	ReadTemperature() (float64, bool)
	ReadHumidity() (float64, bool)
}

// Display is a character display written line/column at a time. It is
// never read back.
type Display interface {
	WriteAt(line, col int, text string)
}

// ByteSource is a non-blocking byte reader. It returns an error when no
// byte is pending, matching machine.Serial.ReadByte on TinyGo targets.
type ByteSource interface {
	ReadByte() (byte, error)
}
