package device

import "machine"

// Serial adapts the board's USB/UART serial to the rig's byte source and
// response writer. ReadByte is non-blocking: it errors when no byte is
// pending.
type Serial struct{}

func (Serial) ReadByte() (byte, error) {
	return machine.Serial.ReadByte()
}

func (Serial) Write(p []byte) (int, error) {
	for i, b := range p {
		if err := machine.Serial.WriteByte(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}
