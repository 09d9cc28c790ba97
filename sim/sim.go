// Package sim provides in-memory stand-ins for the rig's hardware so the
// control core can run and be tested on a development machine.
package sim

import (
	"errors"
	"sync"
	"time"
)

// Motor is an in-memory position driver. It records every commanded
// target and can simulate travel time and an actuator fault.
type Motor struct {
	Position int32
	Moves    []int32

	// StepTime delays each MoveAbsolute by StepTime per step of travel.
	StepTime time.Duration
	// Err, when set, is returned by the next MoveAbsolute call.
	Err error
}

func (m *Motor) MoveAbsolute(target int32) error {
	if m.Err != nil {
		return m.Err
	}
	if m.StepTime > 0 {
		delta := target - m.Position
		if delta < 0 {
			delta = -delta
		}
		time.Sleep(time.Duration(delta) * m.StepTime)
	}
	m.Moves = append(m.Moves, target)
	m.Position = target
	return nil
}

func (m *Motor) SetCurrentPosition(steps int32) {
	m.Position = steps
}

// Scale replays a scripted sequence of gram readings; once the script is
// exhausted it repeats the last value. Rezero shifts the baseline so the
// current scripted value reads as zero, like a real tare.
type Scale struct {
	Readings []float64

	idx         int
	offset      float64
	factor      float64
	ReadCalls   []int
	RezeroCalls []int
}

func (s *Scale) ReadAveraged(samples int) float64 {
	s.ReadCalls = append(s.ReadCalls, samples)
	return s.current() - s.offset
}

func (s *Scale) Rezero(samples int) {
	s.RezeroCalls = append(s.RezeroCalls, samples)
	s.offset = s.peek()
}

func (s *Scale) SetScaleFactor(factor float64) {
	s.factor = factor
}

// ScaleFactor returns the last configured raw-to-grams factor.
func (s *Scale) ScaleFactor() float64 {
	return s.factor
}

func (s *Scale) current() float64 {
	v := s.peek()
	if s.idx < len(s.Readings) {
		s.idx++
	}
	return v
}

func (s *Scale) peek() float64 {
	if len(s.Readings) == 0 {
		return 0
	}
	if s.idx >= len(s.Readings) {
		return s.Readings[len(s.Readings)-1]
	}
	return s.Readings[s.idx]
}

// Ambient serves fixed temperature and humidity values; either can be
// marked unavailable to simulate a transient bus error.
type Ambient struct {
	Temperature float64
	TempOK      bool
	Humidity    float64
	HumOK       bool
}

func (a *Ambient) ReadTemperature() (float64, bool) {
	return a.Temperature, a.TempOK
}

func (a *Ambient) ReadHumidity() (float64, bool) {
	return a.Humidity, a.HumOK
}

// Display is a 4x16 character buffer.
type Display struct {
	Rows [4][16]byte
}

func NewDisplay() *Display {
	d := &Display{}
	for i := range d.Rows {
		for j := range d.Rows[i] {
			d.Rows[i][j] = ' '
		}
	}
	return d
}

func (d *Display) WriteAt(line, col int, text string) {
	if line < 0 || line >= len(d.Rows) {
		return
	}
	for i := 0; i < len(text) && col+i < len(d.Rows[line]); i++ {
		d.Rows[line][col+i] = text[i]
	}
}

// Line returns one display row as a string.
func (d *Display) Line(i int) string {
	return string(d.Rows[i][:])
}

var errNoByte = errors.New("no byte pending")

// ByteQueue is a thread-safe pending-command buffer implementing the
// non-blocking ReadByte contract.
type ByteQueue struct {
	mu  sync.Mutex
	buf []byte
}

func (q *ByteQueue) Push(bytes ...byte) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.buf = append(q.buf, bytes...)
}

func (q *ByteQueue) ReadByte() (byte, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.buf) == 0 {
		return 0, errNoByte
	}
	b := q.buf[0]
	q.buf = q.buf[1:]
	return b, nil
}

// Len reports how many bytes are waiting.
func (q *ByteQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf)
}
