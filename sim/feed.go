package sim

import "io"

// StreamBytes copies bytes from r into the queue until r is exhausted.
// Run it in its own goroutine when feeding from a blocking reader such as
// stdin or the read half of a pipe.
func StreamBytes(q *ByteQueue, r io.Reader) {
	var buf [1]byte
	for {
		n, err := r.Read(buf[:])
		if n > 0 {
			q.Push(buf[0])
		}
		if err != nil {
			return
		}
	}
}

// SettlingReadings builds a reading script that rings around target with a
// decaying swing before holding steady, like a freshly dropped sample.
func SettlingReadings(target, swing float64, steps int) []float64 {
	readings := make([]float64, 0, steps+1)
	sign := 1.0
	for i := 0; i < steps; i++ {
		readings = append(readings, target+sign*swing)
		swing /= 2
		sign = -sign
	}
	return append(readings, target)
}
