package rig

import "strconv"

// Display layout, 4 lines by 16 columns:
//
//	0: W: 12.3 g
//	1: T: 26.5 C
//	2: H: 60.2 %
//	3: free-text status
const displayCols = 16

const absentValue = "--.-"

// renderWeight writes the weight row. The row text is cached so the tick
// loop's per-tick render only touches the display when the value changed.
func (r *Rig) renderWeight() {
	row := padRow("W: " + strconv.FormatFloat(r.lastWeight, 'f', 1, 64) + " g")
	if row == r.lastWeightRow {
		return
	}
	r.lastWeightRow = row
	r.display.WriteAt(0, 0, row)
}

func (r *Rig) renderAmbient() {
	t := absentValue
	if r.hasTemperature {
		t = strconv.FormatFloat(r.lastTemperature, 'f', 1, 64)
	}
	h := absentValue
	if r.hasHumidity {
		h = strconv.FormatFloat(r.lastHumidity, 'f', 1, 64)
	}
	r.display.WriteAt(1, 0, padRow("T: "+t+" C"))
	r.display.WriteAt(2, 0, padRow("H: "+h+" %"))
}

// showStatus writes the free-text instruction row.
func (r *Rig) showStatus(text string) {
	r.display.WriteAt(3, 0, padRow(text))
}

// padRow pads or trims to the display width so old characters never leak
// through a shorter write.
func padRow(s string) string {
	if len(s) >= displayCols {
		return s[:displayCols]
	}
	b := make([]byte, displayCols)
	copy(b, s)
	for i := len(s); i < displayCols; i++ {
		b[i] = ' '
	}
	return string(b)
}
