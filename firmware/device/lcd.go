package device

import (
	"errors"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// Display adapts the HD44780 character LCD behind an I2C backpack to the
// rig's line/column write interface.
type Display struct {
	lcd hd44780i2c.Device
}

func NewDisplay(bus drivers.I2C, addr uint8, width, height uint8) (*Display, error) {
	lcd := hd44780i2c.New(bus, addr)
	err := lcd.Configure(hd44780i2c.Config{
		Width:  width,
		Height: height,
	})
	if err != nil {
		return nil, errors.New("error configuring LCD: " + err.Error())
	}
	lcd.BacklightOn(true)

	return &Display{lcd: lcd}, nil
}

func (d *Display) WriteAt(line, col int, text string) {
	d.lcd.SetCursor(uint8(col), uint8(line))
	d.lcd.Print([]byte(text))
}
