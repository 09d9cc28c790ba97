package main

import (
	"context"
	"machine"
	"time"

	"github.com/SemalDeSilva/TEAI/firmware/device"
	"github.com/SemalDeSilva/TEAI/rig"
)

func main() {
	// give the USB serial a moment to enumerate before the boot lines
	time.Sleep(2 * time.Second)

	stepper, err := device.NewStepper(device.StepperConfig{
		Pins:      [4]machine.Pin{machine.GP16, machine.GP17, machine.GP18, machine.GP19},
		StepCount: 4096,
		RPM:       12,
	})
	if err != nil {
		halt("stepper init: " + err.Error())
	}

	scale := device.NewScale(device.ScaleConfig{
		Clock: machine.GP14,
		Data:  machine.GP15,
	})

	ambient := device.NewAmbient(device.AmbientConfig{Pin: machine.GP22})

	i2c := machine.I2C0
	err = i2c.Configure(machine.I2CConfig{
		SDA:       machine.GP0,
		SCL:       machine.GP1,
		Frequency: 400 * machine.KHz,
	})
	if err != nil {
		halt("i2c init: " + err.Error())
	}

	display, err := device.NewDisplay(i2c, 0x27, 16, 4)
	if err != nil {
		halt("display init: " + err.Error())
	}

	serial := device.Serial{}
	r := rig.New(rig.DefaultConfig(), stepper, scale, ambient, display, serial, serial)

	err = r.Run(context.Background())
	halt("controller stopped: " + err.Error())
}

// halt parks the firmware after an unrecoverable fault; the rig needs
// operator intervention, so keep repeating the reason instead of
// continuing with unknown physical state.
func halt(reason string) {
	for {
		println(reason)
		time.Sleep(5 * time.Second)
	}
}
