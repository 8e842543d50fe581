package main

// This file provides an OutputPin backed by the periph.io library, for hosts
// where periph has a native driver (e.g. the Raspberry Pi's /dev/gpiomem).

import (
	"fmt"

	// Use the new periph module layout.  See https://periph.io/news/2020/a_new_start/
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// PeriphPin drives a pin through a periph gpio.PinIO.
type PeriphPin struct {
	pin    gpio.PinIO
	number int
}

// NewPeriphPin initialises the periph host drivers and looks up the pin by
// its BCM name.  host.Init can safely be called more than once.
func NewPeriphPin(number int) (*PeriphPin, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	return newPeriphPin(number, gpioreg.ByName)
}

// newPeriphPin resolves the pin with lookup and drives it Low, which is what
// the sysfs backend leaves behind after writing "out" to the direction file.
func newPeriphPin(number int, lookup func(name string) gpio.PinIO) (*PeriphPin, error) {
	if number < 0 {
		return nil, fmt.Errorf("invalid gpio pin %d", number)
	}
	name := fmt.Sprintf("GPIO%d", number)
	p := lookup(name)
	if p == nil {
		return nil, fmt.Errorf("gpio pin %s not found", name)
	}
	if err := p.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("configure %s as output: %w", name, err)
	}
	return &PeriphPin{pin: p, number: number}, nil
}

// Out sets the pin level.
func (p *PeriphPin) Out(l gpio.Level) error {
	if err := p.pin.Out(l); err != nil {
		return fmt.Errorf("set %s: %w", p.pin.Name(), err)
	}
	return nil
}

// Number returns the BCM number of the pin.
func (p *PeriphPin) Number() int { return p.number }
