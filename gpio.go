package main

// This file drives a single output pin through the legacy sysfs GPIO
// interface.  Each call writes a short text value to a control file under
// the sysfs root; no file handles are kept open between calls.

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	"periph.io/x/conn/v3/gpio"
)

const defaultSysfsRoot = "/sys/class/gpio"

// OutputPin is a GPIO pin configured as an output.
type OutputPin interface {
	Out(l gpio.Level) error
	Number() int
}

// SysfsPin is an output pin controlled through <root>/export,
// <root>/gpioN/direction and <root>/gpioN/value.  Pins are addressed by
// their BCM numbers.  The pin is never unexported.
type SysfsPin struct {
	root      string
	number    int
	writeFile func(name string, data []byte, perm os.FileMode) error
}

// NewSysfsPin exports the pin and configures it as an output.  A pin that
// is already exported (EBUSY on the export file) is reused.
func NewSysfsPin(root string, number int) (*SysfsPin, error) {
	return newSysfsPin(root, number, os.WriteFile)
}

func newSysfsPin(root string, number int, writeFile func(string, []byte, os.FileMode) error) (*SysfsPin, error) {
	if number < 0 {
		return nil, fmt.Errorf("invalid gpio pin %d", number)
	}
	p := &SysfsPin{root: root, number: number, writeFile: writeFile}

	if err := p.write(filepath.Join(root, "export"), strconv.Itoa(number)); err != nil {
		if !errors.Is(err, syscall.EBUSY) {
			return nil, fmt.Errorf("export gpio%d: %w", number, err)
		}
	}
	if err := p.write(p.control("direction"), "out"); err != nil {
		return nil, fmt.Errorf("set gpio%d direction: %w", number, err)
	}
	return p, nil
}

// Out writes "0" or "1" to the value file.
func (p *SysfsPin) Out(l gpio.Level) error {
	if err := p.write(p.control("value"), levelValue(l)); err != nil {
		return fmt.Errorf("set gpio%d value: %w", p.number, err)
	}
	return nil
}

// Number returns the BCM number of the pin.
func (p *SysfsPin) Number() int { return p.number }

func (p *SysfsPin) control(name string) string {
	return filepath.Join(p.root, fmt.Sprintf("gpio%d", p.number), name)
}

func (p *SysfsPin) write(name, value string) error {
	return p.writeFile(name, []byte(value), 0644)
}

// levelValue is the sysfs encoding of l: Low is "0", High is "1".
func levelValue(l gpio.Level) string {
	if l == gpio.High {
		return "1"
	}
	return "0"
}
