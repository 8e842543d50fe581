package main

import "fmt"

// GPIO backends selectable with GPIO_DRIVER.
const (
	DriverSysfs  = "sysfs"
	DriverPeriph = "periph"
)

// openPin constructs the output pin described by cfg.  Errors from here are
// fatal at startup.
func openPin(cfg Config) (OutputPin, error) {
	switch cfg.Driver {
	case DriverSysfs:
		p, err := NewSysfsPin(cfg.SysfsRoot, cfg.Pin)
		if err != nil {
			return nil, err
		}
		return p, nil
	case DriverPeriph:
		p, err := NewPeriphPin(cfg.Pin)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown gpio driver %q", cfg.Driver)
	}
}
