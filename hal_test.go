package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

type stuckPin struct {
	*gpiotest.Pin
}

func (stuckPin) Out(gpio.Level) error { return errors.New("pin is stuck") }

func lookupPins(pins ...gpio.PinIO) func(string) gpio.PinIO {
	return func(name string) gpio.PinIO {
		for _, p := range pins {
			if p.Name() == name {
				return p
			}
		}
		return nil
	}
}

func TestNewPeriphPin(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO17", Num: 17}
	require.NoError(t, pin.Out(gpio.High))

	p, err := newPeriphPin(17, lookupPins(pin))
	require.NoError(t, err)
	assert.Equal(t, 17, p.Number())
	assert.Equal(t, gpio.Low, pin.Read())

	require.NoError(t, p.Out(gpio.High))
	assert.Equal(t, gpio.High, pin.Read())
	require.NoError(t, p.Out(gpio.Low))
	assert.Equal(t, gpio.Low, pin.Read())
}

func TestNewPeriphPin_UnknownPin(t *testing.T) {
	p, err := newPeriphPin(27, lookupPins(&gpiotest.Pin{N: "GPIO17", Num: 17}))
	assert.Nil(t, p)
	assert.EqualError(t, err, "gpio pin GPIO27 not found")
}

func TestNewPeriphPin_ConfigureFailure(t *testing.T) {
	p, err := newPeriphPin(17, lookupPins(stuckPin{&gpiotest.Pin{N: "GPIO17", Num: 17}}))
	assert.Nil(t, p)
	assert.ErrorContains(t, err, "pin is stuck")
}

func TestPeriphPin_OutFailure(t *testing.T) {
	p := &PeriphPin{pin: stuckPin{&gpiotest.Pin{N: "GPIO17", Num: 17}}, number: 17}
	assert.EqualError(t, p.Out(gpio.High), "set GPIO17: pin is stuck")
}

func TestOpenPin(t *testing.T) {
	t.Run("sysfs", func(t *testing.T) {
		root := fakeSysfs(t, "17")
		p, err := openPin(Config{Driver: DriverSysfs, SysfsRoot: root, Pin: 17})
		require.NoError(t, err)
		assert.IsType(t, &SysfsPin{}, p)
		assert.Equal(t, 17, p.Number())
	})

	t.Run("sysfs failure", func(t *testing.T) {
		p, err := openPin(Config{Driver: DriverSysfs, SysfsRoot: t.TempDir(), Pin: 17})
		assert.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("unknown driver", func(t *testing.T) {
		p, err := openPin(Config{Driver: "gpiocdev", Pin: 17})
		assert.EqualError(t, err, `unknown gpio driver "gpiocdev"`)
		assert.Nil(t, p)
	})
}
