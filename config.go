package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// envFile is loaded, if present, before the environment is read.  Variables
// already set in the environment take precedence over the file.
const envFile = ".env"

// Config holds the runtime settings.  The defaults reproduce the fixed
// wiring: pin 17 driven through sysfs, HTTP on port 8080.
type Config struct {
	HTTPPort  int    // HTTP_PORT, listened on all interfaces
	Pin       int    // GPIO_PIN, BCM numbering
	Driver    string // GPIO_DRIVER: "sysfs" or "periph"
	SysfsRoot string // GPIO_SYSFS_ROOT
	EventLog  string // EVENT_LOG, empty disables the event log
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.HTTPPort)
}

// LoadConfig reads the configuration from .env and the environment.
func LoadConfig() (Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}
	return parseConfig()
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("unable to read %s: %w", path, err)
	}
	return nil
}

func parseConfig() (Config, error) {
	port, err := getenvInt("HTTP_PORT", 8080)
	if err != nil {
		return Config{}, err
	}
	if port < 1 || port > 65535 {
		return Config{}, fmt.Errorf("HTTP_PORT %d out of range", port)
	}

	pin, err := getenvInt("GPIO_PIN", 17)
	if err != nil {
		return Config{}, err
	}
	if pin < 0 {
		return Config{}, fmt.Errorf("GPIO_PIN must not be negative")
	}

	driver := getenv("GPIO_DRIVER", DriverSysfs)
	if driver != DriverSysfs && driver != DriverPeriph {
		return Config{}, fmt.Errorf("invalid GPIO_DRIVER value %q", driver)
	}

	return Config{
		HTTPPort:  port,
		Pin:       pin,
		Driver:    driver,
		SysfsRoot: getenv("GPIO_SYSFS_ROOT", defaultSysfsRoot),
		EventLog:  getenv("EVENT_LOG", ""),
	}, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
