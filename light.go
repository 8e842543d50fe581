package main

import (
	"io"
	"log"
	"strings"

	"periph.io/x/conn/v3/gpio"
)

// The light module is active low: pulling the pin Low switches it on.
const (
	lightOn  = gpio.Low
	lightOff = gpio.High
)

// LightHandler switches a light through an output pin.  It serves both
// /light/on and /light/off and picks the action from the last path segment.
type LightHandler struct {
	pin    OutputPin
	events *EventLogger
}

// NewLightHandler returns a handler that owns pin.  events may be nil.
func NewLightHandler(pin OutputPin, events *EventLogger) *LightHandler {
	return &LightHandler{pin: pin, events: events}
}

// Handle accepts only PUT.  A failed pin write is answered with 500 and
// does not affect later requests.
func (h *LightHandler) Handle(r *Request, w *ResponseWriter) {
	if r.Method != "PUT" {
		w.SetStatus(StatusMethodNotAllowed)
		return
	}

	var level gpio.Level
	action := r.Path[strings.LastIndex(r.Path, "/")+1:]
	switch action {
	case "on":
		level = lightOn
	case "off":
		level = lightOff
	default:
		w.SetStatus(StatusNotFound)
		return
	}

	if err := h.pin.Out(level); err != nil {
		log.Printf("Failed to switch light %s: %v", action, err)
		w.SetStatus(StatusInternalError)
		return
	}
	h.events.Log("light %s (gpio%d %s)", action, h.pin.Number(), level)
	io.WriteString(w, "ok")
}
