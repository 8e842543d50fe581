package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
)

// Entry point for the light controller
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	pin, err := openPin(cfg)
	if err != nil {
		log.Fatalf("gpio initialisation error: %v", err)
	}

	light := NewLightHandler(pin, NewEventLogger(cfg.EventLog))
	server := NewServer(cfg.Addr())
	server.Register("/light/on", light)
	server.Register("/light/off", light)

	listener, err := server.Listen()
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", cfg.Addr(), err)
	}
	go closeOnSignal(listener)

	if err := server.Serve(listener); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// closeOnSignal closes l on SIGINT or SIGTERM, which makes Serve return.  A
// request in progress is finished first because serving is sequential.
func closeOnSignal(l net.Listener) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	s := <-sig
	log.Printf("Received %v, shutting down", s)
	if err := l.Close(); err != nil {
		log.Printf("Failed to close listener: %v", err)
	}
}
