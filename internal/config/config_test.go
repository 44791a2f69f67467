// internal/config/config_test.go
package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Printer.BaudRate != 9600 {
		t.Errorf("baud rate = %d, want 9600", cfg.Printer.BaudRate)
	}
	if cfg.Printer.DataBits != 8 || cfg.Printer.StopBits != 1 || cfg.Printer.Parity != "none" {
		t.Errorf("line settings = %+v", cfg.Printer)
	}
	if cfg.Printer.ReadTimeout != 5*time.Second {
		t.Errorf("read timeout = %s, want 5s", cfg.Printer.ReadTimeout)
	}
	if cfg.App.Environment != "development" {
		t.Errorf("environment = %s", cfg.App.Environment)
	}
}

func TestValidateRejectsBadLevel(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Host: "0.0.0.0", Port: "8086"},
		Printer: PrinterConfig{Device: "/dev/ttyUSB0", BaudRate: 9600},
		App:     AppConfig{Environment: "development"},
		Logging: LoggingConfig{Level: "verbose"},
	}

	if err := validate(cfg); err == nil {
		t.Error("expected validation error for bad log level")
	}
}
