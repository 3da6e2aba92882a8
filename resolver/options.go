package resolver

import (
	"log/slog"
	"time"

	"github.com/mkortas/dnsq/internal/errors"
)

// Option is a functional option for configuring a Client.
type Option func(*Client) error

// WithTimeout sets how long Resolve waits for a response before giving
// up. Default: 2 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) error {
		if timeout <= 0 {
			return &errors.IOError{Operation: "configure timeout", Err: errNonPositiveTimeout}
		}
		c.timeout = timeout
		return nil
	}
}

// WithoutOPT suppresses the default EDNS0 OPT additional record.
func WithoutOPT() Option {
	return func(c *Client) error {
		c.disableOPT = true
		return nil
	}
}

// WithUDPPayloadSize overrides the UDP payload size advertised in the
// OPT record. Ignored when WithoutOPT is also used.
func WithUDPPayloadSize(size uint16) Option {
	return func(c *Client) error {
		c.udpPayloadSize = size
		return nil
	}
}

// WithLogger injects a structured logger. A Client built by New without
// this option uses a discarding logger, never a package-level one.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		if logger == nil {
			return &errors.IOError{Operation: "configure logger", Err: errNilLogger}
		}
		c.logger = logger
		return nil
	}
}
