// Package resolver assembles queries, drives the UDP round trip, and
// decodes responses, end to end. A Client never spawns a goroutine or
// holds a WaitGroup: resolution is single-threaded and synchronous.
// One outbound datagram, one blocking receive, one decode, in that
// order.
package resolver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	dnserrors "github.com/mkortas/dnsq/internal/errors"
	"github.com/mkortas/dnsq/internal/message"
	"github.com/mkortas/dnsq/internal/protocol"
	"github.com/mkortas/dnsq/internal/transport"
)

var (
	errNonPositiveTimeout = errors.New("timeout must be positive")
	errNilLogger          = errors.New("logger must not be nil")
)

const defaultTimeout = 2 * time.Second

// Client resolves a single (domain, qtype) query against one nameserver.
type Client struct {
	nameserver     string
	timeout        time.Duration
	disableOPT     bool
	udpPayloadSize uint16
	logger         *slog.Logger
}

// New builds a Client targeting nameserver (an "IP" or "IP:port", the
// port defaulting to 53).
func New(nameserver string, opts ...Option) (*Client, error) {
	c := &Client{
		nameserver: nameserver,
		timeout:    defaultTimeout,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Resolve builds a query for (domain, qtype), sends it to the configured
// nameserver, blocks for one response, and decodes it. It returns the
// decoded message even when the error is a non-fatal
// *dnserrors.ResponseRcodeError, since the message is otherwise
// well-formed and useful.
func (c *Client) Resolve(ctx context.Context, domain string, qtype protocol.RRType) (message.Message, error) {
	c.logger.Debug("building query", "domain", domain, "qtype", qtype.String(), "nameserver", c.nameserver)

	query, err := message.NewQuery(domain, qtype, message.QueryOptions{
		DisableOPT:     c.disableOPT,
		UDPPayloadSize: c.udpPayloadSize,
	})
	if err != nil {
		return message.Message{}, err
	}

	raw, err := message.Encode(query)
	if err != nil {
		return message.Message{}, err
	}
	c.logger.Debug("encoded query", "bytes", len(raw), "id", query.ID)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := transport.Dial(ctx, c.nameserver)
	if err != nil {
		return message.Message{}, err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			c.logger.Debug("error closing connection", "error", cerr)
		}
	}()

	if err := conn.Send(ctx, raw); err != nil {
		return message.Message{}, err
	}
	c.logger.Debug("sent query", "bytes", len(raw))

	resp, err := conn.Receive(ctx)
	if err != nil {
		return message.Message{}, err
	}
	c.logger.Debug("received response", "bytes", len(resp))

	msg, err := message.Decode(resp)
	if err != nil {
		var rcodeErr *dnserrors.ResponseRcodeError
		if errors.As(err, &rcodeErr) {
			c.logger.Debug("response carries non-zero rcode", "rcode", rcodeErr.Code, "name", rcodeErr.Name)
			return msg, err
		}
		return message.Message{}, err
	}

	if msg.ID != query.ID {
		c.logger.Debug("transaction ID mismatch", "sent", query.ID, "received", msg.ID)
	}

	return msg, nil
}
