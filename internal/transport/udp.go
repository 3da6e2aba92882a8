// Package transport implements the UDP client connection this resolver
// sends queries over and receives responses from. Nothing here
// interprets a single byte of DNS wire format.
package transport

import (
	"context"
	"net"
	"strconv"

	"github.com/mkortas/dnsq/internal/errors"
)

// DefaultPort is the standard DNS port used when the caller's nameserver
// address does not already specify one.
const DefaultPort = 53

// UDPClient is a single unicast UDP connection to one recursive
// nameserver. A resolve is one outbound datagram followed by one
// blocking receive; UDPClient carries no goroutines, no retry loop,
// and no connection pooling. One Dial serves one query.
type UDPClient struct {
	conn *net.UDPConn
}

// Dial resolves nameserver (host, or host:port; DefaultPort is assumed
// when no port is given) and opens a connected UDP socket to it.
func Dial(ctx context.Context, nameserver string) (*UDPClient, error) {
	host, port, err := splitHostPort(nameserver)
	if err != nil {
		return nil, &errors.IOError{Operation: "resolve nameserver address", Err: err}
	}

	raddr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(host, port))
	if err != nil {
		return nil, &errors.IOError{Operation: "resolve nameserver address", Err: err}
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp", raddr.String())
	if err != nil {
		return nil, &errors.IOError{Operation: "dial nameserver", Err: err}
	}

	udpConn, ok := conn.(*net.UDPConn)
	if !ok {
		_ = conn.Close()
		return nil, &errors.IOError{Operation: "dial nameserver", Err: errNotUDP}
	}

	return &UDPClient{conn: udpConn}, nil
}

func splitHostPort(nameserver string) (host, port string, err error) {
	host, port, err = net.SplitHostPort(nameserver)
	if err != nil {
		return nameserver, strconv.Itoa(DefaultPort), nil
	}
	return host, port, nil
}

// Send transmits packet on the connected socket, honoring ctx's deadline.
func (c *UDPClient) Send(ctx context.Context, packet []byte) error {
	if deadline, ok := ctx.Deadline(); ok {
		if err := c.conn.SetWriteDeadline(deadline); err != nil {
			return &errors.IOError{Operation: "set write deadline", Err: err}
		}
	}
	n, err := c.conn.Write(packet)
	if err != nil {
		return &errors.IOError{Operation: "send query", Err: err}
	}
	if n != len(packet) {
		return &errors.IOError{Operation: "send query", Err: errShortWrite}
	}
	return nil
}

// Receive blocks for a single datagram from the connected nameserver,
// honoring ctx's deadline, and returns its payload as a fresh copy.
func (c *UDPClient) Receive(ctx context.Context) ([]byte, error) {
	if deadline, ok := ctx.Deadline(); ok {
		if err := c.conn.SetReadDeadline(deadline); err != nil {
			return nil, &errors.IOError{Operation: "set read deadline", Err: err}
		}
	}

	bufPtr := GetBuffer()
	defer PutBuffer(bufPtr)
	buf := *bufPtr

	n, err := c.conn.Read(buf)
	if err != nil {
		return nil, &errors.IOError{Operation: "receive response", Err: err}
	}

	result := make([]byte, n)
	copy(result, buf[:n])
	return result, nil
}

// Close releases the underlying socket.
func (c *UDPClient) Close() error {
	if c.conn == nil {
		return nil
	}
	if err := c.conn.Close(); err != nil {
		return &errors.IOError{Operation: "close socket", Err: err}
	}
	return nil
}
