package transport_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/mkortas/dnsq/internal/transport"
)

// startEchoServer listens on loopback UDP and echoes back whatever it
// receives, standing in for a nameserver in tests.
func startEchoServer(t *testing.T) (addr string, stop func()) {
	t.Helper()
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	if err != nil {
		t.Fatalf("ListenUDP: %v", err)
	}
	done := make(chan struct{})
	go func() {
		buf := make([]byte, 2048)
		for {
			n, raddr, err := conn.ReadFromUDP(buf)
			if err != nil {
				return
			}
			_, _ = conn.WriteToUDP(buf[:n], raddr)
			select {
			case <-done:
				return
			default:
			}
		}
	}()
	return conn.LocalAddr().String(), func() {
		close(done)
		_ = conn.Close()
	}
}

func TestDialSendReceiveRoundTrip(t *testing.T) {
	addr, stop := startEchoServer(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := transport.Dial(ctx, addr)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer func() { _ = client.Close() }()

	packet := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	if err := client.Send(ctx, packet); err != nil {
		t.Fatalf("Send: %v", err)
	}

	got, err := client.Receive(ctx)
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if string(got) != string(packet) {
		t.Fatalf("Receive = % x, want % x", got, packet)
	}
}

func TestDialDefaultsPort53WhenOmitted(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	// 127.0.0.1 with no port should resolve to 127.0.0.1:53 without error
	// (UDP dial does not require the peer to be listening).
	client, err := transport.Dial(ctx, "127.0.0.1")
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	_ = client.Close()
}

func TestReceiveRespectsDeadline(t *testing.T) {
	addr, stop := startEchoServer(t)
	defer stop()

	ctx := context.Background()
	client, err := transport.Dial(ctx, addr)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer func() { _ = client.Close() }()

	deadlineCtx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = client.Receive(deadlineCtx)
	if err == nil {
		t.Fatal("expected a timeout error when no response is sent")
	}
	if time.Since(start) > time.Second {
		t.Fatalf("Receive took too long to time out: %v", time.Since(start))
	}
}

func TestSecondClosePropagatesError(t *testing.T) {
	addr, stop := startEchoServer(t)
	defer stop()

	client, err := transport.Dial(context.Background(), addr)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := client.Close(); err == nil {
		t.Fatal("expected an error closing an already-closed socket")
	}
}

func TestBufferPoolRoundTrip(t *testing.T) {
	bufPtr := transport.GetBuffer()
	if bufPtr == nil {
		t.Fatal("GetBuffer returned nil")
	}
	buf := *bufPtr
	if len(buf) == 0 {
		t.Fatal("GetBuffer returned an empty buffer")
	}
	buf[0] = 0xAA
	transport.PutBuffer(bufPtr)

	bufPtr2 := transport.GetBuffer()
	defer transport.PutBuffer(bufPtr2)
	if len(*bufPtr2) != len(buf) {
		t.Fatalf("reused buffer length = %d, want %d", len(*bufPtr2), len(buf))
	}
}
