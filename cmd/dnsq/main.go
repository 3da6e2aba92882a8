// Command dnsq composes a DNS query for a domain and record type, sends
// it to a recursive nameserver over UDP, and prints the decoded answer.
// It is the CLI glue around internal/message and resolver; all wire-
// format logic lives in those packages.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"

	"github.com/spf13/pflag"

	dnserrors "github.com/mkortas/dnsq/internal/errors"
	"github.com/mkortas/dnsq/internal/message"
	"github.com/mkortas/dnsq/internal/protocol"
	"github.com/mkortas/dnsq/internal/rdata"
	"github.com/mkortas/dnsq/resolver"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("dnsq", pflag.ContinueOnError)
	qtypeName := flags.StringP("qtype", "q", "A", "record type to query")
	nameserver := flags.StringP("ns", "n", "", "recursive nameserver (required)")
	domain := flags.StringP("domain", "d", "", "domain name to query (required)")
	noOPT := flags.BoolP("no-opt", "o", false, "suppress the EDNS0 OPT additional record")
	debug := flags.BoolP("debug", "g", false, "enable verbose logging to dnsq.log")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, "dnsq:", err)
		return 1
	}

	if *nameserver == "" || *domain == "" {
		fmt.Fprintln(os.Stderr, "dnsq: --ns and --domain are required")
		flags.Usage()
		return 2
	}

	qtype, err := protocol.ParseRRTypeName(*qtypeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dnsq: unknown record type %q: %v\n", *qtypeName, err)
		return 2
	}

	logger, closeLog, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dnsq: failed to open debug log:", err)
		return 1
	}
	defer closeLog()

	opts := []resolver.Option{resolver.WithLogger(logger)}
	if *noOPT {
		opts = append(opts, resolver.WithoutOPT())
	}

	client, err := resolver.New(*nameserver, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dnsq:", err)
		return 1
	}

	msg, err := client.Resolve(context.Background(), *domain, qtype)

	var rcodeErr *dnserrors.ResponseRcodeError
	if err != nil && !errors.As(err, &rcodeErr) {
		fmt.Fprintln(os.Stderr, "dnsq:", err)
		return 1
	}

	printMessage(os.Stdout, msg)

	if rcodeErr != nil {
		fmt.Fprintln(os.Stderr, "dnsq:", rcodeErr)
		return 1
	}
	return 0
}

// newLogger returns a logger that discards everything unless debug is
// set, in which case it writes to dnsq.log. The returned close func
// must always be called.
func newLogger(debug bool) (*slog.Logger, func(), error) {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile("dnsq.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

// printMessage renders a decoded message for a terminal. The codec
// packages stay display-agnostic; this is the minimal rendering the
// CLI needs to be useful, nothing more.
func printMessage(w *os.File, msg message.Message) {
	fmt.Fprintf(w, "id: %d flags: %s\n", msg.ID, flagsSummary(msg.Flags))
	for _, q := range msg.Questions {
		fmt.Fprintf(w, ";; QUESTION: %s %s %s\n", q.Name.String(), q.Class, q.Type)
	}
	printSection(w, "ANSWER", msg.Answers)
	printSection(w, "AUTHORITY", msg.Authorities)
	printSection(w, "ADDITIONAL", msg.Additionals)
}

func printSection(w *os.File, title string, records []message.ResourceRecord) {
	if len(records) == 0 {
		return
	}
	fmt.Fprintf(w, ";; %s:\n", title)
	for _, rr := range records {
		if rr.Type == protocol.TypeOPT {
			fmt.Fprintf(w, "%-24s OPT   udp_payload_size=%d\n", rr.Name.String(), rr.OPTPayloadSize())
			continue
		}
		fmt.Fprintf(w, "%-24s %-6s %-6d %s\n", rr.Name.String(), rr.Type, rr.TTL, formatRData(rr.RData))
	}
}

func formatRData(rd rdata.RData) string {
	switch v := rd.(type) {
	case *rdata.A:
		return net.IP(v.Address).String()
	case *rdata.AAAA:
		return net.IP(v.Address).String()
	case *rdata.NS:
		return v.Name.String()
	case *rdata.CNAME:
		return v.Name.String()
	case *rdata.PTR:
		return v.Name.String()
	case *rdata.MX:
		return fmt.Sprintf("%d %s", v.Preference, v.Exchange.String())
	case *rdata.SOA:
		return fmt.Sprintf("%s %s %d %d %d %d %d", v.MName.String(), v.RName.String(), v.Serial, v.Refresh, v.Retry, v.Expire, v.Minimum)
	case *rdata.HINFO:
		return fmt.Sprintf("%q %q", v.CPU, v.OS)
	case *rdata.TXT:
		out := ""
		for i, s := range v.Strings {
			if i > 0 {
				out += " "
			}
			out += fmt.Sprintf("%q", string(s))
		}
		return out
	case *rdata.SRV:
		return fmt.Sprintf("%d %d %d %s", v.Priority, v.Weight, v.Port, v.Target.String())
	case *rdata.Opaque:
		return fmt.Sprintf("\\# %d %x", len(v.Data), v.Data)
	default:
		return fmt.Sprintf("%v", rd)
	}
}

func flagsSummary(f protocol.Flags) string {
	s := "QUERY"
	if f.Response {
		s = "RESPONSE"
	}
	return fmt.Sprintf("%s opcode=%s rcode=%s", s, f.Opcode, f.Rcode)
}
