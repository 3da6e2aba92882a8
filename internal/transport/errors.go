package transport

import "errors"

var (
	errNotUDP     = errors.New("dialed connection is not a UDP socket")
	errShortWrite = errors.New("partial write to UDP socket")
)
