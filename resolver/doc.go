/*
Package resolver is the top-level entry point for issuing a single DNS
query and getting back a decoded message. It composes internal/message
(query construction and wire codec) with internal/transport (the UDP
round trip), and adds nothing else: no retries, no caching, no
concurrent fan-out.
*/
package resolver
