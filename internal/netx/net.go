// Package netx classifies transport failures so client adapters can map them
// to client.ErrUnavailable.
package netx

import (
	"context"
	"errors"
	"net"
	"net/url"
	"syscall"
)

// IsUnavailable reports whether err means the remote endpoint could not be
// reached at all: refused or reset connections, DNS failures, dial timeouts.
// HTTP-level failures (a response with an error status) are not included.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Timeout()
	}

	return false
}
