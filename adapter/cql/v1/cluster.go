package v1

import (
	"context"
	"net"
	"syscall"
	"time"

	"github.com/gocql/gocql"
)

// SocketOptions configures low-level socket behavior for gocql v1 clusters.
//
// Every field is optional: a nil field leaves the driver default untouched,
// and no field depends on another. ConnectTimeout, ReadTimeout, and KeepAlive
// map onto the cluster config directly; the remaining fields install a custom
// dialer that applies them to each established connection.
type SocketOptions struct {
	// ConnectTimeout bounds the initial connection dial.
	ConnectTimeout *time.Duration

	// ReadTimeout bounds individual query round trips.
	ReadTimeout *time.Duration

	// KeepAlive sets the TCP keep-alive period.
	KeepAlive *time.Duration

	// ReuseAddress sets SO_REUSEADDR on the socket before connecting.
	ReuseAddress *bool

	// SoLinger sets SO_LINGER to the given number of seconds. Zero drops
	// unsent data on close; negative values are ignored by the runtime.
	SoLinger *int

	// TCPNoDelay toggles Nagle's algorithm.
	TCPNoDelay *bool

	// ReceiveBufferSize sets SO_RCVBUF in bytes.
	ReceiveBufferSize *int

	// SendBufferSize sets SO_SNDBUF in bytes.
	SendBufferSize *int
}

// Apply copies the non-nil options onto the cluster config.
//
// Fields left nil keep whatever the cluster config already carries. When any
// of the TCP-level fields is set, a dialer replacing cluster.Dialer is
// installed; explicit dialers configured beforehand are overwritten.
//
// Parameters:
//   - cluster: The gocql cluster config to modify
func (o SocketOptions) Apply(cluster *gocql.ClusterConfig) {
	if o.ConnectTimeout != nil {
		cluster.ConnectTimeout = *o.ConnectTimeout
	}
	if o.ReadTimeout != nil {
		cluster.Timeout = *o.ReadTimeout
	}
	if o.KeepAlive != nil {
		cluster.SocketKeepalive = *o.KeepAlive
	}
	if o.needsDialer() {
		cluster.Dialer = &socketDialer{opts: o}
	}
}

// needsDialer reports whether any TCP-level option requires a custom dialer.
func (o SocketOptions) needsDialer() bool {
	return o.ReuseAddress != nil || o.SoLinger != nil || o.TCPNoDelay != nil ||
		o.ReceiveBufferSize != nil || o.SendBufferSize != nil
}

// socketDialer implements gocql.Dialer, applying TCP-level socket options to
// each established connection.
type socketDialer struct {
	opts SocketOptions
}

var _ gocql.Dialer = (*socketDialer)(nil)

// DialContext dials the address and applies the configured socket options.
func (d *socketDialer) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := net.Dialer{}
	if d.opts.ReuseAddress != nil && *d.opts.ReuseAddress {
		dialer.Control = setReuseAddress
	}

	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		return conn, nil
	}

	if d.opts.TCPNoDelay != nil {
		if err := tcpConn.SetNoDelay(*d.opts.TCPNoDelay); err != nil {
			conn.Close()
			return nil, err
		}
	}
	if d.opts.SoLinger != nil {
		if err := tcpConn.SetLinger(*d.opts.SoLinger); err != nil {
			conn.Close()
			return nil, err
		}
	}
	if d.opts.ReceiveBufferSize != nil {
		if err := tcpConn.SetReadBuffer(*d.opts.ReceiveBufferSize); err != nil {
			conn.Close()
			return nil, err
		}
	}
	if d.opts.SendBufferSize != nil {
		if err := tcpConn.SetWriteBuffer(*d.opts.SendBufferSize); err != nil {
			conn.Close()
			return nil, err
		}
	}

	return conn, nil
}

// setReuseAddress sets SO_REUSEADDR on the raw socket before connect.
func setReuseAddress(_, _ string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = syscall.SetsockoptInt(int(fd), syscall.SOL_SOCKET, syscall.SO_REUSEADDR, 1)
	})
	if err != nil {
		return err
	}

	return sockErr
}
