package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const dialTimeout = 30 * time.Second

// Fingerprinted is a client whose TLS handshake mimics Chrome 120.
//
// Some platforms reject the standard Go ClientHello. HTTPS requests first try
// HTTP/2 over a uTLS connection and fall back to HTTP/1.1 when h2 fails.
// Plain HTTP requests use the regular pooled transport.
var Fingerprinted = &http.Client{
	Timeout: time.Minute,
	Transport: &fingerprintTransport{
		h2: &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialUTLS(ctx, network, addr, nil)
			},
		},
		h1: &http.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialUTLS(ctx, network, addr, []string{"http/1.1"})
			},
			MaxIdleConnsPerHost: 16,
			IdleConnTimeout:     30 * time.Second,
		},
		plain: newTransport(),
	},
}

type fingerprintTransport struct {
	h2    http.RoundTripper
	h1    http.RoundTripper
	plain http.RoundTripper
}

func (t *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.plain.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	retry, rerr := rewind(req)
	if rerr != nil {
		return nil, err
	}
	return t.h1.RoundTrip(retry)
}

// rewind clones req with a fresh body for a second attempt.
func rewind(req *http.Request) (*http.Request, error) {
	clone := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return clone, nil
	}
	if req.GetBody == nil {
		return nil, fmt.Errorf("request body cannot be replayed")
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	clone.Body = body
	return clone, nil
}

// dialUTLS opens a TLS connection with Chrome's ClientHello.
// A nil protos keeps the fingerprint's own ALPN list (h2 and http/1.1).
func dialUTLS(ctx context.Context, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.Handshake(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
