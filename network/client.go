// Package network provides the shared HTTP plumbing every platform adapter uses to talk upstream.
package network

import (
	"net/http"
	"time"

	"github.com/seam-cli/seam/key"
	"github.com/spf13/viper"
)

// Client is the pooled HTTP client shared by all adapters.
// Its timeout is a backstop; callers bound individual fetches with a context.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 16
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = time.Second
	return t
}

// Default returns the client adapters should use when none was injected.
// It honors the network.fingerprint setting.
func Default() *http.Client {
	if viper.GetBool(key.NetworkFingerprint) {
		return Fingerprinted
	}
	return Client
}
