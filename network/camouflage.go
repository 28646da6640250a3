// Browser-camouflaged client for external link probing.
//
// A plain Go HTTP client gets rejected by anti-bot layers (Cloudflare,
// DDoS-Guard) in front of many documentation hosts, which would flag
// perfectly healthy links as dead. The camouflaged client emulates
// Chrome's TLS Client Hello via refraction-networking/utls so probes see
// the same responses a reader's browser would.
//
// Protocol negotiation: HTTP/2 is attempted first (preferred by modern
// CDNs); if the handshake fails the request transparently retries over a
// forced HTTP/1.1 transport.

package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"

	"github.com/tsumiki-site/tsumiki/constant"
)

const probeTimeout = 30 * time.Second

var (
	h2Transport     *http2.Transport
	h2TransportOnce sync.Once
)

func getH2Transport() *http2.Transport {
	h2TransportOnce.Do(func() {
		h2Transport = &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialTLS(ctx, network, addr, nil)
			},
		}
	})
	return h2Transport
}

var h1Transport = &http.Transport{
	DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
		return dialTLS(ctx, network, addr, []string{"http/1.1"})
	},
}

// Probe issues a browser-like GET and returns the response. The caller owns
// the response body.
func Probe(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	client := &http.Client{
		Timeout:   probeTimeout,
		Transport: getH2Transport(),
	}

	resp, err := client.Do(req)
	if err == nil {
		return resp, nil
	}

	// Servers that cannot negotiate h2 get a second chance over HTTP/1.1.
	retry, _ := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	retry.Header = req.Header

	h1Client := &http.Client{
		Timeout:   probeTimeout,
		Transport: h1Transport,
	}
	resp, err = h1Client.Do(retry)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// dialTLS establishes a TLS connection carrying Chrome 120's Client Hello.
// nextProtos narrows ALPN when the HTTP/1.1 fallback needs it.
func dialTLS(ctx context.Context, network, addr string, nextProtos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: probeTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: nextProtos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
