// Package transport builds the HTTP client used to reach the X-Road security server.
package transport

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/http2"

	"folkv3/internal/platform/certconfig"
)

// BuildHTTP2Client creates an HTTP client with the TLS material from cert.
// HTTPS connections negotiate HTTP/2; plain HTTP stays on HTTP/1.1.
// A nil cert means no client certificate and any server certificate is trusted.
func BuildHTTP2Client(cert *certconfig.Config, timeout time.Duration, logger *slog.Logger) (*http.Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	tlsConfig, err := certconfig.TLSConfig(cert, logger)
	if err != nil {
		return nil, fmt.Errorf("build TLS config: %w", err)
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig:     tlsConfig,
		TLSHandshakeTimeout: 10 * time.Second,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
	}
	if err := http2.ConfigureTransport(transport); err != nil {
		return nil, fmt.Errorf("configure HTTP/2 transport: %w", err)
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}, nil
}
