// Package certconfig holds the TLS material used to reach an X-Road security server.
//
// A Config is immutable once built. When no server certificate path is set the
// Config trusts any server certificate; this is only acceptable against a
// trusted network or a non-production security server, and every transport
// built from such a Config logs a warning.
package certconfig

import (
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned when a certificate configuration cannot be built.
var ErrInvalidConfig = errors.New("invalid certificate config")

// TLSProtocol is the TLS version pinned for the connection.
type TLSProtocol string

const (
	TLSv12 TLSProtocol = "TLSv1.2"
	TLSv13 TLSProtocol = "TLSv1.3"
)

// DefaultTLSProtocol is used when no protocol is configured.
const DefaultTLSProtocol = TLSv13

// ParseTLSProtocol accepts TLSv13, TLSv1.3, TLS1.3, 1.3 and the 1.2 equivalents.
func ParseTLSProtocol(s string) (TLSProtocol, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "TLSV")
	v = strings.TrimPrefix(v, "TLS")
	v = strings.TrimPrefix(v, "_")
	switch strings.ReplaceAll(v, "_", ".") {
	case "1.3", "13":
		return TLSv13, nil
	case "1.2", "12":
		return TLSv12, nil
	default:
		return "", fmt.Errorf("%w: unsupported TLS protocol %q (expected TLSv1.2 or TLSv1.3)", ErrInvalidConfig, s)
	}
}

// Version returns the crypto/tls version constant.
func (p TLSProtocol) Version() uint16 {
	if p == TLSv12 {
		return tls.VersionTLS12
	}
	return tls.VersionTLS13
}

// KeyStoreType is the format of the client key store file.
type KeyStoreType string

const (
	// PKCS12 is a .pfx/.p12 bundle holding the client certificate chain and key.
	PKCS12 KeyStoreType = "PKCS12"
	// PEM is a single file holding PEM certificate blocks and a private key block.
	PEM KeyStoreType = "PEM"
)

// DefaultKeyStoreType is used when no key store type is configured.
const DefaultKeyStoreType = PKCS12

// ParseKeyStoreType accepts PKCS12 (also P12, PFX) and PEM.
func ParseKeyStoreType(s string) (KeyStoreType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PKCS12", "P12", "PFX":
		return PKCS12, nil
	case "PEM":
		return PEM, nil
	case "JKS":
		return "", fmt.Errorf("%w: JKS key stores are not supported, convert to PKCS12", ErrInvalidConfig)
	default:
		return "", fmt.Errorf("%w: unsupported key store type %q", ErrInvalidConfig, s)
	}
}

// Config is an immutable certificate configuration.
type Config struct {
	tlsProtocol           TLSProtocol
	clientKeyStoreType    KeyStoreType
	clientKeyStorePath    string
	clientKeyStorePass    string
	serverCertificatePath string
}

// TrustAll returns the configuration used when no certificate configuration is given:
// no client certificate and any server certificate accepted.
func TrustAll() *Config {
	return &Config{tlsProtocol: DefaultTLSProtocol, clientKeyStoreType: DefaultKeyStoreType}
}

func (c *Config) TLSProtocol() TLSProtocol { return c.tlsProtocol }

func (c *Config) ClientKeyStoreType() KeyStoreType { return c.clientKeyStoreType }

func (c *Config) ClientKeyStorePath() string { return c.clientKeyStorePath }

func (c *Config) ClientKeyStorePassword() string { return c.clientKeyStorePass }

func (c *Config) ServerCertificatePath() string { return c.serverCertificatePath }

// HasClientCertificate reports whether a client key store is configured.
func (c *Config) HasClientCertificate() bool { return c.clientKeyStorePath != "" }

// TrustsAnyServer reports whether server certificates go unverified.
func (c *Config) TrustsAnyServer() bool { return c.serverCertificatePath == "" }

// String never includes the key store password.
func (c *Config) String() string {
	server := c.serverCertificatePath
	if server == "" {
		server = "<trust any>"
	}
	client := c.clientKeyStorePath
	if client == "" {
		client = "<none>"
	}
	return fmt.Sprintf("tls=%s client=%s(%s) server=%s", c.tlsProtocol, client, c.clientKeyStoreType, server)
}

// Builder assembles a Config:
//
//	certconfig.NewBuilder().
//		ClientKeyStorePath("/path/to/client-cert.pfx").
//		ClientKeyStorePassword("secret").
//		ServerCertificatePath("/path/to/server-cert.cer").
//		Build()
type Builder struct {
	cfg  Config
	errs []error
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) TLSProtocol(p TLSProtocol) *Builder {
	b.cfg.tlsProtocol = p
	return b
}

// TLSProtocolName parses and sets the protocol; a parse failure surfaces from Build.
func (b *Builder) TLSProtocolName(name string) *Builder {
	p, err := ParseTLSProtocol(name)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	return b.TLSProtocol(p)
}

func (b *Builder) ClientKeyStoreType(t KeyStoreType) *Builder {
	b.cfg.clientKeyStoreType = t
	return b
}

// ClientKeyStoreTypeName parses and sets the key store type; a parse failure surfaces from Build.
func (b *Builder) ClientKeyStoreTypeName(name string) *Builder {
	t, err := ParseKeyStoreType(name)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	return b.ClientKeyStoreType(t)
}

// ClientKeyStorePath is required when the X-Road client is registered with HTTPS.
func (b *Builder) ClientKeyStorePath(path string) *Builder {
	b.cfg.clientKeyStorePath = strings.TrimSpace(path)
	return b
}

func (b *Builder) ClientKeyStorePassword(password string) *Builder {
	b.cfg.clientKeyStorePass = password
	return b
}

// ServerCertificatePath pins the security server certificate. Leaving it
// unset means any server certificate is accepted.
func (b *Builder) ServerCertificatePath(path string) *Builder {
	b.cfg.serverCertificatePath = strings.TrimSpace(path)
	return b
}

// Build validates the collected values and returns a complete Config.
func (b *Builder) Build() (*Config, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	cfg := b.cfg
	if cfg.tlsProtocol == "" {
		cfg.tlsProtocol = DefaultTLSProtocol
	}
	if cfg.clientKeyStoreType == "" {
		cfg.clientKeyStoreType = DefaultKeyStoreType
	}
	switch cfg.tlsProtocol {
	case TLSv12, TLSv13:
	default:
		return nil, fmt.Errorf("%w: unsupported TLS protocol %q", ErrInvalidConfig, cfg.tlsProtocol)
	}
	switch cfg.clientKeyStoreType {
	case PKCS12, PEM:
	default:
		return nil, fmt.Errorf("%w: unsupported key store type %q", ErrInvalidConfig, cfg.clientKeyStoreType)
	}
	if cfg.clientKeyStorePath == "" && cfg.clientKeyStorePass != "" {
		return nil, fmt.Errorf("%w: client key store password given without a key store path", ErrInvalidConfig)
	}
	return &cfg, nil
}
