package certconfig

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/crypto/pkcs12"
)

// TLSConfig turns cfg into a *tls.Config with the protocol pinned to exactly
// the configured version. A nil cfg behaves like TrustAll().
func TLSConfig(cfg *Config, logger *slog.Logger) (*tls.Config, error) {
	if cfg == nil {
		cfg = TrustAll()
	}
	if logger == nil {
		logger = slog.Default()
	}
	version := cfg.TLSProtocol().Version()
	tlsConfig := &tls.Config{
		MinVersion: version,
		MaxVersion: version,
	}

	if cfg.HasClientCertificate() {
		cert, err := loadClientCertificate(cfg)
		if err != nil {
			return nil, err
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	if cfg.TrustsAnyServer() {
		logger.Warn("server certificate verification disabled: any server certificate is trusted",
			"tls_protocol", cfg.TLSProtocol(),
			"client_certificate", cfg.HasClientCertificate(),
		)
		tlsConfig.InsecureSkipVerify = true //nolint:gosec // explicit trust-any configuration
		return tlsConfig, nil
	}

	pool, err := loadServerCertificate(cfg.ServerCertificatePath())
	if err != nil {
		return nil, err
	}
	tlsConfig.RootCAs = pool
	return tlsConfig, nil
}

func loadClientCertificate(cfg *Config) (tls.Certificate, error) {
	data, err := os.ReadFile(cfg.ClientKeyStorePath())
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("read client key store: %w", err)
	}
	switch cfg.ClientKeyStoreType() {
	case PKCS12:
		return decodePKCS12(data, cfg.ClientKeyStorePassword())
	case PEM:
		return decodePEMKeyStore(data)
	default:
		return tls.Certificate{}, fmt.Errorf("%w: unsupported key store type %q", ErrInvalidConfig, cfg.ClientKeyStoreType())
	}
}

func decodePKCS12(data []byte, password string) (tls.Certificate, error) {
	blocks, err := pkcs12.ToPEM(data, password)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("decode PKCS12 client key store: %w", err)
	}
	var pemData []byte
	for _, b := range blocks {
		pemData = append(pemData, pem.EncodeToMemory(b)...)
	}
	return decodePEMKeyStore(pemData)
}

// decodePEMKeyStore splits certificate blocks from the key block so that one
// file can carry both.
func decodePEMKeyStore(data []byte) (tls.Certificate, error) {
	var certPEM, keyPEM []byte
	for rest := data; ; {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type == "CERTIFICATE" {
			certPEM = append(certPEM, pem.EncodeToMemory(block)...)
		} else {
			keyPEM = append(keyPEM, pem.EncodeToMemory(block)...)
		}
	}
	if len(certPEM) == 0 {
		return tls.Certificate{}, fmt.Errorf("%w: client key store holds no certificate", ErrInvalidConfig)
	}
	if len(keyPEM) == 0 {
		return tls.Certificate{}, fmt.Errorf("%w: client key store holds no private key", ErrInvalidConfig)
	}
	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("load client key pair: %w", err)
	}
	return cert, nil
}

// loadServerCertificate accepts a PEM bundle or a single DER certificate (.cer).
func loadServerCertificate(path string) (*x509.CertPool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read server certificate: %w", err)
	}
	pool := x509.NewCertPool()
	if pool.AppendCertsFromPEM(data) {
		return pool, nil
	}
	cert, err := x509.ParseCertificate(data)
	if err != nil {
		return nil, fmt.Errorf("%w: server certificate %s is neither PEM nor DER: %w", ErrInvalidConfig, path, err)
	}
	pool.AddCert(cert)
	return pool, nil
}
