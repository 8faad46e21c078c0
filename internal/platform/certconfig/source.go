package certconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Key names one setting by its property name and its environment variable.
type Key struct {
	Property string
	Env      string
}

var (
	KeyTLSProtocol            = Key{Property: "folkv3.tlsProtocol", Env: "FOLKV3_TLSPROTOCOL"}
	KeyClientKeyStoreType     = Key{Property: "folkv3.clientKeyStore.type", Env: "FOLKV3_CLIENTKEYSTORE_TYPE"}
	KeyClientKeyStorePath     = Key{Property: "folkv3.clientKeyStore.path", Env: "FOLKV3_CLIENTKEYSTORE_PATH"}
	KeyClientKeyStorePassword = Key{Property: "folkv3.clientKeyStore.password", Env: "FOLKV3_CLIENTKEYSTORE_PASSWORD"}
	KeyServerCertificatePath  = Key{Property: "folkv3.serverCertificate.path", Env: "FOLKV3_SERVERCERTIFICATE_PATH"}
)

// Keys lists every recognised setting.
var Keys = []Key{
	KeyTLSProtocol,
	KeyClientKeyStoreType,
	KeyClientKeyStorePath,
	KeyClientKeyStorePassword,
	KeyServerCertificatePath,
}

// ErrMissingSetting is returned when a loader's required setting is absent.
var ErrMissingSetting = errors.New("missing certificate setting")

// Source resolves certificate settings.
type Source interface {
	Lookup(key Key) (string, bool)
}

// Properties is a Source keyed by property name (folkv3.*).
type Properties map[string]string

func (p Properties) Lookup(key Key) (string, bool) {
	v, ok := p[key.Property]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

type envSource struct {
	lookup func(string) (string, bool)
}

// Env returns a Source reading the process environment (FOLKV3_*).
func Env() Source {
	return envSource{lookup: os.LookupEnv}
}

func (e envSource) Lookup(key Key) (string, bool) {
	v, ok := e.lookup(key.Env)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

type layered []Source

// Layered resolves each key from the first source that has it.
func Layered(sources ...Source) Source {
	return layered(sources)
}

func (l layered) Lookup(key Key) (string, bool) {
	for _, s := range l {
		if s == nil {
			continue
		}
		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// DefaultSource resolves properties first, then the environment.
func DefaultSource(props Properties) Source {
	return Layered(props, Env())
}

// ParseProperties extracts -Dkey=value arguments. Other arguments are returned unchanged.
func ParseProperties(args []string) (Properties, []string, error) {
	props := Properties{}
	rest := make([]string, 0, len(args))
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-D") {
			rest = append(rest, arg)
			continue
		}
		key, value, ok := strings.Cut(strings.TrimPrefix(arg, "-D"), "=")
		if !ok || key == "" {
			return nil, nil, fmt.Errorf("invalid property argument %q (expected -Dkey=value)", arg)
		}
		props[key] = value
	}
	return props, rest, nil
}

// Load builds a Config from src; every setting is optional.
func Load(src Source) (*Config, error) {
	b := NewBuilder()
	if v, ok := src.Lookup(KeyTLSProtocol); ok {
		b.TLSProtocolName(v)
	}
	if v, ok := src.Lookup(KeyClientKeyStoreType); ok {
		b.ClientKeyStoreTypeName(v)
	}
	if v, ok := src.Lookup(KeyClientKeyStorePath); ok {
		b.ClientKeyStorePath(v)
	}
	if v, ok := src.Lookup(KeyClientKeyStorePassword); ok {
		b.ClientKeyStorePassword(v)
	}
	if v, ok := src.Lookup(KeyServerCertificatePath); ok {
		b.ServerCertificatePath(v)
	}
	return b.Build()
}

// LoadClientCertificate requires the client key store path and password.
func LoadClientCertificate(src Source) (*Config, error) {
	if err := requireSettings(src, KeyClientKeyStorePath, KeyClientKeyStorePassword); err != nil {
		return nil, err
	}
	return Load(src)
}

// LoadServerCertificate requires the server certificate path.
func LoadServerCertificate(src Source) (*Config, error) {
	if err := requireSettings(src, KeyServerCertificatePath); err != nil {
		return nil, err
	}
	return Load(src)
}

// LoadClientAndServerCertificate requires both the client key store and the server certificate.
func LoadClientAndServerCertificate(src Source) (*Config, error) {
	if err := requireSettings(src, KeyClientKeyStorePath, KeyClientKeyStorePassword, KeyServerCertificatePath); err != nil {
		return nil, err
	}
	return Load(src)
}

// HasAny reports whether src sets at least one certificate setting.
func HasAny(src Source) bool {
	for _, k := range Keys {
		if _, ok := src.Lookup(k); ok {
			return true
		}
	}
	return false
}

func requireSettings(src Source, keys ...Key) error {
	var missing []string
	for _, k := range keys {
		if _, ok := src.Lookup(k); !ok {
			missing = append(missing, k.Property+" / "+k.Env)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingSetting, strings.Join(missing, ", "))
	}
	return nil
}
