package config

import (
	"errors"
	"fmt"
	"strings"
)

// Instance is the X-Road instance a member belongs to.
type Instance string

const (
	InstanceProduction Instance = "FO"
	InstanceTest       Instance = "FO-TST"
)

// MemberClass is the X-Road member class.
type MemberClass string

const (
	MemberClassCOM MemberClass = "COM"
	MemberClassGOV MemberClass = "GOV"
	MemberClassNGO MemberClass = "NGO"
	MemberClassNEE MemberClass = "NEE"
)

// ErrInvalidHeldin is returned when a Heldin configuration fails validation.
var ErrInvalidHeldin = errors.New("invalid heldin config")

// Heldin identifies the calling X-Road subsystem and the security server it talks to.
type Heldin struct {
	Host          string
	Secure        bool
	Instance      Instance
	MemberClass   MemberClass
	MemberCode    string
	SubsystemCode string
	UserID        string
}

// Validate checks that every part of the client identifier is present and known.
func (h Heldin) Validate() error {
	if strings.TrimSpace(h.Host) == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidHeldin)
	}
	switch h.Instance {
	case InstanceProduction, InstanceTest:
	default:
		return fmt.Errorf("%w: unknown instance %q (expected FO or FO-TST)", ErrInvalidHeldin, h.Instance)
	}
	switch h.MemberClass {
	case MemberClassCOM, MemberClassGOV, MemberClassNGO, MemberClassNEE:
	default:
		return fmt.Errorf("%w: unknown member class %q", ErrInvalidHeldin, h.MemberClass)
	}
	if strings.TrimSpace(h.MemberCode) == "" {
		return fmt.Errorf("%w: member code is required", ErrInvalidHeldin)
	}
	if strings.TrimSpace(h.SubsystemCode) == "" {
		return fmt.Errorf("%w: subsystem code is required", ErrInvalidHeldin)
	}
	if strings.Contains(h.MemberCode, "/") || strings.Contains(h.SubsystemCode, "/") {
		return fmt.Errorf("%w: member and subsystem codes must not contain '/'", ErrInvalidHeldin)
	}
	return nil
}

// Path returns the identifier path, e.g. FO-TST/COM/123456/my-system.
func (h Heldin) Path() string {
	return strings.Join([]string{string(h.Instance), string(h.MemberClass), h.MemberCode, h.SubsystemCode}, "/")
}

// ClientID returns the X-Road client header value, e.g. SUBSYSTEM:FO-TST/COM/123456/my-system.
func (h Heldin) ClientID() string {
	return "SUBSYSTEM:" + h.Path()
}

// BaseURL returns the security server root, e.g. https://10.20.30.40.
func (h Heldin) BaseURL() string {
	scheme := "http"
	if h.Secure {
		scheme = "https"
	}
	return scheme + "://" + strings.TrimRight(h.Host, "/")
}

func (h Heldin) IsProduction() bool { return h.Instance == InstanceProduction }

// ParseHeldin builds a Heldin from a host and an identifier path such as
// "FO-TST/COM/123456/my-system".
func ParseHeldin(host string, secure bool, path string) (Heldin, error) {
	parts := strings.Split(strings.TrimPrefix(path, "SUBSYSTEM:"), "/")
	if len(parts) != 4 {
		return Heldin{}, fmt.Errorf("%w: client path %q must be INSTANCE/CLASS/MEMBER/SUBSYSTEM", ErrInvalidHeldin, path)
	}
	h := Heldin{
		Host:          host,
		Secure:        secure,
		Instance:      Instance(strings.ToUpper(parts[0])),
		MemberClass:   MemberClass(strings.ToUpper(parts[1])),
		MemberCode:    parts[2],
		SubsystemCode: parts[3],
	}
	if err := h.Validate(); err != nil {
		return Heldin{}, err
	}
	return h, nil
}

// HeldinBuilder assembles a Heldin step by step:
//
//	config.SecureHost("10.20.30.40").FO().Test().COM().
//		MemberCode("123456").SubsystemCode("my-system").
//		WithUserID("my-system-id").Build()
type HeldinBuilder struct {
	h Heldin
}

// SecureHost starts a builder for a security server reached over HTTPS.
func SecureHost(host string) *HeldinBuilder {
	return &HeldinBuilder{h: Heldin{Host: host, Secure: true}}
}

// Host starts a builder for a security server reached over plain HTTP.
func Host(host string) *HeldinBuilder {
	return &HeldinBuilder{h: Heldin{Host: host}}
}

// FO selects the production instance. Follow with Test() for the test instance.
func (b *HeldinBuilder) FO() *HeldinBuilder {
	b.h.Instance = InstanceProduction
	return b
}

func (b *HeldinBuilder) Test() *HeldinBuilder {
	b.h.Instance = InstanceTest
	return b
}

func (b *HeldinBuilder) COM() *HeldinBuilder {
	b.h.MemberClass = MemberClassCOM
	return b
}

func (b *HeldinBuilder) GOV() *HeldinBuilder {
	b.h.MemberClass = MemberClassGOV
	return b
}

func (b *HeldinBuilder) MemberCode(code string) *HeldinBuilder {
	b.h.MemberCode = code
	return b
}

func (b *HeldinBuilder) SubsystemCode(code string) *HeldinBuilder {
	b.h.SubsystemCode = code
	return b
}

// WithUserID sets the optional end-user id forwarded with every call.
func (b *HeldinBuilder) WithUserID(userID string) *HeldinBuilder {
	b.h.UserID = userID
	return b
}

func (b *HeldinBuilder) Build() (Heldin, error) {
	if err := b.h.Validate(); err != nil {
		return Heldin{}, err
	}
	return b.h, nil
}
