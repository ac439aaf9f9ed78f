package formats

import (
	"net"
	"net/mail"
	"net/url"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/schemakit"
)

// UUID builds a validator for canonical 8-4-4-4-12 UUID strings, normalizing
// the output to lowercase. Options configure the underlying string stage, so
// UUID(schemakit.Required()) rejects absence.
func UUID(opts ...schemakit.Option) schemakit.Validator {
	return schemakit.Compose(schemakit.String(opts...), schemakit.Func(checkUUID))
}

func checkUUID(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}

	// Fast rejection: check length and hyphen positions before parsing.
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return nil, schemakit.Message("is not a valid UUID")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return nil, schemakit.Message("is not a valid UUID")
	}
	return u.String(), nil
}

// Email builds a validator for email addresses as used on the web: parseable
// by net/mail, with a non-empty local part and a dotted domain. A display
// name is stripped, so "Ada <ada@example.com>" normalizes to
// "ada@example.com".
func Email(opts ...schemakit.Option) schemakit.Validator {
	return schemakit.Compose(schemakit.String(opts...), schemakit.Func(checkEmail))
}

func checkEmail(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return nil, schemakit.Message("is not a valid email address")
	}

	// Additional validation for typical web use
	email := addr.Address
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" {
		return nil, schemakit.Message("is not a valid email address")
	}

	// Domain must contain at least one dot and no empty labels
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return nil, schemakit.Message("is not a valid email address")
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return nil, schemakit.Message("is not a valid email address")
		}
	}

	return email, nil
}

// URL builds a validator for absolute URLs carrying both a scheme and a
// host.
func URL(opts ...schemakit.Option) schemakit.Validator {
	return schemakit.Compose(schemakit.String(opts...), schemakit.Func(checkURL))
}

func checkURL(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}

	u, err := url.ParseRequestURI(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, schemakit.Message("is not a valid URL")
	}
	return s, nil
}

// URLWithScheme builds a validator for absolute URLs restricted to the given
// schemes.
func URLWithScheme(schemes []string, opts ...schemakit.Option) schemakit.Validator {
	message := schemakit.Message("is not a URL with scheme: " + strings.Join(schemes, ", "))
	check := schemakit.Func(func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return value, nil
		}
		u, err := url.ParseRequestURI(s)
		if err != nil || u.Host == "" || !slices.Contains(schemes, u.Scheme) {
			return nil, message
		}
		return s, nil
	})
	return schemakit.Compose(schemakit.String(opts...), check)
}

// IP builds a validator accepting both IPv4 and IPv6 addresses.
func IP(opts ...schemakit.Option) schemakit.Validator {
	return schemakit.Compose(schemakit.String(opts...), schemakit.Func(checkIP))
}

func checkIP(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}
	if net.ParseIP(s) == nil {
		return nil, schemakit.Message("is not a valid IP address")
	}
	return s, nil
}

// IPv4 builds a validator accepting only IPv4 addresses.
func IPv4(opts ...schemakit.Option) schemakit.Validator {
	return schemakit.Compose(schemakit.String(opts...), schemakit.Func(checkIPv4))
}

func checkIPv4(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}
	ip := net.ParseIP(s)
	if ip == nil || ip.To4() == nil {
		return nil, schemakit.Message("is not a valid IPv4 address")
	}
	return s, nil
}

// IPv6 builds a validator accepting only IPv6 addresses, including
// IPv4-mapped ones written in colon notation.
func IPv6(opts ...schemakit.Option) schemakit.Validator {
	return schemakit.Compose(schemakit.String(opts...), schemakit.Func(checkIPv6))
}

func checkIPv6(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}
	ip := net.ParseIP(s)
	if ip == nil || (ip.To4() != nil && !strings.Contains(s, ":")) {
		return nil, schemakit.Message("is not a valid IPv6 address")
	}
	return s, nil
}
