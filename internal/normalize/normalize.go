// Package normalize canonicalizes loosely structured visit attributes.
package normalize

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"sitepulse/internal/model"
)

// MaxPagePathLength bounds stored page paths to the indexed column size
const MaxPagePathLength = 191

// PagePath returns a canonical absolute path for raw.
// Full URLs are reduced to their path, kept in its escaped form so that it
// matches the same path given on its own. Anything else is treated as a path.
func PagePath(raw *string) string {
	if raw == nil {
		return "/"
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return "/"
	}

	if u, err := url.Parse(value); err == nil && u.Scheme != "" && u.Host != "" {
		p := u.EscapedPath()
		if p == "" {
			return "/"
		}
		return truncate(ensureLeadingSlash(p))
	}

	return truncate(ensureLeadingSlash(value))
}

// DeviceType resolves an explicit label or a user agent to a device category.
// An explicit label always wins over user agent inference.
func DeviceType(label, userAgent *string) string {
	if label != nil {
		l := strings.ToLower(strings.TrimSpace(*label))
		if model.IsDeviceType(l) {
			return l
		}
	}

	if userAgent != nil {
		ua := strings.ToLower(strings.TrimSpace(*userAgent))
		switch {
		case strings.Contains(ua, "mobile"):
			return model.DeviceMobile
		case strings.Contains(ua, "tablet"), strings.Contains(ua, "ipad"):
			return model.DeviceTablet
		case ua != "":
			return model.DeviceDesktop
		}
	}

	return model.DeviceOther
}

// EventID trims an external event identifier, mapping blank values to nil
func EventID(raw *string) *string {
	if raw == nil {
		return nil
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil
	}
	return &value
}

func ensureLeadingSlash(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}

func truncate(p string) string {
	if utf8.RuneCountInString(p) <= MaxPagePathLength {
		return p
	}
	runes := []rune(p)
	return string(runes[:MaxPagePathLength])
}
