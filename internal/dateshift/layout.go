package dateshift

import (
	"strings"
)

// detectLayout scans an ISO-8601 value and returns the Go time layout that
// parses it and formats it back with the same components.
func detectLayout(s string) (layout string, dateOnly bool, ok bool) {
	var b strings.Builder
	rest := s

	switch {
	case len(rest) >= 10 && rest[4] == '-' && rest[7] == '-' &&
		digits(rest[0:4]) && digits(rest[5:7]) && digits(rest[8:10]):
		b.WriteString("2006-01-02")
		rest = rest[10:]
	case len(rest) >= 8 && digits(rest[0:8]):
		b.WriteString("20060102")
		rest = rest[8:]
	default:
		return "", false, false
	}

	if rest == "" {
		return b.String(), true, true
	}

	// Date/time separator.
	if rest[0] != 'T' && rest[0] != ' ' {
		return "", false, false
	}
	b.WriteByte(rest[0])
	rest = rest[1:]

	// Hour is mandatory once a separator is present.
	if len(rest) < 2 || !digits(rest[:2]) {
		return "", false, false
	}
	b.WriteString("15")
	rest = rest[2:]

	if len(rest) >= 3 && rest[0] == ':' && digits(rest[1:3]) {
		b.WriteString(":04")
		rest = rest[3:]

		if len(rest) >= 3 && rest[0] == ':' && digits(rest[1:3]) {
			b.WriteString(":05")
			rest = rest[3:]

			if len(rest) >= 2 && (rest[0] == '.' || rest[0] == ',') {
				n := leadingDigits(rest[1:])
				if n == 0 || n > 9 {
					return "", false, false
				}
				b.WriteByte(rest[0])
				b.WriteString(strings.Repeat("0", n))
				rest = rest[1+n:]
			}
		}
	}

	zone, ok := zoneLayout(rest)
	if !ok {
		return "", false, false
	}
	b.WriteString(zone)
	return b.String(), false, true
}

// zoneLayout maps the trailing zone designator to its layout element.
// "Z" uses Z07:00 so a zero offset formats back as "Z"; numeric forms use
// -07:00 style elements so "+00:00" stays "+00:00".
func zoneLayout(s string) (string, bool) {
	switch {
	case s == "":
		return "", true
	case s == "Z":
		return "Z07:00", true
	case s[0] != '+' && s[0] != '-':
		return "", false
	}

	body := s[1:]
	switch {
	case len(body) == 2 && digits(body):
		return "-07", true
	case len(body) == 4 && digits(body):
		return "-0700", true
	case len(body) == 5 && body[2] == ':' && digits(body[:2]) && digits(body[3:]):
		return "-07:00", true
	}
	return "", false
}

func digits(s string) bool {
	return s != "" && leadingDigits(s) == len(s)
}

func leadingDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
