package logger

import "strings"

// MaskEmail keeps the first character of the local part: coach.mueller@club.de -> c***@club.de
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	local, domain, found := strings.Cut(email, "@")
	if !found || domain == "" || strings.Contains(domain, "@") {
		return "***@***"
	}

	if local == "" {
		return "***@" + domain
	}

	return local[:1] + "***@" + domain
}
