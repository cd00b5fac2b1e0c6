// Package validate holds the input patterns shared by account entities.
package validate

import "regexp"

const (
	accountNameMinLen = 2
	accountNameMaxLen = 39
)

var (
	// Alphanumeric with single interior - or _ separators.
	accountNameRe = regexp.MustCompile(`^[a-zA-Z0-9](?:[-_]?[a-zA-Z0-9])*$`)
	emailRe       = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// AccountName reports whether name is a valid organization name or username.
func AccountName(name string) bool {
	if len(name) < accountNameMinLen || len(name) > accountNameMaxLen {
		return false
	}
	return accountNameRe.MatchString(name)
}

// Email reports whether addr has a plausible email shape.
func Email(addr string) bool {
	return emailRe.MatchString(addr)
}
