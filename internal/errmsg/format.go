// Package errmsg turns errors into the one-line messages shown in toasts
// and the error popup.
package errmsg

import "fmt"

// Op names what the user was trying to do, phrased to follow "Failed to".
type Op string

const (
	OpCatalogLoad   Op = "load catalog"
	OpMediaLoad     Op = "load episode"
	OpPlaybackStart Op = "start playback"
	OpNotify        Op = "send notification"
	OpMediaKeys     Op = "register media keys"
)

// Format returns "Failed to <op>: <err>", or "" for a nil error.
func Format(op Op, err error) string {
	return FormatWith(op, "", err)
}

// FormatWith is Format with the subject quoted after the operation.
func FormatWith(op Op, subject string, err error) string {
	switch {
	case err == nil:
		return ""
	case subject == "":
		return fmt.Sprintf("Failed to %s: %v", op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
}
