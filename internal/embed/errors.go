package embed

import (
	"errors"
	"fmt"
)

// ErrUnknownID is returned when no content identifier can be resolved.
// No widget is created in that case.
var ErrUnknownID = errors.New("embed: unknown content identifier")

// ErrorCode is an error reported by the widget.
type ErrorCode int

const (
	ErrInvalidParam     ErrorCode = 2
	ErrHTML5            ErrorCode = 5
	ErrNotFound         ErrorCode = 100
	ErrNotEmbeddable    ErrorCode = 101
	ErrNotEmbeddableAlt ErrorCode = 150
)

// Message is the user-facing text for the code.
func (c ErrorCode) Message() string {
	const prefix = "Error loading video. "
	switch c {
	case ErrInvalidParam:
		return prefix + "Invalid video ID."
	case ErrHTML5:
		return prefix + "HTML5 player error."
	case ErrNotFound:
		return prefix + "Video not found or private."
	case ErrNotEmbeddable, ErrNotEmbeddableAlt:
		return prefix + "Video owner does not allow embedding."
	default:
		return prefix + "Please try again later."
	}
}

// WidgetError carries a widget error code.
type WidgetError struct {
	Code ErrorCode
}

func (e *WidgetError) Error() string {
	return fmt.Sprintf("embed: widget error %d", int(e.Code))
}

// Message returns the text to show the user for err. Widget errors map to
// their code's message; anything else gets the generic message.
func Message(err error) string {
	var we *WidgetError
	if errors.As(err, &we) {
		return we.Code.Message()
	}
	return ErrorCode(0).Message()
}
