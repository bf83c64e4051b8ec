package embed

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode_Message(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{2, "Error loading video. Invalid video ID."},
		{5, "Error loading video. HTML5 player error."},
		{100, "Error loading video. Video not found or private."},
		{101, "Error loading video. Video owner does not allow embedding."},
		{150, "Error loading video. Video owner does not allow embedding."},
		{999, "Error loading video. Please try again later."},
	}
	for _, tt := range tests {
		if got := tt.code.Message(); got != tt.want {
			t.Errorf("ErrorCode(%d).Message() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestMessage(t *testing.T) {
	wrapped := fmt.Errorf("mount: %w", &WidgetError{Code: ErrNotFound})
	if got := Message(wrapped); got != ErrNotFound.Message() {
		t.Errorf("Message(wrapped) = %q", got)
	}
	if got := Message(errors.New("boom")); got != "Error loading video. Please try again later." {
		t.Errorf("Message(other) = %q", got)
	}
}
