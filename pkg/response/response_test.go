package response

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	notFound := NewError(404, "wallet not found")

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name:   "same instance",
			err:    notFound,
			target: notFound,
			want:   true,
		},
		{
			name:   "equal code and message",
			err:    NewError(404, "wallet not found"),
			target: notFound,
			want:   true,
		},
		{
			name:   "different code",
			err:    NewError(403, "wallet not found"),
			target: notFound,
			want:   false,
		},
		{
			name:   "different message",
			err:    NewError(404, "goal not found"),
			target: notFound,
			want:   false,
		},
		{
			name:   "wrapped domain error still matches",
			err:    fmt.Errorf("loading wallet: %w", notFound),
			target: notFound,
			want:   true,
		},
		{
			name:   "plain error does not match",
			err:    errors.New("wallet not found"),
			target: notFound,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := NewError(500, "something broke")

	var domainErr *Error
	if !errors.As(err, &domainErr) {
		t.Fatal("errors.As() failed to extract *Error")
	}
	if domainErr.Code != 500 {
		t.Errorf("Code = %d, want 500", domainErr.Code)
	}

	inner := errors.Unwrap(err)
	if inner == nil || inner.Error() != "something broke" {
		t.Errorf("Unwrap() = %v, want inner message", inner)
	}
}
