package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/docflow/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "trigger_type_error",
			code:    errors.ErrTriggerType,
			message: "unknown trigger type 4",
			wantStr: "[TRIGGER_TYPE_INVALID] unknown trigger type 4",
		},
		{
			name:    "template_error",
			code:    errors.ErrTemplateInvalid,
			message: "unbalanced braces",
			wantStr: "[TEMPLATE_INVALID] unbalanced braces",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}
			if err.Details == nil {
				t.Error("New() details should be initialized")
			}
			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrPatternInvalid, "invalid regex %q", "(foo")
	if err.Message != `invalid regex "(foo"` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("missing )")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrPatternInvalid, "invalid regex")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[PATTERN_INVALID] invalid regex: missing )"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrConfigValid, "duplicate workflow id").
		WithDetail("workflow", 3).
		WithDetails(map[string]interface{}{"file": "workflows.toml"})

	if err.Details["workflow"] != 3 {
		t.Errorf("WithDetail() workflow = %v", err.Details["workflow"])
	}
	if err.Details["file"] != "workflows.toml" {
		t.Errorf("WithDetails() file = %v", err.Details["file"])
	}
	if got := errors.GetErrorDetails(err); got["workflow"] != 3 {
		t.Errorf("GetErrorDetails() = %v", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrTriggerType, "error 1")
	err2 := errors.New(errors.ErrTriggerType, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrTriggerType, "bad type"),
			code:     errors.ErrTriggerType,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrTriggerType, "bad type"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrConfigParse, "bad toml")); got != errors.ErrConfigParse {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(nil); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(nil) = %v", got)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read workflow file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load workflows")

	if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
		t.Error("top level should have ErrConfigLoad code")
	}

	var middle *errors.DocflowError
	if stderrors.As(configErr.Unwrap(), &middle) && middle.Code != errors.ErrFileAccess {
		t.Error("middle error should have ErrFileAccess code")
	}

	if !stderrors.Is(configErr, rootCause) {
		t.Error("should find root cause with errors.Is")
	}
}
