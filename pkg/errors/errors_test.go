// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/docstow/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "documents_folder_not_found",
			code:    errors.ErrDocumentsFolderNotFound,
			message: "no documents directory",
			wantStr: "[DOCUMENTS_FOLDER_NOT_FOUND] no documents directory",
		},
		{
			name:    "unable_to_persist",
			code:    errors.ErrUnableToPersist,
			message: "bytes are not text",
			wantStr: "[UNABLE_TO_PERSIST] bytes are not text",
		},
		{
			name:    "unable_to_fetch",
			code:    errors.ErrUnableToFetch,
			message: "cannot fetch file",
			wantStr: "[UNABLE_TO_FETCH] cannot fetch file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
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

func TestWrap(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := errors.Wrap(cause, errors.ErrFailed, "failed to read notes.txt")

	if got := err.Error(); got != "[FAILED] failed to read notes.txt: permission denied" {
		t.Errorf("Error() = %q", got)
	}

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match the cause via errors.Is")
	}

	if unwrapped := stderrors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestWrapNil(t *testing.T) {
	if err := errors.Wrap(nil, errors.ErrFailed, "nothing"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
	if err := errors.Wrapf(nil, errors.ErrFailed, "nothing %s", "here"); err != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", err)
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrCloudContainerNotFound, "no container for %s", "docstow")

	if !errors.IsErrorCode(err, errors.ErrCloudContainerNotFound) {
		t.Error("IsErrorCode() should match the error's own code")
	}
	if errors.IsErrorCode(err, errors.ErrCachesFolderNotFound) {
		t.Error("IsErrorCode() should not match a different code")
	}
	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrFailed) {
		t.Error("IsErrorCode() should not match a plain error")
	}
}

func TestIsErrorCodeWrapped(t *testing.T) {
	// The code should be found through stdlib wrapping layers
	inner := errors.New(errors.ErrDocumentsFolderNotFound, "missing")
	outer := stderrors.Join(stderrors.New("context"), inner)

	if !errors.IsErrorCode(outer, errors.ErrDocumentsFolderNotFound) {
		t.Error("IsErrorCode() should find the code through wrapping")
	}
}

func TestGetErrorCode(t *testing.T) {
	err := errors.New(errors.ErrCachesFolderNotFound, "missing")
	if got := errors.GetErrorCode(err); got != errors.ErrCachesFolderNotFound {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrCachesFolderNotFound)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrUnableToPersist, "not text").
		WithDetail("value", "map[string]int").
		WithDetail("filename", "state.json")

	details := errors.GetErrorDetails(err)
	if details["value"] != "map[string]int" {
		t.Errorf("details[value] = %v", details["value"])
	}
	if details["filename"] != "state.json" {
		t.Errorf("details[filename] = %v", details["filename"])
	}
}
