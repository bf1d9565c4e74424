package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidURL        = errors.New("invalid url")
	ErrBinaryNotFound    = errors.New("binary not found")
	ErrSpawnFailed       = errors.New("spawn failed")
	ErrToolFailure       = errors.New("external tool failure")
	ErrOutputParse       = errors.New("output parse failure")
	ErrTimeout           = errors.New("timeout")
	ErrConfiguration     = errors.New("configuration error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrToolFailure
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// FailureLabel maps an error to the stable label recorded in the operation
// journal and rendered by the CLI. Unrecognized errors collapse to "failure".
func FailureLabel(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrFileNotFound):
		return "file-not-found"
	case errors.Is(err, ErrUnsupportedFormat):
		return "unsupported-format"
	case errors.Is(err, ErrInvalidURL):
		return "invalid-url"
	case errors.Is(err, ErrBinaryNotFound):
		return "binary-not-found"
	case errors.Is(err, ErrSpawnFailed):
		return "spawn-failed"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrOutputParse):
		return "output-parse"
	case errors.Is(err, ErrToolFailure):
		return "tool-failure"
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	default:
		return "failure"
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
