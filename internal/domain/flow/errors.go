package flow

import apperrors "github.com/yanqian/ai-stylist/pkg/errors"

// Failure kinds surfaced by Run. Each is carried as an apperrors code.
const (
	// KindInvalidInput means the input record broke its constraints. No provider call was made.
	KindInvalidInput = "invalid_input"
	// KindProvider means the provider call did not complete or returned nothing usable.
	KindProvider = "provider_error"
	// KindOutputMismatch means the model answered but the answer does not fit the output schema.
	KindOutputMismatch = "output_mismatch"
)

// KindOf reports which flow failure kind err carries, or "" for foreign errors.
func KindOf(err error) string {
	switch code := apperrors.CodeOf(err); code {
	case KindInvalidInput, KindProvider, KindOutputMismatch:
		return code
	default:
		return ""
	}
}
