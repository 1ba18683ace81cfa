package service

import (
	"context"
	"errors"
	"fmt"

	"feedsync/internal/domain"
	"feedsync/internal/provider"
)

// ErrUnsupported is returned when a capability-gated operation is invoked on
// a provider whose Capabilities flag it off.
var ErrUnsupported = errors.New("operation not supported by provider")

// errStorage marks entity-store failures, which are never retried.
var errStorage = errors.New("storage")

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, errStorage, err)
}

// outcomeFor converts a sync pass error into the terminal Outcome the
// scheduler consumes. Credential and storage failures are not worth retrying;
// everything else is assumed transient.
func outcomeFor(err error) domain.Outcome {
	if err == nil {
		return domain.OutcomeSuccess
	}

	var credErr *provider.CredentialError
	switch {
	case errors.As(err, &credErr):
		return domain.OutcomeFailure
	case errors.Is(err, errStorage):
		return domain.OutcomeFailure
	case errors.Is(err, context.Canceled):
		return domain.OutcomeFailure
	default:
		return domain.OutcomeRetry
	}
}
