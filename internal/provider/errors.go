// Package provider holds error types shared by the provider clients.
package provider

import "fmt"

// CredentialError reports rejected authentication. Callers prompt for
// re-authentication instead of retrying.
type CredentialError struct {
	Provider string
	Err      error
}

func (e *CredentialError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: credentials rejected", e.Provider)
	}
	return fmt.Sprintf("%s: credentials rejected: %v", e.Provider, e.Err)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}
