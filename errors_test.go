package bsncloud

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAuthError(t *testing.T) {
	err := &AuthError{Reason: "Error selecting site"}
	if !strings.Contains(err.Error(), "Error selecting site") {
		t.Errorf("Error() = %q, want reason included", err.Error())
	}

	wrapped := fmt.Errorf("fetching devices: %w", err)
	if !IsAuthError(wrapped) {
		t.Error("IsAuthError should see through wrapping")
	}
	if IsAuthError(errors.New("other")) {
		t.Error("IsAuthError matched an unrelated error")
	}
}

func TestIsConfigurationError(t *testing.T) {
	wrapped := fmt.Errorf("listing setups: %w", ErrCredentialsNotFound)
	if !IsConfigurationError(wrapped) {
		t.Error("IsConfigurationError should see through wrapping")
	}
	if IsConfigurationError(&AuthError{Reason: "Error authenticating"}) {
		t.Error("IsConfigurationError matched an auth error")
	}
}
