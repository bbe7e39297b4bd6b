package bsncloud

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the BSN.cloud client.
// All errors are defined here for easy discovery and consistent organization.
var (
	// Configuration errors
	ErrCredentialsNotFound = errors.New(
		"bsncloud: credentials not found. Set credentials using:\n" +
			"1. Client.Configure(clientID, secret, network), or\n" +
			"2. Environment variables: BSN_CLIENT_ID, BSN_SECRET, BSN_NETWORK, or\n" +
			"3. .env file with bsnClientID, bsnSecret, bsnNetwork")

	// Dispatch validation errors
	ErrConflictingPayload = errors.New("bsncloud: JSON payload and raw payload are mutually exclusive")

	// Device/provisioning validation errors
	ErrEmptySerial      = errors.New("bsncloud: serial number cannot be empty")
	ErrMissingRecordRef = errors.New("bsncloud: either record ID or serial number must be provided")
	ErrMissingSetupRef  = errors.New("bsncloud: either setup ID or setup name must be provided")
	ErrEmptyRecordIDs   = errors.New("bsncloud: the list of record IDs must not be empty")

	// Control validation errors
	ErrInvalidRebootMode = errors.New("bsncloud: reboot mode must be crash_report, factory_reset, disable_autorun, or empty")
	ErrBothPasswords     = errors.New("bsncloud: password and obfuscated password are mutually exclusive")

	// Storage validation errors
	ErrInvalidStorage = errors.New("bsncloud: storage medium must be one of: sd, usb, ssd")
	ErrRawAndContents = errors.New("bsncloud: raw and contents listing options are mutually exclusive")
	ErrNameIsPath     = errors.New("bsncloud: new name must be a filename only, not a path")

	// Video validation errors
	ErrInvalidModeType = errors.New("bsncloud: mode type must be best, active, configured, or empty")

	// Display validation errors
	ErrInvalidSDConnection = errors.New("bsncloud: SD connection must be brightsign or display")
	ErrFirmwareSource      = errors.New("bsncloud: exactly one of filepath or url must be provided")

	// Time/date validation errors
	ErrBadDateFormat = errors.New("bsncloud: date must be formatted as yyyy-mm-dd")
	ErrBadTimeFormat = errors.New("bsncloud: time must be formatted as hh:mm:ss with optional timezone")
	ErrBadDateValue  = errors.New("bsncloud: date contains invalid values")
	ErrBadTimeValue  = errors.New("bsncloud: time contains invalid values")
)

// AuthError indicates that the two-step authentication handshake with
// BSN.cloud failed. Reason carries the failed session's error text: either
// "Error authenticating", "Error selecting site", or the raw body of a
// rejected network-selection response.
type AuthError struct {
	Reason string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("bsncloud: login to BSN.cloud failed: %s", e.Reason)
}

// IsAuthError returns true if the error indicates a failed authentication
// handshake.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsConfigurationError returns true if the error indicates that credentials
// could not be resolved from any source.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrCredentialsNotFound)
}
