// Package bsncloud provides a Go client library for the BrightSign
// BSN.cloud API.
//
// The library covers remote management of BrightSign players: device
// listings, B-Deploy provisioning, and the Remote DWS endpoints for
// control, storage, network diagnostics, video, registry, and display
// control.
//
// # Authentication
//
// Calls authenticate lazily with a client-credentials grant followed by
// network selection; the resulting bearer token is cached and refreshed
// transparently before it expires. Credentials come from one of three
// sources, in priority order:
//
// Explicit configuration:
//
//	client := bsncloud.New()
//	client.Configure("your-client-id", "your-secret", "your-network")
//
// The BSN_CLIENT_ID, BSN_SECRET, and BSN_NETWORK environment variables
// (all three required together), or a .env file using either those names
// or the legacy bsnClientID/bsnSecret/bsnNetwork names.
//
// # Basic Usage
//
// List devices on the network:
//
//	devices, err := client.GetDevices(ctx, "")
//
// Reboot a player:
//
//	result, err := client.RebootDevice(ctx, "D2E8A1000123", "")
//
// # Results and Errors
//
// Every call returns a Result, a decoded JSON map. Transport and protocol
// failures are part of the Result rather than Go errors, because a device
// being offline is an expected outcome callers branch on:
//
//	result, err := client.GetDeviceHealth(ctx, serial)
//	if err != nil {
//	    // credentials unresolvable, handshake failed, or bad arguments
//	}
//	if result.IsError() {
//	    // HTTP error status or transport failure; see result.Details()
//	}
//
// Nested values can be extracted with the accessor helpers:
//
//	status, ok := bsncloud.GetString(result, "data", "result", "status")
//
// Go errors are reserved for unresolvable credentials
// (ErrCredentialsNotFound), a failed authentication handshake (AuthError),
// and invalid arguments rejected before any network call.
package bsncloud
