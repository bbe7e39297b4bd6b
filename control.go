package bsncloud

import "context"

// Reboot modes accepted by RebootDevice.
const (
	// RebootCrashReport reboots the player and generates a crash report.
	RebootCrashReport = "crash_report"
	// RebootFactoryReset factory resets the player.
	RebootFactoryReset = "factory_reset"
	// RebootDisableAutorun reboots the player with autorun disabled.
	RebootDisableAutorun = "disable_autorun"
)

// RebootDevice reboots the player. The player does not send a response to a
// reboot request. Mode selects a special reboot behavior; pass an empty
// string for a standard reboot.
func (c *Client) RebootDevice(ctx context.Context, serial, mode string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}

	var payload map[string]any
	switch mode {
	case "":
		// standard reboot, no body
	case RebootCrashReport:
		payload = map[string]any{"data": map[string]any{"crash_report": true}}
	case RebootFactoryReset:
		payload = map[string]any{"data": map[string]any{"factory_reset": true}}
	case RebootDisableAutorun:
		payload = map[string]any{"data": map[string]any{"autorun": "disable"}}
	default:
		return nil, ErrInvalidRebootMode
	}

	if payload == nil {
		return c.put(ctx, c.dwsURL+"/control/reboot/", playerParams(serial), nil, nil)
	}
	return c.put(ctx, c.dwsURL+"/control/reboot/", playerParams(serial), payload, nil)
}

// GetDevicePassword retrieves information about the current password of the
// local DWS (but not the password itself), such as whether it is blank or
// invalid.
func (c *Client) GetDevicePassword(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/control/dws-password/", playerParams(serial))
}

// SetDevicePassword sets a new password for the local DWS. The previous
// password is required for authentication and may be an empty string to
// indicate it was blank.
func (c *Client) SetDevicePassword(ctx context.Context, serial, password, previousPassword string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}

	payload := map[string]any{
		"data": map[string]any{
			"password":         password,
			"previousPassword": previousPassword,
		},
	}

	return c.put(ctx, c.dwsURL+"/control/dws-password/", playerParams(serial), payload, nil)
}

// GetLocalDWSStatus retrieves the current state of the local Diagnostic Web
// Server on the player.
func (c *Client) GetLocalDWSStatus(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/control/local-dws/", playerParams(serial))
}

// SetLocalDWS enables or disables the local Diagnostic Web Server on the
// player. This typically causes the player to reboot.
func (c *Client) SetLocalDWS(ctx context.Context, serial string, enable bool) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}

	payload := map[string]any{"data": map[string]any{"enable": enable}}

	return c.put(ctx, c.dwsURL+"/control/local-dws/", playerParams(serial), payload, nil)
}

// ResetSSHHostKeys regenerates the player's SSH host key pairs. The player
// decides on its own whether a reboot is required unless reboot is non-nil.
func (c *Client) ResetSSHHostKeys(ctx context.Context, serial string, reboot *bool) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}

	var payload map[string]any
	if reboot != nil {
		payload = map[string]any{"data": map[string]any{"reboot": boolString(*reboot)}}
		return c.put(ctx, c.dwsURL+"/control/ssh-host-keys/reset/", playerParams(serial), payload, nil)
	}
	return c.put(ctx, c.dwsURL+"/control/ssh-host-keys/reset/", playerParams(serial), nil, nil)
}

// ResetDWSDefaultCerts regenerates the DWS default certificate pairs. The
// player reboots to activate new certificates unless reboot is non-nil and
// false.
func (c *Client) ResetDWSDefaultCerts(ctx context.Context, serial string, reboot *bool) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}

	if reboot != nil {
		payload := map[string]any{"data": map[string]any{"reboot": boolString(*reboot)}}
		return c.put(ctx, c.dwsURL+"/control/dws-default-certs/reset/", playerParams(serial), payload, nil)
	}
	return c.put(ctx, c.dwsURL+"/control/dws-default-certs/reset/", playerParams(serial), nil, nil)
}

// ReformatStorage reformats the specified storage device on the player with
// the given filesystem (e.g. "exfat"). This deletes all data on the device;
// autorun must be disabled before reformatting the SD card.
func (c *Client) ReformatStorage(ctx context.Context, serial, storage, filesystem string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	if err := validateStorage(storage); err != nil {
		return nil, err
	}

	payload := map[string]any{"data": map[string]any{"fs": filesystem}}

	return c.del(ctx, c.dwsURL+"/storage/"+storage+"/", playerParams(serial), payload)
}

// ReprovisionDevice makes the player download its B-Deploy setup and go
// through provisioning again: setup-related registry keys are kept, other
// registry entries and all files on the default storage are removed, and
// the player reboots to fetch its setup package.
func (c *Client) ReprovisionDevice(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/re-provision/", playerParams(serial))
}

// TakeSnapshot captures the current screen contents to storage and returns
// a base64 thumbnail along with the on-device path of the full image.
func (c *Client) TakeSnapshot(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.post(ctx, c.dwsURL+"/snapshot/", playerParams(serial), nil, nil)
}

// SendCustomCommand sends custom data to the player, delivered as a JSON
// string message on UDP port 5000 where autorun.brs or a JavaScript
// application can capture it. With returnImmediately false, the call blocks
// until the player application responds.
func (c *Client) SendCustomCommand(ctx context.Context, serial, command string, returnImmediately bool) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}

	payload := map[string]any{
		"data": map[string]any{
			"command":           command,
			"returnImmediately": returnImmediately,
		},
	}

	return c.put(ctx, c.dwsURL+"/custom/", playerParams(serial), payload, nil)
}

// DownloadFirmware instructs the player to download and apply a firmware
// update from a public URL.
func (c *Client) DownloadFirmware(ctx context.Context, serial, firmwareURL string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}

	params := playerParams(serial)
	params.Set("url", firmwareURL)

	return c.get(ctx, c.dwsURL+"/download-firmware/", params)
}

// boolString renders a bool the way the Remote DWS expects it in payload
// fields that take "true"/"false" strings.
func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Bool returns a pointer to b, for the optional reboot flags.
func Bool(b bool) *bool {
	return &b
}
