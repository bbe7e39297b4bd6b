package bsncloud

import "context"

// Remote DWS information endpoints. Every call addresses a single player
// by serial number through the ws.bsn.cloud relay.

// GetDeviceInfo retrieves general information about the player: model,
// firmware version, uptime, network interfaces, and storage devices.
func (c *Client) GetDeviceInfo(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/info/", playerParams(serial))
}

// GetDeviceTime retrieves the date and time as configured on the player,
// formatted as "yyyy-mm-dd hh:mm:ss <timezone>".
func (c *Client) GetDeviceTime(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/time/", playerParams(serial))
}

// SetDeviceTime sets the date and time on the player. The time is formatted
// as "hh:mm:ss <timezone>" (timezone optional) and the date as
// "yyyy-mm-dd". When applyTimezone is true the values are applied using the
// player's configured time zone, otherwise UTC.
func (c *Client) SetDeviceTime(ctx context.Context, serial, timeStr, date string, applyTimezone bool) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	if err := validateTimeDate(timeStr, date); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"data": map[string]any{
			"time":          timeStr,
			"date":          date,
			"applyTimezone": applyTimezone,
		},
	}

	return c.put(ctx, c.dwsURL+"/time/", playerParams(serial), payload, nil)
}

// GetDeviceHealth retrieves the current status of the player. This only
// determines whether the player responds to WebSocket requests; it cannot
// report the player's error state.
func (c *Client) GetDeviceHealth(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/health/", playerParams(serial))
}

// GetDeviceLogs retrieves the player logs.
func (c *Client) GetDeviceLogs(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/logs/", playerParams(serial))
}

// GetDeviceCrashDumps retrieves the crash dump from the player.
func (c *Client) GetDeviceCrashDumps(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/crash-dump/", playerParams(serial))
}
