package bsncloud

import "context"

// Display control endpoints. These only work on Moka displays with
// built-in BrightSign players and require BOS 9.0.189 or above.

// SD connection settings accepted by SetDisplaySDConnection.
const (
	SDConnectionBrightSign = "brightsign"
	SDConnectionDisplay    = "display"
)

func (c *Client) displayURL(path string) string {
	return c.dwsURL + "/display-control/" + path
}

// GetDisplayControl returns all control settings for the connected display:
// display info, white balance, volume, brightness, contrast, standby
// timeout, power setting, video output, SD connection, and always-connected
// status.
func (c *Client) GetDisplayControl(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.displayURL(""), playerParams(serial))
}

// GetDisplayBrightness returns the display brightness level (0-100).
func (c *Client) GetDisplayBrightness(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.displayURL("brightness/"), playerParams(serial))
}

// SetDisplayBrightness changes the display brightness level (0-100).
func (c *Client) SetDisplayBrightness(ctx context.Context, serial string, brightness int) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	payload := map[string]any{"data": map[string]any{"brightness": brightness}}
	return c.put(ctx, c.displayURL("brightness/"), playerParams(serial), payload, nil)
}

// GetDisplayContrast returns the display contrast level (0-100).
func (c *Client) GetDisplayContrast(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.displayURL("contrast/"), playerParams(serial))
}

// SetDisplayContrast changes the display contrast level (0-100).
func (c *Client) SetDisplayContrast(ctx context.Context, serial string, contrast int) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	payload := map[string]any{"data": map[string]any{"contrast": contrast}}
	return c.put(ctx, c.displayURL("contrast/"), playerParams(serial), payload, nil)
}

// GetDisplayAlwaysConnected returns the display's "always connected"
// setting.
func (c *Client) GetDisplayAlwaysConnected(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.displayURL("always-connected/"), playerParams(serial))
}

// SetDisplayAlwaysConnected changes the display's "always connected"
// setting.
func (c *Client) SetDisplayAlwaysConnected(ctx context.Context, serial string, enable bool) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	payload := map[string]any{"data": map[string]any{"enable": enable}}
	return c.put(ctx, c.displayURL("always-connected/"), playerParams(serial), payload, nil)
}

// GetDisplayAlwaysOn returns the display's "always on" connection setting.
func (c *Client) GetDisplayAlwaysOn(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.displayURL("always-on/"), playerParams(serial))
}

// SetDisplayAlwaysOn sets the display connection to always on.
func (c *Client) SetDisplayAlwaysOn(ctx context.Context, serial string, enable bool) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	payload := map[string]any{"data": map[string]any{"enable": enable}}
	return c.put(ctx, c.displayURL("always-on/"), playerParams(serial), payload, nil)
}

// UpdateDisplayFirmware updates the firmware of the connected display from
// either a file on the SD card or a download URL (exactly one must be
// given). This reboots the player.
func (c *Client) UpdateDisplayFirmware(ctx context.Context, serial, filepath, url string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	if (filepath == "") == (url == "") {
		return nil, ErrFirmwareSource
	}

	data := map[string]any{}
	if filepath != "" {
		data["filepath"] = filepath
	} else {
		data["url"] = url
	}

	return c.put(ctx, c.displayURL("firmware/"), playerParams(serial), map[string]any{"data": data}, nil)
}

// GetDisplayInfo returns information about the connected display: MAC
// addresses, serial number, OS version, and hardware revision.
func (c *Client) GetDisplayInfo(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.displayURL("info/"), playerParams(serial))
}

// GetDisplayPowerSettings returns the display power setting (e.g. "on",
// "standby").
func (c *Client) GetDisplayPowerSettings(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.displayURL("power-settings/"), playerParams(serial))
}

// SetDisplayPowerSettings changes the display power setting (e.g. "on",
// "standby").
func (c *Client) SetDisplayPowerSettings(ctx context.Context, serial, setting string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	payload := map[string]any{"data": map[string]any{"setting": setting}}
	return c.put(ctx, c.displayURL("power-settings/"), playerParams(serial), payload, nil)
}

// GetDisplayStandbyTimeout returns the display standby timeout in seconds.
func (c *Client) GetDisplayStandbyTimeout(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.displayURL("standby-timeout/"), playerParams(serial))
}

// SetDisplayStandbyTimeout changes the display standby timeout in seconds.
func (c *Client) SetDisplayStandbyTimeout(ctx context.Context, serial string, seconds int) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	payload := map[string]any{"data": map[string]any{"seconds": seconds}}
	return c.put(ctx, c.displayURL("standby-timeout/"), playerParams(serial), payload, nil)
}

// GetDisplaySDConnection returns which side controls the SD card:
// "brightsign" or "display".
func (c *Client) GetDisplaySDConnection(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.displayURL("sd-connection/"), playerParams(serial))
}

// SetDisplaySDConnection passes SD card control to either the BrightSign
// player or the display.
func (c *Client) SetDisplaySDConnection(ctx context.Context, serial, connection string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	if connection != SDConnectionBrightSign && connection != SDConnectionDisplay {
		return nil, ErrInvalidSDConnection
	}
	payload := map[string]any{"data": map[string]any{"connection": connection}}
	return c.put(ctx, c.displayURL("sd-connection/"), playerParams(serial), payload, nil)
}

// GetDisplayVideoOutput returns the display video output setting (e.g.
// "hdmi1", "hdmi2").
func (c *Client) GetDisplayVideoOutput(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.displayURL("video-output/"), playerParams(serial))
}

// SetDisplayVideoOutput changes the display video output setting.
func (c *Client) SetDisplayVideoOutput(ctx context.Context, serial, output string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	payload := map[string]any{"data": map[string]any{"output": output}}
	return c.put(ctx, c.displayURL("video-output/"), playerParams(serial), payload, nil)
}

// GetDisplayVolume returns the display volume level (0-100).
func (c *Client) GetDisplayVolume(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.displayURL("volume/"), playerParams(serial))
}

// SetDisplayVolume changes the display volume level (0-100).
func (c *Client) SetDisplayVolume(ctx context.Context, serial string, volume int) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	payload := map[string]any{"data": map[string]any{"volume": volume}}
	return c.put(ctx, c.displayURL("volume/"), playerParams(serial), payload, nil)
}

// GetDisplayWhiteBalance returns the display white balance settings: red,
// green, and blue balance values.
func (c *Client) GetDisplayWhiteBalance(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.displayURL("white-balance/"), playerParams(serial))
}

// SetDisplayWhiteBalance changes the display white balance.
func (c *Client) SetDisplayWhiteBalance(ctx context.Context, serial string, red, green, blue int) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	payload := map[string]any{
		"data": map[string]any{
			"redbalance":   red,
			"greenbalance": green,
			"bluebalance":  blue,
		},
	}
	return c.put(ctx, c.displayURL("white-balance/"), playerParams(serial), payload, nil)
}
