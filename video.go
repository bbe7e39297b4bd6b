package bsncloud

import (
	"context"
	"strconv"
)

// videoOutputURL builds the Remote DWS URL for a video output. Connector is
// currently always "hdmi"; device is 0 on single-output players, 0-3 on
// XC4055, 0-1 on XC2055/XT2145.
func (c *Client) videoOutputURL(connector string, device int) string {
	if connector == "" {
		connector = "hdmi"
	}
	return c.dwsURL + "/video/" + connector + "/output/" + strconv.Itoa(device) + "/"
}

// GetVideoMode retrieves the currently active video mode on the player.
func (c *Client) GetVideoMode(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/video-mode/", playerParams(serial))
}

// GetVideoOutput retrieves comprehensive information about a video output:
// EDID, available modes, active and configured modes, power status, and
// audio information.
func (c *Client) GetVideoOutput(ctx context.Context, serial, connector string, device int) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.videoOutputURL(connector, device), playerParams(serial))
}

// GetVideoEDID returns the EDID string reported by the connected monitor.
func (c *Client) GetVideoEDID(ctx context.Context, serial, connector string, device int) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.videoOutputURL(connector, device)+"edid/", playerParams(serial))
}

// GetVideoPowerSave retrieves the power status of the connected monitor as
// reported over EDID.
func (c *Client) GetVideoPowerSave(ctx context.Context, serial, connector string, device int) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.videoOutputURL(connector, device)+"power-save/", playerParams(serial))
}

// SetVideoPowerSave enables or disables power save mode on the connected
// monitor.
func (c *Client) SetVideoPowerSave(ctx context.Context, serial string, enabled bool, connector string, device int) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}

	payload := map[string]any{"data": map[string]any{"enabled": enabled}}

	return c.put(ctx, c.videoOutputURL(connector, device)+"power-save/", playerParams(serial), payload, nil)
}

// GetVideoModes retrieves all video modes available on the output.
func (c *Client) GetVideoModes(ctx context.Context, serial, connector string, device int) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.videoOutputURL(connector, device)+"modes/", playerParams(serial))
}

// Mode types accepted by GetVideoCurrentMode.
const (
	VideoModeBest       = "best"
	VideoModeActive     = "active"
	VideoModeConfigured = "configured"
)

// GetVideoCurrentMode retrieves the current video mode on the output, or
// the best, active, or configured mode when modeType is set. Pass an empty
// modeType for the current mode.
func (c *Client) GetVideoCurrentMode(ctx context.Context, serial, modeType, connector string, device int) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}

	params := playerParams(serial)
	switch modeType {
	case "":
	case VideoModeBest:
		params.Set("best", "1")
	case VideoModeActive:
		params.Set("active", "1")
	case VideoModeConfigured:
		params.Set("configured", "1")
	default:
		return nil, ErrInvalidModeType
	}

	return c.get(ctx, c.videoOutputURL(connector, device)+"mode/", params)
}

// VideoModeConfig configures SetVideoMode. ModeName is required, e.g.
// "1920x1080x60p" or "3840x2160x30p".
type VideoModeConfig struct {
	ModeName string
	// ColorDepth is "8bit", "10bit", or "12bit"; empty keeps the current
	// setting.
	ColorDepth string
	// ColorSpace is "rgb", "yuv420", or "yuv422"; empty keeps the current
	// setting.
	ColorSpace string
	// Overscan toggles the overscan setting when non-nil.
	Overscan *bool
}

// SetVideoMode changes the video mode on the output. This typically causes
// the player to reboot.
func (c *Client) SetVideoMode(ctx context.Context, serial string, cfg VideoModeConfig, connector string, device int) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}

	mode := map[string]any{"modename": cfg.ModeName}
	if cfg.ColorDepth != "" {
		mode["colordepth"] = cfg.ColorDepth
	}
	if cfg.ColorSpace != "" {
		mode["colorspace"] = cfg.ColorSpace
	}
	if cfg.Overscan != nil {
		mode["overscan"] = *cfg.Overscan
	}

	payload := map[string]any{"data": map[string]any{"name": mode}}

	return c.put(ctx, c.videoOutputURL(connector, device)+"mode/", playerParams(serial), payload, nil)
}
