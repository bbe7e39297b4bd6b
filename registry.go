package bsncloud

import "context"

// GetPropertyLock returns the property lock setting and registry override
// status for the player: whether the settings handler is enabled and
// whether registry settings take priority.
func (c *Client) GetPropertyLock(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/advanced/property-lock/", playerParams(serial))
}

// SetPropertyLock overrides the property lock setting on the player. This
// typically causes the player to reboot.
func (c *Client) SetPropertyLock(ctx context.Context, serial string, forceRegistrySettings, registryEnableSettings bool) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}

	payload := map[string]any{
		"data": map[string]any{
			"forceRegistrySettings":  forceRegistrySettings,
			"registryEnableSettings": registryEnableSettings,
		},
	}

	return c.put(ctx, c.dwsURL+"/advanced/property-lock/", playerParams(serial), payload, nil)
}

// GetRegistry returns the complete player registry dump with all sections
// and keys.
func (c *Client) GetRegistry(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/registry/", playerParams(serial))
}

// GetRegistryKey returns one registry key value from the given section.
func (c *Client) GetRegistryKey(ctx context.Context, serial, section, key string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/registry/"+section+"/"+key+"/", playerParams(serial))
}

// SetRegistryKey sets a value in the given registry section. Applications
// rely on registry values; careless writes can leave the player in an
// unstable state.
func (c *Client) SetRegistryKey(ctx context.Context, serial, section, key string, value any) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}

	payload := map[string]any{"data": map[string]any{"value": value}}

	return c.put(ctx, c.dwsURL+"/registry/"+section+"/"+key+"/", playerParams(serial), payload, nil)
}

// DeleteRegistryKey deletes a key from the given registry section, or the
// entire section when key is empty.
func (c *Client) DeleteRegistryKey(ctx context.Context, serial, section, key string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}

	url := c.dwsURL + "/registry/" + section + "/"
	if key != "" {
		url += key + "/"
	}

	return c.del(ctx, url, playerParams(serial), nil)
}

// FlushRegistry flushes the registry to disk immediately rather than
// waiting for the normal flush cycle. Available as of BOS 9.0.110 and
// 8.5.47; earlier versions need a reboot to flush.
func (c *Client) FlushRegistry(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.put(ctx, c.dwsURL+"/registry/flush/", playerParams(serial), nil, nil)
}

// GetRecoveryURL retrieves the recovery URL stored in the player registry.
func (c *Client) GetRecoveryURL(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/registry/recovery-url/", playerParams(serial))
}

// SetRecoveryURL writes a new recovery URL to the player registry.
func (c *Client) SetRecoveryURL(ctx context.Context, serial, recoveryURL string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}

	payload := map[string]any{"data": map[string]any{"url": recoveryURL}}

	return c.put(ctx, c.dwsURL+"/registry/recovery-url/", playerParams(serial), payload, nil)
}
