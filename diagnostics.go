package bsncloud

import "context"

// GetDiagnostics runs network diagnostics on the player covering ethernet,
// wifi, modem, and internet connectivity tests.
func (c *Client) GetDiagnostics(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/diagnostics/", playerParams(serial))
}

// DNSLookup tests DNS name resolution on the player for the given domain.
func (c *Client) DNSLookup(ctx context.Context, serial, domain string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/diagnostics/dns-lookup/"+domain+"/", playerParams(serial))
}

// Ping makes the player ping an IP or DNS address on its local network.
// This call can take over ten seconds to return.
func (c *Client) Ping(ctx context.Context, serial, address string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/diagnostics/ping/"+address+"/", playerParams(serial))
}

// TraceRoute performs a traceroute from the player to an IP or DNS address.
// This call can take several minutes to return; see WithTimeout.
func (c *Client) TraceRoute(ctx context.Context, serial, address string, resolveAddress bool) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}

	params := playerParams(serial)
	params.Set("resolveAddress", boolString(resolveAddress))

	return c.get(ctx, c.dwsURL+"/diagnostics/trace-route/"+address+"/", params)
}

// GetNetworkConfig retrieves configuration for one of the player's network
// interfaces ("eth0", "wlan0", or "modem").
func (c *Client) GetNetworkConfig(ctx context.Context, serial, iface string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/diagnostics/network-configuration/"+iface+"/", playerParams(serial))
}

// SetNetworkConfig applies a test network configuration to the given
// interface. Fetch the current configuration first with GetNetworkConfig;
// the text and output fields of the GET response must not be sent back.
func (c *Client) SetNetworkConfig(ctx context.Context, serial, iface string, config map[string]any) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}

	payload := map[string]any{"data": config}

	return c.put(ctx, c.dwsURL+"/diagnostics/network-configuration/"+iface+"/", playerParams(serial), payload, nil)
}

// GetNetworkNeighborhood retrieves information about other BrightSign
// players on the same network.
func (c *Client) GetNetworkNeighborhood(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/diagnostics/network-neighborhood/", playerParams(serial))
}

// GetPacketCaptureStatus reports whether a packet capture is running on the
// player. Requires the legacy DWS to be working.
func (c *Client) GetPacketCaptureStatus(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/diagnostics/packet-capture/", playerParams(serial))
}

// PacketCaptureOptions configure StartPacketCapture. Zero values fall back
// to the player defaults: capture.pcap on eth0 for 300 seconds, unlimited
// packets and packet size, no filter.
type PacketCaptureOptions struct {
	Filename  string
	Interface string
	// Duration is the capture duration in seconds.
	Duration int
	// MaxPackets limits the number of captured packets; 0 is unlimited.
	MaxPackets int
	// Snaplen limits the captured size per packet; 0 captures entire
	// packets.
	Snaplen int
	// Filter is a pcap-syntax filter expression.
	Filter string
}

// StartPacketCapture starts a packet capture on the player.
func (c *Client) StartPacketCapture(ctx context.Context, serial string, opts *PacketCaptureOptions) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	if opts == nil {
		opts = &PacketCaptureOptions{}
	}

	filename := opts.Filename
	if filename == "" {
		filename = "capture.pcap"
	}
	iface := opts.Interface
	if iface == "" {
		iface = "eth0"
	}
	duration := opts.Duration
	if duration == 0 {
		duration = 300
	}

	payload := map[string]any{
		"data": map[string]any{
			"filename":   filename,
			"interface":  iface,
			"duration":   duration,
			"maxPackets": opts.MaxPackets,
			"snaplen":    opts.Snaplen,
			"filter":     opts.Filter,
		},
	}

	return c.post(ctx, c.dwsURL+"/diagnostics/packet-capture/", playerParams(serial), payload, nil)
}

// StopPacketCapture stops a running packet capture on the player.
func (c *Client) StopPacketCapture(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.del(ctx, c.dwsURL+"/diagnostics/packet-capture/", playerParams(serial), nil)
}

// GetTelnetStatus retrieves the telnet configuration of the player.
// Available in BOS 9.0.110 and above.
func (c *Client) GetTelnetStatus(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/diagnostics/telnet/", playerParams(serial))
}

// SetTelnetConfig configures telnet on the player. An empty password leaves
// the password unchanged. Available in BOS 9.0.110 and above.
func (c *Client) SetTelnetConfig(ctx context.Context, serial string, enabled bool, portNumber int, password string, reboot bool) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	if portNumber == 0 {
		portNumber = 23
	}

	data := map[string]any{
		"enabled":    enabled,
		"portnumber": portNumber,
		"reboot":     reboot,
	}
	if password != "" {
		data["password"] = password
	}

	return c.put(ctx, c.dwsURL+"/diagnostics/telnet/", playerParams(serial), map[string]any{"data": data}, nil)
}

// GetSSHStatus retrieves the SSH configuration of the player. Available in
// BOS 9.0.110 and above.
func (c *Client) GetSSHStatus(ctx context.Context, serial string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	return c.get(ctx, c.dwsURL+"/diagnostics/ssh/", playerParams(serial))
}

// SSHConfig configures SetSSHConfig. Password and ObfuscatedPassword are
// mutually exclusive.
type SSHConfig struct {
	Enabled bool
	// PortNumber defaults to 22 when zero.
	PortNumber int
	Password   string
	// ObfuscatedPassword requires an obfuscation key issued by BrightSign
	// support.
	ObfuscatedPassword string
	// Reboot applies the configuration immediately by rebooting the player.
	Reboot bool
}

// SetSSHConfig configures SSH on the player. Available in BOS 9.0.110 and
// above.
func (c *Client) SetSSHConfig(ctx context.Context, serial string, cfg SSHConfig) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	if cfg.Password != "" && cfg.ObfuscatedPassword != "" {
		return nil, ErrBothPasswords
	}

	port := cfg.PortNumber
	if port == 0 {
		port = 22
	}

	data := map[string]any{
		"enabled":    cfg.Enabled,
		"portnumber": port,
		"reboot":     cfg.Reboot,
	}
	if cfg.Password != "" {
		data["password"] = cfg.Password
	} else if cfg.ObfuscatedPassword != "" {
		data["obfuscatedPassword"] = cfg.ObfuscatedPassword
	}

	return c.put(ctx, c.dwsURL+"/diagnostics/ssh/", playerParams(serial), map[string]any{"data": data}, nil)
}
