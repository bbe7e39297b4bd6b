package bsncloud

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names for BSN.cloud credentials. The lowercase
// variants are legacy names accepted only when loaded from a .env file.
const (
	envClientID = "BSN_CLIENT_ID"
	envSecret   = "BSN_SECRET"
	envNetwork  = "BSN_NETWORK"

	legacyClientID = "bsnClientID"
	legacySecret   = "bsnSecret"
	legacyNetwork  = "bsnNetwork"
)

// Credentials is the client ID / secret / network name triple used for the
// BSN.cloud authentication handshake. Credentials are resolved once per
// authentication attempt and never persisted by the library.
type Credentials struct {
	ClientID string
	Secret   string
	Network  string
}

// Configure sets BSN.cloud credentials programmatically.
//
// This is an alternative to environment variables or a .env file, and takes
// priority over both. The credentials remain set for the lifetime of the
// client's session store; calling Configure again overwrites them.
func (c *Client) Configure(clientID, secret, network string) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	c.store.creds = &Credentials{ClientID: clientID, Secret: secret, Network: network}
}

// resolve loads credentials from the highest-priority available source:
//
//  1. Credentials set explicitly via Configure.
//  2. The BSN_CLIENT_ID, BSN_SECRET, and BSN_NETWORK environment variables,
//     all three required together.
//  3. A .env file, loaded with override semantics, accepting both the
//     canonical and the legacy variable name for each field.
//
// The first matching tier wins; values are never merged across tiers.
// Callers must hold the store mutex.
func (s *SessionStore) resolve() (Credentials, error) {
	if s.creds != nil {
		return *s.creds, nil
	}

	clientID := os.Getenv(envClientID)
	secret := os.Getenv(envSecret)
	network := os.Getenv(envNetwork)
	if clientID != "" && secret != "" && network != "" {
		return Credentials{ClientID: clientID, Secret: secret, Network: network}, nil
	}

	// A missing .env file is not an error; resolution simply falls through
	// to ErrCredentialsNotFound below.
	_ = godotenv.Overload(s.envFiles...)

	clientID = firstNonEmpty(os.Getenv(envClientID), os.Getenv(legacyClientID))
	secret = firstNonEmpty(os.Getenv(envSecret), os.Getenv(legacySecret))
	network = firstNonEmpty(os.Getenv(envNetwork), os.Getenv(legacyNetwork))

	if clientID == "" || secret == "" || network == "" {
		return Credentials{}, ErrCredentialsNotFound
	}
	return Credentials{ClientID: clientID, Secret: secret, Network: network}, nil
}

// network resolves credentials and returns the configured network name.
// Some provisioning endpoints need the network name as a payload field or
// query parameter independent of the session handshake.
func (c *Client) network() (string, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	creds, err := c.store.resolve()
	if err != nil {
		return "", err
	}
	return creds.Network, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
