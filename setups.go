package bsncloud

import (
	"context"
	"net/url"
	"strconv"
)

// GetSetups returns a page of setup packages stored in B-Deploy. When
// networkName is empty, the network from the resolved credentials is used.
func (c *Client) GetSetups(ctx context.Context, pageNumber, pageSize int, networkName string) (Result, error) {
	if networkName == "" {
		network, err := c.network()
		if err != nil {
			return nil, err
		}
		networkName = network
	}

	params := url.Values{}
	params.Set("page[pageNum]", strconv.Itoa(pageNumber))
	params.Set("page[pageSize]", strconv.Itoa(pageSize))
	params.Set("sort[packageName]", "1")
	params.Set("query[networkName]", networkName)

	return c.get(ctx, c.provisionURL+"/rest-setup/v3/setup/", params)
}

// UpdateSetup replaces a setup package in B-Deploy. The setup object is
// sent verbatim as an opaque payload, exactly as exported by the setup
// tooling.
func (c *Client) UpdateSetup(ctx context.Context, setupObject []byte, username string) (Result, error) {
	params := url.Values{}
	params.Set("username", username)

	return c.put(ctx, c.provisionURL+"/rest-setup/v3/setup", params, nil, setupObject)
}
