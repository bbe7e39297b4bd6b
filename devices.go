package bsncloud

import (
	"context"
	"fmt"
	"net/url"
)

// GetDevices returns the devices registered on the selected network,
// sorted by name. An optional description substring narrows the listing.
func (c *Client) GetDevices(ctx context.Context, description string) (Result, error) {
	params := url.Values{}
	if description != "" {
		params.Set("filter", fmt.Sprintf("[Description] IS '*%s*'", description))
	}
	params.Set("sort", "[Settings].[Name] ASC")
	params.Set("pageSize", "100")

	return c.get(ctx, c.baseURL+"/Devices/", params)
}
