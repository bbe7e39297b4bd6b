package bsncloud

import (
	"context"
	"net/url"
	"strconv"
)

// ProvisioningRecord describes a B-Deploy device record. SerialNumber and
// Username are required on create; either SetupID or SetupName must
// reference a setup package. The network name is filled in from the
// resolved credentials.
type ProvisioningRecord struct {
	SerialNumber string
	Username     string
	Name         string
	Description  string
	SetupID      string
	SetupName    string
	// URL is the address the player downloads its presentation from during
	// the final provisioning step.
	URL      string
	Model    string
	Userdata string
}

func (r *ProvisioningRecord) payload(network string) map[string]any {
	payload := map[string]any{
		"username":    r.Username,
		"serial":      r.SerialNumber,
		"NetworkName": network,
	}
	if r.Name != "" {
		payload["name"] = r.Name
	}
	if r.Description != "" {
		payload["description"] = r.Description
	}
	if r.SetupID != "" {
		payload["setupId"] = r.SetupID
	}
	if r.SetupName != "" {
		payload["setupName"] = r.SetupName
	}
	if r.URL != "" {
		payload["url"] = r.URL
	}
	if r.Model != "" {
		payload["model"] = r.Model
	}
	if r.Userdata != "" {
		payload["userdata"] = r.Userdata
	}
	return payload
}

// GetProvisioningRecords returns one page of the provisioning records on
// the selected network. The endpoint is paginated; repeat the call with an
// increasing page number to fetch all records.
func (c *Client) GetProvisioningRecords(ctx context.Context, sortSerial bool, pageNumber, pageSize int) (Result, error) {
	network, err := c.network()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("query[NetworkName]", network)
	if sortSerial {
		params.Set("sort[SerialNumber]", "1")
	} else {
		params.Set("sort[SerialNumber]", "0")
	}
	params.Set("page[pageNum]", strconv.Itoa(pageNumber))
	params.Set("page[pageSize]", strconv.Itoa(pageSize))

	return c.get(ctx, c.provisionURL+"/rest-device/v2/device/", params)
}

// GetProvisioningRecord returns a single provisioning record by record ID
// or serial number. If both are provided, the record ID wins.
func (c *Client) GetProvisioningRecord(ctx context.Context, recordID, serialNumber string) (Result, error) {
	if recordID == "" && serialNumber == "" {
		return nil, ErrMissingRecordRef
	}

	params := url.Values{}
	if recordID != "" {
		params.Set("_id", recordID)
	} else {
		params.Set("serial", serialNumber)
	}

	return c.get(ctx, c.provisionURL+"/rest-device/v2/device/", params)
}

// CreateProvisioningRecord creates a new device record in B-Deploy.
func (c *Client) CreateProvisioningRecord(ctx context.Context, record *ProvisioningRecord) (Result, error) {
	if record.SerialNumber == "" {
		return nil, ErrEmptySerial
	}
	if record.SetupID == "" && record.SetupName == "" {
		return nil, ErrMissingSetupRef
	}

	network, err := c.network()
	if err != nil {
		return nil, err
	}

	return c.post(ctx, c.provisionURL+"/rest-device/v2/device/", nil, record.payload(network), nil)
}

// UpdateProvisioningRecord replaces an existing device record identified by
// its 24-digit hexadecimal record ID.
func (c *Client) UpdateProvisioningRecord(ctx context.Context, recordID string, record *ProvisioningRecord) (Result, error) {
	if recordID == "" {
		return nil, ErrMissingRecordRef
	}
	if record.SetupID == "" && record.SetupName == "" {
		return nil, ErrMissingSetupRef
	}

	network, err := c.network()
	if err != nil {
		return nil, err
	}

	payload := record.payload(network)
	payload["_id"] = recordID

	params := url.Values{}
	params.Set("_id", recordID)

	return c.put(ctx, c.provisionURL+"/rest-device/v2/device/", params, payload, nil)
}

// DeleteProvisioningRecord deletes a device record by record ID or serial
// number. If both are provided, the record ID wins.
func (c *Client) DeleteProvisioningRecord(ctx context.Context, recordID, serialNumber string) (Result, error) {
	if recordID == "" && serialNumber == "" {
		return nil, ErrMissingRecordRef
	}

	params := url.Values{}
	if recordID != "" {
		params.Set("_id", recordID)
	} else {
		params.Set("serial", serialNumber)
	}

	return c.del(ctx, c.provisionURL+"/rest-device/v2/device/", params, nil)
}

// DeleteProvisioningRecords deletes multiple device records by ID.
func (c *Client) DeleteProvisioningRecords(ctx context.Context, ids []string) (Result, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyRecordIDs
	}

	params := url.Values{"_ids": ids}

	return c.del(ctx, c.provisionURL+"/rest-device/v2/device/", params, nil)
}
