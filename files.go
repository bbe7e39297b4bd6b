package bsncloud

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// Extensions uploaded as plain text rather than base64 data URLs, on top of
// anything with a text/* MIME type.
var textExtensions = map[string]bool{
	"brs":  true,
	"json": true,
	"js":   true,
	"xml":  true,
	"rtf":  true,
}

// GetDeviceFiles retrieves information about files on one of the player's
// storage devices. With a path to a directory, raw lists its raw contents;
// with a path to a file, contents returns the file contents. The two
// options are mutually exclusive.
func (c *Client) GetDeviceFiles(ctx context.Context, serial, storage, path string, raw, contents bool) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	if err := validateStorage(storage); err != nil {
		return nil, err
	}
	if raw && contents {
		return nil, ErrRawAndContents
	}

	url := c.dwsURL + "/files/" + storage + "/"
	if path != "" {
		url += strings.TrimLeft(path, "/")
	}

	params := playerParams(serial)
	if raw {
		params.Set("raw", "true")
	}
	if contents {
		params.Set("contents", "true")
	}

	return c.get(ctx, url, params)
}

// UploadOptions refine UploadDeviceFile.
type UploadOptions struct {
	// DestPath is the destination directory on the player's storage; empty
	// uploads to the root.
	DestPath string
	// DestFilename overrides the filename used on the player; empty keeps
	// the local filename.
	DestFilename string
	// FileType is the MIME type; empty auto-detects from the extension.
	FileType string
}

// UploadDeviceFile uploads a local file to the player's storage. Text files
// are sent as plain text; binary files are base64-encoded as data URLs, as
// the Remote DWS file endpoint expects.
func (c *Client) UploadDeviceFile(ctx context.Context, serial, localPath, storage string, opts *UploadOptions) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	if err := validateStorage(storage); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &UploadOptions{}
	}

	fileName := opts.DestFilename
	if fileName == "" {
		fileName = filepath.Base(localPath)
	}

	ext := strings.TrimPrefix(filepath.Ext(localPath), ".")
	fileType := opts.FileType
	if fileType == "" {
		fileType = mime.TypeByExtension(filepath.Ext(localPath))
		if fileType == "" {
			fileType = "application/octet-stream"
		}
	}

	data, err := os.ReadFile(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload file: %w", err)
	}

	var fileContents string
	if strings.HasPrefix(fileType, "text/") || textExtensions[ext] {
		fileContents = string(data)
	} else {
		fileContents = "data:" + fileType + ";base64," + base64.StdEncoding.EncodeToString(data)
	}

	url := c.dwsURL + "/files/" + storage + "/"
	if opts.DestPath != "" {
		url += strings.TrimLeft(opts.DestPath, "/") + "/"
	}

	uploadPath := "/" + storage
	if opts.DestPath != "" {
		uploadPath += "/" + strings.TrimLeft(opts.DestPath, "/")
	}

	payload := map[string]any{
		"data": map[string]any{
			"fileUploadPath": uploadPath,
			"files": []map[string]any{
				{
					"fileName":     fileName,
					"fileContents": fileContents,
					"fileType":     fileType,
				},
			},
		},
	}

	return c.put(ctx, url, playerParams(serial), payload, nil)
}

// CreateDeviceDirectory creates a directory on the player's storage.
func (c *Client) CreateDeviceDirectory(ctx context.Context, serial, dirPath, storage string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	if err := validateStorage(storage); err != nil {
		return nil, err
	}

	url := c.dwsURL + "/files/" + storage + "/" + strings.TrimLeft(dirPath, "/") + "/"

	return c.put(ctx, url, playerParams(serial), nil, nil)
}

// RenameDeviceFile renames a file on the player's storage. newName must be
// a bare filename, not a path.
func (c *Client) RenameDeviceFile(ctx context.Context, serial, path, newName, storage string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	if err := validateStorage(storage); err != nil {
		return nil, err
	}
	if strings.ContainsAny(newName, `/\`) {
		return nil, ErrNameIsPath
	}

	url := c.dwsURL + "/files/" + storage + "/" + strings.TrimLeft(path, "/") + "/"
	payload := map[string]any{"data": map[string]any{"name": newName}}

	return c.post(ctx, url, playerParams(serial), payload, nil)
}

// DeleteDeviceFile deletes a file from the player's storage.
func (c *Client) DeleteDeviceFile(ctx context.Context, serial, path, storage string) (Result, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	if err := validateStorage(storage); err != nil {
		return nil, err
	}

	url := c.dwsURL + "/files/" + storage + "/" + strings.TrimLeft(path, "/") + "/"

	return c.del(ctx, url, playerParams(serial), nil)
}
