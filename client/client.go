// The client package is a client implementation of the gxpfrud admin
// HTTP API. It spares callers the raw network calls when reading the
// inventory record or triggering a rescan.
package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/openbmc-tools/gxpfrud/frudev"
	"github.com/openbmc-tools/gxpfrud/httputil"
)

// Client implements the admin HTTP API. Check the corresponding
// methods.
type Client struct {
	// Scheme defines the protocol scheme. This is either http or https.
	Scheme string

	// Host is used to connect to the daemon over network.
	Host string

	// Port is used to connect to the daemon over network.
	Port uint16
}

// New creates a new configured client to interact with the daemon over
// its admin HTTP API.
func New(scheme, host string, port uint16) (*Client, error) {
	client := &Client{
		Scheme: scheme,
		Host:   host,
		Port:   port,
	}

	return client, nil
}

// Inventory fetches the currently published inventory record.
func (c *Client) Inventory() (frudev.InventoryRecord, error) {
	var record frudev.InventoryRecord

	resp, err := http.Get(c.endpoint("/fru"))
	if err != nil {
		return record, err
	}
	defer resp.Body.Close()

	if resp.StatusCode > 399 {
		return record, fmt.Errorf("invalid status code '%d'", resp.StatusCode)
	}

	err = json.NewDecoder(resp.Body).Decode(&record)
	if err != nil {
		return record, err
	}
	return record, nil
}

// Rescan triggers a rescan. The call returns once the daemon replaced
// the published object.
func (c *Client) Rescan() error {
	resp, err := httputil.Put(c.endpoint("/fru/rescan"), "text/plain", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode > 399 {
		return fmt.Errorf("invalid status code '%d'", resp.StatusCode)
	}
	return nil
}

func (c *Client) endpoint(path string) string {
	return fmt.Sprintf("%s://%s:%d%s", c.Scheme, c.Host, c.Port, path)
}
