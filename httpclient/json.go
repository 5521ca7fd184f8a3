package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetJSON performs a GET against url and decodes the response body into v.
// Any non-2xx status or transport failure is returned unchanged from the
// underlying client; no retries happen at this layer.
func GetJSON(ctx context.Context, c Client, url string, v any) error {
	resp, err := c.Get(ctx, &Request{URL: url})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return fmt.Errorf("decode JSON from %s: %w", url, err)
	}
	return nil
}
