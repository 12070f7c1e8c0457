package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/task-classifier/internal/domain"
)

// postJSON sends in as JSON to path under the base URL and decodes a 200
// response into out. Non-200 answers go through translateStatus; transport
// failures and breaker rejections wrap domain.ErrModelUnavailable.
func (c *ModelServerClient) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.client.BaseURL()+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(ctx, req)
	if resp != nil {
		defer func() {
			if cerr := resp.Body.Close(); cerr != nil {
				c.logger.WarnContext(ctx, "closing model server response", slog.Any("error", cerr))
			}
		}()
	}

	switch {
	case resp != nil && resp.StatusCode != http.StatusOK:
		// Also the case when retries ran out on a retryable status.
		c.logger.WarnContext(ctx, "model server answered with an error",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return translateStatus(resp)
	case err != nil:
		c.logger.WarnContext(ctx, "model server request failed",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return fmt.Errorf("POST %s: %w: %w", path, domain.ErrModelUnavailable, err)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w: %w", path, domain.ErrModelInference, err)
	}
	return nil
}
