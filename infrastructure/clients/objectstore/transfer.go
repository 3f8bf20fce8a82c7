package objectstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"video-uploader/domain/model"
	"video-uploader/domain/repository"
)

// Transfer moves raw bytes to and from capability URLs. No Authorization
// header is ever attached; the presigned URL is the authorization, and it is
// single-use.
type Transfer struct {
	httpClient *http.Client
}

func NewTransfer(timeout time.Duration) repository.IObjectStore {
	return &Transfer{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Put streams the payload to the write capability URL with the declared
// content type and exact length. Partial transfers are not resumed; the
// caller must restart from a fresh capability.
func (t *Transfer) Put(ctx context.Context, url string, contentType string, body io.Reader, size int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return fmt.Errorf("%w: build transfer request: %v", model.ErrTransfer, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = size

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: put object: %v", model.ErrTransfer, err)
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: put object: status %d", model.ErrTransfer, resp.StatusCode)
	}
	return nil
}

// Fetch downloads the artifact behind a read capability URL. An empty
// payload is treated as a failed transfer.
func (t *Transfer) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build fetch request: %v", model.ErrTransfer, err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch object: %v", model.ErrTransfer, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: fetch object: status %d", model.ErrTransfer, resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read object body: %v", model.ErrTransfer, err)
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: server returned an empty artifact", model.ErrTransfer)
	}
	return payload, nil
}
