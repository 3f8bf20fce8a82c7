package videoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"video-uploader/domain/dto"
	"video-uploader/domain/model"
	"video-uploader/domain/repository"
	"video-uploader/infrastructure/logger"

	"github.com/google/go-querystring/query"
)

// Client talks to the remote video service's REST API. Authenticated calls
// attach the bearer token passed by the caller; the client holds no
// credential state of its own.
type Client struct {
	host       string
	httpClient *http.Client
}

// NewVideoBackend creates the backend client. host is the API base URL
// without a trailing slash, e.g. https://api.example.com/admin-api.
func NewVideoBackend(host string, timeout time.Duration) repository.IVideoBackend {
	return &Client{
		host: host,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListVideos fetches the user's assets and maps each record into the
// internal shape, preserving server order.
func (c *Client) ListVideos(ctx context.Context, token string) ([]model.VideoAsset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+"/v1/videos", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build list request: %v", model.ErrTransfer, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: list videos: %v", model.ErrTransfer, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: list videos: status %d", model.ErrTransfer, resp.StatusCode)
	}

	var records []dto.VideoRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode video list: %v", model.ErrTransfer, err)
	}

	assets := make([]model.VideoAsset, 0, len(records))
	for _, r := range records {
		status := model.VideoStatus(r.Status)
		if !status.Valid() {
			logger.GetLogger().WithField("status", r.Status).Warn("Unknown video status from server; treating as FAILED")
			status = model.StatusFailed
		}
		assets = append(assets, model.VideoAsset{ID: r.ID, Name: r.Name, Status: status})
	}
	return assets, nil
}

// CreateUploadURL requests a write capability for a pending upload. The
// capability is tied to the content length and media subtype in q.
func (c *Client) CreateUploadURL(ctx context.Context, token string, q dto.UploadURLQuery) (string, error) {
	values, err := query.Values(q)
	if err != nil {
		return "", fmt.Errorf("%w: encode capability query: %v", model.ErrCapability, err)
	}

	url := c.host + "/v1/uploads/presigned-url?" + values.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build capability request: %v", model.ErrCapability, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request upload capability: %v", model.ErrCapability, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: upload capability: status %d", model.ErrCapability, resp.StatusCode)
	}

	var out dto.UploadURLResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode upload capability: %v", model.ErrCapability, err)
	}
	if out.URL == "" {
		return "", fmt.Errorf("%w: server returned no upload URL", model.ErrCapability)
	}
	return out.URL, nil
}

// CreateDownloadURL requests a read capability for a video's packaged
// artifact.
func (c *Client) CreateDownloadURL(ctx context.Context, token string, videoID string) (string, error) {
	url := fmt.Sprintf("%s/v1/videos/%s/presigned/zip", c.host, videoID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build capability request: %v", model.ErrCapability, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request download capability: %v", model.ErrCapability, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: download capability: status %d", model.ErrCapability, resp.StatusCode)
	}

	var out dto.DownloadURLResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode download capability: %v", model.ErrCapability, err)
	}
	if out.PresignedURL == "" {
		return "", fmt.Errorf("%w: server returned no download URL", model.ErrCapability)
	}
	return out.PresignedURL, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, reqLogin model.ReqLogin) (string, error) {
	body, err := json.Marshal(reqLogin)
	if err != nil {
		return "", fmt.Errorf("%w: encode login request: %v", model.ErrTransfer, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/v1/users/login", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build login request: %v", model.ErrTransfer, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: login: %v", model.ErrTransfer, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: login rejected: status %d", model.ErrUnauthenticated, resp.StatusCode)
	}

	var out dto.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode login response: %v", model.ErrTransfer, err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("%w: server returned no token", model.ErrUnauthenticated)
	}
	return out.Token, nil
}

// Signup creates an account. The user logs in afterwards; no token is
// returned here.
func (c *Client) Signup(ctx context.Context, reqRegister model.ReqRegister) error {
	body, err := json.Marshal(reqRegister)
	if err != nil {
		return fmt.Errorf("%w: encode signup request: %v", model.ErrTransfer, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/v1/users/signup", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build signup request: %v", model.ErrTransfer, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: signup: %v", model.ErrTransfer, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: signup rejected: status %d", model.ErrTransfer, resp.StatusCode)
	}
	return nil
}
