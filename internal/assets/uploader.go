// Package assets uploads token logos to the external asset host.
package assets

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/core-coin/fontis/pkg/logger"
)

// Uploader pushes files to the asset host's ingest endpoint and returns
// their public CDN URL. The host serves uploads under the CDN base by the
// same file name.
type Uploader struct {
	logger *logger.Logger

	uploadURL string
	cdnURL    string
	apiKey    string
	client    *http.Client
}

func NewUploader(uploadURL, cdnURL, apiKey string, logger *logger.Logger) *Uploader {
	return &Uploader{
		logger:    logger,
		uploadURL: strings.TrimRight(uploadURL, "/"),
		cdnURL:    strings.TrimRight(cdnURL, "/"),
		apiKey:    apiKey,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (u *Uploader) Upload(fileName string, data []byte) (string, error) {
	url := fmt.Sprintf("%s/%s", u.uploadURL, fileName)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+u.apiKey)

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("asset host rejected upload: %s", strings.TrimSpace(string(body)))
	}

	u.logger.Debug("Uploaded asset ", "file ", fileName)
	return fmt.Sprintf("%s/%s", u.cdnURL, fileName), nil
}
