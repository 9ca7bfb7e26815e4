package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	// DefaultUploadURL is the ImageKit upload endpoint
	DefaultUploadURL = "https://upload.imagekit.io/api/v1/files/upload"

	maxResponseBytes = 64 << 10
)

// ImageKitArchiver uploads photos to ImageKit and returns their public URL
type ImageKitArchiver struct {
	httpClient *http.Client
	privateKey string
	uploadURL  string
}

// NewImageKitArchiver creates an archiver. httpClient may be nil.
func NewImageKitArchiver(privateKey, uploadURL string, httpClient *http.Client) (*ImageKitArchiver, error) {
	if privateKey == "" {
		return nil, errors.New("imagekit private key is required")
	}
	if uploadURL == "" {
		uploadURL = DefaultUploadURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &ImageKitArchiver{
		httpClient: httpClient,
		privateKey: privateKey,
		uploadURL:  uploadURL,
	}, nil
}

// Store uploads data as fileName inside folder. Names are kept as given.
func (a *ImageKitArchiver) Store(ctx context.Context, data []byte, fileName, folder string) (string, error) {
	body, contentType, err := buildUploadForm(data, fileName, folder)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.uploadURL, body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.SetBasicAuth(a.privateKey, "")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("imagekit upload failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read imagekit response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("imagekit returned %d: %s", resp.StatusCode, gjson.GetBytes(respBody, "message").String())
	}

	url := gjson.GetBytes(respBody, "url").String()
	if strings.TrimSpace(url) == "" {
		return "", errors.New("imagekit response has no url")
	}
	return url, nil
}

func buildUploadForm(data []byte, fileName, folder string) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("failed to write upload form: %w", err)
	}

	fields := map[string]string{
		"fileName":          fileName,
		"useUniqueFileName": "false",
	}
	if folder != "" {
		fields["folder"] = folder
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("failed to write upload form: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close upload form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
