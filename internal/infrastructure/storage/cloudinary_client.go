package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"sombateka/internal/domain/service"
)

// CloudinaryClient uploads images through Cloudinary's unsigned upload
// endpoint, using a fixed upload preset and tag. Delivery URLs are
// rewritten to the f_auto,q_auto form so the CDN serves a compressed
// format.
type CloudinaryClient struct {
	cloudName    string
	uploadPreset string
	tag          string
	httpClient   *http.Client
}

func NewCloudinaryClient(cloudName, uploadPreset, tag string) *CloudinaryClient {
	return &CloudinaryClient{
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		tag:          tag,
		httpClient:   http.DefaultClient,
	}
}

func (c *CloudinaryClient) UploadImage(ctx context.Context, file io.Reader, contentType, filename string) (string, error) {
	var body strings.Builder
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %v", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read upload: %v", err)
	}

	if err := writer.WriteField("upload_preset", c.uploadPreset); err != nil {
		return "", fmt.Errorf("failed to build upload form: %v", err)
	}
	if c.tag != "" {
		if err := writer.WriteField("tags", c.tag); err != nil {
			return "", fmt.Errorf("failed to build upload form: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload form: %v", err)
	}

	url := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body.String()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("cloudinary upload failed: %s", string(respBody))
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to parse cloudinary response: %v", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary response missing secure_url")
	}

	return CompressedDeliveryURL(result.SecureURL), nil
}

// DeleteImage is a no-op: unsigned uploads cannot be destroyed without
// an API secret, and stale assets are reclaimed from the Cloudinary
// console.
func (c *CloudinaryClient) DeleteImage(ctx context.Context, imageURL string) error {
	return nil
}

func (c *CloudinaryClient) Close() error {
	return nil
}

// CompressedDeliveryURL inserts the f_auto,q_auto transformation into
// a Cloudinary delivery URL. URLs without the /upload/ segment are
// returned unchanged.
func CompressedDeliveryURL(secureURL string) string {
	const marker = "/upload/"
	idx := strings.Index(secureURL, marker)
	if idx < 0 {
		return secureURL
	}
	if strings.Contains(secureURL, "/upload/f_auto,q_auto/") {
		return secureURL
	}
	return secureURL[:idx+len(marker)] + "f_auto,q_auto/" + secureURL[idx+len(marker):]
}

var _ service.MediaUploadService = (*CloudinaryClient)(nil)
