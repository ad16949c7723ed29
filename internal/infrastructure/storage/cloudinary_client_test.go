package storage

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressedDeliveryURL(t *testing.T) {
	assert.Equal(t,
		"https://res.cloudinary.com/somba/image/upload/f_auto,q_auto/v1/products/frigo.jpg",
		CompressedDeliveryURL("https://res.cloudinary.com/somba/image/upload/v1/products/frigo.jpg"))

	// Already transformed URLs are left alone.
	assert.Equal(t,
		"https://res.cloudinary.com/somba/image/upload/f_auto,q_auto/v1/products/frigo.jpg",
		CompressedDeliveryURL("https://res.cloudinary.com/somba/image/upload/f_auto,q_auto/v1/products/frigo.jpg"))

	// URLs without an upload segment are left alone.
	assert.Equal(t,
		"https://example.com/frigo.jpg",
		CompressedDeliveryURL("https://example.com/frigo.jpg"))
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestCloudinaryUploadRewritesDeliveryURL(t *testing.T) {
	client := NewCloudinaryClient("somba", "products-unsigned", "products")
	client.httpClient = &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "https://api.cloudinary.com/v1_1/somba/image/upload", req.URL.String())
		assert.Contains(t, req.Header.Get("Content-Type"), "multipart/form-data")

		if err := req.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("failed to parse upload form: %v", err)
		}
		assert.Equal(t, "products-unsigned", req.FormValue("upload_preset"))
		assert.Equal(t, "products", req.FormValue("tags"))

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"secure_url": "https://res.cloudinary.com/somba/image/upload/v1/abc.jpg"}`)),
			Header:     make(http.Header),
		}, nil
	})}

	url, err := client.UploadImage(context.Background(), strings.NewReader("fake image bytes"), "image/jpeg", "abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/somba/image/upload/f_auto,q_auto/v1/abc.jpg", url)
}

func TestCloudinaryUploadSurfacesAPIError(t *testing.T) {
	client := NewCloudinaryClient("somba", "products-unsigned", "")
	client.httpClient = &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadRequest,
			Body:       io.NopCloser(strings.NewReader(`{"error": {"message": "Upload preset not found"}}`)),
			Header:     make(http.Header),
		}, nil
	})}

	_, err := client.UploadImage(context.Background(), strings.NewReader("fake image bytes"), "image/jpeg", "abc.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Upload preset not found")
}
