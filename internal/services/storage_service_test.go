// internal/services/storage_service_test.go
package services

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyotsnadesigns/storefront-backend/internal/config"
)

var (
	jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	pngBytes  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}
	webpBytes = []byte{'R', 'I', 'F', 'F', 0x00, 0x00, 0x00, 0x00, 'W', 'E', 'B', 'P'}
)

func newLocalStorageService(t *testing.T) *StorageService {
	t.Helper()

	svc, err := NewStorageService(&config.Config{
		Server: config.ServerConfig{Host: "localhost", Port: "8080"},
	})
	require.NoError(t, err)
	return svc
}

// multipartFile builds the (file, header) pair a handler would pull out
// of a real upload request.
func multipartFile(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })

	return file, header
}

func TestSniffImageType(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
		ok   bool
	}{
		{"jpeg", jpegBytes, "image/jpeg", true},
		{"png", pngBytes, "image/png", true},
		{"webp", webpBytes, "image/webp", true},
		{"gif", []byte("GIF89a"), "", false},
		{"text", []byte("hello world"), "", false},
		{"empty", nil, "", false},
		{"riff non-webp", []byte("RIFF0000WAVE"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sniffImageType(tt.data)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUploadImageLocalFallback(t *testing.T) {
	svc := newLocalStorageService(t)
	file, header := multipartFile(t, "logo.png", pngBytes)

	result, err := svc.UploadImage(file, header, UploadOptions{Namespace: NamespaceLogos})
	require.NoError(t, err)

	assert.Equal(t, "image/png", result.MimeType)
	assert.Equal(t, int64(len(pngBytes)), result.Size)
	assert.True(t, strings.HasPrefix(result.Key, "logos/"), result.Key)
	assert.Contains(t, result.URL, "http://localhost:8080/uploads/logos/")
	assert.True(t, strings.HasSuffix(result.Key, ".png"), result.Key)
}

func TestUploadImageRejectsUnknownNamespace(t *testing.T) {
	svc := newLocalStorageService(t)
	file, header := multipartFile(t, "photo.jpg", jpegBytes)

	_, err := svc.UploadImage(file, header, UploadOptions{Namespace: "avatars"})
	assert.ErrorIs(t, err, ErrUnknownNamespace)
}

func TestUploadImageRejectsOversizedFile(t *testing.T) {
	svc := newLocalStorageService(t)

	big := append(append([]byte{}, jpegBytes...), bytes.Repeat([]byte{0}, 64)...)
	file, header := multipartFile(t, "big.jpg", big)

	_, err := svc.UploadImage(file, header, UploadOptions{Namespace: NamespaceProducts, MaxSize: 16})
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestUploadImageRejectsNonImageContent(t *testing.T) {
	svc := newLocalStorageService(t)

	// The extension lies; only the content matters.
	file, header := multipartFile(t, "script.png", []byte("#!/bin/sh\nrm -rf /\n"))

	_, err := svc.UploadImage(file, header, UploadOptions{Namespace: NamespaceProducts})
	assert.ErrorIs(t, err, ErrInvalidImageType)
}

func TestGenerateKeyIncludesFolder(t *testing.T) {
	svc := newLocalStorageService(t)

	key := svc.generateKey("saree.jpg", NamespaceProducts, "sarees")
	parts := strings.Split(key, "/")
	require.Len(t, parts, 3)
	assert.Equal(t, "products", parts[0])
	assert.Equal(t, "sarees", parts[1])
	assert.True(t, strings.HasSuffix(parts[2], ".jpg"))

	flat := svc.generateKey("saree.jpg", NamespaceProducts, "")
	assert.Len(t, strings.Split(flat, "/"), 2)
}

func TestGenerateKeysAreUnique(t *testing.T) {
	svc := newLocalStorageService(t)

	a := svc.generateKey("same.jpg", NamespaceProducts, "")
	b := svc.generateKey("same.jpg", NamespaceProducts, "")
	assert.NotEqual(t, a, b)
}

func TestPublicURLPrefersCloudFront(t *testing.T) {
	svc := &StorageService{config: &config.Config{
		AWS: config.AWSConfig{
			S3Bucket:      "storefront-assets",
			Region:        "ap-south-1",
			CloudFrontURL: "https://cdn.example.com",
		},
	}}

	assert.Equal(t, "https://cdn.example.com/products/a.jpg", svc.publicURL("products/a.jpg"))

	svc.config.AWS.CloudFrontURL = ""
	assert.Equal(t, "https://storefront-assets.s3.ap-south-1.amazonaws.com/products/a.jpg", svc.publicURL("products/a.jpg"))
}

func TestGeneratePresignedURLWithoutS3(t *testing.T) {
	svc := newLocalStorageService(t)

	_, err := svc.GeneratePresignedURL("products/a.jpg", 0)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestDeleteImageWithoutS3IsNoOp(t *testing.T) {
	svc := newLocalStorageService(t)

	assert.NoError(t, svc.DeleteImage("products/a.jpg"))
}
