package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"newsdesk-admin/models"
)

// ImageStore uploads raw image bytes to the asset host and returns the
// permanent URL. One network call per invocation, no retries and no
// idempotency: uploading the same bytes twice may yield two URLs.
type ImageStore interface {
	Upload(ctx context.Context, r io.Reader, filename string) (string, error)
}

type cloudinaryStore struct {
	uploadURL    string
	uploadPreset string
	http         *http.Client
}

// NewCloudinaryStore talks to a Cloudinary-style unsigned upload endpoint:
// multipart POST with a file part and an upload_preset field, JSON response
// carrying secure_url.
func NewCloudinaryStore(uploadURL, uploadPreset string, httpClient *http.Client) ImageStore {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &cloudinaryStore{
		uploadURL:    uploadURL,
		uploadPreset: uploadPreset,
		http:         httpClient,
	}
}

func (c *cloudinaryStore) Upload(ctx context.Context, r io.Reader, filename string) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", &models.UploadError{Err: err}
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", &models.UploadError{Err: err}
	}
	if err := w.WriteField("upload_preset", c.uploadPreset); err != nil {
		return "", &models.UploadError{Err: err}
	}
	if err := w.Close(); err != nil {
		return "", &models.UploadError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return "", &models.UploadError{Err: err}
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &models.UploadError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &models.UploadError{StatusText: resp.Status}
	}

	var out struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &models.UploadError{Err: err}
	}
	if out.SecureURL == "" {
		return "", &models.UploadError{StatusText: "no secure_url in response"}
	}
	return out.SecureURL, nil
}
