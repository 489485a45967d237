package utils

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// multipartUpload builds a gin context carrying one uploaded file
func multipartUpload(t *testing.T, field, filename, contentType string, content []byte) (*gin.Context, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create part: %v", err)
	}
	part.Write(content)
	writer.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req

	file, err := c.FormFile(field)
	if err != nil {
		t.Fatalf("failed to read uploaded file: %v", err)
	}
	return c, file
}

// pngBytes is a minimal payload carrying the PNG signature
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestSaveUploadedImage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mediaRoot := t.TempDir()

	c, file := multipartUpload(t, "image", "photo.png", "image/png", pngBytes)
	relPath, err := SaveUploadedImage(c, file, mediaRoot, "projects")
	if err != nil {
		t.Fatalf("SaveUploadedImage returned %v", err)
	}
	if !strings.HasPrefix(relPath, "projects"+string(filepath.Separator)) {
		t.Errorf("relative path %q should live under the subdir", relPath)
	}
	if filepath.Ext(relPath) != ".png" {
		t.Errorf("stored file %q should keep the extension", relPath)
	}
	if _, err := os.Stat(filepath.Join(mediaRoot, relPath)); err != nil {
		t.Errorf("stored file missing: %v", err)
	}
}

func TestSaveUploadedImageRejectsNonImage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, file := multipartUpload(t, "image", "notes.txt", "text/plain", []byte("just text"))
	if _, err := SaveUploadedImage(c, file, t.TempDir(), "projects"); !errors.Is(err, ErrNotAnImage) {
		t.Errorf("non-image upload returned %v, want ErrNotAnImage", err)
	}
}

func TestSaveUploadedImageRejectsSpoofedContentType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// The declared type says image but the bytes do not
	c, file := multipartUpload(t, "image", "photo.png", "image/png", []byte("#!/bin/sh\necho pwned"))
	if _, err := SaveUploadedImage(c, file, t.TempDir(), "projects"); !errors.Is(err, ErrNotAnImage) {
		t.Errorf("spoofed upload returned %v, want ErrNotAnImage", err)
	}
}
