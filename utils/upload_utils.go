package utils

import (
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrNotAnImage is returned when an uploaded file is not an image
var ErrNotAnImage = errors.New("uploaded file must be an image")

// SaveUploadedImage stores an uploaded image under mediaRoot/subdir with
// a random filename and returns the path relative to mediaRoot. The
// upload is rejected unless its content sniffs as image/*; the part
// header's declared type is client-controlled and not trusted.
func SaveUploadedImage(c *gin.Context, file *multipart.FileHeader, mediaRoot, subdir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	head := make([]byte, 512)
	n, _ := src.Read(head)
	src.Close()
	if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
		return "", ErrNotAnImage
	}

	if err := os.MkdirAll(filepath.Join(mediaRoot, subdir), 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	name := uuid.New().String() + ext
	relPath := filepath.Join(subdir, name)
	if err := c.SaveUploadedFile(file, filepath.Join(mediaRoot, relPath)); err != nil {
		return "", err
	}
	return relPath, nil
}
