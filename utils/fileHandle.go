package utils

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// MaxImageSize is the largest accepted profile image (5 MiB).
const MaxImageSize = 5 * 1024 * 1024

var (
	ErrInvalidFileType = errors.New("Invalid file type, only JPEG, PNG, or JPG are allowed")
	ErrFileTooLarge    = errors.New("Image must be smaller than 5MB")
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/jpg":  true,
}

// SaveProfileImage validates an uploaded image and writes it into destDir
// under a unique filename, returning that filename. The declared MIME type
// and size are checked before any bytes are persisted.
func SaveProfileImage(fieldName string, file *multipart.FileHeader, destDir string) (string, error) {
	if !allowedImageTypes[file.Header.Get("Content-Type")] {
		return "", ErrInvalidFileType
	}
	if file.Size > MaxImageSize {
		return "", ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	// Unique filename: field name + timestamp + random suffix + original extension
	ext := filepath.Ext(file.Filename)
	newFilename := fmt.Sprintf("%s-%d-%d%s", fieldName, time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return newFilename, nil
}
