package utils

import (
	"io"
	"mime/multipart"
	"net/http"

	storage_go "github.com/supabase-community/storage-go"

	"github.com/mayurii-26/drive-smart-portal/src/core/database"
)

// UploadToSupabaseStorage relays a multipart file to the configured
// Supabase bucket under the given path and returns the path, public URL
// and detected content type. There is no partial-upload recovery: the
// call either completes or fails.
func UploadToSupabaseStorage(file *multipart.FileHeader, path string) (string, string, string, error) {
	storageClient, bucketName, err := database.SupabaseStorage()
	if err != nil {
		return "", "", "", err
	}

	fileBody, err := file.Open()
	if err != nil {
		return "", "", "", err
	}
	defer fileBody.Close()

	// Sniff the content type from the leading bytes, then rewind.
	head := make([]byte, 512)
	n, err := fileBody.Read(head)
	if err != nil && err != io.EOF {
		return "", "", "", err
	}
	contentType := http.DetectContentType(head[:n])

	if _, err := fileBody.Seek(0, io.SeekStart); err != nil {
		return "", "", "", err
	}

	if _, err := storageClient.UploadFile(bucketName, path, fileBody, storage_go.FileOptions{ContentType: &contentType}); err != nil {
		return "", "", "", err
	}

	response := storageClient.GetPublicUrl(bucketName, path)
	return path, response.SignedURL, contentType, nil
}
