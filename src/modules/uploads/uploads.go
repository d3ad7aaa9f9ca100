package uploads

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mayurii-26/drive-smart-portal/src/core/helpers"
	"github.com/mayurii-26/drive-smart-portal/src/core/middleware"
	"github.com/mayurii-26/drive-smart-portal/src/core/models"
	"github.com/mayurii-26/drive-smart-portal/src/core/store"
	"github.com/mayurii-26/drive-smart-portal/src/utils"
)

// maxFileSize is the local upload limit.
const maxFileSize = 10 * 1024 * 1024

// storageFolder prefixes every relayed document inside the bucket.
const storageFolder = "drive-smart"

var allowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"application/pdf": true,
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// UploadDocument validates the file locally (size and type), relays it
// to object storage and records the metadata plus an audit event.
func UploadDocument(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Not authenticated", nil)
	}

	file, err := c.FormFile("document")
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "No file uploaded", err)
	}

	if file.Size > maxFileSize {
		return helpers.HandleError(c, fiber.StatusBadRequest, "File size exceeds 10MB limit", nil)
	}

	mimeType := strings.ToLower(file.Header.Get("Content-Type"))
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedMimeTypes[mimeType] || !allowedExtensions[ext] {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Only PDF, JPG, and PNG files are allowed", nil)
	}

	storagePath := fmt.Sprintf("%s/%s-%s", storageFolder, uuid.NewString(), file.Filename)
	path, publicURL, contentType, err := utils.UploadToSupabaseStorage(file, storagePath)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Upload failed", err)
	}

	category := c.FormValue("category")
	if category == "" {
		category = "general"
	}

	record := models.Upload{
		ID:          uuid.NewString(),
		UserID:      identity.ID,
		UserName:    identity.Name,
		FileName:    file.Filename,
		FileType:    contentType,
		FileSize:    file.Size,
		StorageURL:  publicURL,
		StoragePath: path,
		Category:    category,
		UploadedAt:  time.Now().UTC(),
	}
	if err := store.Uploads.Append(record); err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to save upload record", err)
	}

	store.Activities.Record(identity, models.ActionDocumentUpload, map[string]interface{}{
		"fileName": file.Filename,
		"category": category,
	})

	return helpers.HandleSuccess(c, fiber.StatusOK, "Document uploaded successfully", record)
}

// ListUploads returns the caller's upload records; admins see everyone's.
func ListUploads(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Not authenticated", nil)
	}

	var (
		records []models.Upload
		err     error
	)
	if identity.Role == models.RoleAdmin {
		records, err = store.Uploads.All()
	} else {
		records, err = store.Uploads.ByUser(identity.ID)
	}
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch uploads", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Uploads fetched successfully", records)
}
