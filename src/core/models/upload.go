package models

import "time"

// Upload is the metadata kept for a document relayed to object storage.
// The bytes themselves live with the storage provider.
type Upload struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	FileName    string    `json:"fileName"`
	FileType    string    `json:"fileType"`
	FileSize    int64     `json:"fileSize"`
	StorageURL  string    `json:"storageUrl"`
	StoragePath string    `json:"storagePath"`
	Category    string    `json:"category"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
