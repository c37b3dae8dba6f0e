package models

import "time"

// Attachment bookkeeping for files uploaded to object storage. Attachments
// are NOT removed when the owning record is soft-deleted; they must survive
// to support restore.
type Attachment struct {
	ID         uint      `gorm:"primaryKey"             json:"id"`
	OwnerTable string    `gorm:"size:80;index:idx_att_owner"  json:"owner_table"`
	OwnerID    uint      `gorm:"index:idx_att_owner"    json:"owner_id"`
	FileName   string    `gorm:"size:255"               json:"file_name"`
	ObjectKey  string    `gorm:"size:500"               json:"object_key"`
	PublicURL  string    `gorm:"size:500"               json:"public_url"`
	SizeBytes  int64     `json:"size_bytes"`
	UploadedBy uint      `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}
