package models

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// VIPSuffix marks script files that may be uploaded and served
const VIPSuffix = ".vip.js"

// File represents an uploaded script
type File struct {
	ID               int64     `json:"id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"originalFilename"`
	FileSize         int64     `json:"fileSize"`
	MimeType         string    `json:"mimeType"`
	UploadedAt       time.Time `json:"uploadedAt"`
	UploadedBy       *int64    `json:"uploadedBy"`
}

// DownloadURL returns the admin download route for the file
func (f *File) DownloadURL() string {
	return fmt.Sprintf("/api/files/%d/download", f.ID)
}

// IsVIPScript reports whether the original name is an acceptable VIP script
func IsVIPScript(name string) bool {
	return filepath.Ext(name) == ".js" && strings.Contains(name, VIPSuffix)
}
