package controllers

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/blogem/ipgate/models"
	"github.com/blogem/ipgate/services"
	"github.com/blogem/ipgate/userctx"
)

// multipartMemory is the part of a multipart body kept in memory; the rest
// is spooled to temporary files
const multipartMemory = 1 << 20

// fileResponse is a file record with its download route
type fileResponse struct {
	models.File
	URL string `json:"url"`
}

func newFileResponse(f models.File) fileResponse {
	return fileResponse{File: f, URL: f.DownloadURL()}
}

// FileController handles script upload, listing and download
type FileController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewFileController creates a new file controller
func NewFileController(services *services.Services, logger *slog.Logger) *FileController {
	return &FileController{
		services: services,
		logger:   logger,
	}
}

// Index handles GET /api/files
func (c *FileController) Index(w http.ResponseWriter, r *http.Request) {
	files, err := c.services.Files.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, c.logger, "Failed to fetch files", err)
		return
	}

	resp := make([]fileResponse, len(files))
	for i, f := range files {
		resp[i] = newFileResponse(f)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Upload handles POST /api/files/upload (multipart field "file")
func (c *FileController) Upload(w http.ResponseWriter, r *http.Request) {
	user, _ := userctx.GetUser(r.Context())

	// Allow some room for the multipart envelope; the store enforces the exact limit
	r.Body = http.MaxBytesReader(w, r.Body, c.services.Files.MaxUploadBytes()+multipartMemory)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "file exceeds the maximum upload size")
			return
		}
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer r.MultipartForm.RemoveAll()

	part, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer part.Close()

	file, err := c.services.Files.Upload(r.Context(), services.UploadInput{
		OriginalFilename: header.Filename,
		MimeType:         header.Header.Get("Content-Type"),
		Content:          part,
		UploadedBy:       &user.ID,
		ClientIP:         userctx.GetClientIP(r.Context()),
	})
	if err != nil {
		writeServiceError(w, c.logger, "Failed to upload file", err)
		return
	}

	writeJSON(w, http.StatusCreated, newFileResponse(*file))
}

// Delete handles DELETE /api/files/{id}
func (c *FileController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid file ID")
		return
	}

	if err := c.services.Files.Delete(r.Context(), id); err != nil {
		writeServiceError(w, c.logger, "Failed to delete file", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "File deleted successfully"})
}

// Download handles GET /api/files/{id}/download. The access gate has
// already admitted the client; the successful access is recorded once the
// content has been written.
func (c *FileController) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid file ID")
		return
	}

	file, err := c.services.Files.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, c.logger, "Failed to download file", err)
		return
	}

	content, err := c.services.Files.Open(file)
	if errors.Is(err, services.ErrFileMissing) {
		writeError(w, http.StatusNotFound, "File not found on disk")
		return
	}
	if err != nil {
		writeServiceError(w, c.logger, "Failed to download file", err)
		return
	}
	defer content.Close()

	info, err := content.Stat()
	if err != nil {
		writeServiceError(w, c.logger, "Failed to download file", err)
		return
	}

	w.Header().Set("Content-Type", file.MimeType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.OriginalFilename}))
	http.ServeContent(w, r, file.OriginalFilename, info.ModTime(), content)

	ip := userctx.GetClientIP(r.Context())
	if err := c.services.Gate.RecordServed(r.Context(), ip, &file.ID, "File downloaded by admin: "+file.OriginalFilename); err != nil {
		c.logger.Error("failed to record download", slog.Int64("file_id", file.ID), slog.Any("error", err))
	}
}
