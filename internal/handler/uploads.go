package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/hirewire-dev/hirewire/backend/internal/storage"
)

// Allowed upload types by extension. Avatars and logos are images only;
// resumes additionally accept the common document formats.
var (
	imageUploadTypes = map[string]string{
		".jpeg": "image/jpeg",
		".jpg":  "image/jpeg",
		".png":  "image/png",
		".gif":  "image/gif",
	}
	documentUploadTypes = map[string]string{
		".jpeg": "image/jpeg",
		".jpg":  "image/jpeg",
		".png":  "image/png",
		".gif":  "image/gif",
		".pdf":  "application/pdf",
		".doc":  "application/msword",
		".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
)

// uploadContentType maps a filename onto its content type, or reports that
// the file type is not accepted.
func uploadContentType(filename string, allowed map[string]string) (string, string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowed[ext]
	return ext, contentType, ok
}

func (h *Handler) UploadResume(w http.ResponseWriter, r *http.Request) {
	h.handleUpload(w, r, "resumes", documentUploadTypes)
}

func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	h.handleUpload(w, r, "avatars", imageUploadTypes)
}

func (h *Handler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	h.handleUpload(w, r, "logos", imageUploadTypes)
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request, prefix string, allowed map[string]string) {
	r.Body = http.MaxBytesReader(w, r.Body, h.config.Upload.MaxSize)

	if err := r.ParseMultipartForm(h.config.Upload.MaxSize); err != nil {
		h.conflict(w, r, CodeUploadRejected, "file exceeds the upload size limit or the form is malformed")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.conflict(w, r, CodeUploadRejected, "a file field named 'file' is required")
		return
	}
	defer file.Close()

	ext, contentType, ok := uploadContentType(header.Filename, allowed)
	if !ok {
		h.conflict(w, r, CodeUploadRejected, "this file type is not accepted")
		return
	}

	key := storage.ObjectKey(prefix, ext)
	url, err := h.uploader.Upload(r.Context(), key, contentType, file)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "file uploaded", map[string]string{
		"url": url,
		"key": key,
	})
}
