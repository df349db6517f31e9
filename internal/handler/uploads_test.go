package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadContentType(t *testing.T) {
	tests := []struct {
		name            string
		filename        string
		allowed         map[string]string
		wantContentType string
		wantOK          bool
	}{
		{"pdf resume", "cv.pdf", documentUploadTypes, "application/pdf", true},
		{"docx resume", "cv.docx", documentUploadTypes, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", true},
		{"image as resume", "scan.jpg", documentUploadTypes, "image/jpeg", true},
		{"png avatar", "me.png", imageUploadTypes, "image/png", true},
		{"uppercase extension", "ME.PNG", imageUploadTypes, "image/png", true},
		{"pdf is not an avatar", "me.pdf", imageUploadTypes, "", false},
		{"executable is never accepted", "payload.exe", documentUploadTypes, "", false},
		{"no extension", "README", documentUploadTypes, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, contentType, ok := uploadContentType(tt.filename, tt.allowed)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantContentType, contentType)
		})
	}
}
