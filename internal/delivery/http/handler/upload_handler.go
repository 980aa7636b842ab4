package handler

import (
	"errors"
	"net/http"

	"visus-api/internal/usecase"
	"visus-api/pkg/response"
)

type UploadHandler struct {
	uploadUsecase usecase.UploadUsecase
	maxMemory     int64
}

func NewUploadHandler(uploadUsecase usecase.UploadUsecase, maxMemory int64) *UploadHandler {
	return &UploadHandler{
		uploadUsecase: uploadUsecase,
		maxMemory:     maxMemory,
	}
}

// Upload accepts a multipart form with a required "file" part and optional
// "folder" and "objectName" fields.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxMemory); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		response.ValidationError(w, map[string]string{"file": "file is required"})
		return
	}
	defer file.Close()

	res, err := h.uploadUsecase.Upload(r.Context(), &usecase.UploadRequest{
		Content:      file,
		OriginalName: header.Filename,
		Folder:       r.FormValue("folder"),
		ObjectName:   r.FormValue("objectName"),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrFileRequired) {
			response.ValidationError(w, map[string]string{"file": "file is required"})
			return
		}
		response.InternalServerError(w, "Failed to upload file")
		return
	}

	response.JSON(w, http.StatusOK, res)
}

func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	objectName := r.URL.Query().Get("objectName")
	if objectName == "" {
		response.ValidationError(w, map[string]string{"objectName": "objectName is required"})
		return
	}

	response.JSON(w, http.StatusOK, h.uploadUsecase.Delete(r.Context(), objectName))
}
