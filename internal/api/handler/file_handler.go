package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/natheerjardien/cldvpoe/internal/infra/fileshare"
	"github.com/natheerjardien/cldvpoe/internal/service"
	"github.com/natheerjardien/cldvpoe/pkg/api"
)

type FileHandler struct {
	fileService service.IFileService
}

func NewFileHandler(fileService service.IFileService) *FileHandler {
	if fileService == nil {
		panic("fileService cannot be nil")
	}
	return &FileHandler{
		fileService: fileService,
	}
}

// @Summary upload file to file share
// @Tags file
// @Accept mpfd
// @Produce json
// @Router /files/upload [post]
func (h *FileHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	directoryName := r.FormValue("directory")

	if err := h.fileService.UploadFile(directoryName, header.Filename, file); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusCreated, fmt.Sprintf("file %s uploaded", header.Filename))
}

// @Summary list files in a directory
// @Tags file
// @Produce json
// @Router /files [get]
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	directoryName := r.URL.Query().Get("directory")

	files, err := h.fileService.ListFiles(directoryName)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, files)
}

// @Summary download a file
// @Tags file
// @Produce octet-stream
// @Router /files/download [get]
func (h *FileHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	directoryName := r.URL.Query().Get("directory")
	fileName := r.URL.Query().Get("fileName")
	if fileName == "" {
		api.ErrorJSON(w, http.StatusBadRequest, "fileName is required")
		return
	}

	content, err := h.fileService.DownloadFile(directoryName, fileName)
	if err != nil {
		if err == fileshare.ErrFileNotFound {
			api.ErrorJSON(w, http.StatusNotFound, "file not found")
			return
		}
		writeServiceError(w, err)
		return
	}
	defer content.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	io.Copy(w, content)
}
