package http

import (
	"log/slog"
	"net/http"

	"github.com/emscore/ems-backend-go/internal/handler/http/response"
	"github.com/emscore/ems-backend-go/internal/service/file"
)

type UploadHandler interface {
	UploadReferencePhoto(w http.ResponseWriter, r *http.Request)
	DeleteReferencePhoto(w http.ResponseWriter, r *http.Request)
	UploadDocument(w http.ResponseWriter, r *http.Request)
}

type uploadHandlerImpl struct {
	fileService file.FileService
}

func NewUploadHandler(fileService file.FileService) UploadHandler {
	return &uploadHandlerImpl{
		fileService: fileService,
	}
}

// UploadReferencePhoto implements UploadHandler. The stored photo becomes
// part of the reference set the attendance validator scans.
func (h *uploadHandlerImpl) UploadReferencePhoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	employeeID := r.FormValue("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "Field 'employee_id' is required", nil)
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Photo file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer f.Close()

	key, err := h.fileService.UploadReferencePhoto(r.Context(), employeeID, f, header.Filename)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.Created(w, "Reference photo uploaded", map[string]string{"key": key})
}

// DeleteReferencePhoto implements UploadHandler. The key to remove comes
// back from the upload response.
func (h *uploadHandlerImpl) DeleteReferencePhoto(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		response.BadRequest(w, "Query parameter 'key' is required", nil)
		return
	}

	if err := h.fileService.DeleteReferencePhoto(r.Context(), key); err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.Success(w, map[string]string{"message": "Reference photo deleted"})
}

// UploadDocument implements UploadHandler.
func (h *uploadHandlerImpl) UploadDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	employeeID := r.FormValue("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "Field 'employee_id' is required", nil)
		return
	}

	documentType := r.FormValue("document_type")
	if documentType == "" {
		response.BadRequest(w, "Field 'document_type' is required", nil)
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Document file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer f.Close()

	path, err := h.fileService.UploadDocument(r.Context(), employeeID, f, header.Filename, documentType)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.Created(w, "Document uploaded", map[string]string{"path": path})
}
