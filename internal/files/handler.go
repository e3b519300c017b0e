package files

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"contentshop/internal/common"
	"contentshop/internal/dbmysql"
)

// maxUploadBytes caps a single multipart request.
const maxUploadBytes = 100 << 20

// Handler wires the upload/download routes to the file service.
type Handler struct {
	service FileService
}

func NewHandler(service FileService) *Handler {
	return &Handler{service: service}
}

// RegisterPublic mounts the routes that work without a token.
func (h *Handler) RegisterPublic(r *mux.Router) {
	r.HandleFunc("/files/{id:[0-9]+}/download", h.download).Methods(http.MethodGet)
	r.HandleFunc("/content/{id:[0-9]+}/files", h.contentFiles).Methods(http.MethodGet)
}

// RegisterProtected mounts the routes behind auth middleware.
func (h *Handler) RegisterProtected(r *mux.Router) {
	r.HandleFunc("/files", h.upload).Methods(http.MethodPost)
	r.HandleFunc("/files", h.userFiles).Methods(http.MethodGet)
	r.HandleFunc("/files/{id:[0-9]+}", h.delete).Methods(http.MethodDelete)
}

type uploadResult struct {
	Uploaded []dbmysql.FileRef `json:"uploaded"`
	Failed   []string          `json:"failed,omitempty"`
}

// upload accepts one or more files under the "files" multipart field. An
// optional "content_id" form value attaches them to a content item.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	var contentID *int64
	if raw := r.FormValue("content_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			common.WriteError(w, http.StatusBadRequest, "invalid content_id")
			return
		}
		contentID = &id
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		common.WriteError(w, http.StatusBadRequest, "no files supplied")
		return
	}

	userID := common.UserIDFrom(r.Context())
	var result uploadResult
	for _, hdr := range headers {
		f, err := hdr.Open()
		if err != nil {
			result.Failed = append(result.Failed, hdr.Filename)
			continue
		}
		ref, err := h.service.Upload(r.Context(), userID, contentID, hdr.Filename, hdr.Header.Get("Content-Type"), f)
		f.Close()
		if err != nil {
			result.Failed = append(result.Failed, hdr.Filename)
			continue
		}
		result.Uploaded = append(result.Uploaded, *ref)
	}

	status := http.StatusCreated
	if len(result.Uploaded) == 0 {
		status = http.StatusBadRequest
	}
	common.WriteJSON(w, status, result)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	fileID, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	stream, ref, mimeType, err := h.service.Download(r.Context(), common.UserKeyFrom(r.Context()), fileID)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			common.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		common.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	defer stream.Close()

	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Length", strconv.FormatInt(ref.Size, 10))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ref.OriginalName))
	_, _ = io.Copy(w, stream)
}

func (h *Handler) userFiles(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.UserFiles(r.Context(), common.UserIDFrom(r.Context()))
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	common.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) contentFiles(w http.ResponseWriter, r *http.Request) {
	contentID, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	refs, err := h.service.ContentFiles(r.Context(), common.UserKeyFrom(r.Context()), contentID)
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"files": refs, "count": len(refs)})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	fileID, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	err := h.service.DeleteFile(r.Context(), common.UserIDFrom(r.Context()), fileID)
	switch {
	case err == nil:
		common.WriteJSON(w, http.StatusOK, map[string]string{"message": "file deleted"})
	case errors.Is(err, ErrFileNotFound):
		common.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNotOwner):
		common.WriteError(w, http.StatusForbidden, err.Error())
	default:
		common.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
