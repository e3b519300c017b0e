package content

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"contentshop/internal/common"
	"contentshop/internal/dbmysql"
)

// Handler wires the content and story routes to the content service.
type Handler struct {
	service ContentService
}

func NewHandler(service ContentService) *Handler {
	return &Handler{service: service}
}

// RegisterPublic mounts the routes that work without a token. Optional auth
// still applies, so authenticated viewers see their own drafts.
func (h *Handler) RegisterPublic(r *mux.Router) {
	r.HandleFunc("/content", h.list).Methods(http.MethodGet)
	r.HandleFunc("/content/preview", h.preview).Methods(http.MethodGet)
	r.HandleFunc("/content/meta", h.meta).Methods(http.MethodGet)
	r.HandleFunc("/content/{id:[0-9]+}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/stories", h.stories).Methods(http.MethodGet)
}

// RegisterProtected mounts the routes behind auth middleware.
func (h *Handler) RegisterProtected(r *mux.Router) {
	r.HandleFunc("/content", h.create).Methods(http.MethodPost)
	r.HandleFunc("/content/{id:[0-9]+}", h.update).Methods(http.MethodPut)
	r.HandleFunc("/content/{id:[0-9]+}", h.delete).Methods(http.MethodDelete)
	r.HandleFunc("/content/{id:[0-9]+}/status", h.updateStatus).Methods(http.MethodPost)
	r.HandleFunc("/stories", h.createStory).Methods(http.MethodPost)
}

type contentResponse struct {
	*dbmysql.Content
	Tags []string `json:"tags"`
}

func toContentResponse(c *dbmysql.Content) contentResponse {
	return contentResponse{Content: c, Tags: c.TagList()}
}

func toContentResponses(items []dbmysql.Content) []contentResponse {
	out := make([]contentResponse, len(items))
	for i := range items {
		out[i] = toContentResponse(&items[i])
	}
	return out
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrContentNotFound):
		common.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNotOwner):
		common.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidCategory):
		common.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		common.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	f := Filter{
		ViewerID: common.UserIDFrom(r.Context()),
		Category: q.Get("category"),
		Status:   q.Get("status"),
		Search:   q.Get("search"),
		Limit:    limit,
		Offset:   offset,
	}
	items, err := h.service.ListContent(r.Context(), f)
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": toContentResponses(items),
		"count": len(items),
	})
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	items, err := h.service.PublicPreview(r.Context(), limit)
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": toContentResponses(items)})
}

func (h *Handler) meta(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"categories": Categories,
		"statuses":   Statuses,
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetContent(r.Context(), common.UserKeyFrom(r.Context()), pathID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, toContentResponse(c))
}

type contentRequest struct {
	Title    string   `json:"title" validate:"required,max=200"`
	Body     string   `json:"body" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Status   string   `json:"status"`
	Author   string   `json:"author" validate:"required,max=100"`
	Tags     []string `json:"tags"`
	Image    string   `json:"image"`
}

func (req contentRequest) input() ContentInput {
	return ContentInput{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
		Status:   req.Status,
		Author:   req.Author,
		Tags:     req.Tags,
		Image:    req.Image,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := common.Validate.Struct(req); err != nil {
		common.WriteFieldErrors(w, "validation failed", common.FieldErrors(err))
		return
	}

	ctx := r.Context()
	c, err := h.service.CreateContent(ctx, common.UserIDFrom(ctx), common.UserKeyFrom(ctx), req.input())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, toContentResponse(c))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := common.Validate.Struct(req); err != nil {
		common.WriteFieldErrors(w, "validation failed", common.FieldErrors(err))
		return
	}

	ctx := r.Context()
	c, err := h.service.UpdateContent(ctx, common.UserIDFrom(ctx), common.UserKeyFrom(ctx), pathID(r), req.input())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, toContentResponse(c))
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.service.UpdateStatus(r.Context(), common.UserIDFrom(r.Context()), pathID(r), req.Status); err != nil {
		writeServiceError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteContent(r.Context(), common.UserIDFrom(r.Context()), pathID(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "content deleted"})
}

func (h *Handler) stories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.service.ActiveStories(r.Context())
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"stories": stories})
}

type storyRequest struct {
	Title     string `json:"title" validate:"required,max=200"`
	Body      string `json:"body"`
	StoryType string `json:"story_type"`
	Priority  int    `json:"priority"`
	ImageURL  string `json:"image_url"`
	ExpiresAt string `json:"expires_at" validate:"required"`
	ProductID *int64 `json:"product_id"`
}

func (h *Handler) createStory(w http.ResponseWriter, r *http.Request) {
	var req storyRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := common.Validate.Struct(req); err != nil {
		common.WriteFieldErrors(w, "validation failed", common.FieldErrors(err))
		return
	}
	expiresAt, err := time.Parse(time.RFC3339, req.ExpiresAt)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "expires_at must be RFC 3339")
		return
	}

	story, err := h.service.CreateStory(r.Context(), common.UserIDFrom(r.Context()), StoryInput{
		Title:     req.Title,
		Body:      req.Body,
		StoryType: req.StoryType,
		Priority:  req.Priority,
		ImageURL:  req.ImageURL,
		ExpiresAt: expiresAt,
		ProductID: req.ProductID,
	})
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	common.WriteJSON(w, http.StatusCreated, story)
}
