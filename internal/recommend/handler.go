package recommend

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"contentshop/internal/common"
	"contentshop/internal/dbmysql"
)

// Handler wires the recommendation routes to the recommend service.
type Handler struct {
	service RecommendService
}

func NewHandler(service RecommendService) *Handler {
	return &Handler{service: service}
}

// RegisterPublic mounts the recommendation routes. They run behind optional
// auth so anonymous visitors still get a tracked feed.
func (h *Handler) RegisterPublic(r *mux.Router) {
	r.HandleFunc("/content/{id:[0-9]+}/recommendations", h.forContent).Methods(http.MethodGet)
	r.HandleFunc("/content/{id:[0-9]+}/relevance", h.relevance).Methods(http.MethodGet)
	r.HandleFunc("/content/{id:[0-9]+}/interactions", h.interact).Methods(http.MethodPost)
	r.HandleFunc("/recommendations/trending", h.trending).Methods(http.MethodGet)
	r.HandleFunc("/recommendations/feed", h.feed).Methods(http.MethodGet)
	r.HandleFunc("/recommendations/behavior", h.behavior).Methods(http.MethodGet)
}

// RegisterProtected mounts the routes that need a signed-in user.
func (h *Handler) RegisterProtected(r *mux.Router) {
	r.HandleFunc("/recommendations/feedback", h.feedback).Methods(http.MethodPost)
}

func limitParam(r *http.Request, def int) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}

// forContent bundles everything the content detail view shows: hybrid
// recommendations plus same-category suggestions.
func (h *Handler) forContent(w http.ResponseWriter, r *http.Request) {
	contentID, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	ctx := r.Context()

	hybrid, err := h.service.HybridContent(ctx, common.UserKeyFrom(ctx), contentID, limitParam(r, 4))
	if err != nil {
		if errors.Is(err, ErrContentNotFound) {
			common.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		common.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	category := r.URL.Query().Get("category")
	var suggestions []dbmysql.Content
	if category != "" {
		suggestions, err = h.service.CategorySuggestions(ctx, category, contentID, 3)
		if err != nil {
			common.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"recommendations":      hybrid,
		"category_suggestions": suggestions,
	})
}

func (h *Handler) trending(w http.ResponseWriter, r *http.Request) {
	trending, err := h.service.TrendingContent(r.Context(), limitParam(r, 5))
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"trending": trending})
}

// feed is the personal recommendation list: collaborative filtering first,
// trending as the cold-start fallback.
func (h *Handler) feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit := limitParam(r, 5)

	personal, err := h.service.CollaborativeContent(ctx, common.UserKeyFrom(ctx), limit)
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	source := "collaborative"
	if len(personal) == 0 {
		personal, err = h.service.TrendingContent(ctx, limit)
		if err != nil {
			common.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		source = "trending"
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":  personal,
		"source": source,
	})
}

func (h *Handler) behavior(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.UserBehavior(r.Context(), common.UserKeyFrom(r.Context()))
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	common.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) relevance(w http.ResponseWriter, r *http.Request) {
	contentID, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	report, err := h.service.Relevance(r.Context(), contentID)
	if err != nil {
		if errors.Is(err, ErrContentNotFound) {
			common.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		common.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	common.WriteJSON(w, http.StatusOK, report)
}

type interactRequest struct {
	Action string `json:"action" validate:"required,oneof=like share"`
}

// interactWeights are the explicit feedback weights. Views and edits are
// tracked implicitly by the content handlers.
var interactWeights = map[string]float64{
	dbmysql.ActionLike:  2.0,
	dbmysql.ActionShare: 2.5,
}

func (h *Handler) interact(w http.ResponseWriter, r *http.Request) {
	contentID, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	var req interactRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := common.Validate.Struct(req); err != nil {
		common.WriteFieldErrors(w, "validation failed", common.FieldErrors(err))
		return
	}

	err := h.service.TrackInteraction(r.Context(), common.UserKeyFrom(r.Context()), contentID, req.Action, interactWeights[req.Action])
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	common.WriteJSON(w, http.StatusAccepted, map[string]string{"message": "interaction recorded"})
}

type feedbackRequest struct {
	ContentID int64  `json:"content_id" validate:"required"`
	Action    string `json:"action" validate:"required,oneof=clicked liked shared dismissed saved"`
}

// feedbackMap translates recommendation feedback into interaction records.
// Dismissals carry a negative weight so they push items down the feed.
var feedbackMap = map[string]struct {
	action string
	weight float64
}{
	"clicked":   {dbmysql.ActionView, 1.0},
	"liked":     {dbmysql.ActionLike, 2.0},
	"shared":    {dbmysql.ActionShare, 2.5},
	"dismissed": {dbmysql.ActionView, -0.5},
	"saved":     {dbmysql.ActionLike, 3.0},
}

func (h *Handler) feedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := common.Validate.Struct(req); err != nil {
		common.WriteFieldErrors(w, "validation failed", common.FieldErrors(err))
		return
	}

	mapped := feedbackMap[req.Action]
	err := h.service.TrackInteraction(r.Context(), common.UserKeyFrom(r.Context()), req.ContentID, mapped.action, mapped.weight)
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
