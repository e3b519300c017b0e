package user

import (
	"net/http"

	"github.com/gorilla/mux"

	"contentshop/internal/common"
)

// Handler wires the auth/profile routes to the user service.
type Handler struct {
	service UserService
}

func NewHandler(service UserService) *Handler {
	return &Handler{service: service}
}

// RegisterPublic mounts the unauthenticated routes.
func (h *Handler) RegisterPublic(r *mux.Router) {
	r.HandleFunc("/register", h.register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.login).Methods(http.MethodPost)
}

// RegisterProtected mounts the routes behind auth middleware.
func (h *Handler) RegisterProtected(r *mux.Router) {
	r.HandleFunc("/profile", h.profile).Methods(http.MethodGet)
	r.HandleFunc("/profile", h.updateProfile).Methods(http.MethodPut)
}

type registerRequest struct {
	Handle   string `json:"handle" validate:"required"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token  string `json:"token"`
	UserID uint64 `json:"user_id"`
	Handle string `json:"handle"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := common.Validate.Struct(req); err != nil {
		common.WriteFieldErrors(w, "validation failed", common.FieldErrors(err))
		return
	}

	user, token, err := h.service.RegisterUser(r.Context(), req.Handle, req.Email, req.Password)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	common.WriteJSON(w, http.StatusCreated, authResponse{Token: token, UserID: user.UserID, Handle: user.Handle})
}

type loginRequest struct {
	Handle   string `json:"handle" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.service.LoginUser(r.Context(), req.Handle, req.Password)
	if err != nil {
		common.WriteError(w, http.StatusUnauthorized, "invalid handle or password")
		return
	}
	common.WriteJSON(w, http.StatusOK, authResponse{Token: token, UserID: user.UserID, Handle: user.Handle})
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetProfile(r.Context(), common.UserIDFrom(r.Context()))
	if err != nil {
		common.WriteError(w, http.StatusNotFound, "user not found")
		return
	}
	common.WriteJSON(w, http.StatusOK, user)
}

type updateProfileRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.UpdateProfile(r.Context(), common.UserIDFrom(r.Context()), req.Email, req.DisplayName); err != nil {
		common.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "profile updated"})
}
