package auth

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"cookly/middleware"
	"cookly/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type credentials struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

func respondWithAuthError(w http.ResponseWriter, op string, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Printf("[%s] %v", op, err)
	}
	utils.RespondWithJSON(w, code, utils.M{"error": Message(err), "code": codeOf(err)})
}

func codeOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return string(ae.Code)
	}
	return ""
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req credentials
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := h.svc.Register(ctx, req.Email, req.Password, req.DisplayName)
	if err != nil {
		respondWithAuthError(w, "Register", err)
		return
	}
	token, err := h.svc.IssueToken(user)
	if err != nil {
		respondWithAuthError(w, "Register", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"token": token,
		"user":  user.Profile(),
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req credentials
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token, user, err := h.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		respondWithAuthError(w, "Login", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token": token,
		"user":  user.Profile(),
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.svc.Logout(ctx, middleware.ClaimsFromContext(r.Context())); err != nil {
		log.Printf("[Logout] %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to log out")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Logged out successfully"})
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	token, err := h.svc.Refresh(ctx, middleware.ClaimsFromContext(r.Context()))
	if err != nil {
		respondWithAuthError(w, "RefreshToken", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"token": token})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := h.svc.Profile(ctx, utils.GetUserIDFromRequest(r))
	if err != nil {
		respondWithAuthError(w, "GetProfile", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user.Profile())
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req struct {
		DisplayName string `json:"displayName"`
	}
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := h.svc.UpdateDisplayName(ctx, utils.GetUserIDFromRequest(r), req.DisplayName)
	if err != nil {
		respondWithAuthError(w, "UpdateProfile", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user.Profile())
}
