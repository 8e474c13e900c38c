package api

import (
	"net/http"
	"strings"

	"github.com/inkpress/inkpress/internal/server/services"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Position string `json:"position"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	Slug         string `json:"slug"`
}

func toAuthResponse(res *services.AuthResult) authResponse {
	return authResponse{
		ID:           res.ID,
		Email:        res.Email,
		Role:         string(res.Role),
		Token:        res.Token,
		RefreshToken: res.RefreshToken,
		Slug:         res.Slug,
	}
}

func (h *Handlers) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" || strings.TrimSpace(req.FullName) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email, password and fullName are required"})
		return
	}

	res, err := h.authSvc.Register(r.Context(), services.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Position: req.Position,
	})
	if err != nil {
		h.log.Error(r.Context(), "registration failed", "error", err.Error())
		writeError(w, err)
		return
	}

	h.log.Info(r.Context(), "registered", "email", res.Email)
	writeJSON(w, http.StatusCreated, toAuthResponse(res))
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	res, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.log.Warn(r.Context(), "login failed", "error", err.Error())
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(res))
}
