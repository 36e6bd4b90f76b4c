package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/muhammadheryan/classifieds/constant"
	"github.com/muhammadheryan/classifieds/model"
	"github.com/muhammadheryan/classifieds/utils/errors"
	"github.com/muhammadheryan/classifieds/utils/logger"
	validatorx "github.com/muhammadheryan/classifieds/utils/validator"
	"go.uber.org/zap"
)

// Register handler
// @Summary Register user
// @Description Register a new user. The username is an email and is case folded.
// @Tags Auth
// @Accept json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201
// @Failure 400
// @Failure 403 "email already registered"
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	ok, err := s.AuthApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		writeStatus(w, http.StatusForbidden)
		return
	}

	writeStatus(w, http.StatusCreated)
}

// Login handler
// @Summary Login user
// @Description Check credentials. When sessions are enabled the response carries a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 401
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	ok, err := s.AuthApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.AuthApp.IssueToken(ctx, req.Username)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Description Revoke the bearer session used for this request
// @Tags Auth
// @Security BearerAuth
// @Success 204
// @Failure 401
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		// basic auth has no server side session
		writeStatus(w, http.StatusNoContent)
		return
	}
	if err := s.AuthApp.RevokeToken(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeStatus(w, http.StatusNoContent)
}

// Health handler
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200
// @Failure 503
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	if s.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.DB.PingContext(ctx); err != nil {
			logger.Warn("[Health] database ping failed", zap.String("error", err.Error()))
			writeStatus(w, http.StatusServiceUnavailable)
			return
		}
	}
	writeSuccess(w, map[string]string{"status": "ok"})
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	return token, token != ""
}
