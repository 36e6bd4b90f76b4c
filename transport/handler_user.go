package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/classifieds/constant"
	"github.com/muhammadheryan/classifieds/model"
	"github.com/muhammadheryan/classifieds/utils/errors"
)

// GetMe handler
// @Summary Current user profile
// @Tags Users
// @Produce json
// @Security BasicAuth
// @Success 200 {object} model.UserResponse
// @Failure 401
// @Router /users/me [get]
func (s *RestHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	res, err := s.UserApp.GetProfile(r.Context(), principal.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateMe handler
// @Summary Update current user profile
// @Description Email cannot be changed; absent fields are kept
// @Tags Users
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param request body model.UpdateUserRequest true "Profile fields"
// @Success 200 {object} model.UserResponse
// @Failure 401
// @Failure 404
// @Router /users/me [patch]
func (s *RestHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req model.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.UpdateProfile(r.Context(), principal.Email, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SetPassword handler
// @Summary Change password
// @Tags Users
// @Accept json
// @Security BasicAuth
// @Param request body model.NewPasswordRequest true "Passwords"
// @Success 200
// @Failure 400
// @Failure 401
// @Failure 403 "current password does not match"
// @Router /users/set_password [post]
func (s *RestHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req model.NewPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	changed, err := s.UserApp.SetPassword(r.Context(), principal.Email, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	if !changed {
		writeError(w, errors.SetCustomError(constant.ErrInvalidPassword))
		return
	}
	writeStatus(w, http.StatusOK)
}

// GetMyImage handler
// @Summary Current user avatar
// @Tags Users
// @Produce png
// @Security BasicAuth
// @Success 200 {file} binary
// @Failure 401
// @Failure 404
// @Router /users/me/image [get]
func (s *RestHandler) GetMyImage(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	data, err := s.UserApp.GetAvatar(r.Context(), principal.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeImage(w, data)
}

// UpdateMyImage handler
// @Summary Replace current user avatar
// @Tags Users
// @Accept multipart/form-data
// @Security BasicAuth
// @Param image formData file true "Avatar"
// @Success 200
// @Failure 401
// @Failure 404
// @Router /users/me/image [patch]
func (s *RestHandler) UpdateMyImage(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	if err := s.parseMultipart(w, r); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	upload, err := s.readImagePart(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.UserApp.ReplaceAvatar(r.Context(), principal.Email, upload); err != nil {
		writeError(w, err)
		return
	}
	writeStatus(w, http.StatusOK)
}

// GetUserImage handler
// @Summary Avatar bytes
// @Tags Users
// @Produce png
// @Param name path string true "Stored image name"
// @Success 200 {file} binary
// @Failure 404
// @Router /users/image/{name} [get]
func (s *RestHandler) GetUserImage(w http.ResponseWriter, r *http.Request) {
	data, err := s.UserApp.GetImage(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeImage(w, data)
}
