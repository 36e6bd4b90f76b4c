package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/classifieds/constant"
	"github.com/muhammadheryan/classifieds/model"
	utilsContext "github.com/muhammadheryan/classifieds/utils/context"
	"github.com/muhammadheryan/classifieds/utils/errors"
)

// ListAds handler
// @Summary List ads
// @Description All ads ordered by id
// @Tags Ads
// @Produce json
// @Success 200 {object} model.AdsResponse
// @Failure 500
// @Router /ads [get]
func (s *RestHandler) ListAds(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdsApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListMyAds handler
// @Summary List my ads
// @Tags Ads
// @Produce json
// @Security BasicAuth
// @Success 200 {object} model.AdsResponse
// @Failure 401
// @Router /ads/me [get]
func (s *RestHandler) ListMyAds(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	res, err := s.AdsApp.ListMine(r.Context(), principal.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateAd handler
// @Summary Create ad
// @Description Multipart request: "properties" holds the ad JSON, "image" the picture
// @Tags Ads
// @Accept multipart/form-data
// @Produce json
// @Security BasicAuth
// @Param properties formData string true "CreateAdRequest JSON"
// @Param image formData file true "Ad image"
// @Success 200 {object} model.AdResponse
// @Failure 400
// @Failure 401
// @Router /ads [post]
func (s *RestHandler) CreateAd(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	if err := s.parseMultipart(w, r); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.CreateAdRequest
	if err := decodeProperties(r, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	upload, err := s.readImagePart(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AdsApp.Create(r.Context(), &req, principal.Email, upload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetAd handler
// @Summary Get ad
// @Tags Ads
// @Produce json
// @Param id path int true "Ad id"
// @Success 200 {object} model.FullAdResponse
// @Failure 404
// @Router /ads/{id} [get]
func (s *RestHandler) GetAd(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	res, err := s.AdsApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateAd handler
// @Summary Update ad
// @Description Fields left out of the body keep their value
// @Tags Ads
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path int true "Ad id"
// @Param request body model.UpdateAdRequest true "Ad fields"
// @Success 200 {object} model.AdResponse
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /ads/{id} [patch]
func (s *RestHandler) UpdateAd(w http.ResponseWriter, r *http.Request) {
	principal, _ := utilsContext.GetPrincipal(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	var req model.UpdateAdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AdsApp.Update(r.Context(), id, &req, principal)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteAd handler
// @Summary Delete ad
// @Description Removes the ad together with its comments and image
// @Tags Ads
// @Security BasicAuth
// @Param id path int true "Ad id"
// @Success 204
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /ads/{id} [delete]
func (s *RestHandler) DeleteAd(w http.ResponseWriter, r *http.Request) {
	principal, _ := utilsContext.GetPrincipal(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	if err := s.AdsApp.Delete(r.Context(), id, principal); err != nil {
		writeError(w, err)
		return
	}
	writeStatus(w, http.StatusNoContent)
}

// UpdateAdImage handler
// @Summary Replace ad image
// @Tags Ads
// @Accept multipart/form-data
// @Security BasicAuth
// @Param id path int true "Ad id"
// @Param image formData file true "New image"
// @Success 200
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /ads/{id}/image [patch]
func (s *RestHandler) UpdateAdImage(w http.ResponseWriter, r *http.Request) {
	principal, _ := utilsContext.GetPrincipal(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
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

	if err := s.AdsApp.ReplaceImage(r.Context(), id, upload, principal); err != nil {
		writeError(w, err)
		return
	}
	writeStatus(w, http.StatusOK)
}

// GetAdImage handler
// @Summary Ad image bytes
// @Tags Ads
// @Produce png
// @Param name path string true "Stored image name"
// @Success 200 {file} binary
// @Failure 404
// @Router /ads/image/{name} [get]
func (s *RestHandler) GetAdImage(w http.ResponseWriter, r *http.Request) {
	data, err := s.AdsApp.GetImage(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeImage(w, data)
}
