package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/classifieds/constant"
	"github.com/muhammadheryan/classifieds/model"
	utilsContext "github.com/muhammadheryan/classifieds/utils/context"
	"github.com/muhammadheryan/classifieds/utils/errors"
)

// ListComments handler
// @Summary List comments of an ad
// @Description Oldest first
// @Tags Comments
// @Produce json
// @Security BasicAuth
// @Param id path int true "Ad id"
// @Success 200 {object} model.CommentsResponse
// @Failure 404
// @Router /ads/{id}/comments [get]
func (s *RestHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	adID, ok := pathID(r, "id")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	res, err := s.AdsApp.ListComments(r.Context(), adID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AddComment handler
// @Summary Comment on an ad
// @Tags Comments
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path int true "Ad id"
// @Param request body model.CreateCommentRequest true "Comment"
// @Success 200 {object} model.CommentResponse
// @Failure 400
// @Failure 401
// @Failure 404
// @Router /ads/{id}/comments [post]
func (s *RestHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	adID, ok := pathID(r, "id")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	var req model.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AdsApp.AddComment(r.Context(), adID, &req, principal.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetComment handler
// @Summary Get a comment
// @Tags Comments
// @Produce json
// @Security BasicAuth
// @Param adId path int true "Ad id"
// @Param commentId path int true "Comment id"
// @Success 200 {object} model.CommentResponse
// @Failure 404
// @Router /ads/{adId}/comments/{commentId} [get]
func (s *RestHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	adID, commentID, ok := commentPath(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	res, err := s.AdsApp.GetComment(r.Context(), adID, commentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateComment handler
// @Summary Edit a comment
// @Description Only the comment author or an admin may edit
// @Tags Comments
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param adId path int true "Ad id"
// @Param commentId path int true "Comment id"
// @Param request body model.CreateCommentRequest true "Comment"
// @Success 200 {object} model.CommentResponse
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /ads/{adId}/comments/{commentId} [patch]
func (s *RestHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	principal, _ := utilsContext.GetPrincipal(r.Context())
	adID, commentID, ok := commentPath(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	var req model.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AdsApp.UpdateComment(r.Context(), adID, commentID, &req, principal)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteComment handler
// @Summary Delete a comment
// @Tags Comments
// @Security BasicAuth
// @Param adId path int true "Ad id"
// @Param commentId path int true "Comment id"
// @Success 204
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /ads/{adId}/comments/{commentId} [delete]
func (s *RestHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	principal, _ := utilsContext.GetPrincipal(r.Context())
	adID, commentID, ok := commentPath(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	if err := s.AdsApp.DeleteComment(r.Context(), adID, commentID, principal); err != nil {
		writeError(w, err)
		return
	}
	writeStatus(w, http.StatusNoContent)
}

func commentPath(r *http.Request) (uint64, uint64, bool) {
	adID, ok := pathID(r, "adId")
	if !ok {
		return 0, 0, false
	}
	commentID, ok := pathID(r, "commentId")
	return adID, commentID, ok
}
