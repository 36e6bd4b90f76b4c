package ads

import (
	"context"
	"time"

	"github.com/muhammadheryan/classifieds/constant"
	"github.com/muhammadheryan/classifieds/model"
	"github.com/muhammadheryan/classifieds/utils/errors"
	"github.com/muhammadheryan/classifieds/utils/logger"
	validatorx "github.com/muhammadheryan/classifieds/utils/validator"
	"go.uber.org/zap"
)

// ListComments returns the ad's comments oldest first.
func (s *AdsAppImpl) ListComments(ctx context.Context, adID uint64) (*model.CommentsResponse, error) {
	if _, err := s.findAd(ctx, "ListComments", adID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByAd(ctx, adID)
	if err != nil {
		logger.Error("[ListComments] err commentRepo.ListByAd", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return toCommentsResponse(comments), nil
}

func (s *AdsAppImpl) GetComment(ctx context.Context, adID, commentID uint64) (*model.CommentResponse, error) {
	comment, err := s.findComment(ctx, "GetComment", adID, commentID)
	if err != nil {
		return nil, err
	}
	return toCommentResponse(comment), nil
}

func (s *AdsAppImpl) AddComment(ctx context.Context, adID uint64, req *model.CreateCommentRequest, authorEmail string) (*model.CommentResponse, error) {
	if req == nil || validatorx.ValidateStruct(req) != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if _, err := s.findAd(ctx, "AddComment", adID); err != nil {
		return nil, err
	}
	author, err := s.findUser(ctx, "AddComment", authorEmail)
	if err != nil {
		return nil, err
	}

	created, err := s.commentRepo.Create(ctx, &model.CommentEntity{
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		Text:      req.Text,
		AdID:      adID,
		UserID:    author.ID,
	})
	if err != nil {
		logger.Error("[AddComment] err commentRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return toCommentResponse(&model.CommentDetail{
		CommentEntity:   *created,
		AuthorEmail:     author.Email,
		AuthorFirstName: author.FirstName,
		AuthorImagePath: author.ImagePath,
	}), nil
}

// UpdateComment changes the text only. Ownership is the comment author's, not the ad's.
func (s *AdsAppImpl) UpdateComment(ctx context.Context, adID, commentID uint64, req *model.CreateCommentRequest, principal *model.Principal) (*model.CommentResponse, error) {
	if principal == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	comment, err := s.findComment(ctx, "UpdateComment", adID, commentID)
	if err != nil {
		return nil, err
	}
	if err := s.evaluator.Authorize(principal, comment); err != nil {
		return nil, err
	}
	if req == nil || validatorx.ValidateStruct(req) != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := s.commentRepo.UpdateText(ctx, comment.ID, req.Text); err != nil {
		logger.Error("[UpdateComment] err commentRepo.UpdateText", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	comment.Text = req.Text
	return toCommentResponse(comment), nil
}

func (s *AdsAppImpl) DeleteComment(ctx context.Context, adID, commentID uint64, principal *model.Principal) error {
	if principal == nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	comment, err := s.findComment(ctx, "DeleteComment", adID, commentID)
	if err != nil {
		return err
	}
	if err := s.evaluator.Authorize(principal, comment); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, comment.ID); err != nil {
		logger.Error("[DeleteComment] err commentRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *AdsAppImpl) findComment(ctx context.Context, op string, adID, commentID uint64) (*model.CommentDetail, error) {
	comment, err := s.commentRepo.Get(ctx, adID, commentID)
	if err != nil {
		logger.Error("["+op+"] err commentRepo.Get", zap.Uint64("comment_id", commentID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if comment == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return comment, nil
}
