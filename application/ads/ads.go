package ads

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/classifieds/application/access"
	appimage "github.com/muhammadheryan/classifieds/application/image"
	"github.com/muhammadheryan/classifieds/constant"
	"github.com/muhammadheryan/classifieds/model"
	adrepo "github.com/muhammadheryan/classifieds/repository/ad"
	commentrepo "github.com/muhammadheryan/classifieds/repository/comment"
	txrepo "github.com/muhammadheryan/classifieds/repository/tx"
	userrepo "github.com/muhammadheryan/classifieds/repository/user"
	"github.com/muhammadheryan/classifieds/utils/errors"
	"github.com/muhammadheryan/classifieds/utils/logger"
	validatorx "github.com/muhammadheryan/classifieds/utils/validator"
	"go.uber.org/zap"
)

type AdsApp interface {
	List(ctx context.Context) (*model.AdsResponse, error)
	ListMine(ctx context.Context, email string) (*model.AdsResponse, error)
	Create(ctx context.Context, req *model.CreateAdRequest, ownerEmail string, upload *model.ImageUpload) (*model.AdResponse, error)
	Get(ctx context.Context, id uint64) (*model.FullAdResponse, error)
	Update(ctx context.Context, id uint64, req *model.UpdateAdRequest, principal *model.Principal) (*model.AdResponse, error)
	Delete(ctx context.Context, id uint64, principal *model.Principal) error
	ReplaceImage(ctx context.Context, id uint64, upload *model.ImageUpload, principal *model.Principal) error
	GetImage(ctx context.Context, name string) ([]byte, error)

	ListComments(ctx context.Context, adID uint64) (*model.CommentsResponse, error)
	GetComment(ctx context.Context, adID, commentID uint64) (*model.CommentResponse, error)
	AddComment(ctx context.Context, adID uint64, req *model.CreateCommentRequest, authorEmail string) (*model.CommentResponse, error)
	UpdateComment(ctx context.Context, adID, commentID uint64, req *model.CreateCommentRequest, principal *model.Principal) (*model.CommentResponse, error)
	DeleteComment(ctx context.Context, adID, commentID uint64, principal *model.Principal) error
}

type AdsAppImpl struct {
	adRepo      adrepo.AdRepository
	commentRepo commentrepo.CommentRepository
	userRepo    userrepo.UserRepository
	txRepo      txrepo.TxRepository
	imageApp    appimage.ImageApp
	evaluator   access.Evaluator
}

func NewAdsApp(
	adRepo adrepo.AdRepository,
	commentRepo commentrepo.CommentRepository,
	userRepo userrepo.UserRepository,
	txRepo txrepo.TxRepository,
	imageApp appimage.ImageApp,
	evaluator access.Evaluator,
) AdsApp {
	return &AdsAppImpl{
		adRepo:      adRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		txRepo:      txRepo,
		imageApp:    imageApp,
		evaluator:   evaluator,
	}
}

// List returns every ad ordered by id.
func (s *AdsAppImpl) List(ctx context.Context) (*model.AdsResponse, error) {
	ads, err := s.adRepo.List(ctx, &model.AdFilter{})
	if err != nil {
		logger.Error("[ListAds] err adRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return toAdsResponse(ads), nil
}

func (s *AdsAppImpl) ListMine(ctx context.Context, email string) (*model.AdsResponse, error) {
	owner, err := s.findUser(ctx, "ListMine", email)
	if err != nil {
		return nil, err
	}
	ads, err := s.adRepo.List(ctx, &model.AdFilter{UserID: owner.ID})
	if err != nil {
		logger.Error("[ListMine] err adRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return toAdsResponse(ads), nil
}

// Create saves the image first; the ad row is only written once the file exists.
func (s *AdsAppImpl) Create(ctx context.Context, req *model.CreateAdRequest, ownerEmail string, upload *model.ImageUpload) (*model.AdResponse, error) {
	if req == nil || validatorx.ValidateStruct(req) != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if upload.Empty() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	owner, err := s.findUser(ctx, "CreateAd", ownerEmail)
	if err != nil {
		return nil, err
	}

	imagePath, err := s.imageApp.Save(ctx, upload, constant.ImageScopeAds)
	if err != nil {
		return nil, err
	}

	ad, err := s.adRepo.Create(ctx, &model.AdEntity{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		ImagePath:   imagePath,
		UserID:      owner.ID,
	})
	if err != nil {
		logger.Error("[CreateAd] err adRepo.Create", zap.String("error", err.Error()))
		s.imageApp.Discard(ctx, imagePath, constant.ImageScopeAds, "ad insert failed")
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Debug("[CreateAd] ad created", zap.Uint64("ad_id", ad.ID), zap.Uint64("user_id", owner.ID))
	return toAdResponse(ad), nil
}

func (s *AdsAppImpl) Get(ctx context.Context, id uint64) (*model.FullAdResponse, error) {
	ad, err := s.findAd(ctx, "GetAd", id)
	if err != nil {
		return nil, err
	}
	return toFullAdResponse(ad), nil
}

// Update replaces only the fields present in req.
func (s *AdsAppImpl) Update(ctx context.Context, id uint64, req *model.UpdateAdRequest, principal *model.Principal) (*model.AdResponse, error) {
	if principal == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	ad, err := s.findAd(ctx, "UpdateAd", id)
	if err != nil {
		return nil, err
	}
	if err := s.evaluator.Authorize(principal, ad); err != nil {
		return nil, err
	}
	if req == nil || validatorx.ValidateStruct(req) != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if req.Title != nil {
		ad.Title = *req.Title
	}
	if req.Description != nil {
		ad.Description = *req.Description
	}
	if req.Price != nil {
		ad.Price = *req.Price
	}

	if err := s.adRepo.Update(ctx, &ad.AdEntity); err != nil {
		logger.Error("[UpdateAd] err adRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return toAdResponse(&ad.AdEntity), nil
}

// Delete removes the ad's comments, then its image, then the ad itself.
// Both row deletions share one transaction; the file removal is best-effort.
func (s *AdsAppImpl) Delete(ctx context.Context, id uint64, principal *model.Principal) error {
	if principal == nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteAd] err BeginTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	ad, err := s.adRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.Error("[DeleteAd] err adRepo.GetByIDTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if ad == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if err := s.evaluator.Authorize(principal, ad); err != nil {
		return err
	}

	removed, err := s.commentRepo.DeleteByAdTx(ctx, tx, id)
	if err != nil {
		logger.Error("[DeleteAd] err commentRepo.DeleteByAdTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	s.imageApp.Discard(ctx, ad.ImagePath, constant.ImageScopeAds, "ad deleted")

	if err := s.adRepo.DeleteTx(ctx, tx, id); err != nil {
		logger.Error("[DeleteAd] err adRepo.DeleteTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteAd] err CommitTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	logger.Debug("[DeleteAd] ad deleted", zap.Uint64("ad_id", id), zap.Int64("comments_removed", removed))
	return nil
}

// ReplaceImage stores the new file, points the ad at it and then drops the old one.
func (s *AdsAppImpl) ReplaceImage(ctx context.Context, id uint64, upload *model.ImageUpload, principal *model.Principal) error {
	if principal == nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	ad, err := s.findAd(ctx, "ReplaceAdImage", id)
	if err != nil {
		return err
	}
	if err := s.evaluator.Authorize(principal, ad); err != nil {
		return err
	}
	if upload.Empty() {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	newPath, err := s.imageApp.Save(ctx, upload, constant.ImageScopeAds)
	if err != nil {
		return err
	}

	oldPath, err := s.swapImage(ctx, id, newPath)
	if err != nil {
		s.imageApp.Discard(ctx, newPath, constant.ImageScopeAds, "ad image replace aborted")
		return err
	}
	if oldPath != "" && oldPath != newPath {
		s.imageApp.Discard(ctx, oldPath, constant.ImageScopeAds, "ad image replaced")
	}
	return nil
}

// swapImage points ad id at newPath and returns the path it replaced.
func (s *AdsAppImpl) swapImage(ctx context.Context, id uint64, newPath string) (string, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReplaceAdImage] err BeginTx", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	ad, err := s.adRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.Error("[ReplaceAdImage] err adRepo.GetByIDTx", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if ad == nil {
		return "", errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.adRepo.UpdateImageTx(ctx, tx, id, newPath); err != nil {
		logger.Error("[ReplaceAdImage] err adRepo.UpdateImageTx", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReplaceAdImage] err CommitTx", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return ad.ImagePath, nil
}

func (s *AdsAppImpl) GetImage(ctx context.Context, name string) ([]byte, error) {
	return s.imageApp.Get(ctx, name, constant.ImageScopeAds)
}

func (s *AdsAppImpl) findAd(ctx context.Context, op string, id uint64) (*model.AdDetail, error) {
	ad, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] err adRepo.GetByID", op), zap.Uint64("ad_id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if ad == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return ad, nil
}

func (s *AdsAppImpl) findUser(ctx context.Context, op, email string) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: model.NormalizeEmail(email)})
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] err userRepo.Get", op), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}
