package image

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/muhammadheryan/classifieds/constant"
	"github.com/muhammadheryan/classifieds/model"
	adrepo "github.com/muhammadheryan/classifieds/repository/ad"
	imagerepo "github.com/muhammadheryan/classifieds/repository/image"
	userrepo "github.com/muhammadheryan/classifieds/repository/user"
	"github.com/muhammadheryan/classifieds/thirdparty/rabbitmq"
	"github.com/muhammadheryan/classifieds/utils/errors"
	"github.com/muhammadheryan/classifieds/utils/logger"
	"github.com/muhammadheryan/classifieds/utils/metrics"
	"go.uber.org/zap"
)

// ImageApp applies the image lifecycle rules on top of the image store.
type ImageApp interface {
	Save(ctx context.Context, upload *model.ImageUpload, scope constant.ImageScope) (string, error)
	Get(ctx context.Context, name string, scope constant.ImageScope) ([]byte, error)
	Discard(ctx context.Context, path string, scope constant.ImageScope, reason string)
	PurgeOrphan(ctx context.Context, name string) error
}

type imageAppImpl struct {
	imageRepo imagerepo.ImageRepository
	adRepo    adrepo.AdRepository
	userRepo  userrepo.UserRepository
	publisher rabbitmq.EventPublisher
}

// NewImageApp builds an ImageApp. publisher may be nil, in which case orphans are only logged.
func NewImageApp(imageRepo imagerepo.ImageRepository, adRepo adrepo.AdRepository, userRepo userrepo.UserRepository, publisher rabbitmq.EventPublisher) ImageApp {
	return &imageAppImpl{
		imageRepo: imageRepo,
		adRepo:    adRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func (s *imageAppImpl) Save(ctx context.Context, upload *model.ImageUpload, scope constant.ImageScope) (string, error) {
	if upload.Empty() {
		return "", errors.SetCustomError(constant.ErrInvalidRequest)
	}
	path, err := s.imageRepo.Save(upload.Data, upload.Filename, scope)
	if err != nil {
		logger.Error("[SaveImage] err imageRepo.Save", zap.String("scope", string(scope)), zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	return path, nil
}

// Get only serves names allocated for scope.
func (s *imageAppImpl) Get(ctx context.Context, name string, scope constant.ImageScope) ([]byte, error) {
	if !imagerepo.InScope(name, scope) {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	data, err := s.imageRepo.Read(name)
	if err != nil {
		if stderrors.Is(err, imagerepo.ErrNotFound) {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[GetImage] err imageRepo.Read", zap.String("name", name), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return data, nil
}

// Discard removes a file nobody references any more. Failures leak an orphan
// and are reported, never returned.
func (s *imageAppImpl) Discard(ctx context.Context, path string, scope constant.ImageScope, reason string) {
	if path == "" {
		return
	}
	err := s.imageRepo.DeleteIfPresent(path)
	if err == nil {
		return
	}

	logger.Warn("[DiscardImage] orphaned image left on disk",
		zap.String("path", path),
		zap.String("reason", reason),
		zap.String("error", err.Error()),
	)
	metrics.RecordOrphanedImage(string(scope))

	if s.publisher == nil {
		return
	}
	msg := model.ImageOrphanedMessage{
		Path:       path,
		Scope:      scope,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishImageOrphaned(msg); err != nil {
		logger.Error("[DiscardImage] publish image orphaned", zap.String("path", path), zap.String("error", err.Error()))
	}
}

// PurgeOrphan deletes name unless an ad or a user still points at it.
func (s *imageAppImpl) PurgeOrphan(ctx context.Context, name string) error {
	if !imagerepo.InScope(name, constant.ImageScopeAds) && !imagerepo.InScope(name, constant.ImageScopeUsers) {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	adRefs, err := s.adRepo.CountByImagePath(ctx, name)
	if err != nil {
		logger.Error("[PurgeOrphan] err adRepo.CountByImagePath", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	userRefs, err := s.userRepo.CountByImagePath(ctx, name)
	if err != nil {
		logger.Error("[PurgeOrphan] err userRepo.CountByImagePath", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if adRefs+userRefs > 0 {
		return errors.SetCustomError(constant.ErrImageReferenced)
	}

	if err := s.imageRepo.DeleteIfPresent(name); err != nil {
		logger.Error("[PurgeOrphan] err imageRepo.DeleteIfPresent", zap.String("name", name), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	logger.Info("[PurgeOrphan] removed orphaned image", zap.String("name", name))
	return nil
}
