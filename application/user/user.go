package user

import (
	"context"

	appimage "github.com/muhammadheryan/classifieds/application/image"
	"github.com/muhammadheryan/classifieds/constant"
	"github.com/muhammadheryan/classifieds/model"
	txrepo "github.com/muhammadheryan/classifieds/repository/tx"
	userrepo "github.com/muhammadheryan/classifieds/repository/user"
	"github.com/muhammadheryan/classifieds/utils/credential"
	"github.com/muhammadheryan/classifieds/utils/errors"
	"github.com/muhammadheryan/classifieds/utils/logger"
	validatorx "github.com/muhammadheryan/classifieds/utils/validator"
	"go.uber.org/zap"
)

type UserApp interface {
	GetProfile(ctx context.Context, email string) (*model.UserResponse, error)
	UpdateProfile(ctx context.Context, email string, req *model.UpdateUserRequest) (*model.UserResponse, error)
	SetPassword(ctx context.Context, email string, req *model.NewPasswordRequest) (bool, error)
	ReplaceAvatar(ctx context.Context, email string, upload *model.ImageUpload) error
	GetAvatar(ctx context.Context, email string) ([]byte, error)
	GetImage(ctx context.Context, name string) ([]byte, error)
}

type UserAppImpl struct {
	userRepo   userrepo.UserRepository
	txRepo     txrepo.TxRepository
	imageApp   appimage.ImageApp
	credential credential.Service
}

func NewUserApp(userRepo userrepo.UserRepository, txRepo txrepo.TxRepository, imageApp appimage.ImageApp, credential credential.Service) UserApp {
	return &UserAppImpl{
		userRepo:   userRepo,
		txRepo:     txRepo,
		imageApp:   imageApp,
		credential: credential,
	}
}

func (s *UserAppImpl) GetProfile(ctx context.Context, email string) (*model.UserResponse, error) {
	user, err := s.findByEmail(ctx, "GetProfile", email)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// UpdateProfile applies the non-nil fields of req. Email and role never change here.
func (s *UserAppImpl) UpdateProfile(ctx context.Context, email string, req *model.UpdateUserRequest) (*model.UserResponse, error) {
	if req == nil || validatorx.ValidateStruct(req) != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	user, err := s.findByEmail(ctx, "UpdateProfile", email)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		logger.Error("[UpdateProfile] err userRepo.UpdateProfile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return ToUserResponse(user), nil
}

// SetPassword returns false together with the reason the change was refused.
func (s *UserAppImpl) SetPassword(ctx context.Context, email string, req *model.NewPasswordRequest) (bool, error) {
	if req == nil {
		return false, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: model.NormalizeEmail(email)})
	if err != nil {
		logger.Error("[SetPassword] err userRepo.Get", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return false, errors.SetCustomError(constant.ErrUnauthorize)
	}

	if !s.credential.Verify(user.PasswordHash, req.CurrentPassword) {
		return false, errors.SetCustomError(constant.ErrInvalidPassword)
	}
	if len(req.NewPassword) < constant.MinPasswordLength || len(req.NewPassword) > constant.MaxPasswordBytes {
		return false, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	hash, err := s.credential.Hash(req.NewPassword)
	if err != nil {
		logger.Error("[SetPassword] err credential.Hash", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		logger.Error("[SetPassword] err userRepo.UpdatePassword", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	return true, nil
}

// ReplaceAvatar stores the new image, swaps the reference and then drops the old file.
func (s *UserAppImpl) ReplaceAvatar(ctx context.Context, email string, upload *model.ImageUpload) error {
	if upload.Empty() {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	user, err := s.findByEmail(ctx, "ReplaceAvatar", email)
	if err != nil {
		return err
	}

	newPath, err := s.imageApp.Save(ctx, upload, constant.ImageScopeUsers)
	if err != nil {
		return err
	}

	swapped := false
	defer func() {
		if !swapped {
			s.imageApp.Discard(ctx, newPath, constant.ImageScopeUsers, "avatar replace aborted")
		}
	}()

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReplaceAvatar] err BeginTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	locked, err := s.userRepo.GetForUpdateTx(ctx, tx, user.ID)
	if err != nil {
		logger.Error("[ReplaceAvatar] err userRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if locked == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.userRepo.UpdateImageTx(ctx, tx, locked.ID, newPath); err != nil {
		logger.Error("[ReplaceAvatar] err userRepo.UpdateImageTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReplaceAvatar] err CommitTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	swapped = true

	if locked.ImagePath != nil && *locked.ImagePath != newPath {
		s.imageApp.Discard(ctx, *locked.ImagePath, constant.ImageScopeUsers, "avatar replaced")
	}
	return nil
}

func (s *UserAppImpl) GetAvatar(ctx context.Context, email string) ([]byte, error) {
	user, err := s.findByEmail(ctx, "GetAvatar", email)
	if err != nil {
		return nil, err
	}
	if user.ImagePath == nil || *user.ImagePath == "" {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return s.imageApp.Get(ctx, *user.ImagePath, constant.ImageScopeUsers)
}

func (s *UserAppImpl) GetImage(ctx context.Context, name string) ([]byte, error) {
	return s.imageApp.Get(ctx, name, constant.ImageScopeUsers)
}

func (s *UserAppImpl) findByEmail(ctx context.Context, op, email string) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: model.NormalizeEmail(email)})
	if err != nil {
		logger.Error("["+op+"] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}

// ToUserResponse maps a stored user to its wire shape.
func ToUserResponse(user *model.UserEntity) *model.UserResponse {
	resp := &model.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Role:      user.Role,
	}
	if user.ImagePath != nil && *user.ImagePath != "" {
		url := constant.UserImageURLPrefix + *user.ImagePath
		resp.Image = &url
	}
	return resp
}
