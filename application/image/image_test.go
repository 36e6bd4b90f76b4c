package image_test

import (
	"context"
	"errors"
	"testing"

	appimage "github.com/muhammadheryan/classifieds/application/image"
	"github.com/muhammadheryan/classifieds/constant"
	admocks "github.com/muhammadheryan/classifieds/mocks/repository/ad"
	imagemocks "github.com/muhammadheryan/classifieds/mocks/repository/image"
	usermocks "github.com/muhammadheryan/classifieds/mocks/repository/user"
	rabbitmocks "github.com/muhammadheryan/classifieds/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/classifieds/model"
	imagerepo "github.com/muhammadheryan/classifieds/repository/image"
	cerr "github.com/muhammadheryan/classifieds/utils/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	imageRepo *imagemocks.ImageRepository
	adRepo    *admocks.AdRepository
	userRepo  *usermocks.UserRepository
	publisher *rabbitmocks.EventPublisher
}

func newFields(t *testing.T) fields {
	return fields{
		imageRepo: imagemocks.NewImageRepository(t),
		adRepo:    admocks.NewAdRepository(t),
		userRepo:  usermocks.NewUserRepository(t),
		publisher: rabbitmocks.NewEventPublisher(t),
	}
}

func (f fields) app() appimage.ImageApp {
	return appimage.NewImageApp(f.imageRepo, f.adRepo, f.userRepo, f.publisher)
}

func TestImageApp_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("stores in scope", func(t *testing.T) {
		f := newFields(t)
		f.imageRepo.On("Save", []byte{1}, "a.png", constant.ImageScopeAds).Return("ads_x.png", nil).Once()

		path, err := f.app().Save(ctx, &model.ImageUpload{Filename: "a.png", Data: []byte{1}}, constant.ImageScopeAds)
		require.NoError(t, err)
		require.Equal(t, "ads_x.png", path)
	})
	t.Run("rejects empty upload", func(t *testing.T) {
		f := newFields(t)
		_, err := f.app().Save(ctx, &model.ImageUpload{Filename: "a.png"}, constant.ImageScopeAds)
		require.True(t, cerr.Is(err, constant.ErrInvalidRequest))
	})
	t.Run("store failure is internal", func(t *testing.T) {
		f := newFields(t)
		f.imageRepo.On("Save", []byte{1}, "a.png", constant.ImageScopeUsers).Return("", errors.New("disk full")).Once()

		_, err := f.app().Save(ctx, &model.ImageUpload{Filename: "a.png", Data: []byte{1}}, constant.ImageScopeUsers)
		require.True(t, cerr.Is(err, constant.ErrInternal))
	})
}

func TestImageApp_Get(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		scope    constant.ImageScope
		mockCall func(f fields)
		want     []byte
		errCode  constant.ErrorType
	}{
		{
			name:  "reads own scope",
			file:  "ads_a.png",
			scope: constant.ImageScopeAds,
			mockCall: func(f fields) {
				f.imageRepo.On("Read", "ads_a.png").Return([]byte{7}, nil).Once()
			},
			want: []byte{7},
		},
		{
			name:    "foreign scope is not found",
			file:    "users_a.png",
			scope:   constant.ImageScopeAds,
			errCode: constant.ErrNotFound,
		},
		{
			name:  "missing file",
			file:  "ads_gone.png",
			scope: constant.ImageScopeAds,
			mockCall: func(f fields) {
				f.imageRepo.On("Read", "ads_gone.png").Return(nil, imagerepo.ErrNotFound).Once()
			},
			errCode: constant.ErrNotFound,
		},
		{
			name:  "io failure",
			file:  "users_a.png",
			scope: constant.ImageScopeUsers,
			mockCall: func(f fields) {
				f.imageRepo.On("Read", "users_a.png").Return(nil, errors.New("eio")).Once()
			},
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			got, err := f.app().Get(context.Background(), tt.file, tt.scope)
			if tt.want != nil {
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
				return
			}
			require.True(t, cerr.Is(err, tt.errCode), "got %v", err)
		})
	}
}

func TestImageApp_Discard(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted quietly", func(t *testing.T) {
		f := newFields(t)
		f.imageRepo.On("DeleteIfPresent", "ads_a.png").Return(nil).Once()
		f.app().Discard(ctx, "ads_a.png", constant.ImageScopeAds, "ad deleted")
	})
	t.Run("empty path is ignored", func(t *testing.T) {
		f := newFields(t)
		f.app().Discard(ctx, "", constant.ImageScopeAds, "ad deleted")
	})
	t.Run("failure publishes orphan event", func(t *testing.T) {
		f := newFields(t)
		f.imageRepo.On("DeleteIfPresent", "ads_a.png").Return(errors.New("busy")).Once()
		f.publisher.On("PublishImageOrphaned", mock.MatchedBy(func(m model.ImageOrphanedMessage) bool {
			return m.Path == "ads_a.png" && m.Scope == constant.ImageScopeAds && m.Reason == "ad deleted" && !m.OccurredAt.IsZero()
		})).Return(nil).Once()

		f.app().Discard(ctx, "ads_a.png", constant.ImageScopeAds, "ad deleted")
	})
	t.Run("publish failure is swallowed", func(t *testing.T) {
		f := newFields(t)
		f.imageRepo.On("DeleteIfPresent", "users_a.png").Return(errors.New("busy")).Once()
		f.publisher.On("PublishImageOrphaned", mock.Anything).Return(errors.New("broker down")).Once()

		f.app().Discard(ctx, "users_a.png", constant.ImageScopeUsers, "avatar replaced")
	})
	t.Run("no publisher configured", func(t *testing.T) {
		imageRepo := imagemocks.NewImageRepository(t)
		imageRepo.On("DeleteIfPresent", "ads_a.png").Return(errors.New("busy")).Once()

		app := appimage.NewImageApp(imageRepo, admocks.NewAdRepository(t), usermocks.NewUserRepository(t), nil)
		app.Discard(ctx, "ads_a.png", constant.ImageScopeAds, "ad deleted")
	})
}

func TestImageApp_PurgeOrphan(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "unreferenced file is removed",
			file: "ads_a.png",
			mockCall: func(f fields) {
				f.adRepo.On("CountByImagePath", mock.Anything, "ads_a.png").Return(int64(0), nil).Once()
				f.userRepo.On("CountByImagePath", mock.Anything, "ads_a.png").Return(int64(0), nil).Once()
				f.imageRepo.On("DeleteIfPresent", "ads_a.png").Return(nil).Once()
			},
		},
		{
			name: "referenced by an ad",
			file: "ads_a.png",
			mockCall: func(f fields) {
				f.adRepo.On("CountByImagePath", mock.Anything, "ads_a.png").Return(int64(1), nil).Once()
				f.userRepo.On("CountByImagePath", mock.Anything, "ads_a.png").Return(int64(0), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrImageReferenced,
		},
		{
			name: "referenced by a user",
			file: "users_a.png",
			mockCall: func(f fields) {
				f.adRepo.On("CountByImagePath", mock.Anything, "users_a.png").Return(int64(0), nil).Once()
				f.userRepo.On("CountByImagePath", mock.Anything, "users_a.png").Return(int64(1), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrImageReferenced,
		},
		{
			name:    "unknown scope",
			file:    "../etc/passwd",
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "count failure",
			file: "ads_a.png",
			mockCall: func(f fields) {
				f.adRepo.On("CountByImagePath", mock.Anything, "ads_a.png").Return(int64(0), errors.New("db")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			err := f.app().PurgeOrphan(context.Background(), tt.file)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PurgeOrphan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				require.True(t, cerr.Is(err, tt.errCode), "got %v", err)
			}
		})
	}
}
