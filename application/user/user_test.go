package user_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	appuser "github.com/muhammadheryan/classifieds/application/user"
	"github.com/muhammadheryan/classifieds/constant"
	imagemocks "github.com/muhammadheryan/classifieds/mocks/application/image"
	txmocks "github.com/muhammadheryan/classifieds/mocks/repository/tx"
	usermocks "github.com/muhammadheryan/classifieds/mocks/repository/user"
	credentialmocks "github.com/muhammadheryan/classifieds/mocks/utils/credential"
	"github.com/muhammadheryan/classifieds/model"
	cerr "github.com/muhammadheryan/classifieds/utils/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	userRepo   *usermocks.UserRepository
	txRepo     *txmocks.TxRepository
	imageApp   *imagemocks.ImageApp
	credential *credentialmocks.Service
}

func newFields(t *testing.T) fields {
	return fields{
		userRepo:   usermocks.NewUserRepository(t),
		txRepo:     txmocks.NewTxRepository(t),
		imageApp:   imagemocks.NewImageApp(t),
		credential: credentialmocks.NewService(t),
	}
}

func (f fields) app() appuser.UserApp {
	return appuser.NewUserApp(f.userRepo, f.txRepo, f.imageApp, f.credential)
}

func requireErrorType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func strPtr(s string) *string { return &s }

func TestUserApp_GetProfile(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		mockCall func(f fields)
		want     *model.UserResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: with avatar url",
			email: "A@ex.com",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@ex.com"}).
					Return(&model.UserEntity{
						ID:        1,
						Email:     "a@ex.com",
						FirstName: "Ann",
						LastName:  "Lee",
						Phone:     "+1",
						ImagePath: strPtr("users_abc.png"),
						Role:      constant.RoleUser,
					}, nil).Once()
			},
			want: &model.UserResponse{
				ID:        1,
				Email:     "a@ex.com",
				FirstName: "Ann",
				LastName:  "Lee",
				Phone:     "+1",
				Image:     strPtr("/users/image/users_abc.png"),
				Role:      constant.RoleUser,
			},
		},
		{
			name:  "error: user not found",
			email: "ghost@ex.com",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ghost@ex.com"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:  "error: repository failure",
			email: "a@ex.com",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@ex.com"}).Return(nil, errors.New("db")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().GetProfile(context.Background(), tt.email)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetProfile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				requireErrorType(t, err, tt.errCode)
				return
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestUserApp_UpdateProfile_PartialPatch(t *testing.T) {
	f := newFields(t)
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@ex.com"}).
		Return(&model.UserEntity{ID: 1, Email: "a@ex.com", FirstName: "Ann", LastName: "Lee", Phone: "+1", Role: constant.RoleUser}, nil).Once()
	f.userRepo.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(u *model.UserEntity) bool {
		return u.ID == 1 && u.Email == "a@ex.com" && u.FirstName == "Anna" && u.LastName == "Lee" && u.Phone == "+1"
	})).Return(nil).Once()

	got, err := f.app().UpdateProfile(context.Background(), "a@ex.com", &model.UpdateUserRequest{FirstName: strPtr("Anna")})
	require.NoError(t, err)
	require.Equal(t, "Anna", got.FirstName)
	require.Equal(t, "Lee", got.LastName)
	require.Equal(t, "a@ex.com", got.Email)
	require.Nil(t, got.Image)
}

func TestUserApp_UpdateProfile_Errors(t *testing.T) {
	t.Run("invalid patch", func(t *testing.T) {
		f := newFields(t)
		long := string(make([]byte, 65))
		_, err := f.app().UpdateProfile(context.Background(), "a@ex.com", &model.UpdateUserRequest{FirstName: &long})
		requireErrorType(t, err, constant.ErrInvalidRequest)
	})
	t.Run("user missing", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@ex.com"}).Return(nil, nil).Once()
		_, err := f.app().UpdateProfile(context.Background(), "a@ex.com", &model.UpdateUserRequest{})
		requireErrorType(t, err, constant.ErrNotFound)
	})
}

func TestUserApp_SetPassword(t *testing.T) {
	stored := &model.UserEntity{ID: 3, Email: "a@ex.com", PasswordHash: "hash-old"}

	tests := []struct {
		name     string
		req      *model.NewPasswordRequest
		mockCall func(f fields)
		want     bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			req:  &model.NewPasswordRequest{CurrentPassword: "pw12345X", NewPassword: "newpwd12"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@ex.com"}).Return(stored, nil).Once()
				f.credential.On("Verify", "hash-old", "pw12345X").Return(true).Once()
				f.credential.On("Hash", "newpwd12").Return("hash-new", nil).Once()
				f.userRepo.On("UpdatePassword", mock.Anything, uint64(3), "hash-new").Return(nil).Once()
			},
			want: true,
		},
		{
			name: "wrong current password",
			req:  &model.NewPasswordRequest{CurrentPassword: "wrong", NewPassword: "newpwd12"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@ex.com"}).Return(stored, nil).Once()
				f.credential.On("Verify", "hash-old", "wrong").Return(false).Once()
			},
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "user missing",
			req:  &model.NewPasswordRequest{CurrentPassword: "pw12345X", NewPassword: "newpwd12"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@ex.com"}).Return(nil, nil).Once()
			},
			errCode: constant.ErrUnauthorize,
		},
		{
			name: "new password too short",
			req:  &model.NewPasswordRequest{CurrentPassword: "pw12345X", NewPassword: "short"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@ex.com"}).Return(stored, nil).Once()
				f.credential.On("Verify", "hash-old", "pw12345X").Return(true).Once()
			},
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "new password longer than bcrypt accepts",
			req:  &model.NewPasswordRequest{CurrentPassword: "pw12345X", NewPassword: strings.Repeat("x", 73)},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@ex.com"}).Return(stored, nil).Once()
				f.credential.On("Verify", "hash-old", "pw12345X").Return(true).Once()
			},
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "persist failure",
			req:  &model.NewPasswordRequest{CurrentPassword: "pw12345X", NewPassword: "newpwd12"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@ex.com"}).Return(stored, nil).Once()
				f.credential.On("Verify", "hash-old", "pw12345X").Return(true).Once()
				f.credential.On("Hash", "newpwd12").Return("hash-new", nil).Once()
				f.userRepo.On("UpdatePassword", mock.Anything, uint64(3), "hash-new").Return(errors.New("db")).Once()
			},
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().SetPassword(context.Background(), "a@ex.com", tt.req)
			require.Equal(t, tt.want, got)
			if tt.want {
				require.NoError(t, err)
				return
			}
			requireErrorType(t, err, tt.errCode)
		})
	}
}

func TestUserApp_ReplaceAvatar(t *testing.T) {
	upload := &model.ImageUpload{Filename: "me.png", Data: []byte{1, 2, 3, 4}}
	current := &model.UserEntity{ID: 5, Email: "a@ex.com", ImagePath: strPtr("users_old.png")}

	tests := []struct {
		name     string
		upload   *model.ImageUpload
		mockCall func(f fields, tx *sqlx.Tx)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: swaps then discards old file",
			upload: upload,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@ex.com"}).Return(current, nil).Once()
				f.imageApp.On("Save", mock.Anything, upload, constant.ImageScopeUsers).Return("users_new.png", nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.userRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(5)).Return(current, nil).Once()
				f.userRepo.On("UpdateImageTx", mock.Anything, tx, uint64(5), "users_new.png").Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.imageApp.On("Discard", mock.Anything, "users_old.png", constant.ImageScopeUsers, mock.Anything).Return().Once()
			},
		},
		{
			name:   "success: first avatar has nothing to discard",
			upload: upload,
			mockCall: func(f fields, tx *sqlx.Tx) {
				fresh := &model.UserEntity{ID: 5, Email: "a@ex.com"}
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@ex.com"}).Return(fresh, nil).Once()
				f.imageApp.On("Save", mock.Anything, upload, constant.ImageScopeUsers).Return("users_new.png", nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.userRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(5)).Return(fresh, nil).Once()
				f.userRepo.On("UpdateImageTx", mock.Anything, tx, uint64(5), "users_new.png").Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name:    "error: empty image",
			upload:  &model.ImageUpload{Filename: "x.png"},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:   "error: user missing",
			upload: upload,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@ex.com"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:   "error: save failure leaves user untouched",
			upload: upload,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@ex.com"}).Return(current, nil).Once()
				f.imageApp.On("Save", mock.Anything, upload, constant.ImageScopeUsers).Return("", cerr.SetCustomError(constant.ErrInternal)).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name:   "error: update failure discards new file",
			upload: upload,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@ex.com"}).Return(current, nil).Once()
				f.imageApp.On("Save", mock.Anything, upload, constant.ImageScopeUsers).Return("users_new.png", nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.userRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(5)).Return(current, nil).Once()
				f.userRepo.On("UpdateImageTx", mock.Anything, tx, uint64(5), "users_new.png").Return(errors.New("db")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.imageApp.On("Discard", mock.Anything, "users_new.png", constant.ImageScopeUsers, mock.Anything).Return().Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tx := &sqlx.Tx{}
			if tt.mockCall != nil {
				tt.mockCall(f, tx)
			}

			err := f.app().ReplaceAvatar(context.Background(), "a@ex.com", tt.upload)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReplaceAvatar() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				requireErrorType(t, err, tt.errCode)
			}
		})
	}
}

func TestUserApp_GetAvatar(t *testing.T) {
	t.Run("no avatar set", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@ex.com"}).Return(&model.UserEntity{ID: 1}, nil).Once()

		_, err := f.app().GetAvatar(context.Background(), "a@ex.com")
		requireErrorType(t, err, constant.ErrNotFound)
	})
	t.Run("reads the stored file", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@ex.com"}).
			Return(&model.UserEntity{ID: 1, ImagePath: strPtr("users_a.png")}, nil).Once()
		f.imageApp.On("Get", mock.Anything, "users_a.png", constant.ImageScopeUsers).Return([]byte{9}, nil).Once()

		got, err := f.app().GetAvatar(context.Background(), "a@ex.com")
		require.NoError(t, err)
		require.Equal(t, []byte{9}, got)
	})
}
