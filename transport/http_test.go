package transport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muhammadheryan/classifieds/cmd/config"
	"github.com/muhammadheryan/classifieds/constant"
	adsmocks "github.com/muhammadheryan/classifieds/mocks/application/ads"
	authmocks "github.com/muhammadheryan/classifieds/mocks/application/auth"
	imagemocks "github.com/muhammadheryan/classifieds/mocks/application/image"
	usermocks "github.com/muhammadheryan/classifieds/mocks/application/user"
	"github.com/muhammadheryan/classifieds/model"
	"github.com/muhammadheryan/classifieds/transport"
	cerr "github.com/muhammadheryan/classifieds/utils/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pinger struct{ err error }

func (p pinger) PingContext(context.Context) error { return p.err }

type deps struct {
	authApp  *authmocks.AuthApp
	userApp  *usermocks.UserApp
	adsApp   *adsmocks.AdsApp
	imageApp *imagemocks.ImageApp
	db       pinger
}

func newDeps(t *testing.T) *deps {
	return &deps{
		authApp:  authmocks.NewAuthApp(t),
		userApp:  usermocks.NewUserApp(t),
		adsApp:   adsmocks.NewAdsApp(t),
		imageApp: imagemocks.NewImageApp(t),
	}
}

func (d *deps) handler() http.Handler {
	cfg := &config.Config{
		Image:    config.ImageConfig{MaxUploadBytes: 1 << 20},
		CORS:     config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		Internal: config.InternalConfig{APIKey: "internal-key"},
	}
	return transport.NewTransport(cfg, d.authApp, d.userApp, d.adsApp, d.imageApp, d.db)
}

func (d *deps) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	d.handler().ServeHTTP(rec, req)
	return rec
}

var alice = &model.Principal{ID: 1, Email: "a@ex.com", Role: constant.RoleUser}

func withBasic(req *http.Request, d *deps) *http.Request {
	req.SetBasicAuth("a@ex.com", "pw12345X")
	d.authApp.On("Authenticate", mock.Anything, "a@ex.com", "pw12345X").Return(alice, nil).Once()
	return req
}

func TestPublicRoutes_NoCredentials(t *testing.T) {
	d := newDeps(t)
	d.adsApp.On("List", mock.Anything).Return(&model.AdsResponse{Count: 0, Results: []model.AdResponse{}}, nil).Once()

	rec := d.do(httptest.NewRequest(http.MethodGet, "/ads", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"count":0,"results":[]}`, rec.Body.String())
}

func TestProtectedRoute_WithoutCredentials(t *testing.T) {
	d := newDeps(t)

	rec := d.do(httptest.NewRequest(http.MethodGet, "/users/me", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestProtectedRoute_BadBasicCredentials(t *testing.T) {
	d := newDeps(t)
	req := httptest.NewRequest(http.MethodGet, "/ads/me", nil)
	req.SetBasicAuth("a@ex.com", "nope")
	d.authApp.On("Authenticate", mock.Anything, "a@ex.com", "nope").Return(nil, cerr.SetCustomError(constant.ErrUnauthorize)).Once()

	rec := d.do(req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRoute_Bearer(t *testing.T) {
	d := newDeps(t)
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer tok")
	d.authApp.On("ValidateToken", mock.Anything, "tok").Return(alice, nil).Once()
	d.userApp.On("GetProfile", mock.Anything, "a@ex.com").Return(&model.UserResponse{ID: 1, Email: "a@ex.com", Role: constant.RoleUser}, nil).Once()

	rec := d.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got model.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(1), got.ID)
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mockCall func(d *deps)
		want     int
	}{
		{
			name: "created",
			body: `{"username":"A@Ex.com","password":"pw12345X","firstName":"Ann"}`,
			mockCall: func(d *deps) {
				d.authApp.On("Register", mock.Anything, mock.MatchedBy(func(r *model.RegisterRequest) bool {
					return r.Username == "A@Ex.com" && r.FirstName == "Ann"
				})).Return(true, nil).Once()
			},
			want: http.StatusCreated,
		},
		{
			name: "duplicate",
			body: `{"username":"a@ex.com","password":"pw12345X"}`,
			mockCall: func(d *deps) {
				d.authApp.On("Register", mock.Anything, mock.Anything).Return(false, nil).Once()
			},
			want: http.StatusForbidden,
		},
		{
			name: "invalid",
			body: `{"username":"a@ex.com","password":"x"}`,
			mockCall: func(d *deps) {
				d.authApp.On("Register", mock.Anything, mock.Anything).Return(false, cerr.SetCustomError(constant.ErrInvalidRequest)).Once()
			},
			want: http.StatusBadRequest,
		},
		{
			name: "malformed json",
			body: `{`,
			want: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			if tt.mockCall != nil {
				tt.mockCall(d)
			}
			rec := d.do(httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body)))
			require.Equal(t, tt.want, rec.Code)
			require.Empty(t, rec.Body.String())
		})
	}
}

func TestLogin(t *testing.T) {
	t.Run("success issues token", func(t *testing.T) {
		d := newDeps(t)
		d.authApp.On("Login", mock.Anything, &model.LoginRequest{Username: "a@ex.com", Password: "pw12345X"}).Return(true, nil).Once()
		d.authApp.On("IssueToken", mock.Anything, "a@ex.com").Return(&model.LoginResponse{Email: "a@ex.com", Token: "jwt"}, nil).Once()

		rec := d.do(httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"a@ex.com","password":"pw12345X"}`)))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"email":"a@ex.com","token":"jwt"}`, rec.Body.String())
	})
	t.Run("wrong password", func(t *testing.T) {
		d := newDeps(t)
		d.authApp.On("Login", mock.Anything, mock.Anything).Return(false, nil).Once()

		rec := d.do(httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"a@ex.com","password":"pw12345x"}`)))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Empty(t, rec.Body.String())
	})
}

func TestCreateAd_Multipart(t *testing.T) {
	d := newDeps(t)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("properties", `{"title":"Bike","description":"Used","price":100}`))
	part, err := mw.CreateFormFile("image", "bike.png")
	require.NoError(t, err)
	_, err = part.Write([]byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/ads", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	withBasic(req, d)

	d.adsApp.On("Create", mock.Anything,
		mock.MatchedBy(func(r *model.CreateAdRequest) bool {
			return r.Title == "Bike" && r.Description == "Used" && r.Price != nil && *r.Price == 100
		}),
		"a@ex.com",
		&model.ImageUpload{Filename: "bike.png", Data: []byte{0x89, 'P', 'N', 'G'}},
	).Return(&model.AdResponse{Author: 1, Image: "/ads/image/ads_x.png", Pk: 10, Price: 100, Title: "Bike"}, nil).Once()

	rec := d.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"author":1,"image":"/ads/image/ads_x.png","pk":10,"price":100,"title":"Bike"}`, rec.Body.String())
}

func TestCreateAd_NotMultipart(t *testing.T) {
	d := newDeps(t)
	req := withBasic(httptest.NewRequest(http.MethodPost, "/ads", strings.NewReader(`{}`)), d)
	req.Header.Set("Content-Type", "application/json")

	rec := d.do(req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteAd_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "deleted", want: http.StatusNoContent},
		{name: "forbidden", err: cerr.SetCustomError(constant.ErrForbidden), want: http.StatusForbidden},
		{name: "not found", err: cerr.SetCustomError(constant.ErrNotFound), want: http.StatusNotFound},
		{name: "unexpected", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			req := withBasic(httptest.NewRequest(http.MethodDelete, "/ads/10", nil), d)
			d.adsApp.On("Delete", mock.Anything, uint64(10), alice).Return(tt.err).Once()

			rec := d.do(req)
			require.Equal(t, tt.want, rec.Code)
			require.Empty(t, rec.Body.String())
		})
	}
}

func TestGetAdImage(t *testing.T) {
	d := newDeps(t)
	d.adsApp.On("GetImage", mock.Anything, "ads_x.png").Return([]byte{1, 2, 3, 4}, nil).Once()

	rec := d.do(httptest.NewRequest(http.MethodGet, "/ads/image/ads_x.png", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	require.Equal(t, []byte{1, 2, 3, 4}, rec.Body.Bytes())
}

func TestUpdateComment(t *testing.T) {
	d := newDeps(t)
	req := withBasic(httptest.NewRequest(http.MethodPatch, "/ads/10/comments/7", strings.NewReader(`{"text":"pwn"}`)), d)
	d.adsApp.On("UpdateComment", mock.Anything, uint64(10), uint64(7), &model.CreateCommentRequest{Text: "pwn"}, alice).
		Return(&model.CommentResponse{Pk: 7, Author: 1, Text: "pwn", CreatedAt: 1}, nil).Once()

	rec := d.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got model.CommentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "pwn", got.Text)
}

func TestSetPassword(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		err  error
		want int
	}{
		{name: "changed", ok: true, want: http.StatusOK},
		{name: "wrong current", err: cerr.SetCustomError(constant.ErrInvalidPassword), want: http.StatusForbidden},
		{name: "user gone", err: cerr.SetCustomError(constant.ErrUnauthorize), want: http.StatusUnauthorized},
		{name: "refused without reason", want: http.StatusForbidden},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			req := withBasic(httptest.NewRequest(http.MethodPost, "/users/set_password",
				strings.NewReader(`{"currentPassword":"pw12345X","newPassword":"newpwd12"}`)), d)
			d.userApp.On("SetPassword", mock.Anything, "a@ex.com",
				&model.NewPasswordRequest{CurrentPassword: "pw12345X", NewPassword: "newpwd12"}).Return(tt.ok, tt.err).Once()

			rec := d.do(req)
			require.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestInternalPurge(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		d := newDeps(t)
		rec := d.do(httptest.NewRequest(http.MethodDelete, "/internal/images/ads_x.png", nil))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
	t.Run("still referenced", func(t *testing.T) {
		d := newDeps(t)
		req := httptest.NewRequest(http.MethodDelete, "/internal/images/ads_x.png", nil)
		req.Header.Set("Authorization", "Bearer internal-key")
		d.imageApp.On("PurgeOrphan", mock.Anything, "ads_x.png").Return(cerr.SetCustomError(constant.ErrImageReferenced)).Once()

		rec := d.do(req)
		require.Equal(t, http.StatusConflict, rec.Code)
	})
	t.Run("purged", func(t *testing.T) {
		d := newDeps(t)
		req := httptest.NewRequest(http.MethodDelete, "/internal/images/ads_x.png", nil)
		req.Header.Set("Authorization", "Bearer internal-key")
		d.imageApp.On("PurgeOrphan", mock.Anything, "ads_x.png").Return(nil).Once()

		rec := d.do(req)
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	d := newDeps(t)
	req := httptest.NewRequest(http.MethodGet, "/internal/metrics", nil)
	req.Header.Set("Authorization", "Bearer internal-key")

	rec := d.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestHealth(t *testing.T) {
	d := newDeps(t)
	rec := d.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	d.db = pinger{err: errors.New("db down")}
	rec = d.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	d := newDeps(t)
	req := httptest.NewRequest(http.MethodOptions, "/ads/10", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)

	rec := d.do(req)

	require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
