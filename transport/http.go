package transport

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/muhammadheryan/classifieds/application/ads"
	"github.com/muhammadheryan/classifieds/application/auth"
	appimage "github.com/muhammadheryan/classifieds/application/image"
	"github.com/muhammadheryan/classifieds/application/user"
	"github.com/muhammadheryan/classifieds/cmd/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// HealthChecker is satisfied by *sqlx.DB.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

type RestHandler struct {
	AuthApp  auth.AuthApp
	UserApp  user.UserApp
	AdsApp   ads.AdsApp
	ImageApp appimage.ImageApp
	DB       HealthChecker

	maxUploadBytes int64
}

// public routes are named with this prefix and skip authentication
const publicRoutePrefix = "public:"

func NewTransport(cfg *config.Config, authApp auth.AuthApp, userApp user.UserApp, adsApp ads.AdsApp, imageApp appimage.ImageApp, db HealthChecker) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		AuthApp:        authApp,
		UserApp:        userApp,
		AdsApp:         adsApp,
		ImageApp:       imageApp,
		DB:             db,
		maxUploadBytes: cfg.Image.MaxUploadBytes,
	}
	if rh.maxUploadBytes <= 0 {
		rh.maxUploadBytes = 10 << 20
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	router.HandleFunc("/health", rh.Health).Methods(http.MethodGet).Name("public:health")
	router.HandleFunc("/register", rh.Register).Methods(http.MethodPost).Name("public:register")
	router.HandleFunc("/login", rh.Login).Methods(http.MethodPost).Name("public:login")
	router.HandleFunc("/ads", rh.ListAds).Methods(http.MethodGet).Name("public:ads.list")
	router.HandleFunc("/ads/{id:[0-9]+}", rh.GetAd).Methods(http.MethodGet).Name("public:ads.get")
	router.HandleFunc("/ads/image/{name}", rh.GetAdImage).Methods(http.MethodGet).Name("public:ads.image")
	router.HandleFunc("/users/image/{name}", rh.GetUserImage).Methods(http.MethodGet).Name("public:users.image")

	// protected routes
	router.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost).Name("logout")
	router.HandleFunc("/ads/me", rh.ListMyAds).Methods(http.MethodGet).Name("ads.me")
	router.HandleFunc("/ads", rh.CreateAd).Methods(http.MethodPost).Name("ads.create")
	router.HandleFunc("/ads/{id:[0-9]+}", rh.UpdateAd).Methods(http.MethodPatch).Name("ads.update")
	router.HandleFunc("/ads/{id:[0-9]+}", rh.DeleteAd).Methods(http.MethodDelete).Name("ads.delete")
	router.HandleFunc("/ads/{id:[0-9]+}/image", rh.UpdateAdImage).Methods(http.MethodPatch).Name("ads.image.update")

	router.HandleFunc("/ads/{id:[0-9]+}/comments", rh.ListComments).Methods(http.MethodGet).Name("comments.list")
	router.HandleFunc("/ads/{id:[0-9]+}/comments", rh.AddComment).Methods(http.MethodPost).Name("comments.create")
	router.HandleFunc("/ads/{adId:[0-9]+}/comments/{commentId:[0-9]+}", rh.GetComment).Methods(http.MethodGet).Name("comments.get")
	router.HandleFunc("/ads/{adId:[0-9]+}/comments/{commentId:[0-9]+}", rh.UpdateComment).Methods(http.MethodPatch).Name("comments.update")
	router.HandleFunc("/ads/{adId:[0-9]+}/comments/{commentId:[0-9]+}", rh.DeleteComment).Methods(http.MethodDelete).Name("comments.delete")

	router.HandleFunc("/users/me", rh.GetMe).Methods(http.MethodGet).Name("users.me")
	router.HandleFunc("/users/me", rh.UpdateMe).Methods(http.MethodPatch).Name("users.me.update")
	router.HandleFunc("/users/set_password", rh.SetPassword).Methods(http.MethodPost).Name("users.password")
	router.HandleFunc("/users/me/image", rh.GetMyImage).Methods(http.MethodGet).Name("users.me.image")
	router.HandleFunc("/users/me/image", rh.UpdateMyImage).Methods(http.MethodPatch).Name("users.me.image.update")

	// internal routes, static API key
	internal := router.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))
	internal.HandleFunc("/images/{name}", rh.PurgeImage).Methods(http.MethodDelete).Name("internal.images.purge")
	internal.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet).Name("internal.metrics")

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(AuthMiddleware(authApp))

	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	})(router)
}

func pathID(r *http.Request, key string) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[key], 10, 64)
	return id, err == nil
}
