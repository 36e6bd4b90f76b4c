package auth

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/classifieds/cmd/config"
	"github.com/muhammadheryan/classifieds/constant"
	"github.com/muhammadheryan/classifieds/model"
	redisrepo "github.com/muhammadheryan/classifieds/repository/redis"
	userrepo "github.com/muhammadheryan/classifieds/repository/user"
	"github.com/muhammadheryan/classifieds/utils/credential"
	"github.com/muhammadheryan/classifieds/utils/errors"
	"github.com/muhammadheryan/classifieds/utils/logger"
	validatorx "github.com/muhammadheryan/classifieds/utils/validator"
	"go.uber.org/zap"
)

type AuthApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (bool, error)
	Login(ctx context.Context, req *model.LoginRequest) (bool, error)
	Authenticate(ctx context.Context, username, password string) (*model.Principal, error)
	IssueToken(ctx context.Context, username string) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.Principal, error)
	RevokeToken(ctx context.Context, tokenString string) error
}

type AuthAppImpl struct {
	config     *config.Config
	userRepo   userrepo.UserRepository
	redisRepo  redisrepo.Repository
	credential credential.Service
}

func NewAuthApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository, credential credential.Service) AuthApp {
	return &AuthAppImpl{
		config:     config,
		userRepo:   userRepo,
		redisRepo:  redisRepo,
		credential: credential,
	}
}

// Register returns false when the folded email is already taken.
func (s *AuthAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (bool, error) {
	if req == nil {
		return false, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	folded := *req
	folded.Username = model.NormalizeEmail(req.Username)
	if err := validatorx.ValidateStruct(&folded); err != nil || len(folded.Password) > constant.MaxPasswordBytes {
		return false, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	email := folded.Username

	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return false, nil
	}

	hashedPassword, err := s.credential.Hash(req.Password)
	if err != nil {
		logger.Error("[Register] err credential.Hash", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	role := req.Role
	if role == "" {
		role = constant.RoleUser
	}

	_, err = s.userRepo.Create(ctx, &model.UserEntity{
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         role,
	})
	if err != nil {
		if stderrors.Is(err, userrepo.ErrDuplicateEmail) {
			return false, nil
		}
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Debug("[Register] registered a new user", zap.String("role", string(role)))
	return true, nil
}

func (s *AuthAppImpl) Login(ctx context.Context, req *model.LoginRequest) (bool, error) {
	if req == nil {
		return false, nil
	}
	_, err := s.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, constant.ErrUnauthorize) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Authenticate verifies a username/password pair and returns its principal.
func (s *AuthAppImpl) Authenticate(ctx context.Context, username, password string) (*model.Principal, error) {
	email := model.NormalizeEmail(username)
	if email == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[Authenticate] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		logger.Debug("[Authenticate] user not found")
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if !s.credential.Verify(user.PasswordHash, password) {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	return toPrincipal(user), nil
}

// IssueToken signs a bearer token for an already verified user and stores its session.
func (s *AuthAppImpl) IssueToken(ctx context.Context, username string) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: model.NormalizeEmail(username)})
	if err != nil {
		logger.Error("[IssueToken] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	// bearer sessions need redis; basic auth keeps working without it
	if !s.config.SessionsEnabled() {
		return &model.LoginResponse{Email: user.Email}, nil
	}

	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[IssueToken] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[IssueToken] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Email: user.Email,
		Token: token,
	}, nil
}

func (s *AuthAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Principal, error) {
	if !s.config.SessionsEnabled() {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	redisUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil || redisUserID != userID {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[ValidateToken] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	return toPrincipal(user), nil
}

func (s *AuthAppImpl) RevokeToken(ctx context.Context, tokenString string) error {
	if !s.config.SessionsEnabled() {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[RevokeToken] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *AuthAppImpl) parseClaims(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}
	return claims, nil
}

// generateJWT creates a JWT token for the user
func (s *AuthAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return "", "", fmt.Errorf("failed to generate jti: %w", err)
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

func toPrincipal(user *model.UserEntity) *model.Principal {
	return &model.Principal{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}
}
