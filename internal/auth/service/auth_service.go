package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlibekovAA/caption-studio/backend/internal/common/clock"
	commoncrypto "github.com/AlibekovAA/caption-studio/backend/internal/common/crypto"
	commonerrors "github.com/AlibekovAA/caption-studio/backend/internal/common/errors"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
	userdomain "github.com/AlibekovAA/caption-studio/backend/internal/user/domain"
	userrepo "github.com/AlibekovAA/caption-studio/backend/internal/user/repository"
)

type AuthService struct {
	repo        userrepo.Repository
	hasher      commoncrypto.PasswordHasher
	idGenerator commoncrypto.IDGenerator
	tokens      *TokenIssuer
	clock       clock.Clock
	log         *logger.Logger
}

func NewAuthService(
	repo userrepo.Repository,
	hasher commoncrypto.PasswordHasher,
	idGenerator commoncrypto.IDGenerator,
	tokens *TokenIssuer,
	clock clock.Clock,
	log *logger.Logger,
) *AuthService {
	return &AuthService{
		repo:        repo,
		hasher:      hasher,
		idGenerator: idGenerator,
		tokens:      tokens,
		clock:       clock,
		log:         log,
	}
}

type Credentials struct {
	Email    string
	Password string
}

type AuthResult struct {
	User        userdomain.User
	AccessToken string
}

// Register validates and stores a new user without issuing a token.
func (s *AuthService) Register(ctx context.Context, input Credentials) (userdomain.User, error) {
	email := userdomain.NormalizeEmail(input.Email)

	s.log.WithFields(ctx, logger.Fields{
		"email":  email,
		"action": "signup_attempt",
	}).Info("signup attempt")

	if err := validateSignup(email, input.Password); err != nil {
		recordSignup("invalid")
		s.log.WithFields(ctx, logger.Fields{
			"email":  email,
			"action": "signup_validation_failed",
		}).Warnf("signup validation failed: %v", err)
		return userdomain.User{}, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		recordSignup("error")
		s.log.WithFields(ctx, logger.Fields{
			"email":  email,
			"action": "signup_hash_failed",
		}).Errorf("signup failed: password hash error: %v", err)
		return userdomain.User{}, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		recordSignup("error")
		s.log.WithFields(ctx, logger.Fields{
			"email":  email,
			"action": "signup_id_generation_failed",
		}).Errorf("signup failed: id generation error: %v", err)
		return userdomain.User{}, fmt.Errorf("generate user id: %w", err)
	}

	user := userdomain.User{
		ID:           userdomain.ID(id),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, commonerrors.ErrEmailAlreadyExists) {
			recordSignup("duplicate")
			s.log.WithFields(ctx, logger.Fields{
				"email":  email,
				"action": "signup_email_exists",
			}).Warn("signup failed: email already registered")
			return userdomain.User{}, ErrEmailTaken
		}
		recordSignup("error")
		s.log.WithFields(ctx, logger.Fields{
			"email":  email,
			"action": "signup_create_failed",
		}).Errorf("signup failed: %v", err)
		return userdomain.User{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	recordSignup("success")
	s.log.WithFields(ctx, logger.Fields{
		"email":   email,
		"user_id": string(user.ID),
		"action":  "signup_success",
	}).Info("signup success")

	return user, nil
}

func (s *AuthService) Signup(ctx context.Context, input Credentials) (AuthResult, error) {
	user, err := s.Register(ctx, input)
	if err != nil {
		return AuthResult{}, err
	}

	token, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": string(user.ID),
			"action":  "signup_token_issue_failed",
		}).Errorf("signup failed: token issue error: %v", err)
		return AuthResult{}, fmt.Errorf("issue access token: %w", err)
	}

	return AuthResult{User: user, AccessToken: token}, nil
}

func (s *AuthService) Login(ctx context.Context, input Credentials) (AuthResult, error) {
	email := userdomain.NormalizeEmail(input.Email)

	s.log.WithFields(ctx, logger.Fields{
		"email":  email,
		"action": "login_attempt",
	}).Info("login attempt")

	if err := validatePresence(email, input.Password); err != nil {
		recordLogin("invalid")
		return AuthResult{}, err
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, commonerrors.ErrUserNotFound) {
			recordLogin("unauthorized")
			s.log.WithFields(ctx, logger.Fields{
				"email":  email,
				"action": "login_user_not_found",
			}).Warn("login failed: unknown email")
			return AuthResult{}, ErrInvalidCredentials
		}
		recordLogin("error")
		s.log.WithFields(ctx, logger.Fields{
			"email":  email,
			"action": "login_lookup_failed",
		}).Errorf("login failed: %v", err)
		return AuthResult{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		if errors.Is(err, commoncrypto.ErrPasswordMismatch) {
			recordLogin("unauthorized")
			s.log.WithFields(ctx, logger.Fields{
				"user_id": string(user.ID),
				"action":  "login_password_mismatch",
			}).Warn("login failed: password mismatch")
			return AuthResult{}, ErrInvalidCredentials
		}
		recordLogin("error")
		s.log.WithFields(ctx, logger.Fields{
			"user_id": string(user.ID),
			"action":  "login_compare_failed",
		}).Errorf("login failed: compare error: %v", err)
		return AuthResult{}, fmt.Errorf("compare password: %w", err)
	}

	now := s.clock.Now()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		recordLogin("error")
		s.log.WithFields(ctx, logger.Fields{
			"user_id": string(user.ID),
			"action":  "login_update_last_login_failed",
		}).Errorf("login failed: %v", err)
		return AuthResult{}, commonerrors.ErrDatabaseError.WithCause(err)
	}
	user.LastLogin = &now

	token, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		recordLogin("error")
		return AuthResult{}, fmt.Errorf("issue access token: %w", err)
	}

	recordLogin("success")
	s.log.WithFields(ctx, logger.Fields{
		"user_id": string(user.ID),
		"action":  "login_success",
	}).Info("login success")

	return AuthResult{User: user, AccessToken: token}, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]userdomain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "list_users_failed",
		}).Errorf("list users failed: %v", err)
		return nil, commonerrors.ErrDatabaseError.WithCause(err)
	}
	return users, nil
}
