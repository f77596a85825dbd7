package service

import (
	"time"

	"github.com/AlibekovAA/caption-studio/backend/internal/common/clock"
	commoncrypto "github.com/AlibekovAA/caption-studio/backend/internal/common/crypto"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/jwtverify"
	userdomain "github.com/AlibekovAA/caption-studio/backend/internal/user/domain"
)

type TokenIssuer struct {
	jwtSecret      []byte
	idGenerator    commoncrypto.IDGenerator
	clock          clock.Clock
	accessTokenTTL time.Duration
}

func NewTokenIssuer(
	jwtSecret string,
	idGenerator commoncrypto.IDGenerator,
	accessTokenTTL time.Duration,
	clock clock.Clock,
) *TokenIssuer {
	return &TokenIssuer{
		jwtSecret:      []byte(jwtSecret),
		idGenerator:    idGenerator,
		clock:          clock,
		accessTokenTTL: accessTokenTTL,
	}
}

func (ti *TokenIssuer) IssueAccessToken(user userdomain.User) (string, error) {
	jti, err := ti.idGenerator.NewID()
	if err != nil {
		return "", err
	}

	token, err := jwtverify.Sign(ti.jwtSecret, jwtverify.Claims{
		UserID: string(user.ID),
		Email:  user.Email,
	}, jti, ti.clock.Now(), ti.accessTokenTTL)
	if err != nil {
		return "", err
	}

	incrementAccessTokensIssued()
	return token, nil
}
