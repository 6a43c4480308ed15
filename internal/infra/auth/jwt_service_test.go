package auth

import (
	"testing"
	"time"

	"roster/config"
	"roster/internal/domain/entity"
	"roster/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTServiceForTest(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	svc := newJWTServiceForTest(t)
	userID := uuid.New()

	token, err := svc.Generate(userID, entity.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)

	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	t.Parallel()

	svc := newJWTServiceForTest(t)

	_, err := svc.Validate("not.a.token")
	assert.Error(t, err)

	_, err = svc.Validate("")
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := newJWTServiceForTest(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "a_completely_different_secret"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.Generate(uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	// Construct directly so the TTL can be forced negative.
	svc := &jwtService{
		secret: []byte("test_access_secret_key_very_long_for_testing"),
		ttl:    -time.Minute,
	}

	token, err := svc.Generate(uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsUnsignedAlgorithm(t *testing.T) {
	t.Parallel()

	svc := newJWTServiceForTest(t)
	userID := uuid.New()

	claims := &service.Claims{
		UserID: userID,
		Role:   entity.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}
