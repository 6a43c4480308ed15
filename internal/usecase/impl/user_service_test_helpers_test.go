package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"roster/config"
	"roster/internal/domain/entity"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/infra/auth"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestTokenService(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenService
}

// fakeUserRepo is an in-memory UserRepository for exercising the service
// without a database.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
	// failWith, when set, is returned by every call to simulate an outage.
	failWith error
	// createErr, when set, is returned by Create only.
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}

	for _, user := range r.users {
		if user.Email == email {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(_ context.Context, filter repository.ListFilter) ([]*entity.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}

	var result []*entity.User
	for _, user := range r.users {
		if filter.Role != nil && user.Role != *filter.Role {
			continue
		}
		if filter.MinAge != nil && user.Age < *filter.MinAge {
			continue
		}
		clone := *user
		result = append(result, &clone)
	}

	return result, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.failWith != nil {
		return r.failWith
	}
	if r.createErr != nil {
		return r.createErr
	}

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}

	user.ID = uuid.New()
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if r.failWith != nil {
		return r.failWith
	}

	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.failWith != nil {
		return r.failWith
	}

	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)

	return nil
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *fakeUserRepo
	hasher       service.PasswordHasher
	tokenService service.TokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := newFakeUserRepo()
	hasher := auth.NewBcryptHasherWithCost(4) // low cost keeps tests fast
	tokenService := newTestTokenService(t)

	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// registerTestUser registers a user through the service and returns the stored entity.
func registerTestUser(t *testing.T, fx userServiceFixtures, name, email, password string, age int, role entity.Role) *entity.User {
	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     name,
		Email:    email,
		Password: password,
		Age:      age,
		Role:     role,
	})
	require.NoError(t, err)
	require.NotNil(t, output.User)

	return output.User
}
