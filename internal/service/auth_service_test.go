package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslabs/campus-events-api/internal/models"
	appErrors "github.com/campuslabs/campus-events-api/pkg/errors"
)

type mockUserStore struct {
	users  map[int64]models.User
	nextID int64
}

func newMockUserStore(seed ...models.User) *mockUserStore {
	store := &mockUserStore{users: make(map[int64]models.User), nextID: 1}
	for _, u := range seed {
		u.ID = store.nextID
		store.nextID++
		store.users[u.ID] = u
	}
	return store
}

func (m *mockUserStore) Create(ctx context.Context, user *models.User) error {
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = *user
	return nil
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for id := int64(1); id < m.nextID; id++ {
		if u, ok := m.users[id]; ok && u.Email == email {
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserStore) FindByEmailAndPassword(ctx context.Context, email, password string) (*models.User, error) {
	for id := int64(1); id < m.nextID; id++ {
		if u, ok := m.users[id]; ok && u.Email == email && u.Password == password {
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

var testAuthConfig = AuthConfig{JWTSecret: "test-secret", JWTExpiration: time.Hour}

func TestLoginPlaintextSuccess(t *testing.T) {
	store := newMockUserStore(models.User{
		Email: "asha@campus.edu", Password: "secret", Name: "Asha", Role: models.RoleStudent,
	})
	svc := NewAuthService(store, PlaintextVerifier{}, nil, nil, testAuthConfig)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "asha@campus.edu", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "Asha", resp.User.Name)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
}

func TestLoginWrongPasswordSurfacesNotFound(t *testing.T) {
	store := newMockUserStore(models.User{
		Email: "asha@campus.edu", Password: "secret", Role: models.RoleStudent,
	})
	svc := NewAuthService(store, PlaintextVerifier{}, nil, nil, testAuthConfig)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "asha@campus.edu", Password: "wrong"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
	assert.Equal(t, 404, appErr.Status)
}

func TestLoginRoleMismatchSurfacesNotFound(t *testing.T) {
	store := newMockUserStore(models.User{
		Email: "asha@campus.edu", Password: "secret", Role: models.RoleStudent,
	})
	svc := NewAuthService(store, PlaintextVerifier{}, nil, nil, testAuthConfig)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email: "asha@campus.edu", Password: "secret", Role: models.RoleAdmin,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestLoginBcryptVerifier(t *testing.T) {
	hashed, err := BcryptVerifier{}.Hash("secret")
	require.NoError(t, err)
	store := newMockUserStore(models.User{
		Email: "asha@campus.edu", Password: hashed, Role: models.RoleStudent,
	})
	svc := NewAuthService(store, BcryptVerifier{}, nil, nil, testAuthConfig)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "asha@campus.edu", Password: "secret"})
	require.NoError(t, err)
	_, err = svc.Login(context.Background(), LoginRequest{Email: "asha@campus.edu", Password: "wrong"})
	require.Error(t, err)
}

func TestRegisterStudentForcesRole(t *testing.T) {
	store := newMockUserStore()
	svc := NewAuthService(store, PlaintextVerifier{}, nil, nil, testAuthConfig)

	user, err := svc.RegisterStudent(context.Background(), RegisterStudentRequest{
		Email: "asha@campus.edu", Password: "secret", Name: "Asha",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NotZero(t, user.ID)
}

func TestRegisterStudentDuplicatePairConflicts(t *testing.T) {
	store := newMockUserStore(models.User{
		Email: "asha@campus.edu", Password: "secret", Name: "Asha", Role: models.RoleStudent,
	})
	svc := NewAuthService(store, PlaintextVerifier{}, nil, nil, testAuthConfig)

	_, err := svc.RegisterStudent(context.Background(), RegisterStudentRequest{
		Email: "asha@campus.edu", Password: "secret", Name: "Asha Again",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)

	// Same email with a different password slips past the pair check.
	user, err := svc.RegisterStudent(context.Background(), RegisterStudentRequest{
		Email: "asha@campus.edu", Password: "other", Name: "Asha Again",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	store := newMockUserStore(models.User{
		Email: "asha@campus.edu", Password: "secret", Role: models.RoleStudent,
	})
	issuer := NewAuthService(store, PlaintextVerifier{}, nil, nil, testAuthConfig)
	verifier := NewAuthService(store, PlaintextVerifier{}, nil, nil, AuthConfig{JWTSecret: "other", JWTExpiration: time.Hour})

	resp, err := issuer.Login(context.Background(), LoginRequest{Email: "asha@campus.edu", Password: "secret"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(resp.AccessToken)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
