package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslabs/campus-events-api/internal/models"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "password", "name", "role"}).
		AddRow(1, "asha@campus.edu", "secret", "Asha", string(models.RoleStudent))
}

func TestCreateUserAssignsID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("asha@campus.edu", "secret", "Asha", string(models.RoleStudent)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	user := &models.User{Email: "asha@campus.edu", Password: "secret", Name: "Asha", Role: models.RoleStudent}
	err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByEmail(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password, name, role FROM users WHERE email = $1 LIMIT 1")).
		WithArgs("asha@campus.edu").
		WillReturnRows(userRows())

	user, err := repo.FindByEmail(context.Background(), "asha@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByEmailAndPassword(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password, name, role FROM users WHERE email = $1 AND password = $2 LIMIT 1")).
		WithArgs("asha@campus.edu", "secret").
		WillReturnRows(userRows())

	user, err := repo.FindByEmailAndPassword(context.Background(), "asha@campus.edu", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByIDMissingPassesErrNoRows(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT .+ FROM users WHERE id").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}
