package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/diacare/identity-service/internal/domain/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRepoMock(t *testing.T) (*UserRepo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewUserRepo(mock), mock
}

func TestUserRepo_Create(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	now := time.Now()
	id := uuid.New()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("", "0983333333", "PATIENT", "hashed", true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now))

	user := &models.User{
		PhoneNumber: "0983333333",
		Role:        "PATIENT",
		IsActive:    true,
	}
	user.SetPasswordHash("hashed")

	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, id, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_FindByPhone(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	now := time.Now()
	id := uuid.New()
	phone := "0983333333"
	secret := "session-secret-hash"

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WithArgs(phone).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "email", "phone_number", "role", "password_hash", "hashed_refresh_token", "is_active", "created_at", "updated_at",
		}).AddRow(id, nil, &phone, "PATIENT", "hashed", &secret, true, now, now))

	user, err := repo.FindByPhone(context.Background(), phone)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, id, user.ID)
	assert.Empty(t, user.Email)
	assert.Equal(t, phone, user.PhoneNumber)
	assert.Equal(t, "hashed", user.GetPasswordHash())
	assert.Equal(t, secret, user.GetSessionSecret())
	assert.True(t, user.HasSession())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_FindByPhone_NotFound(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WithArgs("0900000000").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByPhone(context.Background(), "0900000000")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_FindAdminByEmail_FiltersRole(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	// The role is part of the query arguments: non-admin rows never match.
	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WithArgs("admin@diacare.vn", "ADMIN").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindAdminByEmail(context.Background(), "admin@diacare.vn")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_UpdateSessionSecret(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	id := uuid.New()

	mock.ExpectExec(`UPDATE users`).
		WithArgs(id, "new-secret-hash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateSessionSecret(context.Background(), id, "new-secret-hash"))

	// Clearing passes the empty string; the query stores NULL via NULLIF.
	mock.ExpectExec(`UPDATE users`).
		WithArgs(id, "").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateSessionSecret(context.Background(), id, ""))
	assert.NoError(t, mock.ExpectationsWereMet())
}
