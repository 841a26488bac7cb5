package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/employwise/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var cols = []string{"id", "email", "first_name", "last_name", "avatar", "password_hash", "created_at", "updated_at"}

func userRow(id int, email, first, last string) *sqlmock.Rows {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(cols).AddRow(id, email, first, last, AvatarURL(id), []byte("hash"), now, now)
}

func TestPostgres_CreateWithExplicitID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (id, email, first_name, last_name, avatar, password_hash)`)).
		WithArgs(4, "eve.holt@reqres.in", "Eve", "Holt", AvatarURL(4), []byte("hash")).
		WillReturnRows(userRow(4, "eve.holt@reqres.in", "Eve", "Holt"))

	u, err := repo.Create(context.Background(), &User{
		ID: 4, Email: "eve.holt@reqres.in", FirstName: "Eve", LastName: "Holt",
		Avatar: AvatarURL(4), PasswordHash: []byte("hash"),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CreateGeneratedID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (email, first_name, last_name, avatar, password_hash)`)).
		WithArgs("new@x.io", "N", "U", "", []byte("hash")).
		WillReturnRows(userRow(13, "new@x.io", "N", "U"))

	u, err := repo.Create(context.Background(), &User{Email: "new@x.io", FirstName: "N", LastName: "U", PasswordHash: []byte("hash")})
	require.NoError(t, err)
	assert.Equal(t, 13, u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CreateUniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})

	_, err := repo.Create(context.Background(), &User{Email: "dup@x.io"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestPostgres_GetByEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM users WHERE lower\(email\) = lower\(\$1\)`).
		WithArgs("Eve.Holt@reqres.in").
		WillReturnRows(userRow(4, "eve.holt@reqres.in", "Eve", "Holt"))

	u, err := repo.GetByEmail(context.Background(), "Eve.Holt@reqres.in")
	require.NoError(t, err)
	assert.Equal(t, "Holt", u.LastName)
	assert.Equal(t, []byte("hash"), u.PasswordHash)
}

func TestPostgres_GetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgres_List(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := userRow(7, "michael.lawson@reqres.in", "Michael", "Lawson")
	now := time.Now()
	rows.AddRow(8, "lindsay.ferguson@reqres.in", "Lindsay", "Ferguson", "", []byte("h"), now, now)

	mock.ExpectQuery(`SELECT .* FROM users ORDER BY id LIMIT \$1 OFFSET \$2`).
		WithArgs(6, 6).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), 6, 6)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 7, got[0].ID)
	assert.Equal(t, "Lindsay", got[1].FirstName)
}

func TestPostgres_ListQueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM users ORDER BY id`).WillReturnError(errors.New("boom"))

	_, err := repo.List(context.Background(), 0, 6)
	assert.ErrorContains(t, err, "boom")
}

func TestPostgres_Count(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestPostgres_UpdatePassesNilsForAbsentFields(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	first := "Janet"
	mock.ExpectQuery(`UPDATE users SET .*COALESCE.* WHERE id = \$1`).
		WithArgs(2, &first, nil, nil).
		WillReturnRows(userRow(2, "janet.weaver@reqres.in", "Janet", "Weaver"))

	u, err := repo.Update(context.Background(), 2, Patch{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Weaver", u.LastName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UpdateNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE users SET`).WillReturnError(sql.ErrNoRows)

	last := "X"
	_, err := repo.Update(context.Background(), 99, Patch{LastName: &last})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgres_Delete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.ErrorIs(t, repo.Delete(context.Background(), 3), common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
