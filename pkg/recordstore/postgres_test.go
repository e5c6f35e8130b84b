package recordstore

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresFromDB(sqlx.NewDb(db, "sqlmock")), mock
}

func TestPostgresStoreRead(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"doc"}).AddRow([]byte(`{"active_semester":"first"}`))
	mock.ExpectQuery(`SELECT doc FROM records WHERE name = \$1`).
		WithArgs("config").
		WillReturnRows(rows)

	var out map[string]string
	require.NoError(t, store.Read(context.Background(), "config", &out))
	assert.Equal(t, "first", out["active_semester"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreReadMissing(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT doc FROM records WHERE name = \$1`).
		WithArgs("students").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}))

	var out []string
	err := store.Read(context.Background(), "students", &out)
	assert.ErrorIs(t, err, ErrNoRecord)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreWriteUpsert(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`(?s)INSERT INTO records.+ON CONFLICT \(name\) DO UPDATE`).
		WithArgs("tokens", []byte(`{"carryover":null,"late_registration":null}`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	value := map[string]interface{}{"carryover": nil, "late_registration": nil}
	require.NoError(t, store.Write(context.Background(), "tokens", value))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreWriteEncodeError(t *testing.T) {
	store, _ := newMockStore(t)

	err := store.Write(context.Background(), "bad", func() {})
	require.Error(t, err)
}
