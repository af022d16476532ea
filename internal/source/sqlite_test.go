package source

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryDataset(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT name, length FROM fish").WillReturnRows(
		sqlmock.NewRows([]string{"name", "length"}).
			AddRow("Cod", int64(3)).
			AddRow("Shark", nil).
			AddRow([]byte("Hammer"), int64(6)))

	d, err := QueryDataset(context.Background(), db, "SELECT name, length FROM fish")
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "length"}, d.Columns)
	require.Len(t, d.Rows, 3)
	assert.Equal(t, []string{"Cod", "3"}, d.Rows[0].Cells)
	assert.Equal(t, "", d.Rows[1].Cell(1), "NULL coerces to empty string")
	assert.Equal(t, "Hammer", d.Rows[2].Cell(0), "byte slices coerce to string")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryDataset_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

	_, err = QueryDataset(context.Background(), db, "SELECT broken")
	assert.Error(t, err)
}
