package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passkit/internal/model"
)

func newMockRepo(t *testing.T) (*UsageRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUsageRepository(db), mock
}

func TestNewUsageRepository(t *testing.T) {
	repo := NewUsageRepository(nil)
	require.NotNil(t, repo)
	assert.Nil(t, repo.db)
}

func TestRecord(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO generation_events")).
		WithArgs(16, 4, true, 10, "very-strong").
		WillReturnResult(sqlmock.NewResult(7, 1))

	event := &model.GenerationEvent{Length: 16, Classes: 4, ExcludeSimilar: true, Score: 10, Level: "very-strong"}
	require.NoError(t, repo.Record(context.Background(), event))

	assert.Equal(t, int64(7), event.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordError(t *testing.T) {
	repo, mock := newMockRepo(t)
	boom := errors.New("connection reset")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO generation_events")).WillReturnError(boom)

	err := repo.Record(context.Background(), &model.GenerationEvent{Length: 8, Classes: 1, Level: "weak"})
	assert.ErrorIs(t, err, boom)
}

func TestSummary(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"level", "count", "sum"}).
		AddRow("very-strong", 3, 60).
		AddRow("weak", 1, 4)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT level, COUNT(*)")).WillReturnRows(rows)

	summary, err := repo.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), summary.Total)
	assert.InDelta(t, 16.0, summary.AverageLength, 0.0001)
	assert.Equal(t, map[string]int64{"very-strong": 3, "weak": 1}, summary.ByLevel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT level, COUNT(*)")).
		WillReturnRows(sqlmock.NewRows([]string{"level", "count", "sum"}))

	summary, err := repo.Summary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.AverageLength)
	assert.NotNil(t, summary.ByLevel)
}
