package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMbtiTestRepository(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	repo := NewMbtiTestRepository(db)
	ctx := context.Background()

	_, err := repo.FindByApplicant(ctx, f.applicant.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)

	created, err := repo.Create(ctx, f.applicant.ID.String(), "INTJ", "https://example.com/mbti")
	require.NoError(t, err)
	assert.True(t, created.IsCompleted)

	got, err := repo.FindByApplicant(ctx, f.applicant.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "INTJ", got.Result)

	_, err = repo.FindByApplicant(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}
