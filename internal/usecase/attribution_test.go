package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/clipwave/commission-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSubstringMatch(t *testing.T) {
	repo := &fakeApplicationRepo{applications: []*domain.CreatorApplication{
		{ContributorID: "c1", AffiliateLink: "https://partner.example.com/ref/AFF-42/landing"},
	}}
	resolver := NewDefaultAttributionResolver(repo)

	// Case-insensitive, link carries extra path segments.
	result, err := resolver.Resolve("aff-42")
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Equal(t, "c1", result.ContributorID)
	assert.False(t, result.Ambiguous)
}

func TestResolveNoMatch(t *testing.T) {
	repo := &fakeApplicationRepo{applications: []*domain.CreatorApplication{
		{ContributorID: "c1", AffiliateLink: "https://partner.example.com/ref/other"},
	}}
	resolver := NewDefaultAttributionResolver(repo)

	result, err := resolver.Resolve("aff-42")
	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.Empty(t, result.ContributorID)
}

func TestResolveEmptyAffiliateID(t *testing.T) {
	resolver := NewDefaultAttributionResolver(&fakeApplicationRepo{})

	result, err := resolver.Resolve("")
	require.NoError(t, err)
	assert.False(t, result.Matched)
}

func TestResolveAmbiguousPicksEarliestApproved(t *testing.T) {
	// Repo returns applications ordered by approval time ascending.
	repo := &fakeApplicationRepo{applications: []*domain.CreatorApplication{
		{ContributorID: "early", AffiliateLink: "https://partner.example.com/ref/aff-7", ApprovedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ContributorID: "late", AffiliateLink: "https://partner.example.com/campaign/aff-7/x", ApprovedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}}
	resolver := NewDefaultAttributionResolver(repo)

	result, err := resolver.Resolve("aff-7")
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.True(t, result.Ambiguous)
	assert.Equal(t, "early", result.ContributorID)
}

func TestResolveStorageErrorPropagates(t *testing.T) {
	storageErr := errors.New("connection refused")
	resolver := NewDefaultAttributionResolver(&fakeApplicationRepo{err: storageErr})

	_, err := resolver.Resolve("aff-1")
	assert.ErrorIs(t, err, storageErr)
}
