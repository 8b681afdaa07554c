package stats_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/mocks"
	"github.com/flashdeck/flashdeck-api/internal/service/stats"
	"github.com/flashdeck/flashdeck-api/internal/store"
)

func recordWithRating(t *testing.T, rating domain.ReviewRating) *domain.ReviewRecord {
	t.Helper()
	record, err := domain.NewReviewRecord(
		uuid.New(),
		rating,
		domain.Schedule{Status: domain.CardStatusLearning, EaseFactor: 2.5, Interval: 10},
		domain.CardStatusNew,
		time.Now().UTC(),
	)
	require.NoError(t, err, "failed to create record")
	return record
}

func newStatsFixture(t *testing.T) (*mocks.MockDeckStore, *mocks.MockReviewLogStore, stats.StatsService) {
	t.Helper()
	deckStore := &mocks.MockDeckStore{}
	logStore := &mocks.MockReviewLogStore{}

	deck, err := domain.NewDeck("Spanish")
	require.NoError(t, err, "failed to create deck")
	deckStore.Deck = deck

	return deckStore, logStore, stats.NewStatsService(deckStore, logStore, nil)
}

func TestGetDeckStatistics(t *testing.T) {
	t.Parallel()
	_, logStore, svc := newStatsFixture(t)

	// 3 correct out of 4: 75%
	logStore.Records = []*domain.ReviewRecord{
		recordWithRating(t, domain.ReviewRatingAgain),
		recordWithRating(t, domain.ReviewRatingHard),
		recordWithRating(t, domain.ReviewRatingGood),
		recordWithRating(t, domain.ReviewRatingGood),
	}

	deckID := uuid.New()
	statistics, err := svc.GetDeckStatistics(context.Background(), deckID)
	require.NoError(t, err)

	assert.Equal(t, deckID, statistics.DeckID)
	assert.Equal(t, 4, statistics.TotalReviews)
	assert.Equal(t, 3, statistics.CorrectReviews)
	assert.Equal(t, 75.0, statistics.CorrectPercentage)

	expectedCounts := map[domain.ReviewRating]int{
		domain.ReviewRatingAgain: 1,
		domain.ReviewRatingHard:  1,
		domain.ReviewRatingGood:  2,
		domain.ReviewRatingEasy:  0,
	}
	assert.Equal(t, expectedCounts, statistics.RatingCounts)
}

func TestGetDeckStatisticsRoundsPercentage(t *testing.T) {
	t.Parallel()
	_, logStore, svc := newStatsFixture(t)

	// 2 correct out of 3: 66.666...% rounds to 66.67
	logStore.Records = []*domain.ReviewRecord{
		recordWithRating(t, domain.ReviewRatingAgain),
		recordWithRating(t, domain.ReviewRatingGood),
		recordWithRating(t, domain.ReviewRatingEasy),
	}

	statistics, err := svc.GetDeckStatistics(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 66.67, statistics.CorrectPercentage)
}

func TestGetDeckStatisticsEmptyHistory(t *testing.T) {
	t.Parallel()
	_, _, svc := newStatsFixture(t)

	statistics, err := svc.GetDeckStatistics(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Zero(t, statistics.TotalReviews)
	assert.Zero(t, statistics.CorrectReviews)
	assert.Zero(t, statistics.CorrectPercentage)
	assert.Len(t, statistics.RatingCounts, len(domain.AllReviewRatings),
		"every rating should be present even with no history")
}

func TestGetDeckStatisticsDeckNotFound(t *testing.T) {
	t.Parallel()
	deckStore := &mocks.MockDeckStore{Err: store.ErrDeckNotFound}
	logStore := &mocks.MockReviewLogStore{}
	svc := stats.NewStatsService(deckStore, logStore, nil)

	_, err := svc.GetDeckStatistics(context.Background(), uuid.New())
	assert.ErrorIs(t, err, stats.ErrDeckNotFound)
}
