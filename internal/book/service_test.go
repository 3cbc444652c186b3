package book

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publisherBooks(publisherID int64) []Book {
	return []Book{
		{
			ISBN:        "9780123456789",
			Title:       "Java Programming Masterclass",
			Price:       decimal.RequireFromString("49.99"),
			Genre:       "Technology",
			CopiesSold:  1000,
			PublisherID: &publisherID,
		},
		{
			ISBN:        "9780987654321",
			Title:       "Spring Boot in Action",
			Price:       decimal.RequireFromString("39.99"),
			Genre:       "Technology",
			CopiesSold:  750,
			PublisherID: &publisherID,
		},
	}
}

func TestService_ApplyPublisherDiscount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("applies half-up rounded discount to every book of the publisher", func(t *testing.T) {
		mockRepo.EXPECT().ListByPublisher(gomock.Any(), int64(1)).Return(publisherBooks(1), nil)

		var saved []Book
		mockRepo.EXPECT().UpdatePrices(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, books []Book) error {
				saved = books
				return nil
			})

		err := service.ApplyPublisherDiscount(context.Background(), decimal.NewFromInt(10), 1)
		require.NoError(t, err)

		require.Len(t, saved, 2)
		assert.True(t, saved[0].Price.Equal(decimal.RequireFromString("44.99")), "got %s", saved[0].Price)
		assert.True(t, saved[1].Price.Equal(decimal.RequireFromString("35.99")), "got %s", saved[1].Price)
	})

	t.Run("zero percent leaves prices unchanged", func(t *testing.T) {
		mockRepo.EXPECT().ListByPublisher(gomock.Any(), int64(1)).Return(publisherBooks(1), nil)

		var saved []Book
		mockRepo.EXPECT().UpdatePrices(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, books []Book) error {
				saved = books
				return nil
			})

		err := service.ApplyPublisherDiscount(context.Background(), decimal.Zero, 1)
		require.NoError(t, err)

		require.Len(t, saved, 2)
		assert.True(t, saved[0].Price.Equal(decimal.RequireFromString("49.99")))
		assert.True(t, saved[1].Price.Equal(decimal.RequireFromString("39.99")))
	})

	t.Run("rejects negative percentage before touching the store", func(t *testing.T) {
		err := service.ApplyPublisherDiscount(context.Background(), decimal.NewFromInt(-5), 1)
		assert.ErrorIs(t, err, ErrInvalidPercentage)
	})

	t.Run("rejects percentage above 100", func(t *testing.T) {
		err := service.ApplyPublisherDiscount(context.Background(), decimal.RequireFromString("100.01"), 1)
		assert.ErrorIs(t, err, ErrInvalidPercentage)
	})

	t.Run("publisher with no books writes nothing", func(t *testing.T) {
		mockRepo.EXPECT().ListByPublisher(gomock.Any(), int64(99)).Return(nil, nil)

		err := service.ApplyPublisherDiscount(context.Background(), decimal.NewFromInt(10), 99)
		assert.NoError(t, err)
	})
}

func TestService_TopSellers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().TopSellers(gomock.Any(), 10).Return(publisherBooks(1), nil)

	summaries, err := service.TopSellers(context.Background())
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	// 1000 copies sold precedes 750
	assert.Equal(t, "Java Programming Masterclass", summaries[0].Title)
	assert.Equal(t, "Spring Boot in Action", summaries[1].Title)
}

func TestService_GetByISBN_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().GetByISBN(gomock.Any(), "9999999999999").Return(Book{}, ErrNotFound)

	_, err := service.GetByISBN(context.Background(), "9999999999999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_List_ReturnsSummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().List(gomock.Any()).Return(publisherBooks(1), nil)

	summaries, err := service.List(context.Background())
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, "9780123456789", summaries[0].ISBN)
	assert.Equal(t, "Technology", summaries[0].Genre)
	assert.True(t, summaries[0].Price.Equal(decimal.RequireFromString("49.99")))
}
