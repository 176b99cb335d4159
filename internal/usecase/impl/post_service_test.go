package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/repository"
	mockCache "postboard/internal/mocks/cache"
	mockRepo "postboard/internal/mocks/repository"
	"postboard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// postServiceFixtures holds all test dependencies for post service tests.
type postServiceFixtures struct {
	service      usecase.PostUsecase
	txManager    *mockRepo.MockTransactionManager
	postRepo     *mockRepo.MockPostRepository
	listingCache *mockCache.MockPostListingCache
}

func createTestPostService(t *testing.T) postServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	listingCache := mockCache.NewMockPostListingCache(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPostService(PostServiceParams{
		TxManager:    txManager,
		PostRepo:     postRepo,
		ListingCache: listingCache,
		Logger:       logger,
	})

	return postServiceFixtures{
		service:      service,
		txManager:    txManager,
		postRepo:     postRepo,
		listingCache: listingCache,
	}
}

func TestPostService_Create_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.CreatePostInput{
		OwnerID: 1,
		Text:    "hello world",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)

			mockPostRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Post")).
				Run(func(ctx context.Context, post *entity.Post) {
					post.ID = 42
				}).
				Return(nil)

			err := fn(mockFactory)
			assert.NoError(t, err)
		}).
		Return(nil)

	post, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, uint64(42), post.ID)
	assert.Equal(t, "hello world", post.Text)
	assert.Equal(t, uint64(1), post.OwnerID)
}

func TestPostService_Create_AtSizeLimit(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.CreatePostInput{
		OwnerID: 1,
		Text:    strings.Repeat("a", entity.MaxPostBytes),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)

	post, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, post)
}

func TestPostService_Create_OverSizeLimit(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.CreatePostInput{
		OwnerID: 1,
		Text:    strings.Repeat("a", entity.MaxPostBytes+1),
	}

	post, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrPostTooLarge))
}

// The limit counts bytes, not runes.
func TestPostService_Create_SizeLimitCountsBytes(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.CreatePostInput{
		OwnerID: 1,
		Text:    strings.Repeat("é", entity.MaxPostBytes/2+1),
	}

	post, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrPostTooLarge))
}

func TestPostService_Create_TransactionFailure(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.CreatePostInput{
		OwnerID: 1,
		Text:    "hello world",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected"))

	post, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, post)
	assert.Contains(t, err.Error(), "failed to execute post creation transaction")
}

func TestPostService_List_CacheMiss(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	stored := []*entity.Post{
		{ID: 1, Text: "first", OwnerID: 1},
		{ID: 2, Text: "second", OwnerID: 2},
	}

	fx.listingCache.EXPECT().Get(uint64(1)).Return(nil, false)
	fx.postRepo.EXPECT().ListAll(ctx).Return(stored, nil)
	fx.listingCache.EXPECT().Put(uint64(1), stored).Return()

	posts, err := fx.service.List(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, stored, posts)
}

func TestPostService_List_CacheHit(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	cached := []*entity.Post{
		{ID: 1, Text: "first", OwnerID: 1},
	}

	fx.listingCache.EXPECT().Get(uint64(1)).Return(cached, true)

	posts, err := fx.service.List(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, cached, posts)
	fx.postRepo.AssertNotCalled(t, "ListAll")
}

// The listing is unfiltered, so every user sees every post. Each user still
// gets their own cache entry.
func TestPostService_List_PerUserCacheEntries(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	stored := []*entity.Post{
		{ID: 1, Text: "first", OwnerID: 1},
		{ID: 2, Text: "second", OwnerID: 2},
	}

	fx.listingCache.EXPECT().Get(uint64(1)).Return(nil, false)
	fx.listingCache.EXPECT().Get(uint64(2)).Return(nil, false)
	fx.postRepo.EXPECT().ListAll(ctx).Return(stored, nil).Times(2)
	fx.listingCache.EXPECT().Put(uint64(1), stored).Return()
	fx.listingCache.EXPECT().Put(uint64(2), stored).Return()

	first, err := fx.service.List(ctx, 1)
	require.NoError(t, err)
	second, err := fx.service.List(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, stored, first)
	assert.Equal(t, stored, second)
}

func TestPostService_List_RepositoryFailure(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()

	fx.listingCache.EXPECT().Get(uint64(1)).Return(nil, false)
	fx.postRepo.EXPECT().ListAll(ctx).Return(nil, errors.New("connection refused"))

	posts, err := fx.service.List(ctx, 1)

	require.Error(t, err)
	assert.Nil(t, posts)
	fx.listingCache.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestPostService_Delete_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.DeletePostInput{PostID: 42, OwnerID: 1}
	stored := &entity.Post{ID: 42, Text: "doomed", OwnerID: 1}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
			mockPostRepo.EXPECT().FindByIDAndOwner(ctx, uint64(42), uint64(1)).Return(stored, nil)
			mockPostRepo.EXPECT().Delete(ctx, uint64(42)).Return(nil)

			err := fn(mockFactory)
			assert.NoError(t, err)
		}).
		Return(nil)

	deleted, err := fx.service.Delete(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, uint64(42), deleted.ID)
}

func TestPostService_Delete_NotOwned(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.DeletePostInput{PostID: 42, OwnerID: 2}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
			mockPostRepo.EXPECT().
				FindByIDAndOwner(ctx, uint64(42), uint64(2)).
				Return(nil, repository.ErrPostNotFound)

			err := fn(mockFactory)
			assert.Error(t, err)
		}).
		Return(repository.ErrPostNotFound)

	deleted, err := fx.service.Delete(ctx, input)

	require.Error(t, err)
	assert.Nil(t, deleted)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestPostService_Delete_Absent(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.DeletePostInput{PostID: 999, OwnerID: 1}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrPostNotFound)

	deleted, err := fx.service.Delete(ctx, input)

	require.Error(t, err)
	assert.Nil(t, deleted)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestPostService_Delete_DeleteFailure(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.DeletePostInput{PostID: 42, OwnerID: 1}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected"))

	deleted, err := fx.service.Delete(ctx, input)

	require.Error(t, err)
	assert.Nil(t, deleted)
	assert.False(t, errors.Is(err, domainerrors.ErrPostNotFound))
}
