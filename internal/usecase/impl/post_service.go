package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "postboard/internal/delivery/context"
	"postboard/internal/domain/cache"
	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/repository"
	"postboard/internal/usecase"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager    repository.TransactionManager
	postRepo     repository.PostRepository
	listingCache cache.PostListingCache
	logger       *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PostRepo     repository.PostRepository
	ListingCache cache.PostListingCache
	Logger       *slog.Logger
}

// NewPostService is the constructor for postService. The listing cache is an
// explicit, injected component rather than package-level state, so it can be
// replaced (e.g. by a distributed cache) without touching this service.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager:    params.TxManager,
		postRepo:     params.PostRepo,
		listingCache: params.ListingCache,
		logger:       params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new post inside a transaction. Storage faults roll back
// and propagate without retries. The listing cache is deliberately not
// invalidated; a reader may see a listing without this post for up to the
// cache TTL.
func (srv *postService) Create(ctx context.Context, input *usecase.CreatePostInput) (*entity.Post, error) {
	if len(input.Text) > entity.MaxPostBytes {
		return nil, errors.Wrap(domainerrors.ErrPostTooLarge, "post body exceeds size limit")
	}

	newPost := &entity.Post{
		Text:    input.Text,
		OwnerID: input.OwnerID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PostRepo().Create(ctx, newPost); err != nil {
			return errors.Wrap(err, "failed to create post")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute post creation transaction", slog.Uint64("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute post creation transaction")
	}

	srv.log(ctx).Debug("Post created", slog.Uint64("postID", newPost.ID), slog.Uint64("ownerID", newPost.OwnerID))

	return newPost, nil
}

// List serves the listing for a user, consulting the per-user cache before
// the store. The cached snapshot is the unfiltered listing the reference
// behavior serves to every user.
func (srv *postService) List(ctx context.Context, userID uint64) ([]*entity.Post, error) {
	if posts, ok := srv.listingCache.Get(userID); ok {
		srv.log(ctx).Debug("Listing served from cache", slog.Uint64("userID", userID))

		return posts, nil
	}

	posts, err := srv.postRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list posts", slog.Uint64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list posts")
	}

	srv.listingCache.Put(userID, posts)

	return posts, nil
}

// Delete removes a post only when it exists and belongs to the caller, and
// returns the deleted post. Lookup and delete run in one transaction so no
// row is removed when the ownership check fails.
func (srv *postService) Delete(ctx context.Context, input *usecase.DeletePostInput) (*entity.Post, error) {
	var deleted *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		post, err := postRepo.FindByIDAndOwner(ctx, input.PostID, input.OwnerID)
		if err != nil {
			return err
		}

		if err := postRepo.Delete(ctx, post.ID); err != nil {
			return errors.Wrap(err, "failed to delete post")
		}
		deleted = post

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			srv.log(ctx).Warn("Delete rejected, post absent or not owned", slog.Uint64("postID", input.PostID), slog.Uint64("ownerID", input.OwnerID))

			return nil, errors.Wrap(domainerrors.ErrPostNotFound, "post absent or not owned")
		}
		srv.log(ctx).Error("Failed to execute post deletion transaction", slog.Uint64("postID", input.PostID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute post deletion transaction")
	}

	srv.log(ctx).Debug("Post deleted", slog.Uint64("postID", input.PostID), slog.Uint64("ownerID", input.OwnerID))

	return deleted, nil
}
