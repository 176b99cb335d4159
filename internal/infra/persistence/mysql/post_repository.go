package mysql

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/repository"
	"postboard/internal/infra/persistence/model"
)

// postRepository implements the repository.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Create persists a new post entity to the database.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "post owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt

	return nil
}

// ListAll returns every post in the store, oldest first. The reference
// behavior does not scope listings by owner.
func (repo *postRepository) ListAll(ctx context.Context) ([]*entity.Post, error) {
	var postMs []model.PostModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&postMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	posts := make([]*entity.Post, 0, len(postMs))
	for i := range postMs {
		posts = append(posts, toPostDomain(&postMs[i]))
	}

	return posts, nil
}

// FindByIDAndOwner retrieves a post only when both the ID and the owner match.
// A post owned by someone else is indistinguishable from an absent one.
func (repo *postRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint64) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&postM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id and owner")
	}

	return toPostDomain(&postM), nil
}

// Delete removes the post with the given ID.
func (repo *postRepository) Delete(ctx context.Context, id uint64) error {
	result := repo.db.WithContext(ctx).Delete(&model.PostModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:        data.ID,
		Text:      data.Text,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
	}
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:      data.ID,
		Text:    data.Text,
		OwnerID: data.OwnerID,
	}
}
