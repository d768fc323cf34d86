// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"epicblogs/internal/domain/entity"
	domainerrors "epicblogs/internal/domain/errors"
	"epicblogs/internal/domain/repository"
	"epicblogs/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultPageSize = 10

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// FindByID retrieves a single post by its unique ID, including its author summary.
func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Categories").
		First(&postM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// List retrieves posts matching the query, newest first, with the total count
// of posts matching before pagination.
func (repo *postRepository) List(ctx context.Context, query repository.PostQuery) ([]*entity.Post, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.PostModel{})

	if query.Category != "" {
		tx = tx.Where(
			"EXISTS (SELECT 1 FROM post_categories pc WHERE pc.post_id = posts.id AND pc.category = ?)",
			query.Category,
		)
	}
	if query.AuthorID != nil {
		tx = tx.Where("author_id = ?", *query.AuthorID)
	}
	if query.Search != "" {
		tx = tx.Where("title ILIKE ?", "%"+query.Search+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count posts")
	}

	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	page := query.Page
	if page <= 0 {
		page = 1
	}

	var postModels []*model.PostModel
	err := tx.
		Preload("Author").
		Preload("Categories").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&postModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list posts")
	}

	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, total, nil
}

// Create persists a new post entity, including its category rows.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPostNotFound.WrapMessage("invalid author reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Update modifies an existing post and replaces its category rows.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)
	categories := postM.Categories
	postM.Categories = nil

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Save(postM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update post")
	}

	// Category tags are replaced wholesale on every update.
	if err := repo.db.WithContext(ctx).
		Delete(&model.PostCategoryModel{}, "post_id = ?", post.ID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear post categories")
	}
	if len(categories) != 0 {
		for i := range categories {
			categories[i].PostID = post.ID
		}
		if err := repo.db.WithContext(ctx).Create(&categories).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to save post categories")
		}
	}

	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Delete removes a post together with its comments, ratings, and category rows.
// Callers run this inside a transaction so the cascade is atomic.
func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx := repo.db.WithContext(ctx)

	if err := tx.Delete(&model.CommentModel{}, "post_id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete post comments")
	}
	if err := tx.Delete(&model.RatingModel{}, "post_id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete post ratings")
	}
	if err := tx.Delete(&model.PostCategoryModel{}, "post_id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete post categories")
	}

	result := tx.Delete(&model.PostModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// ListCategories returns each known category with the number of posts carrying it.
func (repo *postRepository) ListCategories(ctx context.Context) ([]*entity.CategoryCount, error) {
	var counts []*entity.CategoryCount
	err := repo.db.WithContext(ctx).
		Model(&model.PostCategoryModel{}).
		Select("category AS name, COUNT(*) AS count").
		Group("category").
		Order("count DESC, category ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return counts, nil
}

// UpsertRating records or replaces a user's rating for a post.
func (repo *postRepository) UpsertRating(ctx context.Context, rating *entity.Rating) error {
	ratingM := &model.RatingModel{
		PostID: rating.PostID,
		UserID: rating.UserID,
		Score:  rating.Score,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"score":      rating.Score,
				"updated_at": time.Now(),
			}),
		}).
		Create(ratingM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPostNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert rating")
	}

	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

// FindRating retrieves a user's rating for a post.
func (repo *postRepository) FindRating(ctx context.Context, postID, userID uuid.UUID) (*entity.Rating, error) {
	var ratingM model.RatingModel
	err := repo.db.WithContext(ctx).
		First(&ratingM, "post_id = ? AND user_id = ?", postID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating")
	}

	return &entity.Rating{
		PostID:    ratingM.PostID,
		UserID:    ratingM.UserID,
		Score:     ratingM.Score,
		CreatedAt: ratingM.CreatedAt,
		UpdatedAt: ratingM.UpdatedAt,
	}, nil
}

// RatingSummary computes the average score and rating count for a post.
func (repo *postRepository) RatingSummary(ctx context.Context, postID uuid.UUID) (*entity.RatingSummary, error) {
	var summary entity.RatingSummary
	err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("COALESCE(AVG(score), 0) AS average_rating, COUNT(*) AS total_ratings").
		Where("post_id = ?", postID).
		Scan(&summary).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize ratings")
	}

	return &summary, nil
}

// --- Mapper Functions ---

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	categories := make([]string, 0, len(data.Categories))
	for _, c := range data.Categories {
		categories = append(categories, c.Category)
	}

	var author *entity.AccountSummary
	if data.Author != nil {
		author = toUserDomain(data.Author).Summary()
	}

	return &entity.Post{
		ID:         data.ID,
		Title:      data.Title,
		Content:    data.Content,
		Categories: categories,
		CoverURL:   data.CoverURL,
		ReadTime: entity.ReadTime{
			Value: data.ReadTimeValue,
			Unit:  data.ReadTimeUnit,
		},
		AuthorID:  data.AuthorID,
		Author:    author,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPostDomain converts a domain Post entity to a GORM PostModel for persistence.
func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	categories := make([]model.PostCategoryModel, 0, len(data.Categories))
	for _, c := range data.Categories {
		categories = append(categories, model.PostCategoryModel{
			PostID:   data.ID,
			Category: c,
		})
	}

	return &model.PostModel{
		ID:            data.ID,
		Title:         data.Title,
		Content:       data.Content,
		CoverURL:      data.CoverURL,
		ReadTimeValue: data.ReadTime.Value,
		ReadTimeUnit:  data.ReadTime.Unit,
		AuthorID:      data.AuthorID,
		Categories:    categories,
	}
}
