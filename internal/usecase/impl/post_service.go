package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "epicblogs/internal/delivery/context"
	"epicblogs/internal/domain/entity"
	domainerrors "epicblogs/internal/domain/errors"
	"epicblogs/internal/domain/repository"
	"epicblogs/internal/domain/service"
	"epicblogs/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Reading speed used to estimate how long a post takes to read.
const wordsPerMinute = 200

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	postRepo  repository.PostRepository
	sanitizer service.ContentSanitizer
	logger    *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PostRepo  repository.PostRepository
	Sanitizer service.ContentSanitizer
	Logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager: params.TxManager,
		postRepo:  params.PostRepo,
		sanitizer: params.Sanitizer,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPosts returns one page of posts matching the filters, newest first.
func (srv *postService) ListPosts(ctx context.Context, input usecase.ListPostsInput) (*usecase.PostPage, error) {
	query := repository.PostQuery{
		Category: input.Category,
		AuthorID: input.AuthorID,
		Search:   input.Search,
		Page:     input.Page,
		PageSize: input.PageSize,
	}

	posts, total, err := srv.postRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	page := input.Page
	if page <= 0 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &usecase.PostPage{
		Posts:      posts,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// GetPost returns a single post with its author summary.
func (srv *postService) GetPost(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to load post")
	}

	return post, nil
}

// CreatePost sanitizes and publishes a new post for the given author.
func (srv *postService) CreatePost(ctx context.Context, authorID uuid.UUID, input usecase.CreatePostInput) (*entity.Post, error) {
	content := srv.sanitizer.SanitizeHTML(input.Content)

	post := &entity.Post{
		Title:      strings.TrimSpace(input.Title),
		Content:    content,
		Categories: normalizeCategories(input.Categories),
		CoverURL:   input.CoverURL,
		ReadTime:   estimateReadTime(srv.sanitizer.SanitizeText(content)),
		AuthorID:   authorID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewPostRepository().Create(ctx, post)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Post published", slog.Any("postID", post.ID), slog.Any("authorID", authorID))

	return srv.GetPost(ctx, post.ID)
}

// UpdatePost applies the author's changes. Only the author may touch a post.
func (srv *postService) UpdatePost(ctx context.Context, postID, userID uuid.UUID, input usecase.UpdatePostInput) (*entity.Post, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.NewPostRepository()

		post, err := postRepo.FindByID(ctx, postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound
			}

			return errors.Wrap(err, "failed to load post for update")
		}
		if post.AuthorID != userID {
			srv.log(ctx).Warn("Rejected post update by non-author",
				slog.Any("postID", postID), slog.Any("userID", userID))

			return domainerrors.ErrNotPostAuthor
		}

		if input.Title != nil {
			post.Title = strings.TrimSpace(*input.Title)
		}
		if input.Content != nil {
			post.Content = srv.sanitizer.SanitizeHTML(*input.Content)
			post.ReadTime = estimateReadTime(srv.sanitizer.SanitizeText(post.Content))
		}
		if input.Categories != nil {
			post.Categories = normalizeCategories(*input.Categories)
		}
		if input.CoverURL != nil {
			post.CoverURL = *input.CoverURL
		}

		return postRepo.Update(ctx, post)
	})
	if err != nil {
		return nil, err
	}

	return srv.GetPost(ctx, postID)
}

// DeletePost removes a post and everything hanging off it. Only the author may delete.
func (srv *postService) DeletePost(ctx context.Context, postID, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.NewPostRepository()

		post, err := postRepo.FindByID(ctx, postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound
			}

			return errors.Wrap(err, "failed to load post for delete")
		}
		if post.AuthorID != userID {
			srv.log(ctx).Warn("Rejected post delete by non-author",
				slog.Any("postID", postID), slog.Any("userID", userID))

			return domainerrors.ErrNotPostAuthor
		}

		return postRepo.Delete(ctx, postID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Post deleted", slog.Any("postID", postID))

	return nil
}

// ListCategories returns every known category with its post count.
func (srv *postService) ListCategories(ctx context.Context) ([]*entity.CategoryCount, error) {
	counts, err := srv.postRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return counts, nil
}

// RatePost records or replaces the reader's score and returns the new summary.
func (srv *postService) RatePost(ctx context.Context, postID, userID uuid.UUID, input usecase.RatePostInput) (*entity.RatingSummary, error) {
	if input.Score < 1 || input.Score > 5 {
		return nil, domainerrors.ErrInvalidRating
	}

	if _, err := srv.GetPost(ctx, postID); err != nil {
		return nil, err
	}

	rating := &entity.Rating{
		PostID: postID,
		UserID: userID,
		Score:  input.Score,
	}
	if err := srv.postRepo.UpsertRating(ctx, rating); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to store rating")
	}

	return srv.GetRatingSummary(ctx, postID)
}

// GetRatingSummary returns the average score and rating count for a post.
func (srv *postService) GetRatingSummary(ctx context.Context, postID uuid.UUID) (*entity.RatingSummary, error) {
	summary, err := srv.postRepo.RatingSummary(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize ratings")
	}

	return summary, nil
}

// GetUserRating returns the score a reader gave a post, if any.
func (srv *postService) GetUserRating(ctx context.Context, postID, userID uuid.UUID) (*entity.Rating, error) {
	rating, err := srv.postRepo.FindRating(ctx, postID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("no rating for this post")
		}

		return nil, errors.Wrap(err, "failed to load rating")
	}

	return rating, nil
}

// normalizeCategories trims, lowercases, and deduplicates category tags.
func normalizeCategories(categories []string) []string {
	seen := make(map[string]struct{}, len(categories))
	normalized := make([]string, 0, len(categories))
	for _, c := range categories {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		normalized = append(normalized, c)
	}

	return normalized
}

// estimateReadTime derives the reading estimate from the plain-text word count.
func estimateReadTime(plainText string) entity.ReadTime {
	words := len(strings.Fields(plainText))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}

	return entity.ReadTime{Value: minutes, Unit: "min"}
}
