package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

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

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	sanitizer   service.ContentSanitizer
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for commentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	PostRepo    repository.PostRepository
	Sanitizer   service.ContentSanitizer
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		postRepo:    params.PostRepo,
		sanitizer:   params.Sanitizer,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListComments returns all comments on a post, newest first.
func (srv *commentService) ListComments(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	if _, err := srv.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to load post for comments")
	}

	comments, err := srv.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// AddComment attaches a new comment to a post.
func (srv *commentService) AddComment(ctx context.Context, postID, authorID uuid.UUID, input usecase.AddCommentInput) (*entity.Comment, error) {
	content, err := srv.cleanContent(input.Content)
	if err != nil {
		return nil, err
	}

	if _, err := srv.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to load post for comment")
	}

	comment := &entity.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to create comment")
	}

	srv.log(ctx).Info("Comment added", slog.Any("postID", postID), slog.Any("authorID", authorID))

	return srv.commentRepo.FindByID(ctx, comment.ID)
}

// UpdateComment edits a comment. Only the author may edit.
func (srv *commentService) UpdateComment(ctx context.Context, commentID, userID uuid.UUID, input usecase.UpdateCommentInput) (*entity.Comment, error) {
	content, err := srv.cleanContent(input.Content)
	if err != nil {
		return nil, err
	}

	comment, err := srv.loadOwnComment(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to update comment")
	}

	return srv.commentRepo.FindByID(ctx, commentID)
}

// DeleteComment removes a comment. Only the author may delete.
func (srv *commentService) DeleteComment(ctx context.Context, commentID, userID uuid.UUID) error {
	if _, err := srv.loadOwnComment(ctx, commentID, userID); err != nil {
		return err
	}

	if err := srv.commentRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domainerrors.ErrCommentNotFound
		}

		return errors.Wrap(err, "failed to delete comment")
	}

	srv.log(ctx).Info("Comment deleted", slog.Any("commentID", commentID))

	return nil
}

// loadOwnComment loads a comment and checks the caller wrote it.
func (srv *commentService) loadOwnComment(ctx context.Context, commentID, userID uuid.UUID) (*entity.Comment, error) {
	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to load comment")
	}

	if comment.AuthorID != userID {
		srv.log(ctx).Warn("Rejected comment change by non-author",
			slog.Any("commentID", commentID), slog.Any("userID", userID))

		return nil, domainerrors.ErrNotCommentAuthor
	}

	return comment, nil
}

// cleanContent strips markup from comment text and enforces the length cap.
func (srv *commentService) cleanContent(raw string) (string, error) {
	content := srv.sanitizer.SanitizeText(strings.TrimSpace(raw))
	if content == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("comment text required")
	}
	if utf8.RuneCountInString(content) > entity.CommentMaxLength {
		return "", domainerrors.ErrValidationFailed.WrapMessage("comment too long")
	}

	return content, nil
}
