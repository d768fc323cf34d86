package impl

import (
	"context"
	"strings"
	"testing"

	"epicblogs/internal/domain/entity"
	domainerrors "epicblogs/internal/domain/errors"
	"epicblogs/internal/domain/repository"
	mockRepo "epicblogs/internal/mocks/repository"
	mockSvc "epicblogs/internal/mocks/service"
	"epicblogs/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// commentServiceFixtures holds all test dependencies for comment service tests.
type commentServiceFixtures struct {
	service     usecase.CommentUsecase
	commentRepo *mockRepo.MockCommentRepository
	postRepo    *mockRepo.MockPostRepository
	sanitizer   *mockSvc.MockContentSanitizer
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	commentRepo := mockRepo.NewMockCommentRepository(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	sanitizer := mockSvc.NewMockContentSanitizer(t)

	svc := NewCommentService(CommentServiceParams{
		CommentRepo: commentRepo,
		PostRepo:    postRepo,
		Sanitizer:   sanitizer,
		Logger:      newDiscardLogger(),
	})

	return commentServiceFixtures{
		service:     svc,
		commentRepo: commentRepo,
		postRepo:    postRepo,
		sanitizer:   sanitizer,
	}
}

func TestCommentService_ListComments(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	postID := uuid.New()

	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(&entity.Post{ID: postID}, nil)

	fx.commentRepo.EXPECT().
		ListByPost(ctx, postID).
		Return([]*entity.Comment{
			{ID: uuid.New(), PostID: postID, Content: "nice read"},
		}, nil)

	comments, err := fx.service.ListComments(ctx, postID)

	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "nice read", comments[0].Content)
}

func TestCommentService_ListComments_PostMissing(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	postID := uuid.New()

	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(nil, repository.ErrPostNotFound)

	comments, err := fx.service.ListComments(ctx, postID)

	assert.Error(t, err)
	assert.Nil(t, comments)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestCommentService_AddComment(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	postID := uuid.New()
	authorID := uuid.New()
	commentID := uuid.New()

	fx.sanitizer.EXPECT().
		SanitizeText("<b>great</b> post").
		Return("great post")

	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(&entity.Post{ID: postID}, nil)

	fx.commentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(ctx context.Context, comment *entity.Comment) {
			assert.Equal(t, postID, comment.PostID)
			assert.Equal(t, authorID, comment.AuthorID)
			assert.Equal(t, "great post", comment.Content)
			comment.ID = commentID
		}).
		Return(nil)

	fx.commentRepo.EXPECT().
		FindByID(ctx, commentID).
		Return(&entity.Comment{ID: commentID, PostID: postID, Content: "great post"}, nil)

	comment, err := fx.service.AddComment(ctx, postID, authorID, usecase.AddCommentInput{
		Content: "<b>great</b> post",
	})

	require.NoError(t, err)
	assert.Equal(t, commentID, comment.ID)
}

func TestCommentService_AddComment_EmptyAfterSanitize(t *testing.T) {
	fx := createTestCommentService(t)

	fx.sanitizer.EXPECT().
		SanitizeText("<script>alert(1)</script>").
		Return("")

	comment, err := fx.service.AddComment(context.Background(), uuid.New(), uuid.New(), usecase.AddCommentInput{
		Content: "<script>alert(1)</script>",
	})

	assert.Error(t, err)
	assert.Nil(t, comment)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCommentService_AddComment_TooLong(t *testing.T) {
	fx := createTestCommentService(t)

	long := strings.Repeat("a", entity.CommentMaxLength+1)

	fx.sanitizer.EXPECT().SanitizeText(long).Return(long)

	comment, err := fx.service.AddComment(context.Background(), uuid.New(), uuid.New(), usecase.AddCommentInput{
		Content: long,
	})

	assert.Error(t, err)
	assert.Nil(t, comment)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCommentService_UpdateComment_NotAuthor(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	commentID := uuid.New()

	fx.sanitizer.EXPECT().SanitizeText("edited").Return("edited")

	fx.commentRepo.EXPECT().
		FindByID(ctx, commentID).
		Return(&entity.Comment{ID: commentID, AuthorID: uuid.New()}, nil)

	comment, err := fx.service.UpdateComment(ctx, commentID, uuid.New(), usecase.UpdateCommentInput{
		Content: "edited",
	})

	assert.Error(t, err)
	assert.Nil(t, comment)
	assert.True(t, errors.Is(err, domainerrors.ErrNotCommentAuthor))
}

func TestCommentService_UpdateComment(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	commentID := uuid.New()
	authorID := uuid.New()

	fx.sanitizer.EXPECT().SanitizeText("edited").Return("edited")

	fx.commentRepo.EXPECT().
		FindByID(ctx, commentID).
		Return(&entity.Comment{ID: commentID, AuthorID: authorID, Content: "original"}, nil).
		Once()

	fx.commentRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(ctx context.Context, comment *entity.Comment) {
			assert.Equal(t, "edited", comment.Content)
		}).
		Return(nil)

	fx.commentRepo.EXPECT().
		FindByID(ctx, commentID).
		Return(&entity.Comment{ID: commentID, AuthorID: authorID, Content: "edited"}, nil).
		Once()

	comment, err := fx.service.UpdateComment(ctx, commentID, authorID, usecase.UpdateCommentInput{
		Content: "edited",
	})

	require.NoError(t, err)
	assert.Equal(t, "edited", comment.Content)
}

func TestCommentService_DeleteComment(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	commentID := uuid.New()
	authorID := uuid.New()

	fx.commentRepo.EXPECT().
		FindByID(ctx, commentID).
		Return(&entity.Comment{ID: commentID, AuthorID: authorID}, nil)

	fx.commentRepo.EXPECT().Delete(ctx, commentID).Return(nil)

	err := fx.service.DeleteComment(ctx, commentID, authorID)

	require.NoError(t, err)
}

func TestCommentService_DeleteComment_NotFound(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	commentID := uuid.New()

	fx.commentRepo.EXPECT().
		FindByID(ctx, commentID).
		Return(nil, repository.ErrCommentNotFound)

	err := fx.service.DeleteComment(ctx, commentID, uuid.New())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCommentNotFound))
}
