package impl

import (
	"context"
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

// postServiceFixtures holds all test dependencies for post service tests.
type postServiceFixtures struct {
	service   usecase.PostUsecase
	txManager *mockRepo.MockTransactionManager
	postRepo  *mockRepo.MockPostRepository
	sanitizer *mockSvc.MockContentSanitizer
}

func createTestPostService(t *testing.T) postServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	sanitizer := mockSvc.NewMockContentSanitizer(t)

	svc := NewPostService(PostServiceParams{
		TxManager: txManager,
		PostRepo:  postRepo,
		Sanitizer: sanitizer,
		Logger:    newDiscardLogger(),
	})

	return postServiceFixtures{
		service:   svc,
		txManager: txManager,
		postRepo:  postRepo,
		sanitizer: sanitizer,
	}
}

func TestPostService_ListPosts_Defaults(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()

	fx.postRepo.EXPECT().
		List(ctx, repository.PostQuery{}).
		Return([]*entity.Post{{ID: uuid.New()}}, 25, nil)

	page, err := fx.service.ListPosts(ctx, usecase.ListPostsInput{})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Posts, 1)
}

func TestPostService_ListPosts_Filtered(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	authorID := uuid.New()

	fx.postRepo.EXPECT().
		List(ctx, repository.PostQuery{
			Category: "golang",
			AuthorID: &authorID,
			Search:   "generics",
			Page:     2,
			PageSize: 5,
		}).
		Return([]*entity.Post{}, 0, nil)

	page, err := fx.service.ListPosts(ctx, usecase.ListPostsInput{
		Category: "golang",
		AuthorID: &authorID,
		Search:   "generics",
		Page:     2,
		PageSize: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 0, page.TotalPages)
}

func TestPostService_CreatePost(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	authorID := uuid.New()
	postID := uuid.New()

	input := usecase.CreatePostInput{
		Title:      "  Understanding Goroutines  ",
		Content:    "<p>body</p><script>alert(1)</script>",
		Categories: []string{" Golang", "golang", "Concurrency", ""},
		CoverURL:   "https://cdn.example.com/cover.png",
	}

	fx.sanitizer.EXPECT().
		SanitizeHTML(input.Content).
		Return("<p>body</p>")
	fx.sanitizer.EXPECT().
		SanitizeText("<p>body</p>").
		Return("body")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().NewPostRepository().Return(mockPostRepo)

			mockPostRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Post")).
				Run(func(ctx context.Context, post *entity.Post) {
					assert.Equal(t, "Understanding Goroutines", post.Title)
					assert.Equal(t, "<p>body</p>", post.Content)
					assert.Equal(t, []string{"golang", "concurrency"}, post.Categories)
					assert.Equal(t, entity.ReadTime{Value: 1, Unit: "min"}, post.ReadTime)
					assert.Equal(t, authorID, post.AuthorID)
					post.ID = postID
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(&entity.Post{ID: postID, Title: "Understanding Goroutines"}, nil)

	post, err := fx.service.CreatePost(ctx, authorID, input)

	require.NoError(t, err)
	assert.Equal(t, postID, post.ID)
}

func TestPostService_UpdatePost_NotAuthor(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	title := "New title"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().NewPostRepository().Return(mockPostRepo)

			mockPostRepo.EXPECT().
				FindByID(ctx, postID).
				Return(&entity.Post{ID: postID, AuthorID: uuid.New()}, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrNotPostAuthor))
		}).
		Return(domainerrors.ErrNotPostAuthor)

	post, err := fx.service.UpdatePost(ctx, postID, uuid.New(), usecase.UpdatePostInput{
		Title: &title,
	})

	assert.Error(t, err)
	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrNotPostAuthor))
}

func TestPostService_UpdatePost_ResanitizesContent(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	authorID := uuid.New()
	content := "<p>updated</p><iframe></iframe>"

	fx.sanitizer.EXPECT().SanitizeHTML(content).Return("<p>updated</p>")
	fx.sanitizer.EXPECT().SanitizeText("<p>updated</p>").Return("updated")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().NewPostRepository().Return(mockPostRepo)

			mockPostRepo.EXPECT().
				FindByID(ctx, postID).
				Return(&entity.Post{ID: postID, AuthorID: authorID, Content: "<p>old</p>"}, nil)

			mockPostRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Post")).
				Run(func(ctx context.Context, post *entity.Post) {
					assert.Equal(t, "<p>updated</p>", post.Content)
					assert.Equal(t, 1, post.ReadTime.Value)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(&entity.Post{ID: postID, AuthorID: authorID, Content: "<p>updated</p>"}, nil)

	post, err := fx.service.UpdatePost(ctx, postID, authorID, usecase.UpdatePostInput{
		Content: &content,
	})

	require.NoError(t, err)
	assert.Equal(t, "<p>updated</p>", post.Content)
}

func TestPostService_DeletePost_NotAuthor(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().NewPostRepository().Return(mockPostRepo)

			mockPostRepo.EXPECT().
				FindByID(ctx, postID).
				Return(&entity.Post{ID: postID, AuthorID: uuid.New()}, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrNotPostAuthor))
		}).
		Return(domainerrors.ErrNotPostAuthor)

	err := fx.service.DeletePost(ctx, postID, uuid.New())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotPostAuthor))
}

func TestPostService_DeletePost_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	authorID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().NewPostRepository().Return(mockPostRepo)

			mockPostRepo.EXPECT().
				FindByID(ctx, postID).
				Return(&entity.Post{ID: postID, AuthorID: authorID}, nil)

			mockPostRepo.EXPECT().Delete(ctx, postID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeletePost(ctx, postID, authorID)

	require.NoError(t, err)
}

func TestPostService_RatePost_ScoreOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		score int
	}{
		{name: "zero", score: 0},
		{name: "negative", score: -1},
		{name: "above five", score: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPostService(t)

			summary, err := fx.service.RatePost(context.Background(), uuid.New(), uuid.New(), usecase.RatePostInput{
				Score: tt.score,
			})

			assert.Error(t, err)
			assert.Nil(t, summary)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidRating))
		})
	}
}

func TestPostService_RatePost_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	userID := uuid.New()

	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(&entity.Post{ID: postID}, nil)

	fx.postRepo.EXPECT().
		UpsertRating(ctx, mock.AnythingOfType("*entity.Rating")).
		Run(func(ctx context.Context, rating *entity.Rating) {
			assert.Equal(t, postID, rating.PostID)
			assert.Equal(t, userID, rating.UserID)
			assert.Equal(t, 4, rating.Score)
		}).
		Return(nil)

	fx.postRepo.EXPECT().
		RatingSummary(ctx, postID).
		Return(&entity.RatingSummary{AverageRating: 4.2, TotalRatings: 11}, nil)

	summary, err := fx.service.RatePost(ctx, postID, userID, usecase.RatePostInput{Score: 4})

	require.NoError(t, err)
	assert.Equal(t, 4.2, summary.AverageRating)
	assert.Equal(t, int64(11), summary.TotalRatings)
}

func TestPostService_RatePost_PostMissing(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()

	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(nil, repository.ErrPostNotFound)

	summary, err := fx.service.RatePost(ctx, postID, uuid.New(), usecase.RatePostInput{Score: 3})

	assert.Error(t, err)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestPostService_GetUserRating_None(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	userID := uuid.New()

	fx.postRepo.EXPECT().
		FindRating(ctx, postID, userID).
		Return(nil, repository.ErrRatingNotFound)

	rating, err := fx.service.GetUserRating(ctx, postID, userID)

	assert.Error(t, err)
	assert.Nil(t, rating)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestPostService_ListCategories(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()

	fx.postRepo.EXPECT().
		ListCategories(ctx).
		Return([]*entity.CategoryCount{
			{Name: "golang", Count: 12},
			{Name: "databases", Count: 3},
		}, nil)

	counts, err := fx.service.ListCategories(ctx)

	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "golang", counts[0].Name)
	assert.Equal(t, int64(12), counts[0].Count)
}

func TestNormalizeCategories(t *testing.T) {
	got := normalizeCategories([]string{" Golang ", "golang", "", "Databases", "DATABASES"})

	assert.Equal(t, []string{"golang", "databases"}, got)
}

func TestEstimateReadTime(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  int
	}{
		{name: "empty text floors at one minute", words: 0, want: 1},
		{name: "short text floors at one minute", words: 42, want: 1},
		{name: "exactly one page", words: 200, want: 1},
		{name: "just over one page rounds up", words: 201, want: 2},
		{name: "long article", words: 1000, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := ""
			for i := 0; i < tt.words; i++ {
				text += "word "
			}

			rt := estimateReadTime(text)

			assert.Equal(t, tt.want, rt.Value)
			assert.Equal(t, "min", rt.Unit)
		})
	}
}
