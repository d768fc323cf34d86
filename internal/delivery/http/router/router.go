// Package router contains routing setup for the HTTP delivery.
package router

import (
	"epicblogs/internal/delivery/http/middleware"
	"epicblogs/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	UploadHandler  *handler.UploadHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	postHandler    *handler.PostHandler
	commentHandler *handler.CommentHandler
	uploadHandler  *handler.UploadHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		postHandler:    params.PostHandler,
		commentHandler: params.CommentHandler,
		uploadHandler:  params.UploadHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Browser login handoff: redirect dance plus single-use ticket redemption.
	authGroup := e.Group("/auth")
	{
		authGroup.GET("/google", r.authHandler.GoogleLogin)
		authGroup.GET("/google/callback", r.authHandler.GoogleCallback)
		authGroup.GET("/ticket/:id", r.authHandler.RedeemTicket)
	}

	userGroup := e.Group("/users")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.GET("", r.userHandler.ListUsers)

		me := userGroup.Group("/me")
		me.Use(r.authMiddleware.Authenticate)
		{
			me.GET("", r.userHandler.GetMe)
			me.PUT("", r.userHandler.UpdateMe)
			me.POST("/avatar", r.userHandler.UploadAvatar)
		}
	}

	postGroup := e.Group("/posts")
	{
		postGroup.GET("", r.postHandler.ListPosts)
		postGroup.GET("/categories", r.postHandler.ListCategories)
		postGroup.GET("/:id", r.postHandler.GetPost)
		postGroup.GET("/:id/rating", r.postHandler.GetRating)
		postGroup.GET("/:id/comments", r.commentHandler.ListComments)

		postGroup.POST("", r.postHandler.CreatePost, r.authMiddleware.Authenticate)
		postGroup.PUT("/:id", r.postHandler.UpdatePost, r.authMiddleware.Authenticate)
		postGroup.DELETE("/:id", r.postHandler.DeletePost, r.authMiddleware.Authenticate)
		postGroup.GET("/:id/rating/me", r.postHandler.GetMyRating, r.authMiddleware.Authenticate)
		postGroup.POST("/:id/rating", r.postHandler.RatePost, r.authMiddleware.Authenticate)
		postGroup.POST("/:id/comments", r.commentHandler.AddComment, r.authMiddleware.Authenticate)
	}

	commentGroup := e.Group("/comments")
	commentGroup.Use(r.authMiddleware.Authenticate)
	{
		commentGroup.PUT("/:id", r.commentHandler.UpdateComment)
		commentGroup.DELETE("/:id", r.commentHandler.DeleteComment)
	}

	uploadGroup := e.Group("/upload")
	uploadGroup.Use(r.authMiddleware.Authenticate)
	{
		uploadGroup.POST("/image", r.uploadHandler.UploadImage)
	}
}
