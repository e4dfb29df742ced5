// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shelf/internal/delivery/api/middleware"
	"shelf/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	SpotifyHandler *handler.SpotifyHandler
	ListHandler    *handler.ListHandler
	RatingHandler  *handler.RatingHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	spotifyHandler *handler.SpotifyHandler
	listHandler    *handler.ListHandler
	ratingHandler  *handler.RatingHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		spotifyHandler: params.SpotifyHandler,
		listHandler:    params.ListHandler,
		ratingHandler:  params.RatingHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", r.healthHandler.Check)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.GET("/me", r.accountHandler.Me, r.authMiddleware.Authenticate)
	}

	spotifyGroup := api.Group("/spotify", r.authMiddleware.Authenticate)
	{
		spotifyGroup.POST("/link", r.spotifyHandler.BeginLink)
		spotifyGroup.POST("/callback", r.spotifyHandler.Callback)
		spotifyGroup.GET("/token", r.spotifyHandler.Token)
	}

	ratingsGroup := api.Group("/ratings", r.authMiddleware.Authenticate)
	{
		ratingsGroup.POST("", r.ratingHandler.RateAlbum)
		ratingsGroup.GET("", r.ratingHandler.ListRatings)
	}

	listsGroup := api.Group("/lists", r.authMiddleware.Authenticate)
	{
		listsGroup.POST("", r.listHandler.CreateList)
		listsGroup.GET("", r.listHandler.GetLists)
		listsGroup.PATCH("/:id", r.listHandler.RenameList)
		listsGroup.DELETE("/:id", r.listHandler.DeleteList)

		listsGroup.POST("/:id/items", r.listHandler.AddItem)
		listsGroup.PATCH("/:id/items/reorder", r.listHandler.ReorderItems)
		listsGroup.POST("/:id/items/:itemId/move", r.listHandler.MoveItem)
		listsGroup.DELETE("/:id/items/:itemId", r.listHandler.RemoveItem)
	}
}
