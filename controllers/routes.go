package controllers

import (
	"net/http"

	"Yatube/middlewares"
	"Yatube/monitoring"
	"Yatube/storage"
	"Yatube/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func (s *Server) initializeRoutes() {
	cfg := s.Config

	s.Router.Use(middlewares.RequestLogger())
	s.Router.Use(gin.CustomRecovery(s.recoverPanic))
	s.Router.Use(middlewares.Metrics())
	s.Router.Use(middlewares.RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))
	s.Router.Use(middlewares.SessionMiddleware(s.DB))

	s.Router.NoRoute(s.NotFound)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if local, ok := s.Images.(*storage.LocalStore); ok {
		s.Router.Static(cfg.MediaURL, local.Root())
	}

	loginLimit := middlewares.LoginRateLimitMiddleware(cfg.LoginRateLimitBurst)
	authGroup := s.Router.Group("/auth")
	{
		authGroup.GET("/signup/", s.Signup)
		authGroup.POST("/signup/", loginLimit, s.Signup)
		authGroup.GET("/login/", s.Login)
		authGroup.POST("/login/", loginLimit, s.Login)
		authGroup.GET("/logout/", s.Logout)
		authGroup.POST("/logout/", s.Logout)
	}

	// Posts
	s.Router.GET("/", middlewares.CachePage(s.Cache), s.Index)
	s.Router.GET("/group/:slug/", s.GroupPosts)
	s.Router.GET("/profile/:username/", s.Profile)
	s.Router.GET("/posts/:id/", s.PostDetail)

	loggedIn := s.Router.Group("/", middlewares.LoginRequired())
	{
		loggedIn.GET("/create/", s.PostCreate)
		loggedIn.POST("/create/", s.PostCreate)
		loggedIn.GET("/posts/:id/edit/", s.PostEdit)
		loggedIn.POST("/posts/:id/edit/", s.PostEdit)

		// Comments
		loggedIn.POST("/posts/:id/comment/", s.AddComment)

		// Follows
		loggedIn.GET("/follow/", s.FollowIndex)
		loggedIn.GET("/profile/:username/follow/", s.ProfileFollow)
		loggedIn.POST("/profile/:username/follow/", s.ProfileFollow)
		loggedIn.GET("/profile/:username/unfollow/", s.ProfileUnfollow)
		loggedIn.POST("/profile/:username/unfollow/", s.ProfileUnfollow)
	}
}

func (s *Server) recoverPanic(c *gin.Context, recovered any) {
	monitoring.ReportPanic(recovered)
	logger.Logger.Error("panic while serving request",
		zap.Any("panic", recovered),
		zap.String("path", c.Request.URL.Path),
	)
	s.render(c, http.StatusInternalServerError, "500.html", nil)
	c.Abort()
}
