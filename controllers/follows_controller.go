package controllers

import (
	"net/http"

	"Yatube/feed"
	"Yatube/models"
	"Yatube/monitoring"
	httpctx "Yatube/utils/httpctx"

	"github.com/gin-gonic/gin"
)

// FollowIndex lists posts by the authors the viewer follows.
func (server *Server) FollowIndex(c *gin.Context) {
	viewerID, _ := httpctx.CurrentUserID(c)
	page, err := server.Feed.Assemble(c.Request.Context(), feed.ForFollower(viewerID), c.Query("page"))
	if err != nil {
		server.serverError(c, err)
		return
	}
	server.render(c, http.StatusOK, "follow.html", gin.H{"Page": page})
}

// ProfileFollow follows the author. Following yourself or following twice
// changes nothing.
func (server *Server) ProfileFollow(c *gin.Context) {
	author, err := resolveUserByUsername(server.DB, c.Param("username"))
	if err != nil {
		server.lookupFailed(c, err)
		return
	}

	viewerID, _ := httpctx.CurrentUserID(c)
	created, err := models.FollowAuthor(server.DB, viewerID, author.ID)
	if err != nil {
		server.serverError(c, err)
		return
	}
	if created {
		monitoring.FollowCreated()
	}
	server.redirect(c, profileURL(author.Username))
}

func (server *Server) ProfileUnfollow(c *gin.Context) {
	author, err := resolveUserByUsername(server.DB, c.Param("username"))
	if err != nil {
		server.lookupFailed(c, err)
		return
	}

	viewerID, _ := httpctx.CurrentUserID(c)
	removed, err := models.UnfollowAuthor(server.DB, viewerID, author.ID)
	if err != nil {
		server.serverError(c, err)
		return
	}
	if removed {
		monitoring.FollowDeleted()
	}
	server.redirect(c, profileURL(author.Username))
}
