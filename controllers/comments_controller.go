package controllers

import (
	"Yatube/models"
	httpctx "Yatube/utils/httpctx"

	"github.com/gin-gonic/gin"
)

// AddComment saves a valid comment and always returns to the post.
func (server *Server) AddComment(c *gin.Context) {
	post, err := resolvePostByIdentifier(server.DB, c.Param("id"))
	if err != nil {
		server.lookupFailed(c, err)
		return
	}

	viewerID, _ := httpctx.CurrentUserID(c)
	comment := models.Comment{
		Text: c.PostForm("text"),
	}
	comment.Prepare()
	comment.PostID = post.ID
	comment.AuthorID = viewerID

	if errorMessages := comment.Validate(); len(errorMessages) == 0 {
		if _, err := comment.SaveComment(server.DB); err != nil {
			server.serverError(c, err)
			return
		}
	}
	server.redirect(c, postURL(post.ID))
}
