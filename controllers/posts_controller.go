package controllers

import (
	"errors"
	"net/http"
	"strings"

	"Yatube/feed"
	"Yatube/models"
	"Yatube/storage"
	httpctx "Yatube/utils/httpctx"
	"Yatube/utils/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// postForm is what the create and edit pages echo back to the user.
type postForm struct {
	Text    string
	GroupID uint
}

func (server *Server) Index(c *gin.Context) {
	page, err := server.Feed.Assemble(c.Request.Context(), feed.All(), c.Query("page"))
	if err != nil {
		server.serverError(c, err)
		return
	}
	server.render(c, http.StatusOK, "index.html", gin.H{"Page": page})
}

func (server *Server) GroupPosts(c *gin.Context) {
	group, err := resolveGroupBySlug(server.DB, c.Param("slug"))
	if err != nil {
		server.lookupFailed(c, err)
		return
	}

	page, err := server.Feed.Assemble(c.Request.Context(), feed.ForGroup(group.ID), c.Query("page"))
	if err != nil {
		server.serverError(c, err)
		return
	}
	server.render(c, http.StatusOK, "group_list.html", gin.H{
		"Group": group,
		"Page":  page,
	})
}

func (server *Server) Profile(c *gin.Context) {
	author, err := resolveUserByUsername(server.DB, c.Param("username"))
	if err != nil {
		server.lookupFailed(c, err)
		return
	}

	page, err := server.Feed.Assemble(c.Request.Context(), feed.ForAuthor(author.ID), c.Query("page"))
	if err != nil {
		server.serverError(c, err)
		return
	}

	following := false
	if viewerID, ok := httpctx.CurrentUserID(c); ok {
		if following, err = models.IsFollowing(server.DB, viewerID, author.ID); err != nil {
			server.serverError(c, err)
			return
		}
	}

	followers, err := models.CountFollowers(server.DB, author.ID)
	if err != nil {
		server.serverError(c, err)
		return
	}
	followingCount, err := models.CountFollowing(server.DB, author.ID)
	if err != nil {
		server.serverError(c, err)
		return
	}

	server.render(c, http.StatusOK, "profile.html", gin.H{
		"Author":         author,
		"Page":           page,
		"PostCount":      page.Count,
		"Following":      following,
		"FollowerCount":  followers,
		"FollowingCount": followingCount,
	})
}

func (server *Server) PostDetail(c *gin.Context) {
	post, err := resolvePostByIdentifier(server.DB, c.Param("id"))
	if err != nil {
		server.lookupFailed(c, err)
		return
	}

	postCount, err := models.CountAuthorPosts(server.DB, post.AuthorID)
	if err != nil {
		server.serverError(c, err)
		return
	}
	comments, err := (&models.Comment{}).GetComments(server.DB, post.ID)
	if err != nil {
		server.serverError(c, err)
		return
	}

	viewerID, _ := httpctx.CurrentUserID(c)
	server.render(c, http.StatusOK, "post_detail.html", gin.H{
		"Post":      post,
		"PostCount": postCount,
		"Comments":  comments,
		"IsAuthor":  viewerID == post.AuthorID,
	})
}

func (server *Server) PostCreate(c *gin.Context) {
	user := httpctx.CurrentUser(c)

	if c.Request.Method != http.MethodPost {
		server.renderPostForm(c, http.StatusOK, 0, postForm{}, map[string]string{})
		return
	}

	post := models.Post{AuthorID: user.ID}
	form, errorMessages := server.bindPost(c, &post)
	if len(errorMessages) > 0 {
		server.renderPostForm(c, http.StatusOK, 0, form, errorMessages)
		return
	}

	post.Prepare()
	post.AuthorID = user.ID
	if _, err := post.SavePost(server.DB); err != nil {
		server.discardImage(c, post.Image)
		server.serverError(c, err)
		return
	}
	server.redirect(c, profileURL(user.Username))
}

func (server *Server) PostEdit(c *gin.Context) {
	post, err := resolvePostByIdentifier(server.DB, c.Param("id"))
	if err != nil {
		server.lookupFailed(c, err)
		return
	}

	viewerID, _ := httpctx.CurrentUserID(c)
	if post.AuthorID != viewerID {
		server.redirect(c, postURL(post.ID))
		return
	}

	if c.Request.Method != http.MethodPost {
		form := postForm{Text: post.Text}
		if post.GroupID != nil {
			form.GroupID = *post.GroupID
		}
		server.renderPostForm(c, http.StatusOK, post.ID, form, map[string]string{})
		return
	}

	previousImage := post.Image
	form, errorMessages := server.bindPost(c, post)
	if len(errorMessages) > 0 {
		server.renderPostForm(c, http.StatusOK, post.ID, form, errorMessages)
		return
	}

	if _, err := post.UpdateAPost(server.DB); err != nil {
		if post.Image != previousImage {
			server.discardImage(c, post.Image)
		}
		server.serverError(c, err)
		return
	}
	if post.Image != previousImage {
		server.discardImage(c, previousImage)
	}
	server.redirect(c, postURL(post.ID))
}

// bindPost copies the submitted form onto post. A new image replaces the
// old one; no upload keeps it. The upload is stored only once the text and
// group are valid.
func (server *Server) bindPost(c *gin.Context, post *models.Post) (postForm, map[string]string) {
	errorMessages := map[string]string{}
	form := postForm{Text: strings.TrimSpace(c.PostForm("text"))}

	post.Text = form.Text
	if post.Text == "" {
		errorMessages["text"] = "This field is required."
	}

	groupID, err := resolveGroupChoice(server.DB, c.PostForm("group"))
	switch {
	case err == nil:
		post.GroupID = groupID
		if groupID != nil {
			form.GroupID = *groupID
		}
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, errInvalidIdentifier):
		errorMessages["group"] = "Select a valid choice. That choice is not one of the available choices."
	default:
		errorMessages["__all__"] = "Could not save the post, please try again."
	}

	if len(errorMessages) > 0 {
		return form, errorMessages
	}

	file, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return form, errorMessages
	}
	if err != nil {
		errorMessages["image"] = "Upload a valid image."
		return form, errorMessages
	}
	ref, err := server.Images.Save(c.Request.Context(), file)
	switch {
	case err == nil:
		post.Image = ref
	case errors.Is(err, storage.ErrNotAnImage):
		errorMessages["image"] = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
	case errors.Is(err, storage.ErrImageTooLarge):
		errorMessages["image"] = "The image is too large."
	default:
		_ = c.Error(err)
		errorMessages["image"] = "Could not store the image, please try again."
	}
	return form, errorMessages
}

// discardImage removes an upload no post refers to.
func (server *Server) discardImage(c *gin.Context, ref string) {
	if ref == "" {
		return
	}
	if err := server.Images.Delete(c.Request.Context(), ref); err != nil {
		logger.Logger.Warn("orphaned image left in storage", zap.String("ref", ref), zap.Error(err))
	}
}

func (server *Server) renderPostForm(c *gin.Context, status int, postID uint, form postForm, errorMessages map[string]string) {
	groups, err := (&models.Group{}).FindAllGroups(server.DB)
	if err != nil {
		server.serverError(c, err)
		return
	}
	server.render(c, status, "create_post.html", gin.H{
		"IsEdit": postID != 0,
		"PostID": postID,
		"Form":   form,
		"Groups": groups,
		"Errors": errorMessages,
	})
}
