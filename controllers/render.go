package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"Yatube/monitoring"
	"Yatube/utils/httpctx"
	"Yatube/utils/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// render adds the viewer to data and writes the page.
func (server *Server) render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Viewer"] = httpctx.CurrentUser(c)
	c.HTML(status, page, data)
}

func (server *Server) NotFound(c *gin.Context) {
	server.render(c, http.StatusNotFound, "404.html", gin.H{"Path": c.Request.URL.Path})
}

func (server *Server) serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	monitoring.ReportError(err)
	logger.Logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	server.render(c, http.StatusInternalServerError, "500.html", nil)
}

// lookupFailed renders 404 for missing records and 500 for anything else.
func (server *Server) lookupFailed(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, errInvalidIdentifier) {
		server.NotFound(c)
		return
	}
	server.serverError(c, err)
}

func (server *Server) redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

func profileURL(username string) string { return "/profile/" + username + "/" }
func postURL(id uint) string           { return "/posts/" + strconv.FormatUint(uint64(id), 10) + "/" }
