package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"Yatube/auth"
	"Yatube/models"
	"Yatube/utils/formaterror"
	"Yatube/utils/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type loginForm struct {
	Username string
}

type signupForm struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
}

func (server *Server) Login(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		server.render(c, http.StatusOK, "login.html", gin.H{
			"Next":   c.Query("next"),
			"Form":   loginForm{},
			"Errors": map[string]string{},
		})
		return
	}

	next := c.PostForm("next")
	user := models.User{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	}
	user.Prepare()
	errorMessages := user.Validate("login")
	if len(errorMessages) == 0 {
		signedIn, err := models.Authenticate(server.DB, user.Username, user.Password)
		switch {
		case err == nil:
			if err := server.startSession(c, signedIn.ID); err != nil {
				server.serverError(c, err)
				return
			}
			server.redirect(c, safeNext(next))
			return
		case errors.Is(err, models.ErrInvalidCredentials):
			errorMessages["__all__"] = "Please enter a correct username and password. Note that both fields may be case-sensitive."
		default:
			server.serverError(c, err)
			return
		}
	}

	server.render(c, http.StatusOK, "login.html", gin.H{
		"Next":   next,
		"Form":   loginForm{Username: user.Username},
		"Errors": errorMessages,
	})
}

func (server *Server) Signup(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		server.render(c, http.StatusOK, "signup.html", gin.H{
			"Form":   signupForm{},
			"Errors": map[string]string{},
		})
		return
	}

	user := models.User{
		FirstName: c.PostForm("first_name"),
		LastName:  c.PostForm("last_name"),
		Username:  c.PostForm("username"),
		Email:     c.PostForm("email"),
		Password:  c.PostForm("password"),
	}
	user.Prepare()
	form := signupForm{
		FirstName: c.PostForm("first_name"),
		LastName:  c.PostForm("last_name"),
		Username:  user.Username,
		Email:     user.Email,
	}

	errorMessages := user.Validate("")
	if len(errorMessages) == 0 {
		if _, err := user.SaveUser(server.DB); err != nil {
			logger.Logger.Info("signup rejected", zap.String("username", user.Username), zap.Error(err))
			errorMessages = formaterror.FormatError(err.Error())
		}
	}
	if len(errorMessages) > 0 {
		server.render(c, http.StatusOK, "signup.html", gin.H{
			"Form":   form,
			"Errors": errorMessages,
		})
		return
	}

	if err := server.startSession(c, user.ID); err != nil {
		server.serverError(c, err)
		return
	}
	server.redirect(c, "/")
}

func (server *Server) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", server.Config.IsProduction(), true)
	server.redirect(c, "/")
}

func (server *Server) startSession(c *gin.Context, userID uint) error {
	token, err := auth.CreateToken(userID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, token, int(auth.TTL().Seconds()), "/", "", server.Config.IsProduction(), true)
	return nil
}

// safeNext only follows local paths.
func safeNext(next string) string {
	next = strings.TrimSpace(next)
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return "/"
	}
	parsed, err := url.Parse(next)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" {
		return "/"
	}
	return next
}
