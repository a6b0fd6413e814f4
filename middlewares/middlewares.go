package middlewares

import (
	"errors"
	"net/http"
	"net/url"

	"Yatube/auth"
	"Yatube/models"
	"Yatube/utils/httpctx"
	"Yatube/utils/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LoginURL is where guests are sent from login-required pages.
const LoginURL = "/auth/login/"

// SessionMiddleware attaches the user behind a valid session cookie.
// Requests without one continue as guests.
func SessionMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := auth.ExtractTokenID(c.Request)
		if err != nil {
			c.Next()
			return
		}

		user, err := (&models.User{}).FindUserByID(db.WithContext(c.Request.Context()), userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
			c.Next()
			return
		}
		if err != nil {
			// Transient failure: serve as a guest but keep the cookie.
			logger.Logger.Warn("session user lookup failed", zap.Uint("user_id", userID), zap.Error(err))
			c.Next()
			return
		}

		httpctx.SetUser(c, user)
		c.Next()
	}
}

// LoginRequired redirects guests to the login page with a next parameter.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := httpctx.CurrentUserID(c); ok {
			c.Next()
			return
		}
		c.Redirect(http.StatusFound, LoginRedirectURL(c.Request.URL.RequestURI()))
		c.Abort()
	}
}

func LoginRedirectURL(next string) string {
	return LoginURL + "?next=" + url.QueryEscape(next)
}
