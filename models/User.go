package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"Yatube/security"

	"github.com/badoux/checkmail"
	"gorm.io/gorm"
)

type User struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	Username  string    `gorm:"size:150;not null;unique" json:"username"`
	FirstName string    `gorm:"size:150" json:"first_name"`
	LastName  string    `gorm:"size:150" json:"last_name"`
	Email     string    `gorm:"size:254" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Posts []Post `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

func (u *User) HashPassword() error {
	hashedPassword, err := security.Hash(u.Password)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	return u.HashPassword()
}

func (u *User) Prepare() {
	u.Username = strings.ToLower(strings.TrimSpace(u.Username))
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
}

func (u *User) Validate(action string) map[string]string {
	errorMessages := make(map[string]string)

	switch strings.ToLower(action) {
	case "login":
		if u.Username == "" {
			errorMessages["username"] = "This field is required."
		}
		if u.Password == "" {
			errorMessages["password"] = "This field is required."
		}
	default:
		if u.Username == "" {
			errorMessages["username"] = "This field is required."
		} else if !usernamePattern.MatchString(u.Username) {
			errorMessages["username"] = "Enter a valid username. Letters, digits and @/./+/-/_ only."
		}
		if u.Password == "" {
			errorMessages["password"] = "This field is required."
		} else if len(u.Password) < 8 {
			errorMessages["password"] = "This password is too short. It must contain at least 8 characters."
		}
		if u.Email != "" {
			if err := checkmail.ValidateFormat(u.Email); err != nil {
				errorMessages["email"] = "Enter a valid email address."
			}
		}
	}
	return errorMessages
}

// DisplayName prefers the full name and falls back to the username.
func (u User) DisplayName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Username
	}
	return full
}

func (u *User) SaveUser(db *gorm.DB) (*User, error) {
	if err := db.Create(&u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) FindUserByID(db *gorm.DB, uid uint) (*User, error) {
	var user User
	if err := db.Where("id = ?", uid).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByUsername returns gorm.ErrRecordNotFound for unknown names.
func (u *User) FindUserByUsername(db *gorm.DB, username string) (*User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, gorm.ErrRecordNotFound
	}
	var user User
	if err := db.Where("username = ?", username).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticate checks a username/password pair.
func Authenticate(db *gorm.DB, username, password string) (*User, error) {
	user, err := (&User{}).FindUserByUsername(db, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := security.VerifyPassword(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
