package authentication

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mayurii-26/drive-smart-portal/src/core/helpers"
	"github.com/mayurii-26/drive-smart-portal/src/core/models"
	"github.com/mayurii-26/drive-smart-portal/src/core/sessions"
	"github.com/mayurii-26/drive-smart-portal/src/core/store"
)

type signUpInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type signInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUp handles user registration. New accounts always get the user
// role; the only admin is seeded at boot.
func SignUp(c *fiber.Ctx) error {
	body := new(signUpInput)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Name, a valid email and a password of at least 6 characters are required", err)
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to hash password", err)
	}

	user := models.User{
		ID:        uuid.NewString(),
		Name:      body.Name,
		Email:     body.Email,
		Password:  string(hashedPwd),
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC(),
	}

	if err := store.Users.Append(user); err == store.ErrDuplicateEmail {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Email already registered", err)
	} else if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to create user account", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Registration successful", nil)
}

// SignIn handles user authentication and issues the session cookie.
func SignIn(c *fiber.Ctx) error {
	body := new(signInInput)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Email and password are required", err)
	}

	session, err := sessions.Default.Login(body.Email, body.Password)
	if err == sessions.ErrInvalidCredentials {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid login credentials", err)
	}
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Login failed", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessions.CookieName,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return helpers.HandleSuccess(c, fiber.StatusOK, "Sign-in successful", session.Identity)
}

// SignOut destroys the current session. Signing out without one is not
// an error.
func SignOut(c *fiber.Ctx) error {
	if token := c.Cookies(sessions.CookieName); token != "" {
		sessions.Default.Destroy(token)
	}
	c.Cookie(&fiber.Cookie{
		Name:     sessions.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return helpers.HandleSuccess(c, fiber.StatusOK, "Signed out", nil)
}

// CurrentSession returns the identity bound to the session cookie, or
// 401 when there is none.
func CurrentSession(c *fiber.Ctx) error {
	identity, err := sessions.Default.Resolve(c.Cookies(sessions.CookieName))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Not authenticated", err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Authenticated", identity)
}
