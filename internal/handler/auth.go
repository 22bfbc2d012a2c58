package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/suites-api/internal/config"
	"github.com/stayhub/suites-api/internal/model"
	"github.com/stayhub/suites-api/internal/repository"
	"github.com/stayhub/suites-api/internal/utils"
	"github.com/stayhub/suites-api/internal/validate"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, users *repository.UserRepo) *AuthHandler {
	if users == nil {
		panic("nil repository passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, Users: users}
}

type loginResponse struct {
	User  model.UserView `json:"user"`
	Token string         `json:"token"`
	Exp   time.Time      `json:"expires"`
}

// Register handles POST /api/auth/register. The role defaults to Customer
// when omitted and the response never carries the password.
func (h *AuthHandler) Register(c echo.Context) error {
	var p validate.RegisterPayload
	if err := c.Bind(&p); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "invalid request body", nil)
	}
	if errs := validate.Registration(&p); !errs.Empty() {
		return utils.Fail(c, http.StatusBadRequest, "registration payload is invalid", errs)
	}

	ctx := c.Request().Context()
	exists, err := h.Users.EmailExists(ctx, p.Email)
	if err != nil {
		log.Printf("email check failed: %v", err)
		return utils.Fail(c, http.StatusInternalServerError, "could not register user", nil)
	}
	if exists {
		return utils.Fail(c, http.StatusConflict, "a user with the email '"+p.Email+"' already exists", nil)
	}

	u, err := h.Users.Create(ctx, p.Email, p.Name, p.Password, p.Role, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return utils.Fail(c, http.StatusConflict, "a user with the email '"+p.Email+"' already exists", nil)
		}
		log.Printf("user create failed: %v", err)
		return utils.Fail(c, http.StatusInternalServerError, "could not register user", nil)
	}
	return utils.OK(c, http.StatusCreated, "User registered successfully", u.PublicView())
}

// Login handles POST /api/auth/login. An unknown email and a wrong password
// fail identically so the response never reveals which one it was. On
// success the signed session token is the only session state.
func (h *AuthHandler) Login(c echo.Context) error {
	var p validate.LoginPayload
	if err := c.Bind(&p); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "invalid request body", nil)
	}
	if errs := validate.Login(&p); !errs.Empty() {
		return utils.Fail(c, http.StatusBadRequest, "login payload is invalid", errs)
	}

	ctx := c.Request().Context()
	u, err := h.Users.GetByEmail(ctx, p.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return utils.Fail(c, http.StatusBadRequest, "invalid email or password", nil)
		}
		log.Printf("user lookup failed: %v", err)
		return utils.Fail(c, http.StatusInternalServerError, "could not log in", nil)
	}
	if !utils.VerifyPassword(u.PasswordHash, p.Password) {
		return utils.Fail(c, http.StatusBadRequest, "invalid email or password", nil)
	}

	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, u, h.Cfg.TokenTTLDays)
	if err != nil {
		log.Printf("token issue failed: %v", err)
		return utils.Fail(c, http.StatusInternalServerError, "could not log in", nil)
	}
	return utils.OK(c, http.StatusOK, "Login successful", loginResponse{
		User:  u.PublicView(),
		Token: tok.Token,
		Exp:   tok.Exp,
	})
}
