package controller

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/minimarket/marketplace-service/internal/dto"
	custommw "github.com/minimarket/marketplace-service/internal/middleware"
	"github.com/minimarket/marketplace-service/internal/service"
	"github.com/minimarket/marketplace-service/pkg/flash"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Echo, protected *echo.Group, service service.UserService) {
	uc := UserController{service: service}

	e.GET("/signup", uc.SignupForm)
	e.POST("/signup", uc.Signup)
	e.GET("/login", uc.LoginForm)
	e.POST("/login", uc.Login)
	e.GET("/logout", uc.Logout)

	protected.GET("/dashboard", uc.Dashboard)
	protected.POST("/dashboard", uc.UpdateProfile)
}

func (uc *UserController) SignupForm(c echo.Context) error {
	return render(c, "signup.html", nil)
}

func (uc *UserController) Signup(c echo.Context) error {
	payload := dto.RegisterRequest{}
	err := c.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Signup").Msg("")
	}

	user, err := uc.service.Register(c.Request().Context(), payload)
	if err != nil {
		return redirectWithFlash(c, flash.CategoryDanger, err.Error(), "/signup")
	}

	if err := custommw.EstablishSession(c, user.ID); err != nil {
		log.Error().Err(err).Str("component", "Signup").Msg("")
	}

	return redirectWithFlash(c, flash.CategorySuccess, "Welcome! Account created.", "/")
}

func (uc *UserController) LoginForm(c echo.Context) error {
	return render(c, "login.html", echo.Map{"Next": c.QueryParam("next")})
}

func (uc *UserController) Login(c echo.Context) error {
	payload := dto.LoginRequest{}
	err := c.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	user, err := uc.service.Login(c.Request().Context(), payload)
	if err != nil {
		target := "/login"
		if payload.Next != "" {
			target += "?next=" + url.QueryEscape(payload.Next)
		}
		return redirectWithFlash(c, flash.CategoryDanger, err.Error(), target)
	}

	if err := custommw.EstablishSession(c, user.ID); err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	flash.Add(c, flash.CategorySuccess, "Logged in successfully.")
	return c.Redirect(http.StatusFound, safeNext(payload.Next))
}

func (uc *UserController) Logout(c echo.Context) error {
	if err := custommw.ClearSession(c); err != nil {
		log.Error().Err(err).Str("component", "Logout").Msg("")
	}

	return redirectWithFlash(c, flash.CategoryInfo, "Logged out.", "/login")
}

func (uc *UserController) Dashboard(c echo.Context) error {
	user, err := uc.service.GetByID(c.Request().Context(), custommw.UserID(c))
	if err != nil {
		return redirectWithFlash(c, flash.CategoryDanger, err.Error(), "/")
	}

	return render(c, "dashboard.html", echo.Map{"User": user})
}

func (uc *UserController) UpdateProfile(c echo.Context) error {
	payload := dto.ProfileRequest{}
	err := c.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProfile").Msg("")
	}

	err = uc.service.UpdateProfile(c.Request().Context(), custommw.UserID(c), payload)
	if err != nil {
		return redirectWithFlash(c, flash.CategoryDanger, err.Error(), "/dashboard")
	}

	return redirectWithFlash(c, flash.CategorySuccess, "Profile updated.", "/dashboard")
}

// safeNext accepts only local paths so the post-login redirect cannot leave
// the site.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}
