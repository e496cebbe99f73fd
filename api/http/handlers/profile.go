package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/msilviu/taskpro/api/http/presenter"
	"github.com/msilviu/taskpro/pkg/auth"
)

type ProfileHandler struct {
	useCase auth.AuthUseCase
}

func NewProfileHandler(useCase auth.AuthUseCase) *ProfileHandler {
	return &ProfileHandler{useCase: useCase}
}

type themeRequest struct {
	Theme string `json:"theme"`
}

// UpdateTheme switches the user's UI theme.
// @Summary Update theme
// @Tags    users
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   input body themeRequest true "theme payload"
// @Success 200 {object} auth.PublicView
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /users/theme [patch]
func (h *ProfileHandler) UpdateTheme(c *fiber.Ctx) error {
	var req themeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Theme == "" {
		return presenter.Error(c, http.StatusBadRequest, "theme is required")
	}

	userID, ok := currentUserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "missing access token")
	}
	view, err := h.useCase.UpdateTheme(c.Context(), userID, req.Theme)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to update theme")
	}
	return presenter.JSON(c, http.StatusOK, view)
}

type profileRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UpdateProfile patches profile fields; the avatar comes as an optional
// multipart file. The password is re-hashed only when a new one is supplied.
// @Summary Update profile
// @Tags    users
// @Accept  json
// @Accept  mpfd
// @Produce json
// @Security BearerAuth
// @Param   input body profileRequest true "profile payload"
// @Success 200 {object} auth.PublicView
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /users/profile [patch]
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	input, err := parseProfileInput(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid profile payload")
	}
	if input.Avatar != nil {
		if closer, ok := input.Avatar.Reader.(io.Closer); ok {
			defer closer.Close()
		}
	}

	userID, ok := currentUserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "missing access token")
	}
	view, err := h.useCase.UpdateProfile(c.Context(), userID, input)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			return presenter.Error(c, http.StatusConflict, "Email is already in use")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update profile")
	}
	return presenter.JSON(c, http.StatusOK, view)
}

func parseProfileInput(c *fiber.Ctx) (auth.ProfileInput, error) {
	var input auth.ProfileInput

	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		var req profileRequest
		if err := c.BodyParser(&req); err != nil {
			return auth.ProfileInput{}, err
		}
		input.Name, input.Email, input.Password = req.Name, req.Email, req.Password
		return input, nil
	}

	for key, dst := range map[string]**string{
		"name":     &input.Name,
		"email":    &input.Email,
		"password": &input.Password,
	} {
		if v := c.FormValue(key); v != "" {
			value := v
			*dst = &value
		}
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		// no avatar part; fields-only update
		return input, nil
	}
	f, err := file.Open()
	if err != nil {
		return auth.ProfileInput{}, err
	}
	input.Avatar = &auth.AvatarUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		Reader:      f,
	}
	return input, nil
}
