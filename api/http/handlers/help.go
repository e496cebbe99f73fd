package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/msilviu/taskpro/api/http/presenter"
	"github.com/msilviu/taskpro/pkg/auth"
)

type HelpHandler struct {
	useCase auth.AuthUseCase
}

func NewHelpHandler(useCase auth.AuthUseCase) *HelpHandler {
	return &HelpHandler{useCase: useCase}
}

type helpRequest struct {
	Email   string `json:"email"`
	Comment string `json:"comment"`
}

// RequestHelp forwards a support request and acknowledges the sender.
// @Summary Request help
// @Tags    help
// @Accept  json
// @Produce json
// @Param   input body helpRequest true "help payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /help [post]
func (h *HelpHandler) RequestHelp(c *fiber.Ctx) error {
	var req helpRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Comment) == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and comment are required")
	}

	if err := h.useCase.RequestHelp(c.Context(), req.Email, req.Comment); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to send help request")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "Reply email sent"})
}
