package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ethiopulse/backend/core"
)

// errFailedAIResponse is the only failure detail ever surfaced to clients;
// the underlying cause is logged server-side.
const errFailedAIResponse = "Failed to fetch AI response"

type assistantApi struct {
	svc      core.AssistantService
	logger   core.Logger
	validate *validator.Validate
}

func registerAssistantAPI(g *echo.Group, svc core.AssistantService, logger core.Logger, validate *validator.Validate) {
	api := assistantApi{
		svc:      svc,
		logger:   logger,
		validate: validate,
	}

	g.POST("/chat", api.chat)
}

func (api *assistantApi) chat(ctx echo.Context) error {
	var data ChatRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ChatRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	text, err := api.svc.Complete(ctx.Request().Context(), data.Prompt)
	if err != nil {
		api.logger.Error(errFailedAIResponse, errors.Wrap(err, "completing prompt"))
		return ctx.JSON(http.StatusInternalServerError, echo.Map{"error": errFailedAIResponse})
	}
	return ctx.JSON(http.StatusOK, ChatResponse{Text: text})
}

type (
	ChatRequest struct {
		Prompt string `json:"prompt" validate:"required"`
	}

	ChatResponse struct {
		Text string `json:"text"`
	}
)

func (cr *ChatRequest) Validate(validate *validator.Validate) error {
	cr.Prompt = core.CleanString(cr.Prompt)
	return validate.Struct(cr)
}
