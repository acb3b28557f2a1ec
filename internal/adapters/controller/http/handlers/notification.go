package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/simplyrugby/club-server/internal/adapters/controller/http/middlewares"
	"github.com/simplyrugby/club-server/internal/domain/common/errorz"
	"github.com/simplyrugby/club-server/internal/domain/dto"
	"github.com/simplyrugby/club-server/internal/domain/entity"
	"github.com/simplyrugby/club-server/internal/domain/service"
	"gorm.io/gorm"
)

type assistantResolver interface {
	GetByUserID(ctx context.Context, userID string) (*entity.MemberAssistant, error)
}

type NotificationHandler struct {
	notificationService *service.NotificationService
	assistants          assistantResolver
}

func NewNotificationHandler(
	notificationService *service.NotificationService,
	assistants assistantResolver,
) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		assistants:          assistants,
	}
}

// Send dispatches on the request body: a list of receiver ids, a whole
// squad, or every registered coach. Exactly one target must be given.
func (h *NotificationHandler) Send(c echo.Context) error {
	var payload dto.SendNotification
	if err := bind(c, &payload); err != nil {
		return err
	}

	targets := 0
	if len(payload.ReceiverIDs) > 0 {
		targets++
	}
	if payload.SquadID != "" {
		targets++
	}
	if payload.SendToCoaches {
		targets++
	}
	if targets != 1 {
		return errorz.Validationf("exactly one of receiver_ids, squad_id or send_to_coaches must be given")
	}

	assistant, err := h.contextAssistant(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	messageType := entity.MessageType(payload.MessageType)

	var messages []entity.Message
	switch {
	case len(payload.ReceiverIDs) > 0:
		messages, err = h.notificationService.Send(ctx, assistant.ID, payload.ReceiverIDs, payload.Title, payload.Content, messageType)
	case payload.SquadID != "":
		messages, err = h.notificationService.SendToSquad(ctx, assistant.ID, payload.SquadID, payload.Title, payload.Content, messageType)
	default:
		messages, err = h.notificationService.SendToCoaches(ctx, assistant.ID, payload.Title, payload.Content, messageType)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.FanOutResponse{Delivered: len(messages)})
}

// Inbox lists the caller's messages; ?unread_only=true narrows to unread
// ones.
func (h *NotificationHandler) Inbox(c echo.Context) error {
	user := middlewares.ContextUser(c)
	if user == nil {
		return errorz.ErrUnauthorized
	}

	unreadOnly := c.QueryParam("unread_only") == "true"
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	messages, err := h.notificationService.ListForUser(c.Request().Context(), user.ID, unreadOnly, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	user := middlewares.ContextUser(c)
	if user == nil {
		return errorz.ErrUnauthorized
	}

	count, err := h.notificationService.UnreadCount(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.UnreadCountResponse{Unread: count})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	user := middlewares.ContextUser(c)
	if user == nil {
		return errorz.ErrUnauthorized
	}

	marked, err := h.notificationService.MarkRead(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.MarkReadResponse{Marked: marked})
}

func (h *NotificationHandler) contextAssistant(c echo.Context) (*entity.MemberAssistant, error) {
	user := middlewares.ContextUser(c)
	if user == nil {
		return nil, errorz.ErrUnauthorized
	}
	assistant, err := h.assistants.GetByUserID(c.Request().Context(), user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.Forbiddenf("user %s has no member assistant profile", user.ID)
		}
		return nil, err
	}
	return assistant, nil
}
