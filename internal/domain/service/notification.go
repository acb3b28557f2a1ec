package service

import (
	"context"
	"errors"
	"time"

	"github.com/simplyrugby/club-server/internal/domain/common/errorz"
	"github.com/simplyrugby/club-server/internal/domain/entity"
	"github.com/simplyrugby/club-server/pkg/logger/types"
	"gorm.io/gorm"
)

type notificationMessageStorage interface {
	CreateBatch(ctx context.Context, messages []entity.Message) error
	Get(ctx context.Context, id string) (*entity.Message, error)
	GetByReceiver(ctx context.Context, receiverID string, unreadOnly bool, limit, offset int) ([]entity.Message, error)
	Update(ctx context.Context, message *entity.Message) (*entity.Message, error)
	CountUnread(ctx context.Context, receiverID string) (int64, error)
}

type notificationUserStorage interface {
	GetMany(ctx context.Context, ids []string) ([]entity.User, error)
}

type notificationAssistantStorage interface {
	Get(ctx context.Context, id string) (*entity.MemberAssistant, error)
}

type notificationPlayerStorage interface {
	GetBySquadID(ctx context.Context, squadID string) ([]entity.Player, error)
}

type notificationJuniorStorage interface {
	GetBySquadID(ctx context.Context, squadID string) ([]entity.JuniorPlayer, error)
}

type notificationCoachStorage interface {
	GetAll(ctx context.Context) ([]entity.Coach, error)
}

type notificationSquadStorage interface {
	Get(ctx context.Context, id string) (*entity.Squad, error)
}

// NotificationService fans messages out to in-app mailboxes. One Message row
// per recipient, written in a single batch so a fan-out is all-or-nothing.
type NotificationService struct {
	messageStorage   notificationMessageStorage
	userStorage      notificationUserStorage
	assistantStorage notificationAssistantStorage
	playerStorage    notificationPlayerStorage
	juniorStorage    notificationJuniorStorage
	coachStorage     notificationCoachStorage
	squadStorage     notificationSquadStorage
	logger           *types.Logger
}

func NewNotificationService(
	messageStorage notificationMessageStorage,
	userStorage notificationUserStorage,
	assistantStorage notificationAssistantStorage,
	playerStorage notificationPlayerStorage,
	juniorStorage notificationJuniorStorage,
	coachStorage notificationCoachStorage,
	squadStorage notificationSquadStorage,
	logger *types.Logger,
) *NotificationService {
	return &NotificationService{
		messageStorage:   messageStorage,
		userStorage:      userStorage,
		assistantStorage: assistantStorage,
		playerStorage:    playerStorage,
		juniorStorage:    juniorStorage,
		coachStorage:     coachStorage,
		squadStorage:     squadStorage,
		logger:           logger,
	}
}

// Send delivers one message to every listed user. All copies share one
// creation timestamp; an empty message type defaults to announcement.
func (s *NotificationService) Send(
	ctx context.Context,
	senderID string,
	receiverIDs []string,
	title, content string,
	messageType entity.MessageType,
) ([]entity.Message, error) {
	if messageType == "" {
		messageType = entity.MessageAnnouncement
	}
	if content == "" {
		return nil, errorz.Validationf("message content is required")
	}
	if !messageType.Valid() {
		return nil, errorz.Validationf("unknown message type %q", messageType)
	}
	if len(receiverIDs) == 0 {
		return nil, errorz.Validationf("no recipients")
	}

	if _, err := s.assistantStorage.Get(ctx, senderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFoundf("member assistant %s", senderID)
		}
		return nil, err
	}

	receivers, err := s.userStorage.GetMany(ctx, dedupe(receiverIDs))
	if err != nil {
		return nil, err
	}
	if len(receivers) != len(dedupe(receiverIDs)) {
		return nil, errorz.NotFoundf("one or more recipients do not exist")
	}

	now := time.Now().UTC()
	messages := make([]entity.Message, 0, len(receivers))
	for _, receiver := range receivers {
		messages = append(messages, entity.Message{
			SenderID:   senderID,
			ReceiverID: receiver.ID,
			Title:      title,
			Content:    content,
			Type:       messageType,
			CreatedAt:  now,
		})
	}

	if err = s.messageStorage.CreateBatch(ctx, messages); err != nil {
		return nil, err
	}

	s.logger.Infof("assistant %s sent %q to %d recipients", senderID, title, len(messages))
	return messages, nil
}

// SendToSquad fans out to every player and junior player of the squad.
// A squad with no members is a validation failure, not a silent no-op.
func (s *NotificationService) SendToSquad(
	ctx context.Context,
	senderID, squadID string,
	title, content string,
	messageType entity.MessageType,
) ([]entity.Message, error) {
	if _, err := s.squadStorage.Get(ctx, squadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFoundf("squad %s", squadID)
		}
		return nil, err
	}

	players, err := s.playerStorage.GetBySquadID(ctx, squadID)
	if err != nil {
		return nil, err
	}
	juniors, err := s.juniorStorage.GetBySquadID(ctx, squadID)
	if err != nil {
		return nil, err
	}

	receiverIDs := make([]string, 0, len(players)+len(juniors))
	for _, p := range players {
		receiverIDs = append(receiverIDs, p.UserID)
	}
	for _, j := range juniors {
		receiverIDs = append(receiverIDs, j.UserID)
	}
	if len(receiverIDs) == 0 {
		return nil, errorz.Validationf("squad %s has no members", squadID)
	}

	return s.Send(ctx, senderID, receiverIDs, title, content, messageType)
}

// SendToCoaches fans out to every registered coach.
func (s *NotificationService) SendToCoaches(
	ctx context.Context,
	senderID string,
	title, content string,
	messageType entity.MessageType,
) ([]entity.Message, error) {
	coaches, err := s.coachStorage.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	receiverIDs := make([]string, 0, len(coaches))
	for _, c := range coaches {
		receiverIDs = append(receiverIDs, c.UserID)
	}
	if len(receiverIDs) == 0 {
		return nil, errorz.Validationf("no coaches registered")
	}

	return s.Send(ctx, senderID, receiverIDs, title, content, messageType)
}

// MarkRead flips a message to read for its receiver. It reports false both
// for a missing message and for a caller who is not the receiver; reading
// someone else's mailbox is not distinguishable from the message not
// existing.
func (s *NotificationService) MarkRead(ctx context.Context, messageID, userID string) (bool, error) {
	message, err := s.messageStorage.Get(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if message.ReceiverID != userID {
		return false, nil
	}
	if message.IsRead {
		return true, nil
	}

	message.IsRead = true
	if _, err = s.messageStorage.Update(ctx, message); err != nil {
		return false, err
	}
	return true, nil
}

// ListForUser returns the user's mailbox, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]entity.Message, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.messageStorage.GetByReceiver(ctx, userID, unreadOnly, limit, offset)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.messageStorage.CountUnread(ctx, userID)
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
