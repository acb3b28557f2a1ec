package entity

import "time"

type MessageType string

const (
	MessageTraining     MessageType = "training"
	MessageMatch        MessageType = "match"
	MessagePersonal     MessageType = "personal"
	MessageAnnouncement MessageType = "announcement"
)

func (t MessageType) Valid() bool {
	switch t {
	case MessageTraining, MessageMatch, MessagePersonal, MessageAnnouncement:
		return true
	}
	return false
}

// Message is one in-app mailbox row. A fan-out creates one Message per
// recipient; the row is immutable once created except for IsRead.
type Message struct {
	ID         string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SenderID   string `gorm:"not null;type:uuid;index"`
	ReceiverID string `gorm:"not null;type:uuid;index"`
	Title      string
	Content    string      `gorm:"not null"`
	Type       MessageType `gorm:"not null;default:announcement"`
	CreatedAt  time.Time   `gorm:"not null;index"`
	IsRead     bool        `gorm:"not null;default:false"`

	Sender   MemberAssistant `gorm:"foreignKey:SenderID"`
	Receiver User            `gorm:"foreignKey:ReceiverID"`
}
