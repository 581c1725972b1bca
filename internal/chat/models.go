package chat

import "time"

const (
	MessageTypeUser = "USER"
	MessageTypeBot  = "BOT"
)

// Message is one persisted chat turn half, immutable once written. History
// retrieval orders by created_at ascending with id breaking ties, so two
// rows written in the same timestamp tick still come back in insert order.
type Message struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Sender      string    `gorm:"type:varchar(128);not null;index:idx_chat_msg_sender_created,priority:1" json:"sender"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	MessageType string    `gorm:"type:varchar(8);not null" json:"message_type"`
	CreatedAt   time.Time `gorm:"index:idx_chat_msg_sender_created,priority:2" json:"created_at"`
}

func (Message) TableName() string { return "chat_messages" }
