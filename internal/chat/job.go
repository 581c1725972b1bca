package chat

import "time"

type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
)

// QueryJob is an asynchronously processed coin query. The worker picks it
// up off the queue, composes the reply and stores it on the row.
type QueryJob struct {
	ID string `gorm:"primaryKey;size:26" json:"id"` // ULID length

	Prompt string    `gorm:"type:text;not null" json:"prompt"`
	Status JobStatus `gorm:"type:varchar(16);index;not null" json:"status"`

	// Filled when succeeded
	Reply *string `gorm:"type:text" json:"reply"`

	// Filled when failed
	Error *string `gorm:"type:text" json:"error"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (QueryJob) TableName() string { return "coin_query_jobs" }
