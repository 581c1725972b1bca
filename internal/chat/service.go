package chat

import (
	"context"

	"github.com/coinpulse/coinchat/internal/bot"
	"github.com/coinpulse/coinchat/internal/common"
)

// Service glues the two chat paths together: the plain free-text path that
// writes history, and the coin-query path that goes through the classifier
// and composer without touching history.
type Service struct {
	repo       *Repo
	classifier *bot.Classifier
	composer   *bot.Composer
}

func NewService(repo *Repo, classifier *bot.Classifier, composer *bot.Composer) *Service {
	return &Service{repo: repo, classifier: classifier, composer: composer}
}

// ProcessUserMessage handles the plain chat path: generate the canned bot
// reply, then persist the user message and the reply as one turn. The
// returned message is the persisted bot row.
func (s *Service) ProcessUserMessage(ctx context.Context, sender, content string) (*Message, error) {
	userMsg := &Message{
		Sender:      sender,
		Content:     content,
		MessageType: MessageTypeUser,
	}
	botMsg := &Message{
		Sender:      sender,
		Content:     bot.CannedReply(content),
		MessageType: MessageTypeBot,
	}

	if err := s.repo.InsertTurn(ctx, userMsg, botMsg); err != nil {
		return nil, err
	}
	return botMsg, nil
}

// History returns all chat turns for a sender, ascending by creation time.
func (s *Service) History(ctx context.Context, sender string) ([]Message, error) {
	return s.repo.HistoryBySender(ctx, sender)
}

// CoinQuery classifies the prompt and composes a reply. It always returns
// displayable text, never an error, and by design does not extend chat
// history.
func (s *Service) CoinQuery(ctx context.Context, prompt string) string {
	cats := s.classifier.Classify(prompt)
	return s.composer.Compose(ctx, prompt, cats)
}

// CreateQueryJob records a queued coin query for asynchronous processing
// and returns the job row. Publishing to the queue is the caller's step.
func (s *Service) CreateQueryJob(ctx context.Context, prompt string) (*QueryJob, error) {
	id, err := common.NewULID()
	if err != nil {
		return nil, err
	}
	j := &QueryJob{
		ID:     id,
		Prompt: prompt,
		Status: JobQueued,
	}
	if err := s.repo.CreateJob(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *Service) GetQueryJob(ctx context.Context, id string) (*QueryJob, error) {
	return s.repo.GetJobByID(ctx, id)
}

// RunQueryJob executes one queued job: compose the reply and store it.
// Compose itself cannot fail, so the only failure mode left is the store.
func (s *Service) RunQueryJob(ctx context.Context, jobID string) error {
	if err := s.repo.UpdateJobStatusRunning(ctx, jobID); err != nil {
		return err
	}
	j, err := s.repo.GetJobByID(ctx, jobID)
	if err != nil {
		return err
	}

	reply := s.CoinQuery(ctx, j.Prompt)

	if err := s.repo.MarkJobSucceeded(ctx, jobID, reply); err != nil {
		_ = s.repo.MarkJobFailed(ctx, jobID, err.Error())
		return err
	}
	return nil
}
