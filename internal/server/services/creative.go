package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ideae/internal/common"
	"github.com/dmitrijs2005/ideae/internal/logging"
	"github.com/dmitrijs2005/ideae/internal/server/llm"
	"github.com/dmitrijs2005/ideae/internal/server/models"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/suggestions"
)

// InstructionTable maps a category to its system instruction. Unknown
// categories yield common.ErrInvalidCategory.
type InstructionTable interface {
	Lookup(category string) (string, error)
}

// ContentFilter decides whether a prompt may reach the backend.
type ContentFilter interface {
	IsBlocked(text string) (bool, string)
}

// BlockedError reports a prompt rejected by the content filter. It matches
// common.ErrContentBlocked and its message never names the matched term.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string { return e.Reason }

func (e *BlockedError) Is(target error) bool { return target == common.ErrContentBlocked }

// CreativeService runs the generation pipeline: category check, content
// filter, backend call, then history persistence.
type CreativeService struct {
	instructions InstructionTable
	filter       ContentFilter
	generator    llm.Generator
	history      suggestions.Repository
	log          logging.Logger
}

func NewCreativeService(instructions InstructionTable, filter ContentFilter, generator llm.Generator,
	history suggestions.Repository, log logging.Logger) *CreativeService {
	return &CreativeService{
		instructions: instructions,
		filter:       filter,
		generator:    generator,
		history:      history,
		log:          log,
	}
}

// CorrelationID tags one generation call of userID.
func CorrelationID(userID string) string {
	return fmt.Sprintf("ideae-%s-%s", userID, newID())
}

// Generate produces a suggestion for prompt under category and records it
// in userID's history. Nothing is recorded unless the backend succeeds.
func (s *CreativeService) Generate(ctx context.Context, userID, category, prompt string) (*models.Suggestion, error) {
	instruction, err := s.instructions.Lookup(category)
	if err != nil {
		return nil, common.ErrInvalidCategory
	}

	if strings.TrimSpace(prompt) == "" {
		return nil, common.ErrValidation
	}

	if blocked, reason := s.filter.IsBlocked(prompt); blocked {
		s.log.Info(ctx, "prompt blocked", "user_id", userID, "category", category)
		return nil, &BlockedError{Reason: reason}
	}

	correlationID := CorrelationID(userID)
	text, err := s.generator.Generate(ctx, instruction, prompt, correlationID)
	if err != nil {
		s.log.Error(ctx, "generation failed", "correlation_id", correlationID, "category", category, "error", err)
		return nil, common.ErrGenerationFailed
	}

	record := &models.Suggestion{
		ID:         newID(),
		UserID:     userID,
		Category:   category,
		Prompt:     prompt,
		Suggestion: text,
		CreatedAt:  now(),
	}

	// The backend call already succeeded; a client disconnect must not
	// drop the record.
	saved, err := s.history.Create(context.WithoutCancel(ctx), record)
	if err != nil {
		s.log.Error(ctx, "failed to store suggestion", "correlation_id", correlationID, "error", err)
		return nil, fmt.Errorf("error storing suggestion: %w", err)
	}

	return saved, nil
}

// ListHistory returns the newest suggestions of userID.
func (s *CreativeService) ListHistory(ctx context.Context, userID string) ([]*models.Suggestion, error) {
	list, err := s.history.ListByUser(ctx, userID, models.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing history: %w", err)
	}
	return list, nil
}
