package todo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/chatdo/internal/database"
	"github.com/thenoetrevino/chatdo/internal/models"
)

// MaxTaskLength is the longest task text accepted, in characters
const MaxTaskLength = 500

// Service defines all to-do business operations
type Service interface {
	// Write operations
	AddTask(ctx context.Context, userID, task string) error
	RemoveAllTasks(ctx context.Context, userID string) error

	// Read operations
	ListTasks(ctx context.Context, userID string) ([]*models.TaskRecord, error)
	History(ctx context.Context) ([]*models.TaskRecord, error)
}

// service implements Service interface
type service struct {
	store  database.TaskStore
	logger *slog.Logger
}

// NewService creates a new to-do service. A nil logger uses slog.Default().
func NewService(store database.TaskStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		store:  store,
		logger: logger,
	}
}

// AddTask appends one task for userID. Duplicates are allowed.
func (s *service) AddTask(ctx context.Context, userID, task string) error {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return err
	}

	task = strings.TrimSpace(task)
	if task == "" {
		return ErrEmptyTask
	}
	if utf8.RuneCountInString(task) > MaxTaskLength {
		return ErrTaskTooLong
	}

	if err := s.store.Insert(ctx, userID, task); err != nil {
		s.logger.Error("add task failed", "user_id", userID, "error", err)
		return fmt.Errorf("failed to add task: %w", err)
	}

	s.logger.Info("task added", "user_id", userID)
	return nil
}

// RemoveAllTasks deletes every task owned by userID. Removing from a user
// with no tasks succeeds.
func (s *service) RemoveAllTasks(ctx context.Context, userID string) error {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return err
	}

	if err := s.store.DeleteAll(ctx, userID); err != nil {
		s.logger.Error("remove tasks failed", "user_id", userID, "error", err)
		return fmt.Errorf("failed to remove tasks: %w", err)
	}

	s.logger.Info("tasks removed", "user_id", userID)
	return nil
}

// ListTasks returns userID's tasks in store order
func (s *service) ListTasks(ctx context.Context, userID string) ([]*models.TaskRecord, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return nil, err
	}

	records, err := s.store.SelectAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return records, nil
}

// History returns every stored task across all users
func (s *service) History(ctx context.Context) ([]*models.TaskRecord, error) {
	records, err := s.store.SelectAll(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tasks: %w", err)
	}
	return records, nil
}

func normalizeUserID(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", ErrEmptyUserID
	}
	return userID, nil
}
