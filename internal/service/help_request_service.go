// Package service содержит бизнес-логику работы с заявками на помощь.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"helprequest-service/internal/model"
	"helprequest-service/internal/repository"
)

// TransactionManager описывает интерфейс для управления транзакциями (чтобы можно было мокать).
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// HelpRequestRepository описывает контракт хранилища заявок.
type HelpRequestRepository interface {
	List(ctx context.Context) ([]model.HelpRequest, error)
	GetByID(ctx context.Context, id int64) (model.HelpRequest, error)
	Create(ctx context.Context, hr model.HelpRequest) (model.HelpRequest, error)
	Update(ctx context.Context, hr model.HelpRequest) (model.HelpRequest, error)
	Delete(ctx context.Context, id int64) error
}

// HelpRequestService реализует операции над заявками: список, чтение,
// создание, замену и удаление. Замена и удаление проверяют наличие заявки
// и пишут в одной транзакции.
type HelpRequestService struct {
	repo      HelpRequestRepository
	txManager TransactionManager
	log       *slog.Logger
}

// NewHelpRequestService создаёт сервис заявок.
func NewHelpRequestService(repo HelpRequestRepository, txManager TransactionManager, log *slog.Logger) *HelpRequestService {
	return &HelpRequestService{
		repo:      repo,
		txManager: txManager,
		log:       log,
	}
}

// List возвращает все заявки.
func (s *HelpRequestService) List(ctx context.Context) ([]model.HelpRequest, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal("failed to list help requests", err)
	}
	if items == nil {
		items = make([]model.HelpRequest, 0)
	}
	return items, nil
}

// Get возвращает заявку по id.
func (s *HelpRequestService) Get(ctx context.Context, id int64) (model.HelpRequest, error) {
	hr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.HelpRequest{}, s.mapRepoError(err, id, "failed to get help request")
	}
	return hr, nil
}

// Create сохраняет новую заявку и возвращает её с назначенным id.
// ID во входной структуре не учитывается.
func (s *HelpRequestService) Create(ctx context.Context, input model.HelpRequest) (model.HelpRequest, error) {
	s.log.InfoContext(ctx, "creating help request", slog.String("requestTime", input.RequestTime.String()))

	input.ID = 0
	created, err := s.repo.Create(ctx, input)
	if err != nil {
		return model.HelpRequest{}, ErrInternal("failed to create help request", err)
	}
	return created, nil
}

// Update заменяет все изменяемые поля заявки id значениями из incoming.
// incoming.ID игнорируется: заявку определяет только аргумент id.
func (s *HelpRequestService) Update(ctx context.Context, id int64, incoming model.HelpRequest) (model.HelpRequest, error) {
	var updated model.HelpRequest

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		updated, err = s.repo.Update(ctx, existing.WithFieldsFrom(incoming))
		return err
	})
	if err != nil {
		return model.HelpRequest{}, s.mapRepoError(err, id, "failed to update help request")
	}
	return updated, nil
}

// Delete удаляет заявку id.
func (s *HelpRequestService) Delete(ctx context.Context, id int64) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return s.mapRepoError(err, id, "failed to delete help request")
	}
	return nil
}

// NotFoundMessage возвращает текст ошибки 404 для заявки id.
func NotFoundMessage(id int64) string {
	return fmt.Sprintf("HelpRequest with id %d not found", id)
}

// DeletedMessage возвращает текст подтверждения удаления заявки id.
func DeletedMessage(id int64) string {
	return fmt.Sprintf("HelpRequest with id %d deleted", id)
}

func (s *HelpRequestService) mapRepoError(err error, id int64, msg string) error {
	if errors.Is(err, repository.ErrHelpRequestNotFound) {
		return ErrNotFound(NotFoundMessage(id))
	}
	return ErrInternal(msg, err)
}
