package service

import (
	"context"
	"time"

	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/TPSE31/career-roadmap/internal/notify"
)

type notificationService struct {
	manager  *notify.Manager
	observer UseCaseObserver
}

func NewNotificationService(manager *notify.Manager, observers ...UseCaseObserver) NotificationService {
	return &notificationService{manager: manager, observer: useCaseObserverOrNoop(observers)}
}

func (s *notificationService) List(_ context.Context, f notify.Filter) ([]domain.Notification, error) {
	return s.manager.List(f), nil
}

func (s *notificationService) Get(_ context.Context, id string) (*domain.Notification, error) {
	n, err := s.manager.Get(id)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *notificationService) Create(ctx context.Context, n *domain.Notification) (err error) {
	defer observeUseCase(ctx, s.observer, "create-notification", time.Now(),
		map[string]any{"type": string(n.Type)}, &err)
	return s.manager.Create(ctx, n)
}

func (s *notificationService) MarkRead(ctx context.Context, id string) (err error) {
	defer observeUseCase(ctx, s.observer, "mark-notification-read", time.Now(),
		map[string]any{"notification_id": id}, &err)
	return s.manager.MarkRead(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context) (changed int, err error) {
	fields := map[string]any{}
	defer observeUseCase(ctx, s.observer, "mark-all-notifications-read", time.Now(), fields, &err)

	changed, err = s.manager.MarkAllRead(ctx)
	fields["changed"] = changed
	return changed, err
}

func (s *notificationService) Delete(ctx context.Context, id string) (err error) {
	defer observeUseCase(ctx, s.observer, "delete-notification", time.Now(),
		map[string]any{"notification_id": id}, &err)
	return s.manager.Delete(ctx, id)
}

func (s *notificationService) UnreadCount(context.Context) (int, error) {
	return s.manager.UnreadCount(), nil
}
