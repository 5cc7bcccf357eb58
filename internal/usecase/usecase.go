package usecase

import (
	"context"
	"time"

	"github.com/Ainaz03/EM-BMS/internal/repository"
	"github.com/Ainaz03/EM-BMS/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
	TeamUsecaseInterface
	TaskUsecaseInterface
	MeetingUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout)
}
