package usecase

import (
	"context"

	"visus-api/internal/converter"
	"visus-api/internal/delivery/dto"
	"visus-api/internal/domain/entity"
	"visus-api/internal/domain/repository"
	"visus-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CallbackRequestUsecase interface {
	CreateCallbackRequest(ctx context.Context, req *dto.CreateCallbackRequest) (*dto.CallbackRequestResponse, error)
	GetAllCallbackRequests(ctx context.Context) ([]dto.CallbackRequestResponse, error)
}

type callbackRequestUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	callbackRepo        repository.CallbackRequestRepository
	notificationService service.NotificationService
}

func NewCallbackRequestUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	callbackRepo repository.CallbackRequestRepository,
	notificationService service.NotificationService,
) CallbackRequestUsecase {
	return &callbackRequestUsecase{
		db:                  db,
		log:                 log,
		callbackRepo:        callbackRepo,
		notificationService: notificationService,
	}
}

// CreateCallbackRequest stores the request with status NEW and a server
// timestamp, then notifies subscribers. Notification is best effort.
func (u *callbackRequestUsecase) CreateCallbackRequest(ctx context.Context, req *dto.CreateCallbackRequest) (*dto.CallbackRequestResponse, error) {
	request := &entity.CallbackRequest{
		Name:   converter.StringValue(req.Name),
		Phone:  converter.StringValue(req.Phone),
		Status: entity.CallbackStatusNew,
	}

	if err := u.callbackRepo.Create(u.db.WithContext(ctx), request); err != nil {
		u.log.Warnf("Failed to create callback request: %+v", err)
		return nil, err
	}

	res := converter.CallbackRequestToResponse(request)
	if err := u.notificationService.NotifyCallbackCreated(ctx, res); err != nil {
		u.log.Warnf("Failed to notify about callback request %d: %+v", request.ID, err)
	}

	u.log.Infof("Received callback request %d", request.ID)
	return res, nil
}

func (u *callbackRequestUsecase) GetAllCallbackRequests(ctx context.Context) ([]dto.CallbackRequestResponse, error) {
	requests, err := u.callbackRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all callback requests: %+v", err)
		return nil, err
	}

	return converter.CallbackRequestsToResponses(requests), nil
}
