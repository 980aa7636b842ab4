package usecase

import (
	"context"
	"errors"

	"visus-api/internal/converter"
	"visus-api/internal/delivery/dto"
	"visus-api/internal/domain/entity"
	"visus-api/internal/domain/repository"
	"visus-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound = errors.New("service not found")
)

type ServiceItemUsecase interface {
	GetActiveServices(ctx context.Context) ([]dto.ServiceItemResponse, error)
	GetAllServices(ctx context.Context) ([]dto.ServiceItemResponse, error)
	CreateService(ctx context.Context, req *dto.ServiceItemRequest) (*dto.ServiceItemResponse, error)
	UpdateService(ctx context.Context, id int64, req *dto.ServiceItemRequest) (*dto.ServiceItemResponse, error)
	DeleteService(ctx context.Context, id int64) error
}

type serviceItemUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	serviceRepo  repository.ServiceItemRepository
	auditService service.AuditService
}

func NewServiceItemUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceItemRepository,
	auditService service.AuditService,
) ServiceItemUsecase {
	return &serviceItemUsecase{
		db:           db,
		log:          log,
		serviceRepo:  serviceRepo,
		auditService: auditService,
	}
}

func (u *serviceItemUsecase) GetActiveServices(ctx context.Context) ([]dto.ServiceItemResponse, error) {
	items, err := u.serviceRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find active services: %+v", err)
		return nil, err
	}

	return converter.ServiceItemsToResponses(items), nil
}

func (u *serviceItemUsecase) GetAllServices(ctx context.Context) ([]dto.ServiceItemResponse, error) {
	items, err := u.serviceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all services: %+v", err)
		return nil, err
	}

	return converter.ServiceItemsToResponses(items), nil
}

func (u *serviceItemUsecase) CreateService(ctx context.Context, req *dto.ServiceItemRequest) (*dto.ServiceItemResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	item := &entity.ServiceItem{}
	converter.ApplyServiceItemRequest(item, req)

	if err := u.serviceRepo.Create(tx, item); err != nil {
		u.logWriteError("create", item.Slug, err)
		return nil, err
	}

	newValue := converter.ServiceItemToResponse(item)
	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionServiceCreate, "service", item.ID, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Created service %d (%s)", item.ID, item.Slug)
	return newValue, nil
}

func (u *serviceItemUsecase) UpdateService(ctx context.Context, id int64, req *dto.ServiceItemRequest) (*dto.ServiceItemResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	item, err := u.serviceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrServiceNotFound
	}

	oldValue := converter.ServiceItemToResponse(item)
	converter.ApplyServiceItemRequest(item, req)

	if err := u.serviceRepo.Update(tx, item); err != nil {
		u.logWriteError("update", item.Slug, err)
		return nil, err
	}

	newValue := converter.ServiceItemToResponse(item)
	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionServiceUpdate, "service", item.ID, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Updated service %d", item.ID)
	return newValue, nil
}

func (u *serviceItemUsecase) DeleteService(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	item, err := u.serviceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return err
	}
	if item == nil {
		return ErrServiceNotFound
	}
	oldValue := converter.ServiceItemToResponse(item)

	affectedRows, err := u.serviceRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed delete service: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrServiceNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionServiceDelete, "service", id, oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Deleted service %d", id)
	return nil
}

// Slug conflicts are not pre-checked; the store rejects them and the
// caller sees a generic failure.
func (u *serviceItemUsecase) logWriteError(op, slug string, err error) {
	if isDuplicateKeyError(err, "slug") {
		u.log.Warnf("Failed to %s service: slug %q already exists", op, slug)
		return
	}
	u.log.Warnf("Failed to %s service: %+v", op, err)
}
