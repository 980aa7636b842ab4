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
	ErrReviewNotFound = errors.New("review not found")
)

type ReviewUsecase interface {
	GetAllReviews(ctx context.Context) ([]dto.ReviewResponse, error)
	CreateReview(ctx context.Context, req *dto.ReviewRequest) (*dto.ReviewResponse, error)
	UpdateReview(ctx context.Context, id int64, req *dto.ReviewRequest) (*dto.ReviewResponse, error)
	DeleteReview(ctx context.Context, id int64) error
}

type reviewUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	reviewRepo   repository.ReviewRepository
	auditService service.AuditService
}

func NewReviewUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reviewRepo repository.ReviewRepository,
	auditService service.AuditService,
) ReviewUsecase {
	return &reviewUsecase{
		db:           db,
		log:          log,
		reviewRepo:   reviewRepo,
		auditService: auditService,
	}
}

func (u *reviewUsecase) GetAllReviews(ctx context.Context) ([]dto.ReviewResponse, error) {
	reviews, err := u.reviewRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all reviews: %+v", err)
		return nil, err
	}

	return converter.ReviewsToResponses(reviews), nil
}

func (u *reviewUsecase) CreateReview(ctx context.Context, req *dto.ReviewRequest) (*dto.ReviewResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	review := &entity.Review{}
	converter.ApplyReviewRequest(review, req)

	if err := u.reviewRepo.Create(tx, review); err != nil {
		u.log.Warnf("Failed to create review: %+v", err)
		return nil, err
	}

	newValue := converter.ReviewToResponse(review)
	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionReviewCreate, "review", review.ID, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Created review %d", review.ID)
	return newValue, nil
}

func (u *reviewUsecase) UpdateReview(ctx context.Context, id int64, req *dto.ReviewRequest) (*dto.ReviewResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	review, err := u.reviewRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find review: %+v", err)
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}

	oldValue := converter.ReviewToResponse(review)
	converter.ApplyReviewRequest(review, req)

	if err := u.reviewRepo.Update(tx, review); err != nil {
		u.log.Warnf("Failed to update review: %+v", err)
		return nil, err
	}

	newValue := converter.ReviewToResponse(review)
	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionReviewUpdate, "review", review.ID, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Updated review %d", review.ID)
	return newValue, nil
}

func (u *reviewUsecase) DeleteReview(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	review, err := u.reviewRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find review: %+v", err)
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	oldValue := converter.ReviewToResponse(review)

	affectedRows, err := u.reviewRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed delete review: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrReviewNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionReviewDelete, "review", id, oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Deleted review %d", id)
	return nil
}
