package usecase

import (
	"context"
	"errors"
	"io"

	"visus-api/internal/delivery/dto"
	"visus-api/internal/infrastructure/storage"

	"github.com/sirupsen/logrus"
)

var (
	ErrFileRequired = errors.New("file is required")
)

// UploadRequest carries one multipart upload.
type UploadRequest struct {
	Content      io.Reader
	OriginalName string
	Folder       string
	ObjectName   string
}

type UploadUsecase interface {
	Upload(ctx context.Context, req *UploadRequest) (*dto.UploadResponse, error)
	Delete(ctx context.Context, objectName string) *dto.DeleteUploadResponse
}

type uploadUsecase struct {
	log         *logrus.Logger
	fileStorage storage.FileStorage
}

func NewUploadUsecase(log *logrus.Logger, fileStorage storage.FileStorage) UploadUsecase {
	return &uploadUsecase{
		log:         log,
		fileStorage: fileStorage,
	}
}

func (u *uploadUsecase) Upload(ctx context.Context, req *UploadRequest) (*dto.UploadResponse, error) {
	if req == nil || req.Content == nil {
		return nil, ErrFileRequired
	}

	obj, err := u.fileStorage.Save(ctx, req.Content, req.OriginalName, req.Folder, req.ObjectName)
	if err != nil {
		u.log.Warnf("Failed to store upload %s: %+v", req.OriginalName, err)
		return nil, err
	}

	u.log.Infof("Stored upload %s", obj.Path)
	return &dto.UploadResponse{URL: obj.URL, Path: obj.Path}, nil
}

// Delete always reports success. Storage failures, including a missing
// object, are only logged.
func (u *uploadUsecase) Delete(ctx context.Context, objectName string) *dto.DeleteUploadResponse {
	if err := u.fileStorage.Remove(ctx, objectName); err != nil {
		u.log.Warnf("Failed to remove file %s: %+v", objectName, err)
	} else {
		u.log.Infof("Removed file %s", objectName)
	}
	return &dto.DeleteUploadResponse{Status: "deleted"}
}
