package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinicore/internal/converter"
	"clinicore/internal/delivery/dto"
	"clinicore/internal/delivery/http/middleware"
	"clinicore/internal/domain/entity"
	"clinicore/internal/domain/repository"
	"clinicore/internal/service"
	"clinicore/internal/service/imagestore"

	"github.com/sirupsen/logrus"
)

var (
	ErrImageNotFound    = errors.New("medical image not found")
	ErrInvalidImageType = errors.New("invalid image type")
	ErrEmptyImageFile   = errors.New("image file is empty")
)

const defaultURLExpiry = time.Hour

// UploadImageInput carries the multipart upload fields into the usecase.
type UploadImageInput struct {
	PatientID   int64
	ImageType   string
	FileName    string
	ContentType string
	Data        []byte
}

type ImageUsecase interface {
	Upload(ctx context.Context, input *UploadImageInput) (*dto.ImageUploadResponse, error)
	Get(ctx context.Context, id int64) (*dto.ImageResponse, error)
	GetURL(ctx context.Context, id int64, expiresIn int64) (*dto.ImageURLResponse, error)
	GetByPatient(ctx context.Context, patientID int64) ([]dto.ImageResponse, error)
	GetAll(ctx context.Context) ([]dto.ImageResponse, error)
	Delete(ctx context.Context, id int64) error
}

type imageUsecase struct {
	log         *logrus.Logger
	imageRepo   repository.MedicalImageRepository
	store       imagestore.Store
	workflowLog service.WorkflowLogService
}

func NewImageUsecase(log *logrus.Logger, imageRepo repository.MedicalImageRepository, store imagestore.Store, workflowLog service.WorkflowLogService) ImageUsecase {
	return &imageUsecase{
		log:         log,
		imageRepo:   imageRepo,
		store:       store,
		workflowLog: workflowLog,
	}
}

// Upload stores the image bytes and records a metadata row. The numeric image
// id it returns is what the workflow layer attaches to a test; object keys
// stay internal to this package.
func (u *imageUsecase) Upload(ctx context.Context, input *UploadImageInput) (*dto.ImageUploadResponse, error) {
	imageType := entity.ImageType(input.ImageType)
	if !entity.ValidImageType(imageType) {
		return nil, ErrInvalidImageType
	}
	if len(input.Data) == 0 {
		return nil, ErrEmptyImageFile
	}

	callerID, _ := middleware.GetUserIDFromContext(ctx)

	objectKey := fmt.Sprintf("patient_%d/%s/%s_%s",
		input.PatientID, imageType, time.Now().UTC().Format("20060102T150405"), input.FileName)

	if err := u.store.Put(ctx, objectKey, input.Data, input.ContentType); err != nil {
		u.log.Warnf("Failed to store image object %s: %+v", objectKey, err)
		return nil, err
	}

	image := &entity.MedicalImage{
		PatientID:  input.PatientID,
		ImageType:  imageType,
		UploadedBy: callerID,
		ObjectKey:  objectKey,
		FileName:   input.FileName,
		FileSize:   int64(len(input.Data)),
	}
	if err := u.imageRepo.Create(ctx, image); err != nil {
		u.log.Warnf("Failed to record image metadata for %s: %+v", objectKey, err)
		return nil, err
	}

	url, err := u.store.URLFor(ctx, objectKey, defaultURLExpiry)
	if err != nil {
		u.log.Warnf("Failed to presign image %d: %+v", image.ID, err)
		return nil, err
	}

	u.workflowLog.Record(ctx, callerID,
		fmt.Sprintf("Uploaded %s image %d for patient %d", imageType, image.ID, input.PatientID))

	return &dto.ImageUploadResponse{
		ImageID:      image.ID,
		PresignedURL: url,
	}, nil
}

func (u *imageUsecase) Get(ctx context.Context, id int64) (*dto.ImageResponse, error) {
	image, err := u.imageRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find image %d: %+v", id, err)
		return nil, err
	}
	if image == nil {
		return nil, ErrImageNotFound
	}
	return converter.ImageToResponse(image), nil
}

// GetURL presigns a viewer URL for the object. expiresIn is in seconds and
// defaults to one hour.
func (u *imageUsecase) GetURL(ctx context.Context, id int64, expiresIn int64) (*dto.ImageURLResponse, error) {
	image, err := u.imageRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find image %d: %+v", id, err)
		return nil, err
	}
	if image == nil {
		return nil, ErrImageNotFound
	}

	ttl := defaultURLExpiry
	if expiresIn > 0 {
		ttl = time.Duration(expiresIn) * time.Second
	}

	url, err := u.store.URLFor(ctx, image.ObjectKey, ttl)
	if err != nil {
		u.log.Warnf("Failed to presign image %d: %+v", id, err)
		return nil, err
	}

	return &dto.ImageURLResponse{
		ImageID:      image.ID,
		PresignedURL: url,
		ExpiresIn:    int64(ttl.Seconds()),
	}, nil
}

func (u *imageUsecase) GetByPatient(ctx context.Context, patientID int64) ([]dto.ImageResponse, error) {
	images, err := u.imageRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to list images for patient %d: %+v", patientID, err)
		return nil, err
	}
	return converter.ImagesToResponses(images), nil
}

func (u *imageUsecase) GetAll(ctx context.Context) ([]dto.ImageResponse, error) {
	images, err := u.imageRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list images: %+v", err)
		return nil, err
	}
	return converter.ImagesToResponses(images), nil
}

// Delete removes the stored object first, then the metadata row. A dangling
// image id left on a test is acceptable; tests never resolve their image id.
func (u *imageUsecase) Delete(ctx context.Context, id int64) error {
	image, err := u.imageRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find image %d: %+v", id, err)
		return err
	}
	if image == nil {
		return ErrImageNotFound
	}

	if err := u.store.Delete(ctx, image.ObjectKey); err != nil {
		u.log.Warnf("Failed to delete image object %s: %+v", image.ObjectKey, err)
		return err
	}
	if err := u.imageRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete image metadata %d: %+v", id, err)
		return err
	}

	callerID, _ := middleware.GetUserIDFromContext(ctx)
	u.workflowLog.Record(ctx, callerID, fmt.Sprintf("Deleted image %d", id))

	return nil
}
