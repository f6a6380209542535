package usecase

import (
	"context"
	"strings"
	"testing"

	"clinicore/internal/service"
)

func newTestImageUsecase() (ImageUsecase, *fakeImageRepo, *fakeImageStore) {
	log := newTestLogger()
	imageRepo := newFakeImageRepo()
	store := newFakeImageStore()
	uc := NewImageUsecase(log, imageRepo, store, service.NewWorkflowLogService(log, newFakeLogRepo()))
	return uc, imageRepo, store
}

func TestUploadImage(t *testing.T) {
	uc, imageRepo, store := newTestImageUsecase()
	ctx := staffContext(9)

	result, err := uc.Upload(ctx, &UploadImageInput{
		PatientID:   4,
		ImageType:   "xray",
		FileName:    "chest.png",
		ContentType: "image/png",
		Data:        []byte{0x89, 0x50, 0x4e, 0x47},
	})
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if result.ImageID == 0 {
		t.Error("expected an assigned image id")
	}
	if result.PresignedURL == "" {
		t.Error("expected a presigned URL")
	}

	stored, _ := imageRepo.FindByID(context.Background(), result.ImageID)
	if stored == nil {
		t.Fatal("expected a metadata row")
	}
	if stored.UploadedBy != 9 {
		t.Errorf("expected uploaded_by 9 from context, got %d", stored.UploadedBy)
	}
	if stored.FileSize != 4 {
		t.Errorf("expected file size 4, got %d", stored.FileSize)
	}
	if !strings.HasPrefix(stored.ObjectKey, "patient_4/xray/") {
		t.Errorf("unexpected object key layout: %s", stored.ObjectKey)
	}
	if _, ok := store.objects[stored.ObjectKey]; !ok {
		t.Error("expected the object bytes in the store")
	}
}

func TestUploadImageValidation(t *testing.T) {
	uc, _, _ := newTestImageUsecase()
	ctx := staffContext(9)

	if _, err := uc.Upload(ctx, &UploadImageInput{
		PatientID: 4, ImageType: "hologram", FileName: "f", Data: []byte{1},
	}); err != ErrInvalidImageType {
		t.Errorf("expected ErrInvalidImageType, got %v", err)
	}

	if _, err := uc.Upload(ctx, &UploadImageInput{
		PatientID: 4, ImageType: "mri", FileName: "f", Data: nil,
	}); err != ErrEmptyImageFile {
		t.Errorf("expected ErrEmptyImageFile, got %v", err)
	}
}

func TestGetImageURLDefaultExpiry(t *testing.T) {
	uc, _, _ := newTestImageUsecase()
	ctx := staffContext(9)

	uploaded, err := uc.Upload(ctx, &UploadImageInput{
		PatientID: 4, ImageType: "ct", FileName: "head.dcm", Data: []byte{1, 2},
	})
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	url, err := uc.GetURL(ctx, uploaded.ImageID, 0)
	if err != nil {
		t.Fatalf("GetURL failed: %v", err)
	}
	if url.ExpiresIn != 3600 {
		t.Errorf("expected default expiry 3600s, got %d", url.ExpiresIn)
	}

	custom, err := uc.GetURL(ctx, uploaded.ImageID, 120)
	if err != nil {
		t.Fatalf("GetURL failed: %v", err)
	}
	if custom.ExpiresIn != 120 {
		t.Errorf("expected expiry 120s, got %d", custom.ExpiresIn)
	}

	if _, err := uc.GetURL(ctx, 999, 0); err != ErrImageNotFound {
		t.Errorf("expected ErrImageNotFound, got %v", err)
	}
}

func TestDeleteImageRemovesObjectAndRow(t *testing.T) {
	uc, imageRepo, store := newTestImageUsecase()
	ctx := staffContext(9)

	uploaded, _ := uc.Upload(ctx, &UploadImageInput{
		PatientID: 4, ImageType: "ultrasound", FileName: "u.png", Data: []byte{1},
	})

	if err := uc.Delete(ctx, uploaded.ImageID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(store.objects) != 0 {
		t.Error("expected the stored object to be gone")
	}
	if stored, _ := imageRepo.FindByID(context.Background(), uploaded.ImageID); stored != nil {
		t.Error("expected the metadata row to be gone")
	}

	if err := uc.Delete(ctx, uploaded.ImageID); err != ErrImageNotFound {
		t.Errorf("expected ErrImageNotFound on second delete, got %v", err)
	}
}

func TestGetByPatient(t *testing.T) {
	uc, _, _ := newTestImageUsecase()
	ctx := staffContext(9)

	uc.Upload(ctx, &UploadImageInput{PatientID: 4, ImageType: "mri", FileName: "a", Data: []byte{1}})
	uc.Upload(ctx, &UploadImageInput{PatientID: 4, ImageType: "ct", FileName: "b", Data: []byte{1}})
	uc.Upload(ctx, &UploadImageInput{PatientID: 5, ImageType: "mri", FileName: "c", Data: []byte{1}})

	images, err := uc.GetByPatient(ctx, 4)
	if err != nil {
		t.Fatalf("GetByPatient failed: %v", err)
	}
	if len(images) != 2 {
		t.Errorf("expected 2 images for patient 4, got %d", len(images))
	}

	all, err := uc.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 images in total, got %d", len(all))
	}
}
