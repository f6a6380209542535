package entity

import "time"

// ImageType classifies an uploaded medical image.
type ImageType string

const (
	ImageXRay       ImageType = "xray"
	ImageMRI        ImageType = "mri"
	ImageCT         ImageType = "ct"
	ImageUltrasound ImageType = "ultrasound"
	ImageOther      ImageType = "other"
)

// ValidImageType reports whether imageType is in the closed set.
func ValidImageType(imageType ImageType) bool {
	switch imageType {
	case ImageXRay, ImageMRI, ImageCT, ImageUltrasound, ImageOther:
		return true
	}
	return false
}

// MedicalImage is the metadata row for an object held by the image storage
// collaborator. PatientID and UploadedBy are weak references.
type MedicalImage struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID  int64     `gorm:"not null;index" json:"patient_id"`
	ImageType  ImageType `gorm:"type:varchar(20);not null" json:"image_type"`
	UploadedBy int64     `gorm:"not null" json:"uploaded_by"`
	ObjectKey  string    `gorm:"type:text;not null" json:"object_key"`
	FileName   string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FileSize   int64     `json:"file_size"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (MedicalImage) TableName() string {
	return "medical_images"
}
