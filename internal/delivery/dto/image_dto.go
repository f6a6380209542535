package dto

import "time"

// Response DTOs

type ImageResponse struct {
	ID         int64     `json:"id"`
	PatientID  int64     `json:"patient_id"`
	ImageType  string    `json:"image_type"`
	UploadedBy int64     `json:"uploaded_by"`
	FileName   string    `json:"file_name"`
	FileSize   int64     `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type ImageUploadResponse struct {
	ImageID      int64  `json:"image_id"`
	PresignedURL string `json:"presigned_url"`
}

type ImageURLResponse struct {
	ImageID      int64  `json:"image_id"`
	PresignedURL string `json:"presigned_url"`
	ExpiresIn    int64  `json:"expires_in"`
}
