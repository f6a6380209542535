package converter

import (
	"clinicore/internal/delivery/dto"
	"clinicore/internal/domain/entity"
)

func LogToResponse(log *entity.WorkflowLog) *dto.LogResponse {
	if log == nil {
		return nil
	}

	return &dto.LogResponse{
		ID:        log.ID,
		UserID:    log.UserID,
		Timestamp: log.Timestamp,
		Action:    log.Action,
	}
}

func LogsToResponses(logs []entity.WorkflowLog) []dto.LogResponse {
	responses := make([]dto.LogResponse, len(logs))
	for i := range logs {
		responses[i] = *LogToResponse(&logs[i])
	}
	return responses
}

func ImageToResponse(image *entity.MedicalImage) *dto.ImageResponse {
	if image == nil {
		return nil
	}

	return &dto.ImageResponse{
		ID:         image.ID,
		PatientID:  image.PatientID,
		ImageType:  string(image.ImageType),
		UploadedBy: image.UploadedBy,
		FileName:   image.FileName,
		FileSize:   image.FileSize,
		UploadedAt: image.UploadedAt,
	}
}

func ImagesToResponses(images []entity.MedicalImage) []dto.ImageResponse {
	responses := make([]dto.ImageResponse, len(images))
	for i := range images {
		responses[i] = *ImageToResponse(&images[i])
	}
	return responses
}
