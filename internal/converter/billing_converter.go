package converter

import (
	"clinicore/internal/delivery/dto"
	"clinicore/internal/domain/entity"
)

func BillingToResponse(billing *entity.BillingDetails) *dto.BillingResponse {
	if billing == nil {
		return nil
	}

	return &dto.BillingResponse{
		ID:            billing.ID,
		PatientID:     billing.PatientID,
		AppointmentID: billing.AppointmentID,
		Procedure:     billing.Procedure,
		Cost:          billing.Cost,
		Status:        string(billing.Status),
		ReportID:      billing.ReportID,
		CreatedAt:     billing.CreatedAt,
		UpdatedAt:     billing.UpdatedAt,
	}
}

func BillingsToResponses(billings []entity.BillingDetails) []dto.BillingResponse {
	responses := make([]dto.BillingResponse, len(billings))
	for i := range billings {
		responses[i] = *BillingToResponse(&billings[i])
	}
	return responses
}
