package converter

import (
	"clinicore/internal/delivery/dto"
	"clinicore/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		DoctorID:    appointment.DoctorID,
		ScheduledAt: appointment.ScheduledAt,
		Status:      string(appointment.Status),
		CreatedBy:   appointment.CreatedBy,
		Notes:       appointment.Notes,
		BillingID:   appointment.BillingID,
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

func TestToResponse(test *entity.MedicalTest) *dto.TestResponse {
	if test == nil {
		return nil
	}

	return &dto.TestResponse{
		ID:            test.ID,
		PatientID:     test.PatientID,
		DoctorID:      test.DoctorID,
		RadiologistID: test.RadiologistID,
		AppointmentID: test.AppointmentID,
		ScanType:      string(test.ScanType),
		Status:        string(test.Status),
		ReportID:      test.ReportID,
		ImageID:       test.ImageID,
		CreatedAt:     test.CreatedAt,
		UpdatedAt:     test.UpdatedAt,
	}
}

func TestsToResponses(tests []entity.MedicalTest) []dto.TestResponse {
	responses := make([]dto.TestResponse, len(tests))
	for i := range tests {
		responses[i] = *TestToResponse(&tests[i])
	}
	return responses
}

func ReportToResponse(report *entity.DiagnosisReport) *dto.ReportResponse {
	if report == nil {
		return nil
	}

	return &dto.ReportResponse{
		ID:              report.ID,
		PatientID:       report.PatientID,
		StaffID:         report.StaffID,
		TestID:          report.TestID,
		ImageID:         report.ImageID,
		Findings:        report.Findings,
		Diagnosis:       report.Diagnosis,
		Recommendations: report.Recommendations,
		Status:          string(report.Status),
		UpdatedAt:       report.UpdatedAt,
	}
}

func ReportsToResponses(reports []entity.DiagnosisReport) []dto.ReportResponse {
	responses := make([]dto.ReportResponse, len(reports))
	for i := range reports {
		responses[i] = *ReportToResponse(&reports[i])
	}
	return responses
}
