package usecase

import (
	"context"
	"testing"

	"clinicore/internal/delivery/dto"
	"clinicore/internal/delivery/http/middleware"
	"clinicore/internal/service"

	"github.com/shopspring/decimal"
)

// TestClinicalWorkflowEndToEnd walks one patient through the whole pipeline:
// registration, appointment, scan order, image, report, billing, audit trail.
func TestClinicalWorkflowEndToEnd(t *testing.T) {
	log := newTestLogger()
	userRepo := newFakeUserRepo()
	staffRepo := &fakeStaffProfileRepo{users: userRepo}
	logRepo := newFakeLogRepo()
	workflowLog := service.NewWorkflowLogService(log, logRepo)

	appointmentRepo := newFakeAppointmentRepo()
	authUC := NewAuthUsecase(log, userRepo, newTestJWTService())
	appointmentUC := NewAppointmentUsecase(log, appointmentRepo, workflowLog)
	testUC := NewMedicalTestUsecase(log, newFakeTestRepo(), newFakeReportRepo(), staffRepo, workflowLog)
	billingUC := NewBillingUsecase(log, newFakeBillingRepo(), appointmentRepo, workflowLog)
	logUC := NewWorkflowLogUsecase(log, logRepo)

	ctx := context.Background()

	patient, err := authUC.RegisterPatient(ctx, &dto.RegisterPatientRequest{
		Name: "Alice Moore", Email: "alice@example.com", Password: "secret1", DateOfBirth: "1990-04-12",
	})
	if err != nil {
		t.Fatalf("patient registration failed: %v", err)
	}
	doctor, err := authUC.RegisterStaff(ctx, &dto.RegisterStaffRequest{
		Name: "Dr Bob Lane", Email: "bob@clinic.test", Password: "secret1", Role: "doctor",
	})
	if err != nil {
		t.Fatalf("doctor registration failed: %v", err)
	}
	radiologist, err := authUC.RegisterStaff(ctx, &dto.RegisterStaffRequest{
		Name: "Dr Rae Kim", Email: "rae@clinic.test", Password: "secret1", Role: "radiologist",
	})
	if err != nil {
		t.Fatalf("radiologist registration failed: %v", err)
	}
	clerk, err := authUC.RegisterStaff(ctx, &dto.RegisterStaffRequest{
		Name: "Cal Reed", Email: "cal@clinic.test", Password: "secret1", Role: "clerk",
	})
	if err != nil {
		t.Fatalf("clerk registration failed: %v", err)
	}

	clerkCtx := context.WithValue(ctx, middleware.UserIDKey, clerk.ID)
	doctorCtx := context.WithValue(ctx, middleware.UserIDKey, doctor.ID)
	radiologistCtx := context.WithValue(ctx, middleware.UserIDKey, radiologist.ID)

	appointment, err := appointmentUC.CreateAppointment(clerkCtx, &dto.CreateAppointmentRequest{
		PatientID:   patient.Patient.PatientID,
		DoctorID:    doctor.Staff.StaffID,
		ScheduledAt: "2026-09-15T10:30:00Z",
	})
	if err != nil {
		t.Fatalf("appointment creation failed: %v", err)
	}

	ordered, err := testUC.CreateTest(doctorCtx, &dto.CreateTestRequest{
		PatientID:     patient.Patient.PatientID,
		DoctorID:      doctor.Staff.StaffID,
		AppointmentID: &appointment.ID,
		ScanType:      "MRI",
	})
	if err != nil {
		t.Fatalf("test creation failed: %v", err)
	}

	if _, err := testUC.AssignRadiologist(doctorCtx, ordered.ID, &dto.AssignRadiologistRequest{
		RadiologistID: radiologist.Staff.StaffID,
	}); err != nil {
		t.Fatalf("radiologist assignment failed: %v", err)
	}

	attached, err := testUC.AttachImage(radiologistCtx, ordered.ID, &dto.AttachImageRequest{ImageID: 101})
	if err != nil {
		t.Fatalf("image attach failed: %v", err)
	}
	if attached.Status != "in_progress" {
		t.Errorf("expected in_progress after attach, got %s", attached.Status)
	}

	report, err := testUC.GenerateReport(radiologistCtx, ordered.ID, &dto.GenerateReportRequest{
		Findings:  "small lesion in left lobe",
		Diagnosis: "benign cyst",
	})
	if err != nil {
		t.Fatalf("report generation failed: %v", err)
	}
	if report.StaffID != radiologist.Staff.StaffID {
		t.Errorf("expected report attributed to staff id %d, got %d", radiologist.Staff.StaffID, report.StaffID)
	}

	done, err := testUC.CompleteTest(radiologistCtx, ordered.ID)
	if err != nil {
		t.Fatalf("test completion failed: %v", err)
	}
	if done.Status != "done" {
		t.Errorf("expected done, got %s", done.Status)
	}

	if _, err := testUC.FinalizeReport(radiologistCtx, report.ID); err != nil {
		t.Fatalf("report finalization failed: %v", err)
	}

	billing, err := billingUC.CreateBilling(clerkCtx, &dto.CreateBillingRequest{
		PatientID:     patient.Patient.PatientID,
		AppointmentID: &appointment.ID,
		ReportID:      &report.ID,
		Procedure:     "MRI scan, radiology read",
		Cost:          decimal.NewFromFloat(640.00),
	})
	if err != nil {
		t.Fatalf("billing creation failed: %v", err)
	}
	if _, err := billingUC.UpdateStatus(clerkCtx, billing.ID, &dto.UpdateBillingStatusRequest{Status: "paid"}); err != nil {
		t.Fatalf("billing payment failed: %v", err)
	}

	billed, err := appointmentUC.GetAppointment(clerkCtx, appointment.ID)
	if err != nil {
		t.Fatalf("appointment fetch failed: %v", err)
	}
	if billed.BillingID == nil || *billed.BillingID != billing.ID {
		t.Error("expected the appointment back-linked to its billing record")
	}

	if _, err := appointmentUC.UpdateStatus(clerkCtx, appointment.ID, &dto.UpdateAppointmentStatusRequest{Status: "completed"}); err != nil {
		t.Fatalf("appointment completion failed: %v", err)
	}

	total, err := billingUC.GetPatientTotal(clerkCtx, patient.Patient.PatientID)
	if err != nil {
		t.Fatalf("patient total failed: %v", err)
	}
	if !total.Paid.Equal(decimal.NewFromFloat(640.00)) || !total.Outstanding.IsZero() {
		t.Errorf("expected 640 paid and nothing outstanding, got paid=%s outstanding=%s", total.Paid, total.Outstanding)
	}

	// Every state change along the way left an audit entry.
	trail, err := logUC.GetLogs(ctx, 0, 0)
	if err != nil {
		t.Fatalf("audit trail fetch failed: %v", err)
	}
	if trail.Total < 7 {
		t.Errorf("expected a full audit trail, got %d entries", trail.Total)
	}

	radiologistTrail, err := logUC.GetLogs(ctx, radiologist.ID, 0)
	if err != nil {
		t.Fatalf("filtered audit trail fetch failed: %v", err)
	}
	for _, entry := range radiologistTrail.Logs {
		if entry.UserID != radiologist.ID {
			t.Errorf("expected only radiologist entries, saw user %d", entry.UserID)
		}
	}
}
