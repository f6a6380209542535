package usecase

import (
	"context"
	"errors"
	"fmt"

	"clinicore/internal/converter"
	"clinicore/internal/delivery/dto"
	"clinicore/internal/delivery/http/middleware"
	"clinicore/internal/domain/entity"
	"clinicore/internal/domain/repository"
	"clinicore/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrTestNotFound         = errors.New("medical test not found")
	ErrReportNotFound       = errors.New("diagnosis report not found")
	ErrInvalidScanType      = errors.New("invalid scan type")
	ErrImageAlreadyAttached = errors.New("test already has an image")
	ErrImageRequired        = errors.New("test has no associated image")
	ErrTestAlreadyDone      = errors.New("test is already done")
)

type MedicalTestUsecase interface {
	CreateTest(ctx context.Context, req *dto.CreateTestRequest) (*dto.TestResponse, error)
	GetTest(ctx context.Context, id int64) (*dto.TestResponse, error)
	GetTests(ctx context.Context, patientID int64) (*dto.TestListResponse, error)
	AssignRadiologist(ctx context.Context, id int64, req *dto.AssignRadiologistRequest) (*dto.TestResponse, error)
	AttachImage(ctx context.Context, id int64, req *dto.AttachImageRequest) (*dto.TestResponse, error)
	CompleteTest(ctx context.Context, id int64) (*dto.TestResponse, error)
	GenerateReport(ctx context.Context, testID int64, req *dto.GenerateReportRequest) (*dto.ReportResponse, error)
	FinalizeReport(ctx context.Context, reportID int64) (*dto.ReportResponse, error)
	GetReport(ctx context.Context, id int64) (*dto.ReportResponse, error)
	GetReports(ctx context.Context, patientID, staffID int64) (*dto.ReportListResponse, error)
}

type medicalTestUsecase struct {
	log         *logrus.Logger
	testRepo    repository.MedicalTestRepository
	reportRepo  repository.DiagnosisReportRepository
	staffRepo   repository.StaffProfileRepository
	workflowLog service.WorkflowLogService
}

func NewMedicalTestUsecase(
	log *logrus.Logger,
	testRepo repository.MedicalTestRepository,
	reportRepo repository.DiagnosisReportRepository,
	staffRepo repository.StaffProfileRepository,
	workflowLog service.WorkflowLogService,
) MedicalTestUsecase {
	return &medicalTestUsecase{
		log:         log,
		testRepo:    testRepo,
		reportRepo:  reportRepo,
		staffRepo:   staffRepo,
		workflowLog: workflowLog,
	}
}

// CreateTest orders a scan for a patient. Patient, doctor, radiologist and
// appointment ids are weak references stored without existence checks.
func (u *medicalTestUsecase) CreateTest(ctx context.Context, req *dto.CreateTestRequest) (*dto.TestResponse, error) {
	scanType := entity.ScanType(req.ScanType)
	if !entity.ValidScanType(scanType) {
		return nil, ErrInvalidScanType
	}

	test := &entity.MedicalTest{
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		RadiologistID: req.RadiologistID,
		AppointmentID: req.AppointmentID,
		ScanType:      scanType,
		Status:        entity.TestToBeTaken,
	}

	if err := u.testRepo.Create(ctx, test); err != nil {
		u.log.Warnf("Failed to create medical test: %+v", err)
		return nil, err
	}

	callerID, _ := middleware.GetUserIDFromContext(ctx)
	u.workflowLog.Record(ctx, callerID,
		fmt.Sprintf("Created %s test %d for patient %d", scanType, test.ID, req.PatientID))

	return converter.TestToResponse(test), nil
}

func (u *medicalTestUsecase) GetTest(ctx context.Context, id int64) (*dto.TestResponse, error) {
	test, err := u.testRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find test %d: %+v", id, err)
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}
	return converter.TestToResponse(test), nil
}

func (u *medicalTestUsecase) GetTests(ctx context.Context, patientID int64) (*dto.TestListResponse, error) {
	var (
		tests []entity.MedicalTest
		err   error
	)
	if patientID != 0 {
		tests, err = u.testRepo.FindByPatientID(ctx, patientID)
	} else {
		tests, err = u.testRepo.FindAll(ctx)
	}
	if err != nil {
		u.log.Warnf("Failed to list tests: %+v", err)
		return nil, err
	}

	return &dto.TestListResponse{
		Tests: converter.TestsToResponses(tests),
		Total: len(tests),
	}, nil
}

// AssignRadiologist records the radiologist id on the test. Concurrent
// assignment and status updates are last-write-wins; there is no versioning.
func (u *medicalTestUsecase) AssignRadiologist(ctx context.Context, id int64, req *dto.AssignRadiologistRequest) (*dto.TestResponse, error) {
	test, err := u.testRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find test %d: %+v", id, err)
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}

	if err := u.testRepo.UpdateRadiologistID(ctx, id, req.RadiologistID); err != nil {
		u.log.Warnf("Failed to assign radiologist to test %d: %+v", id, err)
		return nil, err
	}

	test.RadiologistID = &req.RadiologistID
	return converter.TestToResponse(test), nil
}

// AttachImage records the image id produced by the storage collaborator and
// moves the test from to_be_taken to in_progress. The two writes are separate
// statements: if the status write fails after the image write succeeded, the
// test keeps the image with a stale status until a retry.
func (u *medicalTestUsecase) AttachImage(ctx context.Context, id int64, req *dto.AttachImageRequest) (*dto.TestResponse, error) {
	test, err := u.testRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find test %d: %+v", id, err)
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}
	if test.HasImage() {
		return nil, ErrImageAlreadyAttached
	}

	if err := u.testRepo.UpdateImageID(ctx, id, req.ImageID); err != nil {
		u.log.Warnf("Failed to attach image to test %d: %+v", id, err)
		return nil, err
	}
	test.ImageID = &req.ImageID

	if test.Status == entity.TestToBeTaken {
		if err := u.testRepo.UpdateStatus(ctx, id, entity.TestInProgress); err != nil {
			u.log.Warnf("Image %d attached but status update failed for test %d: %+v", req.ImageID, id, err)
			return nil, err
		}
		test.Status = entity.TestInProgress
	}

	callerID, _ := middleware.GetUserIDFromContext(ctx)
	u.workflowLog.Record(ctx, callerID,
		fmt.Sprintf("Attached image %d to test %d", req.ImageID, id))

	return converter.TestToResponse(test), nil
}

// CompleteTest is the explicit radiologist-driven transition to done. It
// requires an image and never moves status backward.
func (u *medicalTestUsecase) CompleteTest(ctx context.Context, id int64) (*dto.TestResponse, error) {
	test, err := u.testRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find test %d: %+v", id, err)
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}
	if !test.HasImage() {
		return nil, ErrImageRequired
	}
	if test.Status == entity.TestDone {
		return nil, ErrTestAlreadyDone
	}

	if err := u.testRepo.UpdateStatus(ctx, id, entity.TestDone); err != nil {
		u.log.Warnf("Failed to complete test %d: %+v", id, err)
		return nil, err
	}
	test.Status = entity.TestDone

	callerID, _ := middleware.GetUserIDFromContext(ctx)
	u.workflowLog.Record(ctx, callerID,
		fmt.Sprintf("Marked test %d as done", id))

	return converter.TestToResponse(test), nil
}

// GenerateReport creates or replaces the diagnosis report for a test. It is
// accepted whenever an image is present, independent of the test status, and
// repeated calls update the same report row so the report id stays stable.
func (u *medicalTestUsecase) GenerateReport(ctx context.Context, testID int64, req *dto.GenerateReportRequest) (*dto.ReportResponse, error) {
	test, err := u.testRepo.FindByID(ctx, testID)
	if err != nil {
		u.log.Warnf("Failed to find test %d: %+v", testID, err)
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}
	if !test.HasImage() {
		return nil, ErrImageRequired
	}

	callerID, _ := middleware.GetUserIDFromContext(ctx)
	staffID := callerID
	if profile, err := u.staffRepo.FindByUserID(ctx, callerID); err == nil && profile != nil {
		staffID = profile.StaffID
	}

	report, err := u.reportRepo.FindByTestID(ctx, testID)
	if err != nil {
		u.log.Warnf("Failed to find report for test %d: %+v", testID, err)
		return nil, err
	}

	if report == nil {
		report = &entity.DiagnosisReport{
			PatientID:       test.PatientID,
			StaffID:         staffID,
			TestID:          &testID,
			ImageID:         test.ImageID,
			Findings:        req.Findings,
			Diagnosis:       req.Diagnosis,
			Recommendations: req.Recommendations,
			Status:          entity.ReportPending,
		}
		if err := u.reportRepo.Create(ctx, report); err != nil {
			u.log.Warnf("Failed to create report for test %d: %+v", testID, err)
			return nil, err
		}
		if err := u.testRepo.UpdateReportID(ctx, testID, report.ID); err != nil {
			u.log.Warnf("Report %d created but test %d link failed: %+v", report.ID, testID, err)
			return nil, err
		}
	} else {
		report.Findings = req.Findings
		report.Diagnosis = req.Diagnosis
		report.Recommendations = req.Recommendations
		report.ImageID = test.ImageID
		if err := u.reportRepo.Update(ctx, report); err != nil {
			u.log.Warnf("Failed to update report %d: %+v", report.ID, err)
			return nil, err
		}
	}

	u.workflowLog.Record(ctx, callerID,
		fmt.Sprintf("Generated diagnosis report %d for patient %d", report.ID, test.PatientID))

	return converter.ReportToResponse(report), nil
}

func (u *medicalTestUsecase) FinalizeReport(ctx context.Context, reportID int64) (*dto.ReportResponse, error) {
	report, err := u.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		u.log.Warnf("Failed to find report %d: %+v", reportID, err)
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}

	report.Status = entity.ReportFinalized
	if err := u.reportRepo.Update(ctx, report); err != nil {
		u.log.Warnf("Failed to finalize report %d: %+v", reportID, err)
		return nil, err
	}

	callerID, _ := middleware.GetUserIDFromContext(ctx)
	u.workflowLog.Record(ctx, callerID,
		fmt.Sprintf("Confirmed diagnosis report %d", reportID))

	return converter.ReportToResponse(report), nil
}

func (u *medicalTestUsecase) GetReport(ctx context.Context, id int64) (*dto.ReportResponse, error) {
	report, err := u.reportRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find report %d: %+v", id, err)
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return converter.ReportToResponse(report), nil
}

func (u *medicalTestUsecase) GetReports(ctx context.Context, patientID, staffID int64) (*dto.ReportListResponse, error) {
	var (
		reports []entity.DiagnosisReport
		err     error
	)
	switch {
	case patientID != 0:
		reports, err = u.reportRepo.FindByPatientID(ctx, patientID)
	case staffID != 0:
		reports, err = u.reportRepo.FindByStaffID(ctx, staffID)
	default:
		reports, err = u.reportRepo.FindAll(ctx)
	}
	if err != nil {
		u.log.Warnf("Failed to list reports: %+v", err)
		return nil, err
	}

	return &dto.ReportListResponse{
		Reports: converter.ReportsToResponses(reports),
		Total:   len(reports),
	}, nil
}
