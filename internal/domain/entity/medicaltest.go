package entity

import "time"

// TestStatus progresses to_be_taken -> in_progress -> done. The progression
// is enforced by the workflow usecase, not by storage; no transition moves
// backward.
type TestStatus string

const (
	TestToBeTaken  TestStatus = "to_be_taken"
	TestInProgress TestStatus = "in_progress"
	TestDone       TestStatus = "done"
)

// ValidTestStatus reports whether status is in the closed set.
func ValidTestStatus(status TestStatus) bool {
	switch status {
	case TestToBeTaken, TestInProgress, TestDone:
		return true
	}
	return false
}

// ScanType is the closed enumeration of supported scans.
type ScanType string

const (
	ScanCT         ScanType = "CT Scan"
	ScanXRay       ScanType = "X-Ray"
	ScanMRI        ScanType = "MRI"
	ScanUltrasound ScanType = "Ultrasound"
	ScanOther      ScanType = "Other"
)

// ValidScanType reports whether scanType is in the closed set.
func ValidScanType(scanType ScanType) bool {
	switch scanType {
	case ScanCT, ScanXRay, ScanMRI, ScanUltrasound, ScanOther:
		return true
	}
	return false
}

// MedicalTest is the center of the clinical workflow. All referenced ids
// (patient, doctor, radiologist, appointment, report, image) are weak
// references with no foreign-key enforcement.
type MedicalTest struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     int64      `gorm:"not null;index" json:"patient_id"`
	DoctorID      int64      `gorm:"not null;index" json:"doctor_id"`
	RadiologistID *int64     `gorm:"index" json:"radiologist_id,omitempty"`
	AppointmentID *int64     `gorm:"index" json:"appointment_id,omitempty"`
	ScanType      ScanType   `gorm:"type:varchar(50);not null" json:"scan_type"`
	Status        TestStatus `gorm:"type:varchar(20);not null;default:'to_be_taken';index" json:"status"`
	ReportID      *int64     `json:"report_id,omitempty"`
	ImageID       *int64     `json:"image_id,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MedicalTest) TableName() string {
	return "medical_tests"
}

// HasImage reports whether an image has been associated with the test.
func (t *MedicalTest) HasImage() bool {
	return t.ImageID != nil
}
