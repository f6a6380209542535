package entity

import "testing"

func TestValidStaffRole(t *testing.T) {
	for _, role := range []StaffRole{RoleDoctor, RoleRadiologist, RoleClerk, RoleAdmin} {
		if !ValidStaffRole(role) {
			t.Errorf("expected %s to be valid", role)
		}
	}
	for _, role := range []StaffRole{"janitor", "", "Doctor"} {
		if ValidStaffRole(role) {
			t.Errorf("expected %q to be invalid", role)
		}
	}
}

func TestValidAppointmentStatus(t *testing.T) {
	for _, status := range []AppointmentStatus{AppointmentScheduled, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow} {
		if !ValidAppointmentStatus(status) {
			t.Errorf("expected %s to be valid", status)
		}
	}
	if ValidAppointmentStatus("rescheduled") {
		t.Error("expected rescheduled to be invalid")
	}
}

func TestValidScanType(t *testing.T) {
	for _, scan := range []ScanType{ScanCT, ScanXRay, ScanMRI, ScanUltrasound, ScanOther} {
		if !ValidScanType(scan) {
			t.Errorf("expected %s to be valid", scan)
		}
	}
	// The set is matched verbatim, casing included.
	if ValidScanType("mri") {
		t.Error("expected lowercase mri to be invalid")
	}
}

func TestValidBillingStatus(t *testing.T) {
	for _, status := range []BillingStatus{BillingUnpaid, BillingPending, BillingPaid, BillingOverdue, BillingCancelled} {
		if !ValidBillingStatus(status) {
			t.Errorf("expected %s to be valid", status)
		}
	}
	if ValidBillingStatus("refunded") {
		t.Error("expected refunded to be invalid")
	}
}

func TestUserActiveDefaultsToTrue(t *testing.T) {
	user := &User{}
	if !user.Active() {
		t.Error("expected unset activation flag to read as active")
	}

	active := false
	user.IsActive = &active
	if user.Active() {
		t.Error("expected deactivated user to read as inactive")
	}
}

func TestMedicalTestHasImage(t *testing.T) {
	test := &MedicalTest{}
	if test.HasImage() {
		t.Error("expected no image on a fresh test")
	}

	imageID := int64(5)
	test.ImageID = &imageID
	if !test.HasImage() {
		t.Error("expected HasImage after setting the id")
	}
}

func TestBillingIsPaid(t *testing.T) {
	billing := &BillingDetails{Status: BillingUnpaid}
	if billing.IsPaid() {
		t.Error("expected unpaid record not to read as paid")
	}
	billing.Status = BillingPaid
	if !billing.IsPaid() {
		t.Error("expected paid record to read as paid")
	}
}
