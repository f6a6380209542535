package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"clinicore/internal/domain/entity"
)

// In-memory repository fakes. They follow the same conventions as the gorm
// implementations: lookups that miss return (nil, nil).

type fakeUserRepo struct {
	users         map[int64]*entity.User
	nextID        int64
	nextPatientID int64
	nextStaffID   int64
	failCreate    bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:         make(map[int64]*entity.User),
		nextID:        1,
		nextPatientID: 1,
		nextStaffID:   1,
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.failCreate {
		return errors.New("store unavailable")
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	user.ID = r.nextID
	r.nextID++
	if user.PatientProfile != nil {
		user.PatientProfile.UserID = user.ID
		user.PatientProfile.PatientID = r.nextPatientID
		r.nextPatientID++
	}
	if user.StaffProfile != nil {
		user.StaffProfile.UserID = user.ID
		user.StaffProfile.StaffID = r.nextStaffID
		r.nextStaffID++
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]entity.User, error) {
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	users := make([]entity.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, *r.users[id])
	}
	return users, nil
}

func (r *fakeUserRepo) SetActive(_ context.Context, id int64, active bool) error {
	user, ok := r.users[id]
	if !ok {
		return errors.New("user not found")
	}
	user.IsActive = &active
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

type fakePatientProfileRepo struct {
	users *fakeUserRepo
}

func (r *fakePatientProfileRepo) FindByPatientID(_ context.Context, patientID int64) (*entity.PatientProfile, error) {
	for _, user := range r.users.users {
		if user.PatientProfile != nil && user.PatientProfile.PatientID == patientID {
			profile := *user.PatientProfile
			profile.User = user
			return &profile, nil
		}
	}
	return nil, nil
}

func (r *fakePatientProfileRepo) FindByUserID(_ context.Context, userID int64) (*entity.PatientProfile, error) {
	user, ok := r.users.users[userID]
	if !ok || user.PatientProfile == nil {
		return nil, nil
	}
	profile := *user.PatientProfile
	profile.User = user
	return &profile, nil
}

func (r *fakePatientProfileRepo) FindAll(_ context.Context) ([]entity.PatientProfile, error) {
	var profiles []entity.PatientProfile
	for _, user := range r.users.users {
		if user.PatientProfile != nil {
			profile := *user.PatientProfile
			profile.User = user
			profiles = append(profiles, profile)
		}
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].PatientID < profiles[j].PatientID })
	return profiles, nil
}

func (r *fakePatientProfileRepo) Update(_ context.Context, profile *entity.PatientProfile) error {
	user, ok := r.users.users[profile.UserID]
	if !ok {
		return errors.New("user not found")
	}
	stored := *profile
	stored.User = nil
	user.PatientProfile = &stored
	return nil
}

type fakeStaffProfileRepo struct {
	users *fakeUserRepo
}

func (r *fakeStaffProfileRepo) FindByStaffID(_ context.Context, staffID int64) (*entity.StaffProfile, error) {
	for _, user := range r.users.users {
		if user.StaffProfile != nil && user.StaffProfile.StaffID == staffID {
			profile := *user.StaffProfile
			profile.User = user
			return &profile, nil
		}
	}
	return nil, nil
}

func (r *fakeStaffProfileRepo) FindByUserID(_ context.Context, userID int64) (*entity.StaffProfile, error) {
	user, ok := r.users.users[userID]
	if !ok || user.StaffProfile == nil {
		return nil, nil
	}
	profile := *user.StaffProfile
	profile.User = user
	return &profile, nil
}

func (r *fakeStaffProfileRepo) FindAll(_ context.Context) ([]entity.StaffProfile, error) {
	var profiles []entity.StaffProfile
	for _, user := range r.users.users {
		if user.StaffProfile != nil {
			profile := *user.StaffProfile
			profile.User = user
			profiles = append(profiles, profile)
		}
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].StaffID < profiles[j].StaffID })
	return profiles, nil
}

func (r *fakeStaffProfileRepo) Update(_ context.Context, profile *entity.StaffProfile) error {
	user, ok := r.users.users[profile.UserID]
	if !ok {
		return errors.New("user not found")
	}
	stored := *profile
	stored.User = nil
	user.StaffProfile = &stored
	return nil
}

type fakeAppointmentRepo struct {
	appointments map[int64]*entity.Appointment
	nextID       int64
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[int64]*entity.Appointment), nextID: 1}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appointment *entity.Appointment) error {
	appointment.ID = r.nextID
	r.nextID++
	if appointment.Status == "" {
		appointment.Status = entity.AppointmentScheduled
	}
	r.appointments[appointment.ID] = appointment
	return nil
}

func (r *fakeAppointmentRepo) FindByID(_ context.Context, id int64) (*entity.Appointment, error) {
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	return appointment, nil
}

func (r *fakeAppointmentRepo) FindByPatientID(_ context.Context, patientID int64) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindAll(_ context.Context) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, appointment *entity.Appointment) error {
	r.appointments[appointment.ID] = appointment
	return nil
}

func (r *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status entity.AppointmentStatus) error {
	appointment, ok := r.appointments[id]
	if !ok {
		return errors.New("appointment not found")
	}
	appointment.Status = status
	return nil
}

type fakeTestRepo struct {
	tests            map[int64]*entity.MedicalTest
	nextID           int64
	failStatusUpdate bool
}

func newFakeTestRepo() *fakeTestRepo {
	return &fakeTestRepo{tests: make(map[int64]*entity.MedicalTest), nextID: 1}
}

func (r *fakeTestRepo) Create(_ context.Context, test *entity.MedicalTest) error {
	test.ID = r.nextID
	r.nextID++
	r.tests[test.ID] = test
	return nil
}

func (r *fakeTestRepo) FindByID(_ context.Context, id int64) (*entity.MedicalTest, error) {
	test, ok := r.tests[id]
	if !ok {
		return nil, nil
	}
	copied := *test
	return &copied, nil
}

func (r *fakeTestRepo) FindByPatientID(_ context.Context, patientID int64) ([]entity.MedicalTest, error) {
	var out []entity.MedicalTest
	for _, t := range r.tests {
		if t.PatientID == patientID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTestRepo) FindAll(_ context.Context) ([]entity.MedicalTest, error) {
	var out []entity.MedicalTest
	for _, t := range r.tests {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTestRepo) UpdateImageID(_ context.Context, id int64, imageID int64) error {
	test, ok := r.tests[id]
	if !ok {
		return errors.New("test not found")
	}
	test.ImageID = &imageID
	return nil
}

func (r *fakeTestRepo) UpdateStatus(_ context.Context, id int64, status entity.TestStatus) error {
	if r.failStatusUpdate {
		return errors.New("store unavailable")
	}
	test, ok := r.tests[id]
	if !ok {
		return errors.New("test not found")
	}
	test.Status = status
	return nil
}

func (r *fakeTestRepo) UpdateRadiologistID(_ context.Context, id int64, radiologistID int64) error {
	test, ok := r.tests[id]
	if !ok {
		return errors.New("test not found")
	}
	test.RadiologistID = &radiologistID
	return nil
}

func (r *fakeTestRepo) UpdateReportID(_ context.Context, id int64, reportID int64) error {
	test, ok := r.tests[id]
	if !ok {
		return errors.New("test not found")
	}
	test.ReportID = &reportID
	return nil
}

type fakeReportRepo struct {
	reports map[int64]*entity.DiagnosisReport
	nextID  int64
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[int64]*entity.DiagnosisReport), nextID: 1}
}

func (r *fakeReportRepo) Create(_ context.Context, report *entity.DiagnosisReport) error {
	report.ID = r.nextID
	r.nextID++
	report.UpdatedAt = time.Now()
	r.reports[report.ID] = report
	return nil
}

func (r *fakeReportRepo) FindByID(_ context.Context, id int64) (*entity.DiagnosisReport, error) {
	report, ok := r.reports[id]
	if !ok {
		return nil, nil
	}
	copied := *report
	return &copied, nil
}

func (r *fakeReportRepo) FindByTestID(_ context.Context, testID int64) (*entity.DiagnosisReport, error) {
	for _, report := range r.reports {
		if report.TestID != nil && *report.TestID == testID {
			copied := *report
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeReportRepo) FindByPatientID(_ context.Context, patientID int64) ([]entity.DiagnosisReport, error) {
	var out []entity.DiagnosisReport
	for _, report := range r.reports {
		if report.PatientID == patientID {
			out = append(out, *report)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) FindByStaffID(_ context.Context, staffID int64) ([]entity.DiagnosisReport, error) {
	var out []entity.DiagnosisReport
	for _, report := range r.reports {
		if report.StaffID == staffID {
			out = append(out, *report)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) FindAll(_ context.Context) ([]entity.DiagnosisReport, error) {
	var out []entity.DiagnosisReport
	for _, report := range r.reports {
		out = append(out, *report)
	}
	return out, nil
}

func (r *fakeReportRepo) Update(_ context.Context, report *entity.DiagnosisReport) error {
	if _, ok := r.reports[report.ID]; !ok {
		return errors.New("report not found")
	}
	report.UpdatedAt = time.Now()
	copied := *report
	r.reports[report.ID] = &copied
	return nil
}

type fakeBillingRepo struct {
	billings map[int64]*entity.BillingDetails
	nextID   int64
}

func newFakeBillingRepo() *fakeBillingRepo {
	return &fakeBillingRepo{billings: make(map[int64]*entity.BillingDetails), nextID: 1}
}

func (r *fakeBillingRepo) Create(_ context.Context, billing *entity.BillingDetails) error {
	billing.ID = r.nextID
	r.nextID++
	r.billings[billing.ID] = billing
	return nil
}

func (r *fakeBillingRepo) FindByID(_ context.Context, id int64) (*entity.BillingDetails, error) {
	billing, ok := r.billings[id]
	if !ok {
		return nil, nil
	}
	copied := *billing
	return &copied, nil
}

func (r *fakeBillingRepo) FindByPatientID(_ context.Context, patientID int64) ([]entity.BillingDetails, error) {
	var out []entity.BillingDetails
	for _, b := range r.billings {
		if b.PatientID == patientID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBillingRepo) FindAll(_ context.Context, status entity.BillingStatus) ([]entity.BillingDetails, error) {
	var out []entity.BillingDetails
	for _, b := range r.billings {
		if status == "" || b.Status == status {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBillingRepo) Update(_ context.Context, billing *entity.BillingDetails) error {
	if _, ok := r.billings[billing.ID]; !ok {
		return errors.New("billing not found")
	}
	copied := *billing
	r.billings[billing.ID] = &copied
	return nil
}

func (r *fakeBillingRepo) Delete(_ context.Context, id int64) error {
	delete(r.billings, id)
	return nil
}

type fakeLogRepo struct {
	logs       []entity.WorkflowLog
	nextID     int64
	failCreate bool
}

func newFakeLogRepo() *fakeLogRepo {
	return &fakeLogRepo{nextID: 1}
}

func (r *fakeLogRepo) Create(_ context.Context, log *entity.WorkflowLog) error {
	if r.failCreate {
		return errors.New("store unavailable")
	}
	log.ID = r.nextID
	r.nextID++
	r.logs = append(r.logs, *log)
	return nil
}

func (r *fakeLogRepo) FindByID(_ context.Context, id int64) (*entity.WorkflowLog, error) {
	for i := range r.logs {
		if r.logs[i].ID == id {
			copied := r.logs[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeLogRepo) Find(_ context.Context, userID int64, limit int) ([]entity.WorkflowLog, error) {
	var out []entity.WorkflowLog
	for i := len(r.logs) - 1; i >= 0 && len(out) < limit; i-- {
		if userID == 0 || r.logs[i].UserID == userID {
			out = append(out, r.logs[i])
		}
	}
	return out, nil
}

type fakeImageRepo struct {
	images map[int64]*entity.MedicalImage
	nextID int64
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: make(map[int64]*entity.MedicalImage), nextID: 1}
}

func (r *fakeImageRepo) Create(_ context.Context, image *entity.MedicalImage) error {
	image.ID = r.nextID
	r.nextID++
	r.images[image.ID] = image
	return nil
}

func (r *fakeImageRepo) FindByID(_ context.Context, id int64) (*entity.MedicalImage, error) {
	image, ok := r.images[id]
	if !ok {
		return nil, nil
	}
	copied := *image
	return &copied, nil
}

func (r *fakeImageRepo) FindByPatientID(_ context.Context, patientID int64) ([]entity.MedicalImage, error) {
	var out []entity.MedicalImage
	for _, img := range r.images {
		if img.PatientID == patientID {
			out = append(out, *img)
		}
	}
	return out, nil
}

func (r *fakeImageRepo) FindAll(_ context.Context) ([]entity.MedicalImage, error) {
	var out []entity.MedicalImage
	for _, img := range r.images {
		out = append(out, *img)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeImageRepo) Delete(_ context.Context, id int64) error {
	delete(r.images, id)
	return nil
}

// fakeImageStore records Put/Delete calls and returns deterministic URLs.
type fakeImageStore struct {
	objects map[string][]byte
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{objects: make(map[string][]byte)}
}

func (s *fakeImageStore) Put(_ context.Context, objectKey string, data []byte, _ string) error {
	s.objects[objectKey] = data
	return nil
}

func (s *fakeImageStore) URLFor(_ context.Context, objectKey string, ttl time.Duration) (string, error) {
	if _, ok := s.objects[objectKey]; !ok {
		return "", errors.New("object not found")
	}
	return fmt.Sprintf("https://storage.test/%s?ttl=%d", objectKey, int(ttl.Seconds())), nil
}

func (s *fakeImageStore) Delete(_ context.Context, objectKey string) error {
	delete(s.objects, objectKey)
	return nil
}
