package scheduling

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Sridhar1233sri/consultancy/models"
	"github.com/Sridhar1233sri/consultancy/utils"
)

// fakeAppointmentRepo is an in-memory AppointmentRepository that enforces the
// same uniqueness constraint as the Mongo index.
type fakeAppointmentRepo struct {
	mu    sync.Mutex
	appts map[string]models.Appointment
	fail  bool
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appts: make(map[string]models.Appointment)}
}

func (f *fakeAppointmentRepo) Insert(appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return &utils.StorageUnavailableError{Op: "insert", Err: errors.New("down")}
	}
	for _, existing := range f.appts {
		if existing.DoctorID == appt.DoctorID && existing.Date == appt.Date && existing.Start == appt.Start {
			return &utils.ConflictError{Message: "slot already booked for this doctor"}
		}
	}
	appt.CreatedAt = time.Now()
	f.appts[appt.ID] = *appt
	return nil
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	appt, ok := f.appts[id]
	if !ok {
		return nil, &utils.NotFoundError{Entity: "appointment", ID: id}
	}
	return &appt, nil
}

func (f *fakeAppointmentRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.appts[id]; !ok {
		return &utils.NotFoundError{Entity: "appointment", ID: id}
	}
	delete(f.appts, id)
	return nil
}

func (f *fakeAppointmentRepo) ListByDoctorDate(doctorID, date string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, &utils.StorageUnavailableError{Op: "list", Err: errors.New("down")}
	}
	var out []models.Appointment
	for _, appt := range f.appts {
		if appt.DoctorID == doctorID && appt.Date == date {
			out = append(out, appt)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListByPatient(email string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, appt := range f.appts {
		if appt.PatientEmail == email {
			out = append(out, appt)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListByDoctor(doctorID, date string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, appt := range f.appts {
		if appt.DoctorID == doctorID && (date == "" || appt.Date == date) {
			out = append(out, appt)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListAll() ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Appointment, 0, len(f.appts))
	for _, appt := range f.appts {
		out = append(out, appt)
	}
	return out, nil
}

// fakeDoctorRepo serves a fixed directory.
type fakeDoctorRepo struct {
	doctors map[string]models.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: map[string]models.Doctor{
		"D1": {ID: "D1", Seq: 1, Name: "Dr. Meena", Hospital: "City Hospital", Speciality: "Cardiology"},
		"D2": {ID: "D2", Seq: 2, Name: "Dr. Rao", Hospital: "Lakeside Clinic", Speciality: "Dermatology"},
	}}
}

func (f *fakeDoctorRepo) Create(doc *models.Doctor) (string, error) { return "", nil }

func (f *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	doc, ok := f.doctors[id]
	if !ok {
		return nil, &utils.NotFoundError{Entity: "doctor", ID: id}
	}
	return &doc, nil
}

func (f *fakeDoctorRepo) GetByName(name string) (*models.Doctor, error) {
	for _, doc := range f.doctors {
		if doc.Name == name {
			return &doc, nil
		}
	}
	return nil, &utils.NotFoundError{Entity: "doctor", ID: name}
}

func (f *fakeDoctorRepo) GetAll() ([]models.Doctor, error) {
	out := make([]models.Doctor, 0, len(f.doctors))
	for _, doc := range f.doctors {
		out = append(out, doc)
	}
	return out, nil
}

func (f *fakeDoctorRepo) Delete(id string) error { return nil }

func newTestService(repo *fakeAppointmentRepo) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		Repo:       repo,
		DoctorRepo: newFakeDoctorRepo(),
		Grid:       GridConfig{OpenHour: 9, CloseHour: 18, SlotMinutes: 60},
		now:        func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func bookingReq(doctorID, date, timeStr string) models.BookingRequest {
	return models.BookingRequest{
		DoctorID:     doctorID,
		Date:         date,
		Time:         timeStr,
		PatientEmail: "pat@example.com",
		PatientName:  "Pat",
		Issue:        "checkup",
	}
}

func TestGridSlots(t *testing.T) {
	grid := GridConfig{OpenHour: 9, CloseHour: 18, SlotMinutes: 60}
	slots := grid.Slots()
	if len(slots) != 9 {
		t.Fatalf("expected 9 slots, got %d", len(slots))
	}
	if slots[0] != 9*60 {
		t.Errorf("first slot = %d, want %d", slots[0], 9*60)
	}
	if slots[len(slots)-1] != 17*60 {
		t.Errorf("last slot = %d, want %d", slots[len(slots)-1], 17*60)
	}
}

func TestGridDropsPartialTrailingSlot(t *testing.T) {
	grid := GridConfig{OpenHour: 9, CloseHour: 18, SlotMinutes: 50}
	slots := grid.Slots()
	// 540..1030 in steps of 50; the 40-minute remainder before 18:00 is dropped.
	if len(slots) != 10 {
		t.Fatalf("expected 10 slots, got %d", len(slots))
	}
	last := slots[len(slots)-1]
	if last+50 > 18*60 {
		t.Errorf("last slot %d runs past close", last)
	}
}

func TestParseClock(t *testing.T) {
	min, err := ParseClock("09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if min != 570 {
		t.Errorf("ParseClock(09:30) = %d, want 570", min)
	}

	for _, bad := range []string{"9am", "25:00", "10:65", ""} {
		if _, err := ParseClock(bad); err == nil {
			t.Errorf("ParseClock(%q) should fail", bad)
		}
		var invalid *utils.InvalidInputError
		if _, err := ParseClock(bad); !errors.As(err, &invalid) {
			t.Errorf("ParseClock(%q) error should be InvalidInputError, got %v", bad, err)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(570); got != "09:30" {
		t.Errorf("FormatClock(570) = %q, want 09:30", got)
	}
	if got := FormatClock(17 * 60); got != "17:00" {
		t.Errorf("FormatClock(1020) = %q, want 17:00", got)
	}
}

func TestIsAvailableAfterBooking(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := newTestService(repo)

	if _, err := svc.Book(bookingReq("D1", "2024-06-01", "10:00")); err != nil {
		t.Fatalf("book: %v", err)
	}

	ok, err := svc.IsAvailable("D1", "2024-06-01", "10:00", 60)
	if err != nil {
		t.Fatalf("isAvailable: %v", err)
	}
	if ok {
		t.Error("10:00 should be unavailable after booking")
	}

	ok, err = svc.IsAvailable("D1", "2024-06-01", "11:00", 60)
	if err != nil {
		t.Fatalf("isAvailable: %v", err)
	}
	if !ok {
		t.Error("11:00 should remain available")
	}
}

func TestAdjacentIntervalsDoNotConflict(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := newTestService(repo)

	if _, err := svc.Book(bookingReq("D1", "2024-06-01", "09:00")); err != nil {
		t.Fatalf("book 09:00: %v", err)
	}
	// Ends at 10:00; a 10:00 start shares no instant under half-open semantics.
	if _, err := svc.Book(bookingReq("D1", "2024-06-01", "10:00")); err != nil {
		t.Fatalf("adjacent booking should succeed: %v", err)
	}
}

func TestOneMinuteOverlapConflicts(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := newTestService(repo)

	if _, err := svc.Book(bookingReq("D1", "2024-06-01", "09:00")); err != nil {
		t.Fatalf("book: %v", err)
	}

	ok, err := svc.IsAvailable("D1", "2024-06-01", "09:59", 60)
	if err != nil {
		t.Fatalf("isAvailable: %v", err)
	}
	if ok {
		t.Error("interval overlapping by one minute should conflict")
	}
}

func TestIsAvailableRejectsMalformedInput(t *testing.T) {
	svc := newTestService(newFakeAppointmentRepo())

	var invalid *utils.InvalidInputError
	if _, err := svc.IsAvailable("D1", "01-06-2024", "10:00", 60); !errors.As(err, &invalid) {
		t.Errorf("bad date should yield InvalidInputError, got %v", err)
	}
	if _, err := svc.IsAvailable("D1", "2024-06-01", "10am", 60); !errors.As(err, &invalid) {
		t.Errorf("bad time should yield InvalidInputError, got %v", err)
	}
	if _, err := svc.IsAvailable("D1", "2024-06-01", "23:30", 60); !errors.As(err, &invalid) {
		t.Errorf("interval past midnight should yield InvalidInputError, got %v", err)
	}
}

func TestIsAvailableUnknownDoctor(t *testing.T) {
	svc := newTestService(newFakeAppointmentRepo())

	var notFound *utils.NotFoundError
	if _, err := svc.IsAvailable("D99", "2024-06-01", "10:00", 60); !errors.As(err, &notFound) {
		t.Errorf("unknown doctor should yield NotFoundError, got %v", err)
	}
}

func TestAvailabilityFailsClosedOnStorageError(t *testing.T) {
	repo := newFakeAppointmentRepo()
	repo.fail = true
	svc := newTestService(repo)

	ok, err := svc.IsAvailable("D1", "2024-06-01", "10:00", 60)
	if err == nil {
		t.Fatal("expected an error on storage failure")
	}
	if ok {
		t.Error("must never report available on an inconclusive read")
	}
	var unavailable *utils.StorageUnavailableError
	if !errors.As(err, &unavailable) {
		t.Errorf("expected StorageUnavailableError, got %v", err)
	}
}

func TestFreeSlotsEmptyCalendar(t *testing.T) {
	svc := newTestService(newFakeAppointmentRepo())

	slots, err := svc.FreeSlots("D1", "2024-06-01")
	if err != nil {
		t.Fatalf("freeSlots: %v", err)
	}
	if len(slots) != 9 {
		t.Fatalf("expected 9 free slots, got %d (%v)", len(slots), slots)
	}
	if slots[0] != "09:00" || slots[len(slots)-1] != "17:00" {
		t.Errorf("slots span = %s..%s, want 09:00..17:00", slots[0], slots[len(slots)-1])
	}
}

func TestFreeSlotsDisjointFromBookings(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := newTestService(repo)

	for _, at := range []string{"10:00", "14:00"} {
		if _, err := svc.Book(bookingReq("D1", "2024-06-01", at)); err != nil {
			t.Fatalf("book %s: %v", at, err)
		}
	}

	slots, err := svc.FreeSlots("D1", "2024-06-01")
	if err != nil {
		t.Fatalf("freeSlots: %v", err)
	}
	if len(slots) != 7 {
		t.Fatalf("expected 7 free slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s == "10:00" || s == "14:00" {
			t.Errorf("booked slot %s reported as free", s)
		}
	}

	// Another doctor's calendar is unaffected.
	other, err := svc.FreeSlots("D2", "2024-06-01")
	if err != nil {
		t.Fatalf("freeSlots D2: %v", err)
	}
	if len(other) != 9 {
		t.Errorf("expected 9 free slots for D2, got %d", len(other))
	}
}

func TestFreeSlotsExcludesNonAlignedBookings(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := newTestService(repo)

	// 10:30-11:30 straddles the 10:00 and 11:00 grid slots.
	req := bookingReq("D1", "2024-06-01", "10:30")
	if _, err := svc.Book(req); err != nil {
		t.Fatalf("book: %v", err)
	}

	slots, err := svc.FreeSlots("D1", "2024-06-01")
	if err != nil {
		t.Fatalf("freeSlots: %v", err)
	}
	for _, s := range slots {
		if s == "10:00" || s == "11:00" {
			t.Errorf("slot %s overlaps the 10:30 booking but was reported free", s)
		}
	}
	if len(slots) != 7 {
		t.Errorf("expected 7 free slots, got %d (%v)", len(slots), slots)
	}
}

func TestBookSnapshotsDoctorFields(t *testing.T) {
	svc := newTestService(newFakeAppointmentRepo())

	appt, err := svc.Book(bookingReq("D1", "2024-06-01", "10:00"))
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if appt.DoctorName != "Dr. Meena" || appt.Speciality != "Cardiology" || appt.Hospital != "City Hospital" {
		t.Errorf("doctor snapshot not captured: %+v", appt)
	}
	if appt.Start != 600 || appt.End != 660 {
		t.Errorf("interval = [%d,%d), want [600,660)", appt.Start, appt.End)
	}
	if appt.ID == "" {
		t.Error("appointment id not assigned")
	}
}

func TestBookRejectsPastDate(t *testing.T) {
	svc := newTestService(newFakeAppointmentRepo())

	// Service clock is pinned to 2024-05-01.
	var invalid *utils.InvalidInputError
	if _, err := svc.Book(bookingReq("D1", "2024-04-30", "10:00")); !errors.As(err, &invalid) {
		t.Errorf("past date should yield InvalidInputError, got %v", err)
	}
	// Booking on the current date is allowed.
	if _, err := svc.Book(bookingReq("D1", "2024-05-01", "10:00")); err != nil {
		t.Errorf("same-day booking should succeed, got %v", err)
	}
}

func TestBookUnknownDoctor(t *testing.T) {
	svc := newTestService(newFakeAppointmentRepo())

	var notFound *utils.NotFoundError
	if _, err := svc.Book(bookingReq("D99", "2024-06-01", "10:00")); !errors.As(err, &notFound) {
		t.Errorf("unknown doctor should yield NotFoundError, got %v", err)
	}
}

func TestBookConflict(t *testing.T) {
	svc := newTestService(newFakeAppointmentRepo())

	if _, err := svc.Book(bookingReq("D1", "2024-06-01", "10:00")); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	var conflict *utils.ConflictError
	if _, err := svc.Book(bookingReq("D1", "2024-06-01", "10:00")); !errors.As(err, &conflict) {
		t.Errorf("second booking should yield ConflictError, got %v", err)
	}
	// A partially overlapping interval conflicts too.
	if _, err := svc.Book(bookingReq("D1", "2024-06-01", "10:30")); !errors.As(err, &conflict) {
		t.Errorf("overlapping booking should yield ConflictError, got %v", err)
	}
}

func TestConcurrentBookingsSameSlot(t *testing.T) {
	svc := newTestService(newFakeAppointmentRepo())

	const workers = 16
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes, conflictErrs := 0, 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Book(bookingReq("D1", "2024-06-01", "10:00"))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
				return
			}
			var conflict *utils.ConflictError
			if errors.As(err, &conflict) {
				conflictErrs++
			} else {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Errorf("exactly one booking must win, got %d", successes)
	}
	if conflictErrs != workers-1 {
		t.Errorf("expected %d conflicts, got %d", workers-1, conflictErrs)
	}
}

func TestConcurrentBookingsNeverOverlap(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := newTestService(repo)

	times := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		for _, at := range times {
			wg.Add(1)
			go func(at string) {
				defer wg.Done()
				_, _ = svc.Book(bookingReq("D1", "2024-06-01", at))
			}(at)
		}
	}
	wg.Wait()

	appts, err := repo.ListByDoctorDate("D1", "2024-06-01")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i := range appts {
		for j := i + 1; j < len(appts); j++ {
			if appts[i].Slot().Overlaps(appts[j].Slot()) {
				t.Errorf("committed appointments overlap: [%d,%d) and [%d,%d)",
					appts[i].Start, appts[i].End, appts[j].Start, appts[j].End)
			}
		}
	}
}

func TestCancelIdempotence(t *testing.T) {
	svc := newTestService(newFakeAppointmentRepo())

	appt, err := svc.Book(bookingReq("D1", "2024-06-01", "10:00"))
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if err := svc.Cancel(appt.ID); err != nil {
		t.Fatalf("first cancel: %v", err)
	}

	var notFound *utils.NotFoundError
	if err := svc.Cancel(appt.ID); !errors.As(err, &notFound) {
		t.Errorf("second cancel should yield NotFoundError, got %v", err)
	}

	// The slot opens back up after cancellation.
	ok, err := svc.IsAvailable("D1", "2024-06-01", "10:00", 60)
	if err != nil {
		t.Fatalf("isAvailable: %v", err)
	}
	if !ok {
		t.Error("cancelled slot should be available again")
	}
}

func TestListByPatient(t *testing.T) {
	svc := newTestService(newFakeAppointmentRepo())

	if _, err := svc.Book(bookingReq("D1", "2024-06-01", "10:00")); err != nil {
		t.Fatalf("book: %v", err)
	}
	req := bookingReq("D2", "2024-06-02", "11:00")
	req.PatientEmail = "other@example.com"
	if _, err := svc.Book(req); err != nil {
		t.Fatalf("book: %v", err)
	}

	appts, err := svc.ListByPatient("pat@example.com")
	if err != nil {
		t.Fatalf("listByPatient: %v", err)
	}
	if len(appts) != 1 || appts[0].DoctorID != "D1" {
		t.Errorf("unexpected patient listing: %+v", appts)
	}
}
