package doctor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Sridhar1233sri/consultancy/models"
	"github.com/Sridhar1233sri/consultancy/utils"
)

type fakeDoctorRepo struct {
	doctors []models.Doctor
	nextSeq int
}

func (f *fakeDoctorRepo) Create(doc *models.Doctor) (string, error) {
	f.nextSeq++
	doc.Seq = f.nextSeq
	doc.ID = fmt.Sprintf("D%d", f.nextSeq)
	f.doctors = append(f.doctors, *doc)
	return doc.ID, nil
}

func (f *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	for _, doc := range f.doctors {
		if doc.ID == id {
			return &doc, nil
		}
	}
	return nil, &utils.NotFoundError{Entity: "doctor", ID: id}
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
	return append([]models.Doctor(nil), f.doctors...), nil
}

func (f *fakeDoctorRepo) Delete(id string) error {
	for i, doc := range f.doctors {
		if doc.ID == id {
			f.doctors = append(f.doctors[:i], f.doctors[i+1:]...)
			return nil
		}
	}
	return &utils.NotFoundError{Entity: "doctor", ID: id}
}

func createReq(name string) models.DoctorCreateRequest {
	return models.DoctorCreateRequest{
		Name:       name,
		Hospital:   "City Hospital",
		Speciality: "Cardiology",
	}
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	svc := &DefaultDirectoryService{Repo: &fakeDoctorRepo{}}

	for i, name := range []string{"Dr. Meena", "Dr. Rao", "Dr. Iyer"} {
		id, err := svc.Create(createReq(name))
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		want := fmt.Sprintf("D%d", i+1)
		if id != want {
			t.Errorf("id = %q, want %q", id, want)
		}
	}
}

func TestCreateRejectsIncompleteDoctor(t *testing.T) {
	svc := &DefaultDirectoryService{Repo: &fakeDoctorRepo{}}

	var invalid *utils.InvalidInputError
	if _, err := svc.Create(models.DoctorCreateRequest{Name: "Dr. Meena"}); !errors.As(err, &invalid) {
		t.Errorf("missing hospital/speciality should yield InvalidInputError, got %v", err)
	}
	if _, err := svc.Create(models.DoctorCreateRequest{Hospital: "City", Speciality: "Cardiology"}); !errors.As(err, &invalid) {
		t.Errorf("missing name should yield InvalidInputError, got %v", err)
	}
}

func TestGetByRef(t *testing.T) {
	svc := &DefaultDirectoryService{Repo: &fakeDoctorRepo{}}
	id, err := svc.Create(createReq("Dr. Meena"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	byID, err := svc.GetByRef(id)
	if err != nil {
		t.Fatalf("getByRef(id): %v", err)
	}
	if byID.Name != "Dr. Meena" {
		t.Errorf("resolved wrong doctor: %+v", byID)
	}

	byName, err := svc.GetByRef("Dr. Meena")
	if err != nil {
		t.Fatalf("getByRef(name): %v", err)
	}
	if byName.ID != id {
		t.Errorf("resolved wrong doctor: %+v", byName)
	}

	var notFound *utils.NotFoundError
	if _, err := svc.GetByRef("D99"); !errors.As(err, &notFound) {
		t.Errorf("unknown id should yield NotFoundError, got %v", err)
	}
}

func TestIsDoctorID(t *testing.T) {
	cases := map[string]bool{
		"D1":        true,
		"D42":       true,
		"D":         false,
		"Dr. Meena": false,
		"X1":        false,
		"D1a":       false,
	}
	for ref, want := range cases {
		if got := isDoctorID(ref); got != want {
			t.Errorf("isDoctorID(%q) = %v, want %v", ref, got, want)
		}
	}
}

func TestDeleteUnknownDoctor(t *testing.T) {
	svc := &DefaultDirectoryService{Repo: &fakeDoctorRepo{}}

	var notFound *utils.NotFoundError
	if err := svc.Delete("D7"); !errors.As(err, &notFound) {
		t.Errorf("deleting unknown doctor should yield NotFoundError, got %v", err)
	}
}
