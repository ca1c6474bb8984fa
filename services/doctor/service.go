package doctor

import (
	"strings"
	"unicode"

	doctorRepo "github.com/Sridhar1233sri/consultancy/database/repository/doctor"
	"github.com/Sridhar1233sri/consultancy/models"
	"github.com/Sridhar1233sri/consultancy/utils"

	"go.uber.org/zap"
)

// DefaultDirectoryService implements DirectoryService.
type DefaultDirectoryService struct {
	Repo doctorRepo.DoctorRepository
}

// Create validates the payload and inserts the doctor. Identifier assignment
// is delegated to the repository so it stays monotonic under concurrency.
func (s *DefaultDirectoryService) Create(req models.DoctorCreateRequest) (string, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Hospital) == "" || strings.TrimSpace(req.Speciality) == "" {
		return "", &utils.InvalidInputError{Field: "doctor", Reason: "name, hospital and speciality are required"}
	}

	doc := &models.Doctor{
		Name:         req.Name,
		Hospital:     req.Hospital,
		Speciality:   req.Speciality,
		Availability: req.Availability,
		ProfilePhoto: req.ProfilePhoto,
	}
	id, err := s.Repo.Create(doc)
	if err != nil {
		return "", err
	}

	utils.GetLogger().Info("doctor added", zap.String("doctorId", id), zap.String("name", doc.Name))
	return id, nil
}

// GetByID retrieves a doctor by identifier.
func (s *DefaultDirectoryService) GetByID(id string) (*models.Doctor, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &utils.InvalidInputError{Field: "id", Reason: "required"}
	}
	return s.Repo.GetByID(id)
}

// GetByRef resolves a doctor reference that may be either a "D<n>"
// identifier or an exact name.
func (s *DefaultDirectoryService) GetByRef(ref string) (*models.Doctor, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, &utils.InvalidInputError{Field: "ref", Reason: "required"}
	}
	if isDoctorID(ref) {
		return s.Repo.GetByID(ref)
	}
	return s.Repo.GetByName(ref)
}

// List returns all doctors in assignment order.
func (s *DefaultDirectoryService) List() ([]models.Doctor, error) {
	return s.Repo.GetAll()
}

// Delete removes a doctor by identifier.
func (s *DefaultDirectoryService) Delete(id string) error {
	if strings.TrimSpace(id) == "" {
		return &utils.InvalidInputError{Field: "id", Reason: "required"}
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	utils.GetLogger().Info("doctor deleted", zap.String("doctorId", id))
	return nil
}

// isDoctorID reports whether ref has the "D<digits>" identifier shape.
func isDoctorID(ref string) bool {
	if len(ref) < 2 || ref[0] != 'D' {
		return false
	}
	for _, r := range ref[1:] {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
