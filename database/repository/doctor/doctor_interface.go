package doctorRepo

import "github.com/Sridhar1233sri/consultancy/models"

// DoctorRepository defines methods for directory data access.
type DoctorRepository interface {
	// Create inserts a new doctor and returns its assigned identifier.
	Create(doc *models.Doctor) (string, error)
	// GetByID retrieves a doctor by its "D<n>" identifier.
	GetByID(id string) (*models.Doctor, error)
	// GetByName retrieves a doctor by exact name.
	GetByName(name string) (*models.Doctor, error)
	// GetAll retrieves all doctors.
	GetAll() ([]models.Doctor, error)
	// Delete removes a doctor by its identifier.
	Delete(id string) error
}
