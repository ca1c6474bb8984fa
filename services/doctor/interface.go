package doctor

import "github.com/Sridhar1233sri/consultancy/models"

// DirectoryService manages the doctor directory.
type DirectoryService interface {
	// Create adds a doctor and returns the assigned "D<n>" identifier.
	Create(req models.DoctorCreateRequest) (string, error)
	// GetByID retrieves a doctor by identifier.
	GetByID(id string) (*models.Doctor, error)
	// GetByRef resolves "D<n>" identifiers and exact names alike.
	GetByRef(ref string) (*models.Doctor, error)
	// List returns all doctors in assignment order.
	List() ([]models.Doctor, error)
	// Delete removes a doctor by identifier.
	Delete(id string) error
}
