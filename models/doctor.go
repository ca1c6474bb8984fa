package models

// Doctor represents a directory entry for a practitioner.
// The ID is monotonically assigned ("D1", "D2", ...) and immutable once set.
type Doctor struct {
	ID           string            `bson:"id" json:"id"`
	Seq          int               `bson:"seq" json:"-"`
	Name         string            `bson:"name" json:"name"`
	Hospital     string            `bson:"hospital" json:"hospital"`
	Speciality   string            `bson:"speciality" json:"speciality"`
	Availability map[string]string `bson:"availability,omitempty" json:"availability,omitempty"` // e.g. "Mon": "09:00-17:00"
	ProfilePhoto string            `bson:"profilePhoto,omitempty" json:"profilePhoto,omitempty"`
}

// DoctorCreateRequest is the payload for POST /api/doctors.
type DoctorCreateRequest struct {
	Name         string            `json:"name" binding:"required"`
	Hospital     string            `json:"hospital" binding:"required"`
	Speciality   string            `json:"speciality" binding:"required"`
	Availability map[string]string `json:"availability,omitempty"`
	ProfilePhoto string            `json:"profilePhoto,omitempty"`
}
