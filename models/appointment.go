package models

import "time"

// Interval is a half-open time range [Start, End) within one day,
// expressed in minutes from midnight (e.g. 540 for 09:00).
type Interval struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// Overlaps reports whether two half-open intervals share any instant.
// Adjacent intervals (one ending exactly when the other starts) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Appointment is a confirmed booking for a doctor on a given date.
// Doctor name/speciality/hospital are snapshotted at booking time so the
// record stays meaningful if the directory entry is later removed.
type Appointment struct {
	ID           string    `bson:"id" json:"id"`
	PatientEmail string    `bson:"patient_email" json:"patient_email"`
	PatientName  string    `bson:"patient_name" json:"patient_name"`
	DoctorID     string    `bson:"doctor_id" json:"doctor_id"`
	DoctorName   string    `bson:"doctor_name" json:"doctor_name"`
	Speciality   string    `bson:"speciality" json:"speciality"`
	Hospital     string    `bson:"hospital" json:"hospital"`
	Date         string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Start        int       `bson:"start" json:"start"`
	End          int       `bson:"end" json:"end"`
	Issue        string    `bson:"issue,omitempty" json:"issue,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Slot returns the appointment's interval.
func (a Appointment) Slot() Interval {
	return Interval{Start: a.Start, End: a.End}
}

// BookingRequest is the payload for POST /api/appointments.
type BookingRequest struct {
	DoctorID        string `json:"doctorId" binding:"required"`
	Date            string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Time            string `json:"time" binding:"required"` // "HH:MM"
	DurationMinutes int    `json:"duration,omitempty"`      // defaults to the configured slot length
	PatientEmail    string `json:"patientEmail" binding:"required"`
	PatientName     string `json:"patientName"`
	Issue           string `json:"issue,omitempty"`
}

// AvailabilityResponse is the body of GET /api/appointments/availability.
type AvailabilityResponse struct {
	DoctorID string   `json:"doctorId"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
}
