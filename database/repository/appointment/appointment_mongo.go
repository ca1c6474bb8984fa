package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Sridhar1233sri/consultancy/database"
	"github.com/Sridhar1233sri/consultancy/models"
	"github.com/Sridhar1233sri/consultancy/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new instance of AppointmentRepository using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	coll := database.DB().Collection("appointments")
	repo := &MongoAppointmentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates lookup indexes plus the uniqueness constraint on
// (doctor_id, date, start). The unique index makes the second of two racing
// inserts for the same slot fail atomically at the storage layer.
func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys: bson.D{
				{Key: "doctor_id", Value: 1},
				{Key: "date", Value: 1},
				{Key: "start", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "patient_email", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert commits an appointment record.
func (r *MongoAppointmentRepo) Insert(appt *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	appt.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &utils.ConflictError{Message: "slot already booked for this doctor"}
		}
		return &utils.StorageUnavailableError{Op: "appointment insert", Err: err}
	}
	return nil
}

// GetByID retrieves an appointment by its identifier.
func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &utils.NotFoundError{Entity: "appointment", ID: id}
		}
		return nil, &utils.StorageUnavailableError{Op: "appointment fetch", Err: err}
	}
	return &appt, nil
}

// Delete removes an appointment by its identifier.
func (r *MongoAppointmentRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return &utils.StorageUnavailableError{Op: "appointment delete", Err: err}
	}
	if result.DeletedCount == 0 {
		return &utils.NotFoundError{Entity: "appointment", ID: id}
	}
	return nil
}

// ListByDoctorDate retrieves all appointments for a doctor on a date,
// ordered by start time.
func (r *MongoAppointmentRepo) ListByDoctorDate(doctorID, date string) ([]models.Appointment, error) {
	return r.list(bson.M{"doctor_id": doctorID, "date": date})
}

// ListByPatient retrieves all appointments booked under an email.
func (r *MongoAppointmentRepo) ListByPatient(email string) ([]models.Appointment, error) {
	return r.list(bson.M{"patient_email": email})
}

// ListByDoctor retrieves a doctor's appointments, optionally narrowed to a date.
func (r *MongoAppointmentRepo) ListByDoctor(doctorID, date string) ([]models.Appointment, error) {
	filter := bson.M{"doctor_id": doctorID}
	if date != "" {
		filter["date"] = date
	}
	return r.list(filter)
}

// ListAll retrieves every appointment record.
func (r *MongoAppointmentRepo) ListAll() ([]models.Appointment, error) {
	return r.list(bson.M{})
}

func (r *MongoAppointmentRepo) list(filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, &utils.StorageUnavailableError{Op: "appointment list", Err: err}
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, &utils.StorageUnavailableError{Op: "appointment list decode", Err: err}
	}
	return appts, nil
}
