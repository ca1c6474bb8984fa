package doctorRepo

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

// MongoDoctorRepo implements DoctorRepository using MongoDB.
type MongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo creates a new instance of DoctorRepository using MongoDB.
func NewMongoDoctorRepo() DoctorRepository {
	coll := database.DB().Collection("doctors")
	repo := &MongoDoctorRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDoctorRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "seq", Value: -1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create assigns the next monotonic "D<n>" identifier and inserts the doctor.
// The unique index on id resolves races between concurrent creates; on a
// duplicate key the sequence is re-read and the insert retried.
func (r *MongoDoctorRepo) Create(doc *models.Doctor) (string, error) {
	const maxAttempts = 3

	for attempt := 0; attempt < maxAttempts; attempt++ {
		seq, err := r.nextSeq()
		if err != nil {
			return "", err
		}
		doc.Seq = seq
		doc.ID = fmt.Sprintf("D%d", seq)

		ctx, cancel := newContext(5 * time.Second)
		_, err = r.coll.InsertOne(ctx, doc)
		cancel()
		if err == nil {
			return doc.ID, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return "", &utils.StorageUnavailableError{Op: "doctor insert", Err: err}
		}
	}
	return "", &utils.ConflictError{Message: "could not assign a doctor identifier, try again"}
}

// nextSeq returns one past the highest assigned sequence number.
// Sorting on the numeric seq field avoids the lexicographic trap of
// comparing "D10" against "D9".
func (r *MongoDoctorRepo) nextSeq() (int, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "seq", Value: -1}})
	var last models.Doctor
	err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, &utils.StorageUnavailableError{Op: "doctor sequence read", Err: err}
	}
	return last.Seq + 1, nil
}

// GetByID retrieves a doctor by its identifier.
func (r *MongoDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &utils.NotFoundError{Entity: "doctor", ID: id}
		}
		return nil, &utils.StorageUnavailableError{Op: "doctor fetch", Err: err}
	}
	return &doc, nil
}

// GetByName retrieves a doctor by exact name.
func (r *MongoDoctorRepo) GetByName(name string) (*models.Doctor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &utils.NotFoundError{Entity: "doctor", ID: name}
		}
		return nil, &utils.StorageUnavailableError{Op: "doctor fetch", Err: err}
	}
	return &doc, nil
}

// GetAll retrieves all doctors ordered by assignment.
func (r *MongoDoctorRepo) GetAll() ([]models.Doctor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, &utils.StorageUnavailableError{Op: "doctor list", Err: err}
	}
	defer cursor.Close(ctx)

	var docs []models.Doctor
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, &utils.StorageUnavailableError{Op: "doctor list decode", Err: err}
	}
	return docs, nil
}

// Delete removes a doctor by its identifier.
func (r *MongoDoctorRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return &utils.StorageUnavailableError{Op: "doctor delete", Err: err}
	}
	if result.DeletedCount == 0 {
		return &utils.NotFoundError{Entity: "doctor", ID: id}
	}
	return nil
}
