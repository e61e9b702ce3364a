package db

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

// MongoStorage stores volunteers and admin accounts in an external
// MongoDB service.
type MongoStorage struct {
	client   *mongo.Client
	database string
	keysLock sync.RWMutex

	volunteers *mongo.Collection
	admins     *mongo.Collection
}

// NewMongoStorage connects to MongoDB, ensures the collections with their
// JSON-Schema validators, and creates the indexes. Setting the
// CIVILDEFENCE_MONGO_RESET_DB environment variable drops all documents
// before recreating the indexes.
func NewMongoStorage(url, database string) (*MongoStorage, error) {
	if url == "" {
		return nil, fmt.Errorf("mongo URL is not defined")
	}
	if database == "" {
		return nil, fmt.Errorf("mongo database is not defined")
	}
	zap.S().Infow("connecting to mongodb", "url", url, "database", database)
	opts := options.Client()
	opts.ApplyURI(url)
	opts.SetMaxConnecting(200)
	timeout := defaultTimeout
	opts.ConnectTimeout = &timeout
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to mongodb: %w", err)
	}
	ctx, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("cannot connect to mongodb: %w", err)
	}
	ms := &MongoStorage{client: client, database: database}
	if err := ms.initCollections(database); err != nil {
		return nil, err
	}
	if reset := os.Getenv("CIVILDEFENCE_MONGO_RESET_DB"); reset != "" {
		if err := ms.Reset(); err != nil {
			return nil, err
		}
	} else if err := ms.createIndexes(); err != nil {
		return nil, err
	}
	return ms, nil
}

// Close disconnects the MongoDB client.
func (ms *MongoStorage) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	if err := ms.client.Disconnect(ctx); err != nil {
		zap.S().Warn(err)
	}
}

// Reset drops all documents and recreates the indexes.
func (ms *MongoStorage) Reset() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	for _, coll := range []*mongo.Collection{ms.volunteers, ms.admins} {
		if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("failed to reset collection %s: %w", coll.Name(), err)
		}
	}
	return ms.createIndexes()
}

// initCollections creates the collections in the MongoDB database if they
// don't exist, attaching the registered JSON-Schema validators.
func (ms *MongoStorage) initCollections(database string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	currentCollections, err := ms.collectionNames(ctx, database)
	if err != nil {
		return err
	}
	getCollection := func(name string) (*mongo.Collection, error) {
		alreadyCreated := false
		for _, c := range currentCollections {
			if c == name {
				alreadyCreated = true
				break
			}
		}
		if alreadyCreated {
			if validator, ok := collectionsValidators[name]; ok {
				err := ms.client.Database(database).RunCommand(ctx, bson.D{
					{Key: "collMod", Value: name},
					{Key: "validator", Value: validator},
				}).Err()
				if err != nil {
					return nil, fmt.Errorf("failed to update collection validator: %w", err)
				}
			}
		} else {
			opts := options.CreateCollection()
			if validator, ok := collectionsValidators[name]; ok {
				opts = opts.SetValidator(validator).SetValidationLevel("strict").SetValidationAction("error")
			}
			if err := ms.client.Database(database).CreateCollection(ctx, name, opts); err != nil {
				return nil, err
			}
		}
		return ms.client.Database(database).Collection(name), nil
	}
	if ms.volunteers, err = getCollection("volunteers"); err != nil {
		return err
	}
	if ms.admins, err = getCollection("admins"); err != nil {
		return err
	}
	return nil
}

// collectionNames returns the names of the collections in the given
// database.
func (ms *MongoStorage) collectionNames(ctx context.Context, database string) ([]string, error) {
	collectionsCursor, err := ms.client.Database(database).ListCollections(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := collectionsCursor.Close(ctx); err != nil {
			zap.S().Warnw("failed to close collections cursor", "error", err)
		}
	}()
	collections := []bson.D{}
	if err := collectionsCursor.All(ctx, &collections); err != nil {
		return nil, err
	}
	names := []string{}
	for _, col := range collections {
		for _, v := range col {
			if v.Key == "name" {
				names = append(names, v.Value.(string))
			}
		}
	}
	return names, nil
}

// createIndexes creates the indexes for the collections. Add more indexes
// here as needed.
func (ms *MongoStorage) createIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	// a CNIC registers at most once
	cnicIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "cnic", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := ms.volunteers.Indexes().CreateOne(ctx, cnicIndex); err != nil {
		return fmt.Errorf("failed to create index on cnic for volunteers: %w", err)
	}
	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	}
	if _, err := ms.volunteers.Indexes().CreateOne(ctx, emailIndex); err != nil {
		return fmt.Errorf("failed to create index on email for volunteers: %w", err)
	}
	// the admin list filters on status and province
	statusIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "province", Value: 1},
		},
	}
	if _, err := ms.volunteers.Indexes().CreateOne(ctx, statusIndex); err != nil {
		return fmt.Errorf("failed to create index on status for volunteers: %w", err)
	}
	return nil
}

// SetVolunteer inserts or updates a volunteer. New volunteers get a fresh
// ObjectID and their CNIC must not already be registered.
func (ms *MongoStorage) SetVolunteer(v *Volunteer) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	if v.ID.IsZero() {
		v.ID = primitive.NewObjectID()
	}
	if v.RegistrationDate.IsZero() {
		v.RegistrationDate = time.Now()
	}
	updateDoc, err := dynamicUpdateDocument(v, []string{"status"})
	if err != nil {
		return "", err
	}
	filter := bson.M{"_id": v.ID}
	opts := options.Update().SetUpsert(true)
	if _, err := ms.volunteers.UpdateOne(ctx, filter, updateDoc, opts); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrAlreadyExists
		}
		return "", err
	}
	return v.ID.Hex(), nil
}

// Volunteer retrieves a volunteer from the DB based on its ID.
func (ms *MongoStorage) Volunteer(id string) (*Volunteer, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidData
	}
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	volunteer := &Volunteer{}
	if err := ms.volunteers.FindOne(ctx, bson.M{"_id": objID}).Decode(volunteer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get volunteer: %w", err)
	}
	return volunteer, nil
}

// Volunteers returns all volunteers in registration order.
func (ms *MongoStorage) Volunteers() ([]*Volunteer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "registrationDate", Value: 1}})
	cursor, err := ms.volunteers.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteers: %w", err)
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			zap.S().Warnw("failed to close volunteers cursor", "error", err)
		}
	}()
	var volunteers []*Volunteer
	if err := cursor.All(ctx, &volunteers); err != nil {
		return nil, fmt.Errorf("failed to decode volunteers: %w", err)
	}
	return volunteers, nil
}

// DelVolunteer removes a volunteer by id.
func (ms *MongoStorage) DelVolunteer(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidData
	}
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err = ms.volunteers.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}

// bulkBatchSize bounds the documents per InsertMany call on bulk imports.
const bulkBatchSize = 500

// SetBulkVolunteers inserts volunteers in batches, skipping documents that
// collide with the unique CNIC index. It returns the number inserted.
func (ms *MongoStorage) SetBulkVolunteers(volunteers []*Volunteer) (int, error) {
	if len(volunteers) == 0 {
		return 0, nil
	}
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()

	added := 0
	for start := 0; start < len(volunteers); start += bulkBatchSize {
		end := start + bulkBatchSize
		if end > len(volunteers) {
			end = len(volunteers)
		}
		docs := make([]any, 0, end-start)
		now := time.Now()
		for _, v := range volunteers[start:end] {
			if v.ID.IsZero() {
				v.ID = primitive.NewObjectID()
			}
			if v.RegistrationDate.IsZero() {
				v.RegistrationDate = now
			}
			docs = append(docs, v)
		}
		ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		// unordered so one duplicate doesn't abort the whole batch
		opts := options.InsertMany().SetOrdered(false)
		result, err := ms.volunteers.InsertMany(ctx, docs, opts)
		cancel()
		if result != nil {
			added += len(result.InsertedIDs)
		}
		if err != nil && !mongo.IsDuplicateKeyError(err) {
			return added, fmt.Errorf("failed to insert volunteers batch: %w", err)
		}
	}
	return added, nil
}

// UpdateVolunteersStatus sets the status on every given id and returns
// the number of records updated.
func (ms *MongoStorage) UpdateVolunteersStatus(ids []string, status VolunteerStatus) (int, error) {
	if !ValidStatus(status) {
		return 0, ErrInvalidData
	}
	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return 0, ErrInvalidData
		}
		objIDs = append(objIDs, objID)
	}
	if len(objIDs) == 0 {
		return 0, nil
	}
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := ms.volunteers.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": objIDs}},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update volunteer status: %w", err)
	}
	return int(result.ModifiedCount), nil
}

// CountVolunteers returns the total number of volunteers.
func (ms *MongoStorage) CountVolunteers() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return ms.volunteers.CountDocuments(ctx, bson.M{})
}

// Stats aggregates the dashboard counters with a group-by-status and a
// group-by-province pipeline plus the latest registrations.
func (ms *MongoStorage) Stats() (*Stats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	stats := &Stats{ByProvince: []ProvinceCount{}, Recent: []RecentRegistration{}}

	statusCursor, err := ms.volunteers.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate statuses: %w", err)
	}
	var statusCounts []struct {
		Status VolunteerStatus `bson:"_id"`
		Count  int64           `bson:"count"`
	}
	if err := statusCursor.All(ctx, &statusCounts); err != nil {
		return nil, err
	}
	for _, sc := range statusCounts {
		stats.Total += sc.Count
		switch sc.Status {
		case StatusActive:
			stats.Active = sc.Count
		case StatusPending:
			stats.Pending = sc.Count
		case StatusInactive:
			stats.Inactive = sc.Count
		}
	}

	provinceCursor, err := ms.volunteers.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$provinceName", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate provinces: %w", err)
	}
	if err := provinceCursor.All(ctx, &stats.ByProvince); err != nil {
		return nil, err
	}

	recentOpts := options.Find().
		SetSort(bson.D{{Key: "registrationDate", Value: -1}}).
		SetLimit(recentLimit)
	recentCursor, err := ms.volunteers.Find(ctx, bson.M{}, recentOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent registrations: %w", err)
	}
	var recent []*Volunteer
	if err := recentCursor.All(ctx, &recent); err != nil {
		return nil, err
	}
	for _, v := range recent {
		stats.Recent = append(stats.Recent, RecentRegistration{
			ID:       v.ID.Hex(),
			FullName: v.FullName,
			District: v.DistrictName,
			Date:     v.RegistrationDate,
		})
	}
	return stats, nil
}

// Admin retrieves an admin account by username.
func (ms *MongoStorage) Admin(username string) (*Admin, error) {
	if username == "" {
		return nil, ErrInvalidData
	}
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	admin := &Admin{}
	if err := ms.admins.FindOne(ctx, bson.M{"_id": username}).Decode(admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return admin, nil
}

// SetAdmin inserts or updates an admin account.
func (ms *MongoStorage) SetAdmin(admin *Admin) error {
	if admin.Username == "" || admin.Password == "" {
		return ErrInvalidData
	}
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	updateDoc, err := dynamicUpdateDocument(admin, nil)
	if err != nil {
		return err
	}
	opts := options.Update().SetUpsert(true)
	_, err = ms.admins.UpdateOne(ctx, bson.M{"_id": admin.Username}, updateDoc, opts)
	return err
}
