package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

const (
	reservationsCollection = "reservations"
	auditLogsCollection    = "audit_logs"
)

type reservationDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	PhoneNumber string             `bson:"phoneNumber"`
	Date        time.Time          `bson:"date"`
	Time        string             `bson:"time"`
	Guests      int                `bson:"guests"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

type auditDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Action    string             `bson:"action"`
	Entity    string             `bson:"entity"`
	EntityID  string             `bson:"entityId"`
	Metadata  string             `bson:"metadata"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// bson field names for Patch.Columns keys that differ
var mongoFields = map[string]string{
	"phone_number": "phoneNumber",
}

type ReservationMongoRepository struct {
	reservations *mongo.Collection
	auditLogs    *mongo.Collection
	loc          *time.Location
	now          func() time.Time
}

// NewReservationMongoRepository stores one document per reservation. loc is
// the restaurant time zone; dates come back from Mongo in UTC and are
// converted to it.
func NewReservationMongoRepository(db *mongo.Database, loc *time.Location) *ReservationMongoRepository {
	return &ReservationMongoRepository{
		reservations: db.Collection(reservationsCollection),
		auditLogs:    db.Collection(auditLogsCollection),
		loc:          loc,
		now:          time.Now,
	}
}

func (r *ReservationMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.reservations.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create reservation indexes: %w", err)
	}

	_, err = r.auditLogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "entityId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create audit indexes: %w", err)
	}
	return nil
}

// --------------------------------------------------
// Reservation (write)
// --------------------------------------------------

func (r *ReservationMongoRepository) Create(ctx context.Context, res *models.Reservation) error {
	if res.ID == "" {
		res.ID = models.NewID()
	}
	oid, err := primitive.ObjectIDFromHex(res.ID)
	if err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}

	now := r.now()
	if res.CreatedAt.IsZero() {
		res.CreatedAt = now
	}
	res.UpdatedAt = now

	doc := toDocument(oid, res)
	if _, err := r.reservations.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}
	return nil
}

func (r *ReservationMongoRepository) Update(
	ctx context.Context,
	id string,
	patch domain.Patch,
) (*models.Reservation, error) {

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var doc reservationDocument
	err = r.reservations.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": updateSet(patch, r.now())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, translateMongo("update reservation", err)
	}

	res := r.fromDocument(doc)
	return &res, nil
}

func (r *ReservationMongoRepository) Delete(ctx context.Context, id string) (*models.Reservation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var doc reservationDocument
	if err := r.reservations.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translateMongo("delete reservation", err)
	}

	res := r.fromDocument(doc)
	return &res, nil
}

// --------------------------------------------------
// Reservation (read)
// --------------------------------------------------

func (r *ReservationMongoRepository) FindAll(ctx context.Context) ([]models.Reservation, error) {
	return r.find(ctx, "fetch reservations", bson.M{}, newestFirst())
}

func (r *ReservationMongoRepository) FindByID(ctx context.Context, id string) (*models.Reservation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var doc reservationDocument
	if err := r.reservations.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translateMongo("fetch reservation", err)
	}

	res := r.fromDocument(doc)
	return &res, nil
}

func (r *ReservationMongoRepository) FindByDate(ctx context.Context, day time.Time) ([]models.Reservation, error) {
	return r.find(ctx, "fetch reservations by date", dayFilter(day), oldestFirst())
}

func (r *ReservationMongoRepository) FindByDateAndTime(
	ctx context.Context,
	day time.Time,
	clock string,
) ([]models.Reservation, error) {
	filter := dayFilter(day)
	filter["time"] = clock
	return r.find(ctx, "fetch reservations by date and time", filter, oldestFirst())
}

func (r *ReservationMongoRepository) FindByStatus(
	ctx context.Context,
	status domain.Status,
) ([]models.Reservation, error) {
	return r.find(ctx, "fetch reservations by status", bson.M{"status": string(status)}, newestFirst())
}

func (r *ReservationMongoRepository) find(
	ctx context.Context,
	op string,
	filter bson.M,
	opts *options.FindOptions,
) ([]models.Reservation, error) {

	cur, err := r.reservations.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer cur.Close(ctx)

	var docs []reservationDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]models.Reservation, 0, len(docs))
	for _, d := range docs {
		out = append(out, r.fromDocument(d))
	}
	return out, nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (r *ReservationMongoRepository) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	if entry.ID == "" {
		entry.ID = models.NewID()
	}
	oid, err := primitive.ObjectIDFromHex(entry.ID)
	if err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now()
	}

	_, err = r.auditLogs.InsertOne(ctx, auditDocument{
		ID:        oid,
		Action:    entry.Action,
		Entity:    entry.Entity,
		EntityID:  entry.EntityID,
		Metadata:  entry.Metadata,
		CreatedAt: entry.CreatedAt,
	})
	return err
}

func (r *ReservationMongoRepository) ListAuditLogs(
	ctx context.Context,
	filter audit.Filter,
) ([]models.AuditLog, error) {

	q := bson.M{}
	if filter.EntityID != "" {
		q["entityId"] = filter.EntityID
	}

	opts := newestFirst().SetLimit(int64(filter.LimitOrDefault()))
	cur, err := r.auditLogs.Find(ctx, q, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch audit logs: %w", err)
	}
	defer cur.Close(ctx)

	var docs []auditDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("fetch audit logs: %w", err)
	}

	out := make([]models.AuditLog, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.AuditLog{
			ID:        d.ID.Hex(),
			Action:    d.Action,
			Entity:    d.Entity,
			EntityID:  d.EntityID,
			Metadata:  d.Metadata,
			CreatedAt: d.CreatedAt,
		})
	}
	return out, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func dayFilter(day time.Time) bson.M {
	return bson.M{"date": bson.M{"$gte": day, "$lt": day.AddDate(0, 0, 1)}}
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

func oldestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
}

// updateSet builds the $set document for a patch, in bson field names.
func updateSet(patch domain.Patch, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	for col, v := range patch.Columns() {
		if f, ok := mongoFields[col]; ok {
			col = f
		}
		set[col] = v
	}
	return set
}

func toDocument(oid primitive.ObjectID, res *models.Reservation) reservationDocument {
	return reservationDocument{
		ID:          oid,
		Name:        res.Name,
		Email:       res.Email,
		PhoneNumber: res.PhoneNumber,
		Date:        res.Date,
		Time:        res.Time,
		Guests:      res.Guests,
		Status:      res.Status,
		CreatedAt:   res.CreatedAt,
		UpdatedAt:   res.UpdatedAt,
	}
}

func (r *ReservationMongoRepository) fromDocument(d reservationDocument) models.Reservation {
	return models.Reservation{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
		Date:        d.Date.In(r.loc),
		Time:        d.Time,
		Guests:      d.Guests,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func translateMongo(op string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

var (
	_ domain.Repository = (*ReservationMongoRepository)(nil)
	_ audit.Store       = (*ReservationMongoRepository)(nil)
)
