package healthrecords

import (
	"context"

	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HealthRecordMongoRepository struct {
	Collection *mongo.Collection
}

func NewHealthRecordMongoRepository(db *mongo.Client, dbName string) HealthRecordRepository {
	return &HealthRecordMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHealthRecords),
	}
}

func (r *HealthRecordMongoRepository) CreateHealthRecord(ctx context.Context, recordModel *models.HealthRecord) (recordID string, err error) {
	result, err := r.Collection.InsertOne(ctx, recordModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *HealthRecordMongoRepository) FindAll(ctx context.Context, query *RecordQuery) ([]models.HealthRecord, error) {
	filter := bson.M{}
	if query != nil {
		if query.PatientID != "" {
			filter["patient"] = query.PatientID
		}
		if query.ProviderID != "" {
			filter["provider"] = query.ProviderID
		}
		if query.RecordType != "" {
			filter["recordType"] = query.RecordType
		}

		visitDate := bson.M{}
		if query.StartDate != nil {
			visitDate["$gte"] = *query.StartDate
		}
		if query.EndDate != nil {
			visitDate["$lte"] = *query.EndDate
		}
		if len(visitDate) > 0 {
			filter["visitDate"] = visitDate
		}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "visitDate", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	records := make([]models.HealthRecord, 0)
	err = cursor.All(ctx, &records)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}

func (r *HealthRecordMongoRepository) FindByID(ctx context.Context, recordID string) (*models.HealthRecord, error) {
	objectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var record models.HealthRecord
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (r *HealthRecordMongoRepository) UpdateFields(ctx context.Context, recordID string, updateData map[string]interface{}) error {
	objectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": bson.M(updateData)}

	_, err = r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// AppendAccessLog pushes one audit entry. The push is a separate write
// from the triggering read/update; concurrent pushes may interleave but
// never replace existing entries.
func (r *HealthRecordMongoRepository) AppendAccessLog(ctx context.Context, recordID string, entry models.AccessLogEntry) error {
	objectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{"$push": bson.M{"accessLog": entry}}

	_, err = r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *HealthRecordMongoRepository) AppendAttachment(ctx context.Context, recordID string, attachment models.Attachment) error {
	objectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{"$push": bson.M{"attachments": attachment}}

	_, err = r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
