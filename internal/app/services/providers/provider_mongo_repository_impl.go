package providers

import (
	"context"

	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProviderMongoRepository struct {
	Collection *mongo.Collection
}

func NewProviderMongoRepository(db *mongo.Client, dbName string) ProviderRepository {
	return &ProviderMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProviders),
	}
}

func (r *ProviderMongoRepository) CreateProvider(ctx context.Context, providerModel *models.Provider) (providerID string, err error) {
	result, err := r.Collection.InsertOne(ctx, providerModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ProviderMongoRepository) FindAll(ctx context.Context, filters *requests.FindAllProviders) ([]models.Provider, error) {
	filter := bson.M{}
	if filters != nil {
		if filters.Specialty != "" {
			filter["specialty"] = primitive.Regex{Pattern: filters.Specialty, Options: "i"}
		}
		if filters.AcceptingNewPatients != nil {
			filter["acceptingNewPatients"] = *filters.AcceptingNewPatients
		}
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	providers := make([]models.Provider, 0)
	err = cursor.All(ctx, &providers)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return providers, nil
}

func (r *ProviderMongoRepository) FindByID(ctx context.Context, providerID string) (*models.Provider, error) {
	objectID, err := primitive.ObjectIDFromHex(providerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var provider models.Provider
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&provider)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &provider, nil
}

func (r *ProviderMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.Provider, error) {
	var provider models.Provider
	err := r.Collection.FindOne(ctx, bson.M{"user": userID}).Decode(&provider)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &provider, nil
}

func (r *ProviderMongoRepository) FindByLicenseNumber(ctx context.Context, licenseNumber string) (*models.Provider, error) {
	var provider models.Provider
	err := r.Collection.FindOne(ctx, bson.M{"licenseNumber": licenseNumber}).Decode(&provider)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &provider, nil
}

func (r *ProviderMongoRepository) UpdateFields(ctx context.Context, providerID string, updateData map[string]interface{}) error {
	objectID, err := primitive.ObjectIDFromHex(providerID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	setFields := bson.M{}
	unsetFields := bson.M{}
	for field, value := range updateData {
		if value == nil {
			unsetFields[field] = ""
			continue
		}
		setFields[field] = value
	}

	update := bson.M{}
	if len(setFields) > 0 {
		update["$set"] = setFields
	}
	if len(unsetFields) > 0 {
		update["$unset"] = unsetFields
	}

	filter := bson.M{"_id": objectID}
	_, err = r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ProviderMongoRepository) AddPatient(ctx context.Context, providerID, patientID string) error {
	objectID, err := primitive.ObjectIDFromHex(providerID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{"$addToSet": bson.M{"patients": patientID}}

	_, err = r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ProviderMongoRepository) DeleteByID(ctx context.Context, providerID string) error {
	objectID, err := primitive.ObjectIDFromHex(providerID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
