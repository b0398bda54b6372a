package repository

import (
	"context"
	"errors"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func GetProfileRepo(db *mongo.Database) *ProfileRepo {
	return &ProfileRepo{
		MongoCollection: db.Collection("tourist_profiles"),
	}
}

type ProfileRepo struct {
	MongoCollection *mongo.Collection
}

func (r *ProfileRepo) GetByUserID(ctx context.Context, userID string) (*model.TouristProfile, error) {
	timer := utils.TrackDBOperation("find", "tourist_profiles")
	defer timer.ObserveDuration()

	var profile model.TouristProfile
	filter := bson.D{{Key: "user_id", Value: userID}}

	err := r.MongoCollection.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "profile_lookup_error")
		return nil, err
	}

	return &profile, nil
}

func (r *ProfileRepo) Put(ctx context.Context, profile *model.TouristProfile) error {
	timer := utils.TrackDBOperation("insert", "tourist_profiles")
	defer timer.ObserveDuration()

	if profile.UserID == "" {
		utils.TrackError("database", "invalid_profile_data")
		return errors.New("profile user id required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, profile); err != nil {
		utils.TrackError("database", "profile_creation_failed")
		return errors.New("failed to add tourist profile to database")
	}

	return nil
}

// UpdateLocation is a $set partial update so the position write is atomic on
// the single profile document.
func (r *ProfileRepo) UpdateLocation(ctx context.Context, userID string, location *model.Location) (int64, error) {
	timer := utils.TrackDBOperation("update", "tourist_profiles")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"current_location": location,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "location_update_failed")
		return 0, err
	}

	return result.MatchedCount, nil
}

func (r *ProfileRepo) ListWithLocation(ctx context.Context) ([]*model.TouristProfile, error) {
	timer := utils.TrackDBOperation("find", "tourist_profiles")
	defer timer.ObserveDuration()

	filter := bson.M{"current_location": bson.M{"$exists": true, "$ne": nil}}

	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "profile_list_error")
		return nil, err
	}
	defer cursor.Close(ctx)

	profiles := []*model.TouristProfile{}
	if err := cursor.All(ctx, &profiles); err != nil {
		utils.TrackError("database", "profile_decode_error")
		return nil, err
	}

	return profiles, nil
}
