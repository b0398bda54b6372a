package repository

import (
	"context"
	"errors"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func GetZoneRepo(db *mongo.Database) *ZoneRepo {
	return &ZoneRepo{
		MongoCollection: db.Collection("high_risk_zones"),
	}
}

type ZoneRepo struct {
	MongoCollection *mongo.Collection
}

func (r *ZoneRepo) ListAll(ctx context.Context) ([]*model.HighRiskZone, error) {
	timer := utils.TrackDBOperation("find", "high_risk_zones")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.D{})
	if err != nil {
		utils.TrackError("database", "zone_list_error")
		return nil, err
	}
	defer cursor.Close(ctx)

	zones := []*model.HighRiskZone{}
	if err := cursor.All(ctx, &zones); err != nil {
		utils.TrackError("database", "zone_decode_error")
		return nil, err
	}

	return zones, nil
}

func (r *ZoneRepo) Put(ctx context.Context, zone *model.HighRiskZone) error {
	timer := utils.TrackDBOperation("insert", "high_risk_zones")
	defer timer.ObserveDuration()

	if zone.ZoneID == "" || zone.RadiusMeters <= 0 {
		utils.TrackError("database", "invalid_zone_data")
		return errors.New("zone id and positive radius required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, zone); err != nil {
		utils.TrackError("database", "zone_creation_failed")
		return errors.New("failed to add zone to database")
	}

	return nil
}
