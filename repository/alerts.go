package repository

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetAlertRepo(db *mongo.Database) *AlertRepo {
	return &AlertRepo{
		MongoCollection: db.Collection("alerts"),
	}
}

type AlertRepo struct {
	MongoCollection *mongo.Collection
}

func (r *AlertRepo) Put(ctx context.Context, alert *model.Alert) error {
	timer := utils.TrackDBOperation("insert", "alerts")
	defer timer.ObserveDuration()

	if alert.AlertID == "" || alert.TouristID == "" {
		utils.TrackError("database", "invalid_alert_data")
		return errors.New("alert id and tourist id required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, alert); err != nil {
		utils.TrackError("database", "alert_creation_failed")
		return errors.New("failed to add alert to database")
	}

	return nil
}

func (r *AlertRepo) GetByID(ctx context.Context, alertID string) (*model.Alert, error) {
	timer := utils.TrackDBOperation("find", "alerts")
	defer timer.ObserveDuration()

	var alert model.Alert
	filter := bson.D{{Key: "alert_id", Value: alertID}}

	err := r.MongoCollection.FindOne(ctx, filter).Decode(&alert)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "alert_lookup_error")
		return nil, err
	}

	return &alert, nil
}

func (r *AlertRepo) List(ctx context.Context, filter AlertFilter, limit int64) ([]*model.Alert, error) {
	timer := utils.TrackDBOperation("find", "alerts")
	defer timer.ObserveDuration()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.MongoCollection.Find(ctx, query, opts)
	if err != nil {
		utils.TrackError("database", "alert_list_error")
		return nil, err
	}
	defer cursor.Close(ctx)

	alerts := []*model.Alert{}
	if err := cursor.All(ctx, &alerts); err != nil {
		utils.TrackError("database", "alert_decode_error")
		return nil, err
	}

	return alerts, nil
}

// UpdateStatus only matches alerts not already in the target status, so a
// repeated resolve is a harmless no-op.
func (r *AlertRepo) UpdateStatus(ctx context.Context, alertID, status string, resolvedAt time.Time, authorityID string) error {
	timer := utils.TrackDBOperation("update", "alerts")
	defer timer.ObserveDuration()

	filter := bson.M{
		"alert_id": alertID,
		"status":   bson.M{"$ne": status},
	}
	update := bson.M{
		"$set": bson.M{
			"status":       status,
			"resolved_at":  resolvedAt,
			"authority_id": authorityID,
		},
	}

	if _, err := r.MongoCollection.UpdateOne(ctx, filter, update); err != nil {
		utils.TrackError("database", "alert_status_update_failed")
		return err
	}

	return nil
}
