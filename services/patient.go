package services

import (
	"context"
	"errors"
	"log"
	"regexp"
	"time"

	"ArogyaMCVK/config"
	"ArogyaMCVK/models"
	"ArogyaMCVK/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
* No search term returns every record
* Otherwise match name or aadharNo on a case-insensitive substring
* Most recent appointment first
 */
func FetchAllPatients(ctx context.Context, search string) ([]models.Patient, error) {
	filter := bson.M{}
	if search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter = bson.M{"$or": []bson.M{
			{"name": pattern},
			{"aadharNo": pattern},
		}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "dateOfAppointment", Value: -1}})
	patients := []models.Patient{}
	coll := config.OpenCollection(config.PatientCollection)
	if err := config.FindAll(ctx, coll, filter, &patients, opts); err != nil {
		log.Println("Error fetching patients:", err)
		return nil, util.InternalError()
	}
	return patients, nil
}

/*
* Validate every supplied field, collecting all violations
* Reject a duplicate aadharNo before writing
* Derive bmi, fill the defaults and insert
 */
func CreatePatient(ctx context.Context, body map[string]interface{}) (models.Patient, error) {
	fields := models.FilterPatientFields(body)

	// on create an explicit null is the same as leaving the field out
	for key, value := range fields {
		if value == nil {
			delete(fields, key)
		}
	}

	if msgs := models.ValidatePatientFields(fields, false); len(msgs) > 0 {
		return models.Patient{}, util.ValidationError(msgs...)
	}

	coll := config.OpenCollection(config.PatientCollection)

	var existing models.Patient
	err := config.FindOne(ctx, coll, bson.M{"aadharNo": fields["aadharNo"]}, &existing)
	if err == nil {
		return models.Patient{}, util.ConflictError("Patient with this Aadhar No. already exists.")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Println("Error checking for existing patient:", err)
		return models.Patient{}, util.InternalError()
	}

	models.DeriveBMI(nil, fields)

	if _, ok := fields["dateOfAppointment"]; !ok {
		fields["dateOfAppointment"] = time.Now()
	}
	if _, ok := fields["diabetes"]; !ok {
		fields["diabetes"] = "None"
	}
	fields["createdAt"] = time.Now()

	result, err := config.CreateOne(ctx, coll, bson.M(fields))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Patient{}, util.ConflictError("Patient with this Aadhar No. already exists.")
		}
		log.Println("Error inserting patient:", err)
		return models.Patient{}, util.InternalError()
	}

	var created models.Patient
	if err := config.FindOne(ctx, coll, bson.M{"_id": result.InsertedID}, &created); err != nil {
		log.Println("Error fetching created patient:", err)
		return models.Patient{}, util.InternalError()
	}
	return created, nil
}

func FetchPatient(ctx context.Context, id string) (models.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Patient{}, util.NotFoundError("Patient not found (invalid ID format).")
	}

	var patient models.Patient
	err = config.FindOne(ctx, config.OpenCollection(config.PatientCollection), bson.M{"_id": oid}, &patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Patient{}, util.NotFoundError("Patient not found.")
	}
	if err != nil {
		log.Println("Error fetching patient:", err)
		return models.Patient{}, util.InternalError()
	}
	return patient, nil
}

/*
* Only the fields present in the body are touched
* A changed aadharNo must not collide with another record
* Derive bmi against the stored record, then commit one $set
 */
func UpdatePatient(ctx context.Context, id string, body map[string]interface{}) (models.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Patient{}, util.NotFoundError("Patient not found (invalid ID format).")
	}

	coll := config.OpenCollection(config.PatientCollection)

	var prev models.Patient
	err = config.FindOne(ctx, coll, bson.M{"_id": oid}, &prev)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Patient{}, util.NotFoundError("Patient not found.")
	}
	if err != nil {
		log.Println("Error fetching patient for update:", err)
		return models.Patient{}, util.InternalError()
	}

	fields := models.FilterPatientFields(body)
	if msgs := models.ValidatePatientFields(fields, true); len(msgs) > 0 {
		return models.Patient{}, util.ValidationError(msgs...)
	}

	if aadhar, ok := fields["aadharNo"].(string); ok && aadhar != prev.AadharNo {
		var other models.Patient
		err := config.FindOne(ctx, coll, bson.M{"aadharNo": aadhar}, &other)
		if err == nil {
			return models.Patient{}, util.ConflictError("Another patient with this Aadhar No. already exists.")
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.Println("Error checking for existing patient:", err)
			return models.Patient{}, util.InternalError()
		}
	}

	models.DeriveBMI(&prev, fields)

	if len(fields) > 0 {
		if _, err := config.UpdateOne(ctx, coll, bson.M{"_id": oid}, bson.M{"$set": bson.M(fields)}); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return models.Patient{}, util.ConflictError("Another patient with this Aadhar No. already exists.")
			}
			log.Println("Error updating patient:", err)
			return models.Patient{}, util.InternalError()
		}
	}

	var updated models.Patient
	if err := config.FindOne(ctx, coll, bson.M{"_id": oid}, &updated); err != nil {
		log.Println("Error fetching updated patient:", err)
		return models.Patient{}, util.InternalError()
	}
	return updated, nil
}

func DeletePatient(ctx context.Context, id string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", util.NotFoundError("Patient not found (invalid ID format).")
	}

	coll := config.OpenCollection(config.PatientCollection)

	var patient models.Patient
	err = config.FindOne(ctx, coll, bson.M{"_id": oid}, &patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", util.NotFoundError("Patient not found.")
	}
	if err != nil {
		log.Println("Error fetching patient for delete:", err)
		return "", util.InternalError()
	}

	if _, err := config.DeleteOne(ctx, coll, bson.M{"_id": oid}); err != nil {
		log.Println("Error deleting patient:", err)
		return "", util.InternalError()
	}
	return "Patient removed successfully.", nil
}
