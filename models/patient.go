package models

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID                primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	DateOfAppointment time.Time          `json:"dateOfAppointment" bson:"dateOfAppointment"`
	Name              string             `json:"name" bson:"name"`
	Address           string             `json:"address,omitempty" bson:"address,omitempty"`
	AadharNo          string             `json:"aadharNo" bson:"aadharNo"`
	ContactNo         string             `json:"contactNo" bson:"contactNo"`
	Diseases          string             `json:"diseases,omitempty" bson:"diseases,omitempty"`
	DoctorName        string             `json:"doctorName,omitempty" bson:"doctorName,omitempty"`
	BodyWeightKg      *float64           `json:"bodyWeightKg,omitempty" bson:"bodyWeightKg,omitempty"`
	HeightCm          *float64           `json:"heightCm,omitempty" bson:"heightCm,omitempty"`
	Hemoglobin        *float64           `json:"hemoglobin,omitempty" bson:"hemoglobin,omitempty"`
	BloodGroup        string             `json:"bloodGroup,omitempty" bson:"bloodGroup,omitempty"`
	SBP               *float64           `json:"sbp,omitempty" bson:"sbp,omitempty"`
	DBP               *float64           `json:"dbp,omitempty" bson:"dbp,omitempty"`
	WBC               *float64           `json:"wbc,omitempty" bson:"wbc,omitempty"`
	RBC               *float64           `json:"rbc,omitempty" bson:"rbc,omitempty"`
	Platelet          *float64           `json:"platelet,omitempty" bson:"platelet,omitempty"`
	BMI               *float64           `json:"bmi,omitempty" bson:"bmi,omitempty"`
	BFRPercent        *float64           `json:"bfrPercent,omitempty" bson:"bfrPercent,omitempty"`
	BodyWaterPercent  *float64           `json:"bodyWaterPercent,omitempty" bson:"bodyWaterPercent,omitempty"`
	BoneMassKg        *float64           `json:"boneMassKg,omitempty" bson:"boneMassKg,omitempty"`
	MetabolicAge      *float64           `json:"metabolicAge,omitempty" bson:"metabolicAge,omitempty"`
	VFatPercent       *float64           `json:"vFatPercent,omitempty" bson:"vFatPercent,omitempty"`
	ProteinMassKg     *float64           `json:"proteinMassKg,omitempty" bson:"proteinMassKg,omitempty"`
	MuscleMassKg      *float64           `json:"muscleMassKg,omitempty" bson:"muscleMassKg,omitempty"`
	Diabetes          string             `json:"diabetes" bson:"diabetes"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
}

// patientFields is every client-settable field. Writes only ever touch
// keys from this list.
var patientFields = []string{
	"dateOfAppointment", "name", "address", "aadharNo", "contactNo",
	"diseases", "doctorName", "bodyWeightKg", "heightCm", "hemoglobin",
	"bloodGroup", "sbp", "dbp", "wbc", "rbc", "platelet", "bmi",
	"bfrPercent", "bodyWaterPercent", "boneMassKg", "metabolicAge",
	"vFatPercent", "proteinMassKg", "muscleMassKg", "diabetes",
}

var (
	aadharPattern  = regexp.MustCompile(`^\d{12}$`)
	contactPattern = regexp.MustCompile(`^\d{10,15}$`)
)

var numericRules = []struct {
	key     string
	label   string
	percent bool
}{
	{"bodyWeightKg", "Body weight", false},
	{"heightCm", "Height", false},
	{"hemoglobin", "Hemoglobin", false},
	{"sbp", "SBP", false},
	{"dbp", "DBP", false},
	{"wbc", "WBC count", false},
	{"rbc", "RBC count", false},
	{"platelet", "Platelet count", false},
	{"bmi", "BMI", false},
	{"bfrPercent", "BFR", true},
	{"bodyWaterPercent", "Body Water %", true},
	{"boneMassKg", "Bone Mass", false},
	{"metabolicAge", "Metabolic Age", false},
	{"vFatPercent", "V-Fat %", true},
	{"proteinMassKg", "Protein Mass", false},
	{"muscleMassKg", "Muscle Mass", false},
}

var optionalStringLabels = map[string]string{
	"address":    "Address",
	"diseases":   "Diseases",
	"doctorName": "Doctor name",
	"bloodGroup": "Blood group",
}

var diabetesValues = []string{"None", "Type 1", "Type 2", "Gestational", "Pre-diabetes", "Other"}

// FilterPatientFields picks the client-settable patient fields out of a
// request body, preserving explicit nulls. Unknown keys are dropped.
func FilterPatientFields(body map[string]interface{}) map[string]interface{} {
	fields := make(map[string]interface{})
	for _, key := range patientFields {
		if value, ok := body[key]; ok {
			fields[key] = value
		}
	}
	return fields
}

// ValidatePatientFields checks every supplied field against its rule and
// returns one message per violation, never stopping at the first. With
// partial unset the required fields must also be present. String fields
// are trimmed in place and date strings replaced by parsed times.
func ValidatePatientFields(fields map[string]interface{}, partial bool) []string {
	var msgs []string

	trimStringFields(fields)

	if name, present, ok := stringField(fields, "name"); (!present && !partial) || (present && (!ok || name == "")) {
		msgs = append(msgs, "Patient name is required.")
	}

	aadhar, present, ok := stringField(fields, "aadharNo")
	switch {
	case !present && !partial:
		msgs = append(msgs, "Aadhar number is required.")
	case present && (!ok || aadhar == ""):
		msgs = append(msgs, "Aadhar number is required.")
	case present && !aadharPattern.MatchString(aadhar):
		msgs = append(msgs, "Aadhar number must be 12 digits.")
	}

	contact, present, ok := stringField(fields, "contactNo")
	switch {
	case !present && !partial:
		msgs = append(msgs, "Contact number is required.")
	case present && (!ok || contact == ""):
		msgs = append(msgs, "Contact number is required.")
	case present && !contactPattern.MatchString(contact):
		msgs = append(msgs, "Contact number must be between 10 to 15 digits.")
	}

	for key, label := range optionalStringLabels {
		if raw, exists := fields[key]; exists && raw != nil {
			if _, isString := raw.(string); !isString {
				msgs = append(msgs, fmt.Sprintf("%s must be a string.", label))
			}
		}
	}

	for _, rule := range numericRules {
		raw, exists := fields[rule.key]
		if !exists || raw == nil {
			continue
		}
		value, isNumber := raw.(float64)
		if !isNumber {
			msgs = append(msgs, fmt.Sprintf("%s must be a number.", rule.label))
			continue
		}
		if value < 0 {
			msgs = append(msgs, rule.label+" cannot be negative.")
		} else if rule.percent && value > 100 {
			msgs = append(msgs, rule.label+" cannot exceed 100.")
		}
	}

	if raw, exists := fields["diabetes"]; exists && raw != nil {
		if value, isString := raw.(string); !isString || !validDiabetes(value) {
			msgs = append(msgs, "Diabetes must be one of: "+strings.Join(diabetesValues, ", ")+".")
		}
	}

	if raw, exists := fields["dateOfAppointment"]; exists && raw != nil {
		switch value := raw.(type) {
		case string:
			parsed, err := parseDate(value)
			if err != nil {
				msgs = append(msgs, "Date of appointment must be a valid date.")
			} else {
				fields["dateOfAppointment"] = parsed
			}
		case time.Time:
		default:
			msgs = append(msgs, "Date of appointment must be a valid date.")
		}
	}

	return msgs
}

// DeriveBMI applies the bmi rule to a write. fields holds exactly the
// fields present in the write; prev is the stored record, nil on create.
// An explicit bmi in the write always wins, including an explicit null.
// Otherwise a change to weight or height recomputes bmi from the
// post-write pair: weight / (height/100)^2 rounded to two decimals when
// both are present and height is positive. A missing side clears bmi on
// update and leaves it unset on create.
func DeriveBMI(prev *Patient, fields map[string]interface{}) {
	if _, explicit := fields["bmi"]; explicit {
		return
	}
	_, weightChanged := fields["bodyWeightKg"]
	_, heightChanged := fields["heightCm"]
	if !weightChanged && !heightChanged {
		return
	}

	var storedWeight, storedHeight *float64
	if prev != nil {
		storedWeight = prev.BodyWeightKg
		storedHeight = prev.HeightCm
	}
	weight := postWriteNumber(fields, "bodyWeightKg", storedWeight)
	height := postWriteNumber(fields, "heightCm", storedHeight)

	if weight == nil || height == nil {
		if prev != nil {
			fields["bmi"] = nil
		}
		return
	}
	if *height > 0 {
		meters := *height / 100
		fields["bmi"] = math.Round(*weight/(meters*meters)*100) / 100
	}
}

// postWriteNumber resolves what a numeric field will hold after the
// write: the written value when the field is in the write, the stored
// value otherwise. An explicit null in the write resolves to nil.
func postWriteNumber(fields map[string]interface{}, key string, stored *float64) *float64 {
	if raw, exists := fields[key]; exists {
		if value, isNumber := raw.(float64); isNumber {
			return &value
		}
		return nil
	}
	return stored
}

func stringField(fields map[string]interface{}, key string) (value string, present bool, ok bool) {
	raw, present := fields[key]
	if !present || raw == nil {
		return "", present, false
	}
	value, ok = raw.(string)
	return value, true, ok
}

func trimStringFields(fields map[string]interface{}) {
	for _, key := range []string{"name", "address", "aadharNo", "contactNo", "diseases", "doctorName", "bloodGroup", "diabetes"} {
		if value, ok := fields[key].(string); ok {
			fields[key] = strings.TrimSpace(value)
		}
	}
}

func validDiabetes(value string) bool {
	for _, allowed := range diabetesValues {
		if value == allowed {
			return true
		}
	}
	return false
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02", "02-01-2006"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", value)
}
