package model

import "hotelsphere/shared/jsonb"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID    = "id"
	FieldPhone = "phone"
)

// Guest is identified by ID; Phone is the lookup key for repeat visits.
type Guest struct {
	ID             string    `json:"id"                       db:"id"`
	Name           string    `json:"name"                     db:"name"`
	SurName        string    `json:"surName,omitempty"        db:"sur_name"`
	GivenName      string    `json:"givenName,omitempty"      db:"given_name"`
	Gender         string    `json:"gender,omitempty"         db:"gender"`
	DOB            string    `json:"dob,omitempty"            db:"dob"`
	Phone          string    `json:"phone"                    db:"phone"`
	IDNumber       string    `json:"idNumber,omitempty"       db:"id_number"`
	Email          string    `json:"email"                    db:"email"`
	Address        string    `json:"address"                  db:"address"`
	City           string    `json:"city"                     db:"city"`
	State          string    `json:"state"                    db:"state"`
	Nationality    string    `json:"nationality"              db:"nationality"`
	Country        string    `json:"country,omitempty"        db:"country"`
	GSTIN          string    `json:"gstin,omitempty"          db:"gstin"`
	PassportNo     string    `json:"passportNo,omitempty"     db:"passport_no"`
	VisaNo         string    `json:"visaNo,omitempty"         db:"visa_no"`
	PurposeOfVisit string    `json:"purposeOfVisit,omitempty" db:"purpose_of_visit"`
	Remarks        string    `json:"remarks,omitempty"        db:"remarks"`
	Documents      jsonb.Map `json:"documents"                db:"documents"`
}

func (g Guest) RecordID() string {
	return g.ID
}
