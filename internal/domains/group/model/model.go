package model

import "hotelsphere/shared/jsonb"

const (
	TableName  = "groups"
	EntityName = "group"

	FieldID     = "id"
	FieldStatus = "status"
)

type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusClosed Status = "CLOSED"
)

type BillingPreference string

const (
	BillingSingle BillingPreference = "Single"
	BillingSplit  BillingPreference = "Split"
	BillingMixed  BillingPreference = "Mixed"
)

type GroupProfile struct {
	ID                string            `json:"id"                  db:"id"`
	GroupName         string            `json:"groupName"           db:"group_name"`
	GroupType         string            `json:"groupType"           db:"group_type"`
	HeadName          string            `json:"headName"            db:"head_name"`
	Phone             string            `json:"phone"               db:"phone"`
	Email             string            `json:"email"               db:"email"`
	OrgName           string            `json:"orgName,omitempty"   db:"org_name"`
	GSTNumber         string            `json:"gstNumber,omitempty" db:"gst_number"`
	BillingPreference BillingPreference `json:"billingPreference"   db:"billing_preference"`
	Documents         jsonb.Map         `json:"documents"           db:"documents"`
	Status            Status            `json:"status"              db:"status"`
}

func (g GroupProfile) RecordID() string {
	return g.ID
}
