package model

import "hotelsphere/shared/jsonb"

const (
	TableName  = "settings"
	EntityName = "settings"
)

type Agent struct {
	Name       string  `json:"name"`
	Commission float64 `json:"commission"`
}

// HostelSettings is the single settings record of a property. It is passed
// explicitly to the components that need it; storage layers keep at most one.
type HostelSettings struct {
	Name          string             `json:"name"                    db:"name"`
	Address       string             `json:"address"                 db:"address"`
	Logo          string             `json:"logo,omitempty"          db:"logo"`
	Signature     string             `json:"signature,omitempty"     db:"signature"`
	Agents        jsonb.List[Agent]  `json:"agents"                  db:"agents"`
	RoomTypes     jsonb.List[string] `json:"roomTypes"               db:"room_types"`
	GSTNumber     string             `json:"gstNumber,omitempty"     db:"gst_number"`
	TaxRate       float64            `json:"taxRate"                 db:"tax_rate"`
	HSNCode       string             `json:"hsnCode,omitempty"       db:"hsn_code"`
	UPIID         string             `json:"upiId,omitempty"         db:"upi_id"`
	LicenseNumber string             `json:"licenseNumber,omitempty" db:"license_number"`

	// Passwords maps a role name to its opaque credential. Stored and replicated only.
	Passwords jsonb.Map `json:"passwords,omitempty" db:"passwords"`
}

// Commission returns the commission percent of the named agent, zero when unknown.
func (s HostelSettings) Commission(agent string) float64 {
	for _, a := range s.Agents {
		if a.Name == agent {
			return a.Commission
		}
	}

	return 0
}
