package dto

import (
	"hotelsphere/internal/folio"
	"hotelsphere/internal/occupancy"
	"hotelsphere/shared/jsonb"
	"strings"

	bookingModel "hotelsphere/internal/domains/booking/model"
	"hotelsphere/internal/domains/frontdesk/model"
	groupModel "hotelsphere/internal/domains/group/model"
	guestModel "hotelsphere/internal/domains/guest/model"
	roomModel "hotelsphere/internal/domains/room/model"
	settingsModel "hotelsphere/internal/domains/settings/model"
	transactionModel "hotelsphere/internal/domains/transaction/model"

	"github.com/google/uuid"
)

const (
	bookingNoPrefix     = "BK-"
	bookingNoLength     = 6
	paymentTxPrefix     = "TX-PAY-"
	transactionIDPrefix = "TX-"
)

// NewBookingNo returns a short human readable booking reference.
func NewBookingNo() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")

	return bookingNoPrefix + strings.ToUpper(raw[:bookingNoLength])
}

func NewPaymentTransactionID() string {
	return paymentTxPrefix + uuid.NewString()
}

type GuestRequest struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"           validate:"required,max=255"`
	SurName        string    `json:"surName"`
	GivenName      string    `json:"givenName"`
	Gender         string    `json:"gender"`
	DOB            string    `json:"dob"            validate:"omitempty,isodate"`
	Phone          string    `json:"phone"          validate:"required,phone"`
	IDNumber       string    `json:"idNumber"`
	Email          string    `json:"email"          validate:"omitempty,email"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	Nationality    string    `json:"nationality"`
	Country        string    `json:"country"`
	GSTIN          string    `json:"gstin"`
	PassportNo     string    `json:"passportNo"`
	VisaNo         string    `json:"visaNo"`
	PurposeOfVisit string    `json:"purposeOfVisit"`
	Remarks        string    `json:"remarks"`
	Documents      jsonb.Map `json:"documents"`
}

func (r *GuestRequest) ToModel(id string) guestModel.Guest {
	if id == "" {
		id = uuid.NewString()
	}

	return guestModel.Guest{
		ID:             id,
		Name:           r.Name,
		SurName:        r.SurName,
		GivenName:      r.GivenName,
		Gender:         r.Gender,
		DOB:            r.DOB,
		Phone:          r.Phone,
		IDNumber:       r.IDNumber,
		Email:          r.Email,
		Address:        r.Address,
		City:           r.City,
		State:          r.State,
		Nationality:    r.Nationality,
		Country:        r.Country,
		GSTIN:          r.GSTIN,
		PassportNo:     r.PassportNo,
		VisaNo:         r.VisaNo,
		PurposeOfVisit: r.PurposeOfVisit,
		Remarks:        r.Remarks,
		Documents:      r.Documents,
	}
}

type StayRequest struct {
	ID             string                            `json:"id"`
	RoomID         string                            `json:"roomId"         validate:"required"`
	GroupID        string                            `json:"groupId"`
	CheckInDate    string                            `json:"checkInDate"    validate:"required,isodate"`
	CheckInTime    string                            `json:"checkInTime"`
	CheckOutDate   string                            `json:"checkOutDate"   validate:"required,isodate,notbeforefield=CheckInDate"`
	CheckOutTime   string                            `json:"checkOutTime"`
	BasePrice      int64                             `json:"basePrice"      validate:"gte=0"`
	Discount       int64                             `json:"discount"       validate:"gte=0"`
	Purpose        string                            `json:"purpose"`
	MealPlan       string                            `json:"mealPlan"`
	Agent          string                            `json:"agent"`
	Adults         int                               `json:"adults"         validate:"gte=0"`
	Children       int                               `json:"children"       validate:"gte=0"`
	Kids           int                               `json:"kids"           validate:"gte=0"`
	Others         int                               `json:"others"         validate:"gte=0"`
	ExtraBed       bool                              `json:"extraBed"`
	ExtraOccupants jsonb.List[bookingModel.Occupant] `json:"extraOccupants"`
}

// ToModel builds the booking. A zero BasePrice falls back to the room's nightly price.
func (r *StayRequest) ToModel(bookingNo, guestID string, room roomModel.Room, status bookingModel.Status) bookingModel.Booking {
	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}

	basePrice := r.BasePrice
	if basePrice == 0 {
		basePrice = room.Price
	}

	return bookingModel.Booking{
		ID:             id,
		BookingNo:      bookingNo,
		RoomID:         r.RoomID,
		GuestID:        guestID,
		GroupID:        r.GroupID,
		CheckInDate:    r.CheckInDate,
		CheckInTime:    r.CheckInTime,
		CheckOutDate:   r.CheckOutDate,
		CheckOutTime:   r.CheckOutTime,
		Status:         status,
		Charges:        jsonb.List[bookingModel.Charge]{},
		Payments:       jsonb.List[bookingModel.Payment]{},
		BasePrice:      basePrice,
		Discount:       r.Discount,
		Purpose:        r.Purpose,
		MealPlan:       r.MealPlan,
		Agent:          r.Agent,
		Adults:         r.Adults,
		Children:       r.Children,
		Kids:           r.Kids,
		Others:         r.Others,
		TotalPax:       r.Adults + r.Children + r.Kids + r.Others,
		ExtraBed:       r.ExtraBed,
		ExtraOccupants: r.ExtraOccupants,
	}
}

// AdmitRequest carries one guest and the stays booked for them, used by
// check-in and reservation alike.
type AdmitRequest struct {
	BookingNo string        `json:"bookingNo"`
	Guest     GuestRequest  `json:"guest"     validate:"required"`
	Stays     []StayRequest `json:"stays"     validate:"required,min=1,dive"`
}

type AdmitResponse struct {
	GuestID   string            `json:"guestId"`
	BookingNo string            `json:"bookingNo"`
	Result    model.WriteResult `json:"result"`
}

// WriteBookingsRequest carries bookings written as they are, as done by
// bulk edits of a group or an extension of a stay.
type WriteBookingsRequest struct {
	Bookings []bookingModel.Booking `json:"bookings" validate:"required,min=1"`
}

type ChargeRequest struct {
	Description string `json:"description" validate:"required,max=255"`
	Amount      int64  `json:"amount"      validate:"gt=0"`
	Date        string `json:"date"        validate:"omitempty,isodate"`
}

func (r *ChargeRequest) ToModel(today string) bookingModel.Charge {
	date := r.Date
	if date == "" {
		date = today
	}

	return bookingModel.Charge{
		ID:          uuid.NewString(),
		Description: r.Description,
		Amount:      r.Amount,
		Date:        date,
	}
}

type PaymentRequest struct {
	Amount  int64  `json:"amount"  validate:"gt=0"`
	Method  string `json:"method"  validate:"max=64"`
	Remarks string `json:"remarks" validate:"max=255"`
	Date    string `json:"date"    validate:"omitempty,isodate"`
}

func (r *PaymentRequest) ToModel(amount int64, remarks, today string) bookingModel.Payment {
	date := r.Date
	if date == "" {
		date = today
	}

	return bookingModel.Payment{
		ID:      uuid.NewString(),
		Amount:  amount,
		Date:    date,
		Method:  r.Ledger(),
		Remarks: remarks,
	}
}

// Ledger is the account the payment is booked against.
func (r *PaymentRequest) Ledger() string {
	if r.Method == "" {
		return model.DefaultLedger
	}

	return r.Method
}

type Allocation struct {
	BookingID string `json:"bookingId"`
	Amount    int64  `json:"amount"`
}

type PaymentResponse struct {
	Allocations []Allocation                 `json:"allocations"`
	Transaction transactionModel.Transaction `json:"transaction"`
}

type CheckoutRequest struct {
	Combined bool   `json:"combined"`
	Settle   bool   `json:"settle"`
	Method   string `json:"method" validate:"max=64"`
}

type CheckoutResponse struct {
	Folio folio.Folio `json:"folio"`
	// Settled is the amount posted to clear the balance, zero when nothing was posted.
	Settled         int64    `json:"settled"`
	PositiveBalance bool     `json:"positiveBalance"`
	Completed       []string `json:"completed"`
}

type FolioMode string

const (
	FolioSingle   FolioMode = "single"
	FolioCombined FolioMode = "combined"
	FolioSplit    FolioMode = "split"
)

type FolioRequest struct {
	Mode      FolioMode `json:"mode"      validate:"omitempty,oneof=single combined split"`
	Selection []string  `json:"selection"`
}

type GroupStatusRequest struct {
	Status bookingModel.Status `json:"status" validate:"required,oneof=RESERVED ACTIVE COMPLETED CANCELLED"`
}

type GroupStatusResponse struct {
	Updated []string `json:"updated"`
	Skipped []string `json:"skipped"`
}

type GroupRequest struct {
	ID                string                       `json:"id"`
	GroupName         string                       `json:"groupName"         validate:"required,max=255"`
	GroupType         string                       `json:"groupType"`
	HeadName          string                       `json:"headName"          validate:"required"`
	Phone             string                       `json:"phone"             validate:"required,phone"`
	Email             string                       `json:"email"             validate:"omitempty,email"`
	OrgName           string                       `json:"orgName"`
	GSTNumber         string                       `json:"gstNumber"`
	BillingPreference groupModel.BillingPreference `json:"billingPreference" validate:"omitempty,oneof=Single Split Mixed"`
	Documents         jsonb.Map                    `json:"documents"`
	Status            groupModel.Status            `json:"status"            validate:"omitempty,oneof=ACTIVE CLOSED"`
}

func (r *GroupRequest) ToModel() groupModel.GroupProfile {
	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}

	preference := r.BillingPreference
	if preference == "" {
		preference = groupModel.BillingSingle
	}

	status := r.Status
	if status == "" {
		status = groupModel.StatusActive
	}

	return groupModel.GroupProfile{
		ID:                id,
		GroupName:         r.GroupName,
		GroupType:         r.GroupType,
		HeadName:          r.HeadName,
		Phone:             r.Phone,
		Email:             r.Email,
		OrgName:           r.OrgName,
		GSTNumber:         r.GSTNumber,
		BillingPreference: preference,
		Documents:         r.Documents,
		Status:            status,
	}
}

type RoomRequest struct {
	ID        string                              `json:"id"`
	Number    string                              `json:"number"    validate:"required,max=16"`
	Floor     int                                 `json:"floor"     validate:"gte=0"`
	Type      string                              `json:"type"      validate:"required"`
	Price     int64                               `json:"price"     validate:"gte=0"`
	Status    roomModel.Status                    `json:"status"`
	Inventory jsonb.List[roomModel.InventoryItem] `json:"inventory"`
}

func (r *RoomRequest) ToModel() roomModel.Room {
	id := r.ID
	if id == "" {
		id = r.Number
	}

	status := r.Status
	if status == "" {
		status = roomModel.StatusVacant
	}

	return roomModel.Room{
		ID:        id,
		Number:    r.Number,
		Floor:     r.Floor,
		Type:      r.Type,
		Price:     r.Price,
		Status:    status,
		Inventory: r.Inventory,
	}
}

type RoomStatusRequest struct {
	Status roomModel.Status `json:"status" validate:"required"`
}

type ShiftRoomRequest struct {
	RoomID string `json:"roomId" validate:"required"`
}

type SettingsRequest struct {
	Name          string                          `json:"name"          validate:"required,max=255"`
	Address       string                          `json:"address"`
	Logo          string                          `json:"logo"`
	Signature     string                          `json:"signature"`
	Agents        jsonb.List[settingsModel.Agent] `json:"agents"        validate:"dive"`
	RoomTypes     jsonb.List[string]              `json:"roomTypes"`
	GSTNumber     string                          `json:"gstNumber"`
	TaxRate       float64                         `json:"taxRate"       validate:"gte=0,lte=100"`
	HSNCode       string                          `json:"hsnCode"`
	UPIID         string                          `json:"upiId"`
	LicenseNumber string                          `json:"licenseNumber"`
	Passwords     jsonb.Map                       `json:"passwords"`
}

func (r *SettingsRequest) ToModel() settingsModel.HostelSettings {
	return settingsModel.HostelSettings{
		Name:          r.Name,
		Address:       r.Address,
		Logo:          r.Logo,
		Signature:     r.Signature,
		Agents:        r.Agents,
		RoomTypes:     r.RoomTypes,
		GSTNumber:     r.GSTNumber,
		TaxRate:       r.TaxRate,
		HSNCode:       r.HSNCode,
		UPIID:         r.UPIID,
		LicenseNumber: r.LicenseNumber,
		Passwords:     r.Passwords,
	}
}

type TransactionRequest struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"         validate:"omitempty,isodate"`
	Type         transactionModel.Type `json:"type"         validate:"required,oneof=RECEIPT PAYMENT JOURNAL DEBIT_NOTE CREDIT_NOTE REFUND"`
	AccountGroup string                `json:"accountGroup" validate:"required"`
	Ledger       string                `json:"ledger"       validate:"required"`
	Amount       int64                 `json:"amount"       validate:"gt=0"`
	Description  string                `json:"description"  validate:"max=255"`
	ReferenceID  string                `json:"referenceId"`
	EntityName   string                `json:"entityName"`
}

func (r *TransactionRequest) ToModel(today string) transactionModel.Transaction {
	id := r.ID
	if id == "" {
		id = transactionIDPrefix + uuid.NewString()
	}

	date := r.Date
	if date == "" {
		date = today
	}

	return transactionModel.Transaction{
		ID:           id,
		Date:         date,
		Type:         r.Type,
		AccountGroup: r.AccountGroup,
		Ledger:       r.Ledger,
		Amount:       r.Amount,
		Description:  r.Description,
		ReferenceID:  r.ReferenceID,
		EntityName:   r.EntityName,
	}
}

type DashboardResponse struct {
	Date    string            `json:"date"`
	Summary occupancy.Summary `json:"summary"`
	Floors  []occupancy.Floor `json:"floors"`
}

// BillResponse is the read-only bill shared with a guest.
type BillResponse struct {
	Booking  bookingModel.Booking         `json:"booking"`
	Guest    guestModel.Guest             `json:"guest"`
	Room     roomModel.Room               `json:"room"`
	Settings settingsModel.HostelSettings `json:"settings"`
	Folio    folio.Folio                  `json:"folio"`
}

// WipeRequest guards the local wipe against accidental calls.
type WipeRequest struct {
	Confirm bool `json:"confirm" validate:"required"`
}
