// Package folio computes bills for one booking or for every active booking
// of a guest. All amounts are int64 minor currency units.
package folio

import (
	"cmp"
	"hotelsphere/shared/constant"
	"math"
	"slices"
	"time"

	bookingModel "hotelsphere/internal/domains/booking/model"
	settingsModel "hotelsphere/internal/domains/settings/model"
)

const (
	KindRent   = "RENT"
	KindCharge = "CHARGE"

	rentPrefix = "rent:"
	hoursInDay = 24
)

type LineItem struct {
	ID          string `json:"id"`
	BookingID   string `json:"bookingId"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
	Quantity    int    `json:"quantity"`
	Rate        int64  `json:"rate"`
	Amount      int64  `json:"amount"`
}

// Folio is a computed bill. Totals follow a fixed pipeline:
// subtotal, discount floored at zero, tax on the discounted amount, gross, balance.
type Folio struct {
	BookingIDs    []string   `json:"bookingIds"`
	Items         []LineItem `json:"items"`
	SubTotal      int64      `json:"subTotal"`
	Discount      int64      `json:"discount"`
	AfterDiscount int64      `json:"afterDiscount"`
	TaxRate       float64    `json:"taxRate"`
	Tax           int64      `json:"tax"`
	GrossTotal    int64      `json:"grossTotal"`
	Payments      int64      `json:"payments"`
	Balance       int64      `json:"balance"`
}

// RentItemID is the line item id of a booking's rent.
func RentItemID(bookingID string) string {
	return rentPrefix + bookingID
}

// Nights is the ceiling of the stay length in days, never less than one.
func Nights(booking bookingModel.Booking) int {
	in, errIn := time.Parse(constant.DayFormat, booking.CheckInDate)
	out, errOut := time.Parse(constant.DayFormat, booking.CheckOutDate)

	if errIn != nil || errOut != nil {
		return 1
	}

	hours := math.Abs(out.Sub(in).Hours())
	nights := int(math.Ceil(hours / hoursInDay))

	return max(nights, 1)
}

func billable(booking bookingModel.Booking) bool {
	return booking.Status != bookingModel.StatusCancelled
}

// LineItems lists, per billable booking, its rent followed by its charges in date order.
func LineItems(bookings []bookingModel.Booking) []LineItem {
	var items []LineItem

	for _, booking := range bookings {
		if !billable(booking) {
			continue
		}

		nights := Nights(booking)
		items = append(items, LineItem{
			ID:          RentItemID(booking.ID),
			BookingID:   booking.ID,
			Kind:        KindRent,
			Description: "Room rent",
			Date:        booking.CheckInDate,
			Quantity:    nights,
			Rate:        booking.BasePrice,
			Amount:      booking.BasePrice * int64(nights),
		})

		charges := slices.Clone([]bookingModel.Charge(booking.Charges))
		slices.SortStableFunc(charges, func(a, b bookingModel.Charge) int {
			return cmp.Compare(a.Date, b.Date)
		})

		for _, charge := range charges {
			items = append(items, LineItem{
				ID:          charge.ID,
				BookingID:   booking.ID,
				Kind:        KindCharge,
				Description: charge.Description,
				Date:        charge.Date,
				Quantity:    1,
				Rate:        charge.Amount,
				Amount:      charge.Amount,
			})
		}
	}

	return items
}

// Tax rounds half away from zero to the nearest minor unit.
func Tax(amount int64, rate float64) int64 {
	return int64(math.Round(float64(amount) * rate / 100))
}

func taxRate(settings *settingsModel.HostelSettings) float64 {
	if settings == nil {
		return 0
	}

	return settings.TaxRate
}

func total(items []LineItem, discount, payments int64, rate float64) (folio Folio) {
	for _, item := range items {
		folio.SubTotal += item.Amount
	}

	folio.Items = items
	folio.Discount = discount
	folio.AfterDiscount = max(folio.SubTotal-discount, 0)
	folio.TaxRate = rate
	folio.Tax = Tax(folio.AfterDiscount, rate)
	folio.GrossTotal = folio.AfterDiscount + folio.Tax
	folio.Payments = payments
	folio.Balance = folio.GrossTotal - payments

	return folio
}

func bookingIDs(bookings []bookingModel.Booking) []string {
	ids := make([]string, 0, len(bookings))
	for _, booking := range bookings {
		ids = append(ids, booking.ID)
	}

	return ids
}

// Compute bills every billable booking given.
func Compute(bookings []bookingModel.Booking, settings *settingsModel.HostelSettings) Folio {
	var discount, payments int64

	for _, booking := range bookings {
		if !billable(booking) {
			continue
		}

		discount += booking.Discount
		payments += booking.TotalPayments()
	}

	folio := total(LineItems(bookings), discount, payments, taxRate(settings))
	folio.BookingIDs = bookingIDs(bookings)

	return folio
}

// CombinedScope is the trigger followed by every other ACTIVE booking of the same guest.
func CombinedScope(trigger bookingModel.Booking, all []bookingModel.Booking) []bookingModel.Booking {
	scope := []bookingModel.Booking{trigger}

	for _, booking := range all {
		if booking.ID == trigger.ID || booking.GuestID != trigger.GuestID {
			continue
		}

		if booking.Status == bookingModel.StatusActive {
			scope = append(scope, booking)
		}
	}

	return scope
}

// Combined bills the combined scope of trigger as one consolidated total.
func Combined(trigger bookingModel.Booking, all []bookingModel.Booking, settings *settingsModel.HostelSettings) Folio {
	return Compute(CombinedScope(trigger, all), settings)
}

// Split bills only the selected line items. Discount applies only to a
// non-empty selection; ids that match nothing contribute nothing. Payments
// are not netted against a split bill.
func Split(bookings []bookingModel.Booking, settings *settingsModel.HostelSettings, selection []string) Folio {
	var discount int64

	if len(selection) > 0 {
		for _, booking := range bookings {
			if billable(booking) {
				discount += booking.Discount
			}
		}
	}

	items := slices.DeleteFunc(LineItems(bookings), func(item LineItem) bool {
		return !slices.Contains(selection, item.ID)
	})

	folio := total(items, discount, 0, taxRate(settings))
	folio.BookingIDs = bookingIDs(bookings)

	return folio
}

type Share struct {
	BookingID string `json:"bookingId"`
	Balance   int64  `json:"balance"`
}

// Balances computes each booking's own outstanding balance.
func Balances(bookings []bookingModel.Booking, settings *settingsModel.HostelSettings) []Share {
	shares := make([]Share, 0, len(bookings))

	for _, booking := range bookings {
		shares = append(shares, Share{
			BookingID: booking.ID,
			Balance:   Compute([]bookingModel.Booking{booking}, settings).Balance,
		})
	}

	return shares
}

// CanCheckout reports whether nothing is left to pay. It never blocks a transition.
func CanCheckout(folio Folio) bool {
	return folio.Balance <= 0
}

// Outstanding is the amount that settles the folio.
func Outstanding(folio Folio) int64 {
	return max(folio.Balance, 0)
}
