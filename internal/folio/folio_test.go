package folio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingModel "hotelsphere/internal/domains/booking/model"
	settingsModel "hotelsphere/internal/domains/settings/model"
	"hotelsphere/internal/folio"
)

var settings = &settingsModel.HostelSettings{Name: "HotelSphere Pro", TaxRate: 12}

func scenarioBooking() bookingModel.Booking {
	return bookingModel.Booking{
		ID:           "b-1",
		RoomID:       "101",
		GuestID:      "g-1",
		CheckInDate:  "2024-01-01",
		CheckOutDate: "2024-01-03",
		Status:       bookingModel.StatusActive,
		BasePrice:    2000,
		Discount:     50,
		Charges:      []bookingModel.Charge{{ID: "c-1", Description: "Laundry", Amount: 150, Date: "2024-01-02"}},
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
		want int
	}{
		{name: "two nights", in: "2024-01-01", out: "2024-01-03", want: 2},
		{name: "same day floors at one", in: "2024-01-01", out: "2024-01-01", want: 1},
		{name: "across month end", in: "2024-01-30", out: "2024-02-02", want: 3},
		{name: "reversed dates use the absolute span", in: "2024-01-05", out: "2024-01-02", want: 3},
		{name: "unparseable dates bill one night", in: "", out: "2024-01-02", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := bookingModel.Booking{CheckInDate: tt.in, CheckOutDate: tt.out}
			assert.Equal(t, tt.want, folio.Nights(booking))
		})
	}
}

func TestCompute_Scenario(t *testing.T) {
	booking := scenarioBooking()

	bill := folio.Compute([]bookingModel.Booking{booking}, settings)

	assert.Equal(t, int64(4150), bill.SubTotal)
	assert.Equal(t, int64(4100), bill.AfterDiscount)
	assert.Equal(t, int64(492), bill.Tax)
	assert.Equal(t, int64(4592), bill.GrossTotal)
	assert.Equal(t, int64(4592), bill.Balance)
	assert.False(t, folio.CanCheckout(bill))

	require.Len(t, bill.Items, 2)
	assert.Equal(t, "rent:b-1", bill.Items[0].ID)
	assert.Equal(t, folio.KindRent, bill.Items[0].Kind)
	assert.Equal(t, 2, bill.Items[0].Quantity)
	assert.Equal(t, "c-1", bill.Items[1].ID)

	booking.Payments = []bookingModel.Payment{{ID: "p-1", Amount: bill.Balance, Method: "Cash"}}
	settled := folio.Compute([]bookingModel.Booking{booking}, settings)

	assert.Equal(t, int64(0), settled.Balance)
	assert.True(t, folio.CanCheckout(settled))
}

func TestCompute_SameDayStayBillsOneNight(t *testing.T) {
	booking := bookingModel.Booking{ID: "b-1", CheckInDate: "2024-01-01", CheckOutDate: "2024-01-01", BasePrice: 2000}

	bill := folio.Compute([]bookingModel.Booking{booking}, settings)
	assert.Equal(t, int64(2000), bill.SubTotal)
}

func TestCompute_DiscountNeverGoesNegative(t *testing.T) {
	booking := bookingModel.Booking{ID: "b-1", CheckInDate: "2024-01-01", CheckOutDate: "2024-01-02", BasePrice: 100, Discount: 500}

	bill := folio.Compute([]bookingModel.Booking{booking}, settings)
	assert.Equal(t, int64(0), bill.AfterDiscount)
	assert.Equal(t, int64(0), bill.GrossTotal)
}

func TestLineItems_ChargesInDateOrderAndCancelledSkipped(t *testing.T) {
	booking := scenarioBooking()
	booking.Charges = []bookingModel.Charge{
		{ID: "c-2", Amount: 10, Date: "2024-01-03"},
		{ID: "c-1", Amount: 20, Date: "2024-01-01"},
	}
	cancelled := bookingModel.Booking{ID: "b-2", Status: bookingModel.StatusCancelled, BasePrice: 999}

	items := folio.LineItems([]bookingModel.Booking{booking, cancelled})

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	assert.Equal(t, []string{"rent:b-1", "c-1", "c-2"}, ids)
}

func TestCombined(t *testing.T) {
	trigger := scenarioBooking()
	sibling := bookingModel.Booking{
		ID: "b-2", GuestID: "g-1", Status: bookingModel.StatusActive,
		CheckInDate: "2024-01-01", CheckOutDate: "2024-01-02", BasePrice: 1000,
	}
	finished := bookingModel.Booking{ID: "b-3", GuestID: "g-1", Status: bookingModel.StatusCompleted, BasePrice: 5000}
	stranger := bookingModel.Booking{ID: "b-4", GuestID: "g-2", Status: bookingModel.StatusActive, BasePrice: 7000}

	all := []bookingModel.Booking{trigger, sibling, finished, stranger}

	scope := folio.CombinedScope(trigger, all)
	require.Len(t, scope, 2)
	assert.Equal(t, "b-1", scope[0].ID)
	assert.Equal(t, "b-2", scope[1].ID)

	bill := folio.Combined(trigger, all, settings)
	assert.Equal(t, []string{"b-1", "b-2"}, bill.BookingIDs)
	assert.Equal(t, int64(5150), bill.SubTotal)
	assert.Equal(t, int64(5100), bill.AfterDiscount)
	assert.Equal(t, int64(612), bill.Tax)
	assert.Equal(t, int64(5712), bill.Balance)
}

func TestSplit(t *testing.T) {
	booking := scenarioBooking()
	bookings := []bookingModel.Booking{booking}

	t.Run("empty selection is zero", func(t *testing.T) {
		bill := folio.Split(bookings, settings, nil)

		assert.Equal(t, int64(0), bill.SubTotal)
		assert.Equal(t, int64(0), bill.AfterDiscount)
		assert.Equal(t, int64(0), bill.GrossTotal)
		assert.Empty(t, bill.Items)
	})

	t.Run("dangling selection is zero", func(t *testing.T) {
		bill := folio.Split(bookings, settings, []string{"gone"})

		assert.Equal(t, int64(0), bill.SubTotal)
		assert.Equal(t, int64(0), bill.GrossTotal)
	})

	t.Run("rent only", func(t *testing.T) {
		bill := folio.Split(bookings, settings, []string{folio.RentItemID("b-1")})

		assert.Equal(t, int64(4000), bill.SubTotal)
		assert.Equal(t, int64(3950), bill.AfterDiscount)
		assert.Equal(t, int64(474), bill.Tax)
		assert.Equal(t, bill.GrossTotal, bill.Balance)
	})
}

func TestBalances(t *testing.T) {
	paid := scenarioBooking()
	paid.ID = "b-2"
	paid.Payments = []bookingModel.Payment{{ID: "p-1", Amount: 5000}}

	shares := folio.Balances([]bookingModel.Booking{scenarioBooking(), paid}, settings)

	assert.Equal(t, []folio.Share{{BookingID: "b-1", Balance: 4592}, {BookingID: "b-2", Balance: -408}}, shares)
	assert.Equal(t, int64(0), folio.Outstanding(folio.Folio{Balance: -408}))
}
