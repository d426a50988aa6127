package backup_test

import (
	"testing"
	"time"

	"hotelsphere/internal/backup"
	bookingModel "hotelsphere/internal/domains/booking/model"
	groupModel "hotelsphere/internal/domains/group/model"
	guestModel "hotelsphere/internal/domains/guest/model"
	roomModel "hotelsphere/internal/domains/room/model"
	settingsModel "hotelsphere/internal/domains/settings/model"
	transactionModel "hotelsphere/internal/domains/transaction/model"
	"hotelsphere/internal/replica"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exportedAt = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func sampleSnapshot() replica.Snapshot {
	return replica.Snapshot{
		Settings: &settingsModel.HostelSettings{
			Name:      "HotelSphere Pro",
			TaxRate:   12,
			Agents:    []settingsModel.Agent{{Name: "Direct"}, {Name: "Booking.com", Commission: 15}},
			RoomTypes: []string{"DELUXE ROOM", "BUDGET ROOM"},
			Passwords: map[string]string{"ADMIN": "opaque"},
		},
		Rooms: []roomModel.Room{
			{ID: "101", Number: "101", Floor: 1, Type: "DELUXE ROOM", Price: 250000, Status: roomModel.StatusOccupied, CurrentBookingID: "b-1"},
		},
		Guests: []guestModel.Guest{
			{ID: "g-1", Name: "Asha Rao", Phone: "9876543210", Documents: map[string]string{"aadharFront": "data:image/png;base64,AAAA"}},
		},
		Bookings: []bookingModel.Booking{
			{
				ID:           "b-1",
				BookingNo:    "BK-0001",
				RoomID:       "101",
				GuestID:      "g-1",
				CheckInDate:  "2024-03-01",
				CheckOutDate: "2024-03-03",
				Status:       bookingModel.StatusActive,
				BasePrice:    250000,
				Charges:      []bookingModel.Charge{{ID: "c-1", Description: "Laundry", Amount: 15000, Date: "2024-03-02"}},
				Payments:     []bookingModel.Payment{{ID: "p-1", Amount: 100000, Date: "2024-03-01", Method: "UPI"}},
			},
		},
		Transactions: []transactionModel.Transaction{
			{ID: "TX-1", Date: "2024-03-01", Type: transactionModel.TypeReceipt, AccountGroup: "Direct Income", Ledger: "UPI", Amount: 100000, ReferenceID: "b-1"},
		},
		Groups: []groupModel.GroupProfile{
			{ID: "grp-1", GroupName: "Wedding", BillingPreference: groupModel.BillingSingle, Status: groupModel.StatusActive},
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		compress bool
	}{
		{name: "plain json", compress: false},
		{name: "zstd", compress: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := backup.NewDocument(sampleSnapshot(), exportedAt)

			data, err := backup.Encode(doc, tt.compress)
			require.NoError(t, err)
			assert.Equal(t, tt.compress, backup.Compressed(data))

			decoded, err := backup.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, doc, decoded)
		})
	}
}

func TestDecodeBrowserExport(t *testing.T) {
	raw := `{
		"rooms": [{"id": "101", "number": "101", "floor": 1, "type": "DELUXE ROOM", "price": 250000, "status": "VACANT"}],
		"guests": [],
		"bookings": [],
		"transactions": [],
		"settings": [{"name": "HotelSphere Pro", "taxRate": 12}],
		"groups": []
	}`

	doc, err := backup.Decode([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, backup.Version, doc.Version)
	require.NotNil(t, doc.Settings)
	assert.Equal(t, "HotelSphere Pro", doc.Settings.Name)
	require.Len(t, doc.Rooms, 1)
	assert.Equal(t, roomModel.StatusVacant, doc.Rooms[0].Status)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "empty input", data: "  ", wantErr: backup.ErrEmptyDocument},
		{name: "newer version", data: `{"version": 99}`, wantErr: backup.ErrUnsupportedVersion},
		{name: "malformed json", data: `{"rooms": [`},
		{name: "settings of wrong shape", data: `{"settings": "primary"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := backup.Decode([]byte(tt.data))
			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "hotelsphere_backup_20240301-093000.json", backup.FileName(exportedAt, false))
	assert.Equal(t, "hotelsphere_backup_20240301-093000.json.zst", backup.FileName(exportedAt, true))
}

func TestSummary(t *testing.T) {
	summary := backup.NewDocument(sampleSnapshot(), exportedAt).Summary()

	assert.Equal(t, backup.Summary{
		Version:      backup.Version,
		ExportedAt:   exportedAt,
		Settings:     true,
		Rooms:        1,
		Guests:       1,
		Bookings:     1,
		Transactions: 1,
		Groups:       1,
	}, summary)
}
