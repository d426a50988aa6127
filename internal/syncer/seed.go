package syncer

import (
	"hotelsphere/internal/replica"
	"strconv"

	roomModel "hotelsphere/internal/domains/room/model"
	settingsModel "hotelsphere/internal/domains/settings/model"
)

const (
	RoomTypeDeluxe   = "DELUXE ROOM"
	RoomTypeBudget   = "BUDGET ROOM"
	RoomTypeStandard = "STANDARD ROOM"
	RoomTypeACFamily = "AC FAMILY ROOM"

	defaultTaxRate = 12
)

// Nightly seed prices in paise.
const (
	priceBudget   int64 = 2000_00
	priceStandard int64 = 2500_00
	priceDeluxe   int64 = 2900_00
	priceACFamily int64 = 4100_00
)

// DefaultSettings is written on a fresh install and whenever local data exists without settings.
func DefaultSettings() settingsModel.HostelSettings {
	return settingsModel.HostelSettings{
		Name:    "HotelSphere Pro",
		Address: "Suite 101, Enterprise Tower, Metro City",
		UPIID:   "hotel@upi",
		Agents: []settingsModel.Agent{
			{Name: "Direct", Commission: 0},
			{Name: "Booking.com", Commission: 15},
			{Name: "Expedia", Commission: 18},
		},
		RoomTypes: []string{RoomTypeDeluxe, RoomTypeBudget, RoomTypeStandard, RoomTypeACFamily},
		TaxRate:   defaultTaxRate,
	}
}

type floorPlan struct {
	floor   int
	count   int
	special map[int]string
}

var seedFloors = []floorPlan{
	{floor: 1, count: 10, special: map[int]string{1: RoomTypeDeluxe, 2: RoomTypeDeluxe, 8: RoomTypeACFamily}},
	{floor: 2, count: 11, special: map[int]string{
		5: RoomTypeStandard, 6: RoomTypeStandard, 7: RoomTypeStandard, 9: RoomTypeStandard, 11: RoomTypeStandard,
		10: RoomTypeDeluxe,
	}},
	{floor: 3, count: 3},
}

func priceOf(roomType string) int64 {
	switch roomType {
	case RoomTypeDeluxe:
		return priceDeluxe
	case RoomTypeStandard:
		return priceStandard
	case RoomTypeACFamily:
		return priceACFamily
	default:
		return priceBudget
	}
}

// SeedRooms returns the initial room inventory, numbered <floor><nn>, all VACANT.
func SeedRooms() []roomModel.Room {
	var rooms []roomModel.Room

	for _, plan := range seedFloors {
		for n := 1; n <= plan.count; n++ {
			number := strconv.Itoa(plan.floor*100 + n)

			roomType, ok := plan.special[n]
			if !ok {
				roomType = RoomTypeBudget
			}

			rooms = append(rooms, roomModel.Room{
				ID:     number,
				Number: number,
				Floor:  plan.floor,
				Type:   roomType,
				Price:  priceOf(roomType),
				Status: roomModel.StatusVacant,
			})
		}
	}

	return rooms
}

func SeedSnapshot() replica.Snapshot {
	settings := DefaultSettings()

	return replica.Snapshot{
		Settings: &settings,
		Rooms:    SeedRooms(),
	}
}
