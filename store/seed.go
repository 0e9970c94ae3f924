package store

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"ticket_reseller/constants"
	"ticket_reseller/helper"
	"ticket_reseller/model"

	"github.com/gosimple/slug"
)

func parseTime(s string) time.Time {
	t, _ := time.Parse("2006-01-02T15:04:05", s)
	return t
}

// seedData populates the demo catalog, inventory, orders and accounts.
// Catalog generation never fails hard: unresolvable references fall back
// to the STADIUM template and an empty venue pool just skips generation.
func (s *Store) seedData(rng *rand.Rand) {
	s.seedCatalog(rng)
	s.seedAreas()
	s.seedTickets(rng)
	s.seedOrders()
	s.seedAccounts()
}

func (s *Store) seedCatalog(rng *rand.Rand) {
	s.venues = []model.Venue{
		{ID: 1, Name: "臺北大巨蛋", City: "台北市", Capacity: 40000},
		{ID: 2, Name: "台北小巨蛋", City: "台北市", Capacity: 15000},
		{ID: 3, Name: "高雄巨蛋", City: "高雄市", Capacity: 15000},
		{ID: 4, Name: "高雄世運主場館", City: "高雄市", Capacity: 55000},
		{ID: 5, Name: "臺北流行音樂中心", City: "台北市", Capacity: 5000},
		{ID: 6, Name: "Zepp New Taipei", City: "新北市", Capacity: 2000},
		{ID: 7, Name: "Legacy Taipei", City: "台北市", Capacity: 1000},
	}

	flagships := []struct {
		id      uint
		venueID uint
		title   string
		poster  string
	}{
		{101, 1, "周杰倫嘉年華世界巡迴演唱會 - 臺北站", "jay.jpg"},
		{102, 3, "aMEI ASMR MAX 演唱會 - 高雄站", "amei.jpg"},
		{103, 4, "Maroon 5 Asia Tour 2025 - Kaohsiung", "m5.jpg"},
		{104, 1, "BLACKPINK BORN PINK FINALE - Taipei", "bp.jpg"},
		{105, 4, "Coldplay: Music of the Spheres - Kaohsiung", "coldplay.jpg"},
	}
	for _, f := range flagships {
		s.events = append(s.events, model.Event{
			ID: f.id, VenueID: f.venueID, Title: f.title,
			Slug: slug.Make(f.title), Poster: f.poster,
		})
	}

	s.sessions = []model.Session{
		{ID: 201, EventID: 101, StartTime: parseTime("2025-12-31T20:00:00")},
		{ID: 202, EventID: 101, StartTime: parseTime("2026-01-01T19:30:00")},
		{ID: 203, EventID: 101, StartTime: parseTime("2026-01-02T19:30:00")},
		{ID: 204, EventID: 102, StartTime: parseTime("2025-12-25T19:30:00")},
		{ID: 205, EventID: 102, StartTime: parseTime("2025-12-26T19:30:00")},
		{ID: 206, EventID: 102, StartTime: parseTime("2025-12-31T21:30:00")},
		{ID: 207, EventID: 103, StartTime: parseTime("2025-02-14T20:00:00")},
		{ID: 208, EventID: 104, StartTime: parseTime("2026-03-18T19:00:00")},
		{ID: 209, EventID: 104, StartTime: parseTime("2026-03-19T19:00:00")},
		{ID: 210, EventID: 105, StartTime: parseTime("2025-11-11T19:30:00")},
		{ID: 211, EventID: 105, StartTime: parseTime("2025-11-12T19:30:00")},
	}

	// Bulk demo data: touring events across the smaller venues.
	tourVenues := []uint{2, 3, 5, 6, 7}
	artists := []string{"五月天", "蔡依林", "林俊傑", "告五人", "草東沒有派對", "伍佰", "動力火車", "田馥甄"}

	if len(tourVenues) == 0 || len(artists) == 0 {
		log.Println("seed: empty venue or artist pool, skipping generated events")
		return
	}

	for i := 1; i <= 60; i++ {
		artist := artists[rng.Intn(len(artists))]
		venueID := tourVenues[rng.Intn(len(tourVenues))]
		evID := uint(1000 + i)
		title := fmt.Sprintf("%s 2026 巡迴演唱會 - %d號場", artist, i)

		s.events = append(s.events, model.Event{
			ID: evID, VenueID: venueID, Title: title,
			Slug: slug.Make(title), Poster: "default.jpg",
		})

		sessCount := rng.Intn(3) + 1
		for j := 0; j < sessCount; j++ {
			s.sessions = append(s.sessions, model.Session{
				ID:      uint(20000 + i*10 + j),
				EventID: evID,
				StartTime: time.Date(2026, time.Month(rng.Intn(12)+1),
					rng.Intn(28)+1, 19, 30, 0, 0, time.UTC),
			})
		}
	}
}

func (s *Store) seedAreas() {
	for _, sess := range s.sessions {
		kind := s.templateKindFor(sess.EventID)
		s.areas = append(s.areas, helper.GenerateAreas(sess.ID, kind)...)
	}
}

// templateKindFor resolves the venue through the session's event. A broken
// reference is not an error: the catalog still renders, just with the
// STADIUM layout.
func (s *Store) templateKindFor(eventID uint) model.TemplateKind {
	ev, ok := s.eventByID(eventID)
	if !ok {
		return model.TemplateStadium
	}
	venue, ok := s.venueByID(ev.VenueID)
	if !ok {
		return model.TemplateStadium
	}
	return helper.MatchTemplateKind(venue.Name)
}

func (s *Store) seedTickets(rng *rand.Rand) {
	targets := []uint{201, 204, 207}
	statuses := []string{
		constants.TICKET_ON_SHELF, constants.TICKET_ON_SHELF, constants.TICKET_ON_SHELF,
		constants.TICKET_OFF_SHELF, constants.TICKET_SOLD, constants.TICKET_DRAFT,
	}

	for _, sessID := range targets {
		sess, ok := s.sessionByID(sessID)
		if !ok {
			continue
		}
		areas := s.SessionAreas(sessID)
		if len(areas) == 0 {
			continue
		}

		for i := 0; i < 12; i++ {
			area := areas[rng.Intn(len(areas))]
			s.ticketSeq++
			s.tickets = append(s.tickets, model.Ticket{
				ID:        fmt.Sprintf("T%d", 2025000+s.ticketSeq),
				EventID:   sess.EventID,
				SessionID: sess.ID,
				AreaID:    area.ID,
				AreaName:  area.Name,
				Row:       rng.Intn(20) + 1,
				Seat:      rng.Intn(100) + 1,
				Price:     area.AvgPrice + (rng.Intn(5)-2)*100,
				Status:    statuses[rng.Intn(len(statuses))],
				Quantity:  1,
			})
		}
	}
}

// Seed orders carry over the legacy demo fixtures. The legacy single
// status field maps onto the two axes as: pending -> unpaid/none,
// paid -> paid/preparing, shipping -> paid/shipped,
// completed -> paid/delivered. The original value is kept in LegacyStatus
// for the dashboard aggregate.
func (s *Store) seedOrders() {
	s.orders = []model.Order{
		{
			ID: "ORD-2025-001", BuyerID: "USER_001", BuyerName: "王小明",
			EventTitle:  "周杰倫嘉年華世界巡迴演唱會 - 臺北站",
			SessionTime: "2025-12-31 20:00", Venue: "臺北大巨蛋",
			RecipientInfo: model.RecipientInfo{
				Name: "王小明", Phone: "0912-345-678",
				Address: "台北市信義區信義路五段7號 (Taipei 101)",
			},
			PaymentInfo: &model.PaymentInfo{Method: "Credit Card", TransactionID: "TXN_1234567890"},
			Items: []model.OrderItem{
				{TicketName: "特區 Rock A - 5排 - 12號", Price: 5500},
				{TicketName: "特區 Rock A - 5排 - 13號", Price: 5500},
			},
			TotalAmount:   11000,
			PaymentStatus: constants.PAYMENT_PAID, ShippingStatus: constants.SHIPPING_PREPARING,
			LegacyStatus: "paid",
			CreatedAt:    parseTime("2025-12-31T10:30:00"),
		},
		{
			ID: "ORD-2025-002", BuyerID: "USER_002", BuyerName: "陳大文",
			EventTitle:  "aMEI ASMR MAX 演唱會 - 高雄站",
			SessionTime: "2025-12-25 19:30", Venue: "高雄巨蛋",
			RecipientInfo: model.RecipientInfo{
				Name: "陳大文", Phone: "0922-000-111",
				Address: "高雄市左營區博愛二路777號",
			},
			PaymentInfo:    &model.PaymentInfo{Method: "LinePay", TransactionID: "TXN_LINE_9988"},
			TrackingNumber: strPtr("TRK-881239912"),
			Items: []model.OrderItem{
				{TicketName: "看台 Stand A - 20排 - 5號", Price: 3800},
			},
			TotalAmount:   3800,
			PaymentStatus: constants.PAYMENT_PAID, ShippingStatus: constants.SHIPPING_SHIPPED,
			LegacyStatus: "shipping",
			CreatedAt:    parseTime("2025-12-31T14:15:00"),
		},
		{
			ID: "ORD-2025-005", BuyerID: "USER_005", BuyerName: "張惠妹粉",
			EventTitle:  "aMEI ASMR MAX 演唱會 - 高雄站",
			SessionTime: "2025-12-31 21:30", Venue: "高雄巨蛋",
			RecipientInfo: model.RecipientInfo{
				Name: "張惠妹粉", Phone: "0933-444-555",
				Address: "台中市西屯區台灣大道三段",
			},
			PaymentInfo: &model.PaymentInfo{Method: "Credit Card", TransactionID: "TXN_CC_556677"},
			Items: []model.OrderItem{
				{TicketName: "特一區 Vip - 1排 - 8號", Price: 6000},
				{TicketName: "特一區 Vip - 1排 - 9號", Price: 6000},
			},
			TotalAmount:   12000,
			PaymentStatus: constants.PAYMENT_PAID, ShippingStatus: constants.SHIPPING_PREPARING,
			LegacyStatus: "paid",
			CreatedAt:    parseTime("2025-12-31T11:20:00"),
			Logs: []model.OrderLog{
				{StatusType: constants.STATUS_TYPE_PAYMENT, Status: constants.PAYMENT_UNPAID, Time: parseTime("2025-12-31T11:20:00"), Operator: "System"},
				{StatusType: constants.STATUS_TYPE_PAYMENT, Status: constants.PAYMENT_PAID, Time: parseTime("2025-12-31T11:25:00"), Operator: "System"},
			},
		},
		{
			ID: "ORD-2025-010", BuyerID: "USER_010", BuyerName: "Charlie",
			EventTitle:  "Maroon 5 Asia Tour 2025",
			SessionTime: "2025-02-14 20:00", Venue: "高雄世運主場館",
			RecipientInfo: model.RecipientInfo{
				Name: "Charlie", Phone: "0955-666-777",
				Address: "台南市東區中華東路",
			},
			PaymentInfo:    &model.PaymentInfo{Method: "ATM Transfer", TransactionID: "TXN_ATM_112233"},
			TrackingNumber: strPtr("TRK-FINISHED-001"),
			Items: []model.OrderItem{
				{TicketName: "搖滾區 Rock - 300號", Price: 4200},
			},
			TotalAmount:   4200,
			PaymentStatus: constants.PAYMENT_PAID, ShippingStatus: constants.SHIPPING_DELIVERED,
			LegacyStatus: "completed",
			CreatedAt:    parseTime("2025-12-28T10:00:00"),
			Logs: []model.OrderLog{
				{StatusType: constants.STATUS_TYPE_PAYMENT, Status: constants.PAYMENT_PAID, Time: parseTime("2025-12-28T10:05:00"), Operator: "System"},
				{StatusType: constants.STATUS_TYPE_SHIPPING, Status: constants.SHIPPING_DELIVERED, Time: parseTime("2025-12-30T09:00:00"), Operator: "System"},
			},
		},
		{
			ID: "ORD-2025-009", BuyerID: "USER_009", BuyerName: "Bob",
			EventTitle:  "周杰倫嘉年華世界巡迴演唱會",
			SessionTime: "2026-01-01 19:30", Venue: "臺北大巨蛋",
			RecipientInfo: model.RecipientInfo{
				Name: "Bob", Phone: "0988-777-666",
				Address: "新北市板橋區縣民大道",
			},
			Items: []model.OrderItem{
				{TicketName: "特區 Rock A - 10排 - 1號", Price: 4800},
				{TicketName: "特區 Rock A - 10排 - 2號", Price: 4800},
			},
			TotalAmount:   9600,
			PaymentStatus: constants.PAYMENT_UNPAID, ShippingStatus: constants.SHIPPING_NONE,
			LegacyStatus: "pending",
			CreatedAt:    parseTime("2025-12-31T17:10:00"),
			Logs: []model.OrderLog{
				{StatusType: constants.STATUS_TYPE_PAYMENT, Status: constants.PAYMENT_UNPAID, Time: parseTime("2025-12-31T17:10:00"), Operator: "System"},
			},
		},
	}
}

func (s *Store) seedAccounts() {
	s.sellers = []model.Seller{
		{ID: "SLR-00000001", Username: "TicketMasterTW", ShopName: "台灣票務大王", Status: constants.ACCOUNT_ACTIVE},
	}

	hashed, err := helper.HashPassword("tickets123")
	if err != nil {
		hashed = "tickets123"
	}

	s.subAccounts = []model.SubAccount{
		{ID: 1, Username: "Seller_Assistant_01", Password: hashed, Status: constants.ACCOUNT_ACTIVE},
		{ID: 2, Username: "Intern_Dave", Password: hashed, Status: constants.ACCOUNT_ACTIVE},
	}
	s.nextSubAccountID = 3
}

func strPtr(v string) *string {
	return &v
}
