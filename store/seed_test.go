package store

import (
	"strings"
	"testing"

	"ticket_reseller/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_Deterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	assert.Equal(t, a.Events(), b.Events())
	assert.Equal(t, a.sessions, b.sessions)
	assert.Equal(t, a.areas, b.areas)
	assert.Equal(t, a.AllTickets(), b.AllTickets())
}

func TestSeed_DifferentSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)
	assert.NotEqual(t, a.sessions, b.sessions)
}

func TestSeed_CatalogShape(t *testing.T) {
	s := New(42)

	events := s.Events()
	assert.Len(t, events, 65, "5 flagship + 60 generated")

	for _, ev := range events {
		assert.NotEmpty(t, ev.Slug)
		sessions := s.Sessions(ev.ID)
		assert.GreaterOrEqual(t, len(sessions), 1, "event %d", ev.ID)
		assert.LessOrEqual(t, len(sessions), 4, "event %d", ev.ID)
	}
}

func TestSeed_AreaInvariants(t *testing.T) {
	s := New(42)

	for _, sess := range s.sessions {
		areas := s.SessionAreas(sess.ID)
		require.NotEmpty(t, areas, "session %d", sess.ID)

		seen := map[string]bool{}
		for _, a := range areas {
			assert.LessOrEqual(t, a.MinPrice, a.AvgPrice, "area %s", a.ID)
			assert.LessOrEqual(t, a.AvgPrice, a.MaxPrice, "area %s", a.ID)
			assert.False(t, seen[a.ID], "duplicate area id %s in session %d", a.ID, sess.ID)
			seen[a.ID] = true
			assert.True(t, strings.HasPrefix(a.ID, "3"), "area id %s", a.ID)
		}
	}
}

// The dome session resolves its venue through the event reference; the
// layout proves the resolution chain worked.
func TestSeed_VenueResolvedThroughEvent(t *testing.T) {
	s := New(42)

	domeAreas := s.SessionAreas(201) // Jay Chou at 臺北大巨蛋
	require.Len(t, domeAreas, 5)
	assert.Equal(t, "特區 Rock A", domeAreas[0].Name)

	arenaAreas := s.SessionAreas(204) // aMEI at 高雄巨蛋
	require.Len(t, arenaAreas, 4)
	assert.Equal(t, "搖滾區 Rock", arenaAreas[0].Name)

	stadiumAreas := s.SessionAreas(207) // Maroon 5 at 高雄世運主場館
	require.Len(t, stadiumAreas, 4)
	assert.Equal(t, "Standing A", stadiumAreas[0].Name)
}

func TestTemplateKindFor_FallsBackToStadium(t *testing.T) {
	s := &Store{
		venues: []model.Venue{{ID: 1, Name: "臺北大巨蛋"}},
		events: []model.Event{
			{ID: 10, VenueID: 1},
			{ID: 11, VenueID: 999}, // dangling venue reference
		},
	}

	assert.Equal(t, model.TemplateDome, s.templateKindFor(10))
	assert.Equal(t, model.TemplateStadium, s.templateKindFor(11), "broken venue ref defaults, never errors")
	assert.Equal(t, model.TemplateStadium, s.templateKindFor(404), "unknown event defaults too")
}

func TestSeed_TicketsBoundToCatalog(t *testing.T) {
	s := New(42)

	tickets := s.AllTickets()
	assert.Len(t, tickets, 36, "12 per flagship demo session")

	for _, tk := range tickets {
		area, ok := s.AreaByID(tk.AreaID)
		require.True(t, ok, "ticket %s references area %s", tk.ID, tk.AreaID)
		assert.Equal(t, tk.SessionID, area.SessionID)
		assert.Equal(t, area.Name, tk.AreaName)
		assert.Greater(t, tk.Price, 0)
		assert.Equal(t, 1, tk.Quantity)
	}
}

func TestCatalogReads_ReturnCopies(t *testing.T) {
	s := New(42)

	events := s.Events()
	title := events[0].Title
	events[0].Title = "tampered"
	assert.Equal(t, title, s.Events()[0].Title)

	areas := s.SessionAreas(201)
	areas[0].MinPrice = -1
	assert.NotEqual(t, -1, s.SessionAreas(201)[0].MinPrice)
}
