package store

import "ticket_reseller/model"

// Catalog queries. The catalog is immutable after seeding, so these only
// have to copy the returned slices, never lock.

func (s *Store) Events() []model.Event {
	return append([]model.Event(nil), s.events...)
}

func (s *Store) Sessions(eventID uint) []model.Session {
	out := []model.Session{}
	for _, sess := range s.sessions {
		if sess.EventID == eventID {
			out = append(out, sess)
		}
	}
	return out
}

func (s *Store) SessionAreas(sessionID uint) []model.Area {
	out := []model.Area{}
	for _, a := range s.areas {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) AreaByID(id string) (model.Area, bool) {
	for _, a := range s.areas {
		if a.ID == id {
			return a, true
		}
	}
	return model.Area{}, false
}

func (s *Store) EventByID(id uint) (model.Event, bool) {
	return s.eventByID(id)
}

func (s *Store) eventByID(id uint) (model.Event, bool) {
	for _, ev := range s.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return model.Event{}, false
}

func (s *Store) venueByID(id uint) (model.Venue, bool) {
	for _, v := range s.venues {
		if v.ID == id {
			return v, true
		}
	}
	return model.Venue{}, false
}

func (s *Store) SessionByID(id uint) (model.Session, bool) {
	return s.sessionByID(id)
}

func (s *Store) sessionByID(id uint) (model.Session, bool) {
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess, true
		}
	}
	return model.Session{}, false
}

func (s *Store) Venues() []model.Venue {
	return append([]model.Venue(nil), s.venues...)
}
