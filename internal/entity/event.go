package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

type EventType string

const (
	EventUserJoined EventType = "userJoined"
	EventUserLeft   EventType = "userLeft"
	EventMove       EventType = "move"
)

var ErrUnknownEventType = errors.New("unknown event type")

// Event - one immutable entry of a room log. Implemented by UserJoined, UserLeft and Move only.
type Event interface {
	EventID() int
	Type() EventType

	record() eventRecord
}

type UserJoined struct {
	ID     int
	UserID string
	Users  []string
}

type UserLeft struct {
	ID     int
	UserID string
	Users  []string
}

type Move struct {
	ID     int
	UserID string
	X      int
	Y      int
	Winner string
}

func (that UserJoined) EventID() int    { return that.ID }
func (that UserJoined) Type() EventType { return EventUserJoined }

func (that UserLeft) EventID() int    { return that.ID }
func (that UserLeft) Type() EventType { return EventUserLeft }

func (that Move) EventID() int    { return that.ID }
func (that Move) Type() EventType { return EventMove }

// IsWinning - reports whether this move completed a line.
func (that Move) IsWinning() bool {
	return that.Winner != ""
}

// eventRecord - the flat wire and storage shape of an event.
type eventRecord struct {
	ID     int       `json:"id"`
	Type   EventType `json:"type"`
	UserID string    `json:"userId,omitempty"`
	Users  *[]string `json:"users,omitempty"`
	X      *int      `json:"x,omitempty"`
	Y      *int      `json:"y,omitempty"`
	Winner string    `json:"winner,omitempty"`
}

func (that UserJoined) record() eventRecord {
	return eventRecord{ID: that.ID, Type: EventUserJoined, UserID: that.UserID, Users: usersRef(that.Users)}
}

func (that UserLeft) record() eventRecord {
	return eventRecord{ID: that.ID, Type: EventUserLeft, UserID: that.UserID, Users: usersRef(that.Users)}
}

func (that Move) record() eventRecord {
	x, y := that.X, that.Y

	return eventRecord{ID: that.ID, Type: EventMove, UserID: that.UserID, X: &x, Y: &y, Winner: that.Winner}
}

func (that eventRecord) event() (Event, error) {
	switch that.Type {
	case EventUserJoined:
		return UserJoined{ID: that.ID, UserID: that.UserID, Users: that.users()}, nil
	case EventUserLeft:
		return UserLeft{ID: that.ID, UserID: that.UserID, Users: that.users()}, nil
	case EventMove:
		if that.X == nil || that.Y == nil {
			return nil, fmt.Errorf("move event %d has no coordinates", that.ID)
		}

		return Move{ID: that.ID, UserID: that.UserID, X: *that.X, Y: *that.Y, Winner: that.Winner}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, that.Type)
	}
}

// EventLog - an ordered list of events that serializes as an array of tagged records.
type EventLog []Event

func (that EventLog) MarshalJSON() ([]byte, error) {
	records := make([]eventRecord, 0, len(that))
	for _, event := range that {
		records = append(records, event.record())
	}

	return json.Marshal(records)
}

func (that *EventLog) UnmarshalJSON(data []byte) error {
	var records []eventRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to unmarshal events: %w", err)
	}

	log := make(EventLog, 0, len(records))
	for _, rec := range records {
		event, err := rec.event()
		if err != nil {
			return err
		}
		log = append(log, event)
	}

	*that = log

	return nil
}

// usersRef - keeps an empty member list on the wire as [] instead of dropping it.
func usersRef(users []string) *[]string {
	list := make([]string, len(users))
	copy(list, users)

	return &list
}

func (that eventRecord) users() []string {
	if that.Users == nil {
		return []string{}
	}

	return *that.Users
}
