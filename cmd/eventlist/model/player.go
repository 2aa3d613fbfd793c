package model

import (
	"errors"
	"fmt"
	"strings"
)

// Team is the side a player queues on. The set is closed: CT or TT.
type Team string

const (
	TeamCT Team = "CT"
	TeamTT Team = "TT"
)

var ErrInvalidTeam = errors.New("team must be CT or TT")

// ParseTeam maps a team form value to its enum value. An empty value
// means unassigned and yields nil. Matching is exact, "ct" is not a
// team.
func ParseTeam(s string) (*Team, error) {
	switch Team(strings.TrimSpace(s)) {
	case "":
		return nil, nil
	case TeamCT:
		t := TeamCT
		return &t, nil
	case TeamTT:
		t := TeamTT
		return &t, nil
	default:
		return nil, fmt.Errorf("%w: got %q", ErrInvalidTeam, s)
	}
}

type Player struct {
	ID      int    `gorm:"column:id;primaryKey" json:"id"`
	Name    string `gorm:"column:name;not null" json:"name"`
	EventID int    `gorm:"column:event_id;not null" json:"event_id"`
	Team    *Team  `gorm:"column:team" json:"team"`
}

func (m *Player) TableName() string {
	return "players"
}

// PlayerCSV is one roster row of an import file.
type PlayerCSV struct {
	Name string `csv:"name"`
	Team string `csv:"team"`
}
