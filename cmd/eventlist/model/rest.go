package model

type BaseResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

type EventForm struct {
	Name      string `form:"name" validate:"required"`
	MatchTime string `form:"match_time" validate:"required"`
	Mix10     string `form:"mix10"`
}

type PlayerForm struct {
	Name    string `form:"name" validate:"required"`
	EventID string `form:"event_id" validate:"required"`
	Team    string `form:"team"`
}

// RosterImportForm carries the non-file fields of a roster import. The
// team value, when present, is the default for rows that leave team
// blank.
type RosterImportForm struct {
	EventID string `form:"event_id" validate:"required"`
	Team    string `form:"team"`
}
