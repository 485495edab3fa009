package models

import "time"

type TournamentType string

const (
	TournamentLeague TournamentType = "league"
	TournamentCup    TournamentType = "cup"
)

func (t TournamentType) Valid() bool {
	return t == TournamentLeague || t == TournamentCup
}

// Championship — турнир одного сезона: лига с круговой таблицей
// или кубок с сеткой на вылет.
type Championship struct {
	ID             int            `json:"id" db:"id"`
	Name           string         `json:"name" db:"name"`
	Season         string         `json:"season" db:"season"`
	IsActive       bool           `json:"is_active" db:"is_active"`
	TournamentType TournamentType `json:"tournament_type" db:"tournament_type"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
}
