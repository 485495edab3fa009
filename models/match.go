package models

import (
	"fmt"
	"time"
)

// Match хранит команды по именам, а не по внешним ключам: связь с Team —
// натуральный ключ (имя команды), как в исходной схеме данных.
type Match struct {
	ID             int       `json:"id" db:"id"`
	ChampionshipID int       `json:"championship_id" db:"championship_id"`
	Round          int       `json:"round" db:"round"`
	Date           time.Time `json:"date" db:"date"`
	MatchTime      *string   `json:"match_time,omitempty" db:"match_time"`
	HomeTeam       string    `json:"home_team" db:"home_team"`
	AwayTeam       string    `json:"away_team" db:"away_team"`
	HomeScore      *int      `json:"home_score" db:"home_score"`
	AwayScore      *int      `json:"away_score" db:"away_score"`
	IsFinished     bool      `json:"is_finished" db:"is_finished"`
	CupStage       *string   `json:"cup_stage,omitempty" db:"cup_stage"`

	// Техническое поражение: счёт не используется, победитель объявлен.
	IsTechnicalDefeat bool    `json:"is_technical_defeat" db:"is_technical_defeat"`
	TechnicalWinner   *string `json:"technical_winner,omitempty" db:"technical_winner"`

	// Серия пенальти: только отображение, на очки не влияет.
	PenaltyHome   *int    `json:"penalty_home,omitempty" db:"penalty_home"`
	PenaltyAway   *int    `json:"penalty_away,omitempty" db:"penalty_away"`
	PenaltyWinner *string `json:"penalty_winner,omitempty" db:"penalty_winner"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ResultLine возвращает отображаемый счёт матча.
// Для технического поражения счёт рисуется как "+:-" либо "-:+".
func (m Match) ResultLine() string {
	if m.IsTechnicalDefeat {
		if m.TechnicalWinner != nil && *m.TechnicalWinner == m.HomeTeam {
			return "+:-"
		}
		return "-:+"
	}
	if m.HomeScore == nil || m.AwayScore == nil {
		return "-"
	}
	return fmt.Sprintf("%d:%d", *m.HomeScore, *m.AwayScore)
}

// PenaltyLine возвращает результат серии пенальти, если она была.
func (m Match) PenaltyLine() string {
	if m.PenaltyHome == nil || m.PenaltyAway == nil {
		return ""
	}
	return fmt.Sprintf(" (%d-%d pen.)", *m.PenaltyHome, *m.PenaltyAway)
}
