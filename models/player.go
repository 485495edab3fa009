package models

import "time"

// Player.Goals — ручной счётчик сезона, он не пересчитывается
// из событий голов (MatchGoal).
type Player struct {
	ID             int       `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Team           string    `json:"team" db:"team"`
	Goals          int       `json:"goals" db:"goals"`
	ChampionshipID int       `json:"championship_id" db:"championship_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
