package models

import "time"

type GoalType string

const (
	GoalRegular GoalType = "regular"
	GoalPenalty GoalType = "penalty"
	GoalOwnGoal GoalType = "own_goal"
)

func (g GoalType) Valid() bool {
	return g == GoalRegular || g == GoalPenalty || g == GoalOwnGoal
}

// MatchGoal — событие гола в завершённом матче. Чисто отображаемая
// аннотация: не агрегируется ни в таблицу, ни в Player.Goals.
type MatchGoal struct {
	ID         int       `json:"id" db:"id"`
	MatchID    int       `json:"match_id" db:"match_id"`
	PlayerName string    `json:"player_name" db:"player_name"`
	TeamName   string    `json:"team_name" db:"team_name"`
	Minute     *int      `json:"minute,omitempty" db:"minute"`
	GoalType   GoalType  `json:"goal_type" db:"goal_type"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
