package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrValidationFailed     = errors.New("validation failed")
	ErrNoChampionship       = errors.New("no championship exists for this operation")
	ErrSameTeams            = errors.New("home and away team must differ")
	ErrTeamNameRequired     = errors.New("team name is required")
	ErrPlayerTeamRequired   = errors.New("player team is required")
	ErrMatchNotFinished     = errors.New("match is not finished")
	ErrInvalidGoalMinute    = errors.New("goal minute must be between 1 and 120")
	ErrInvalidGoalType      = errors.New("invalid goal type")
	ErrInvalidTechWinner    = errors.New("technical winner must be one of the match teams")
	ErrPenaltyNotApplicable = errors.New("penalty shootout applies only to finished non-technical matches")
	ErrInvalidPenaltyWinner = errors.New("penalty winner must be one of the match teams")

	// Ошибки аутентификации
	ErrInvalidAdminPassword = errors.New("invalid admin password")

	// Ошибки, специфичные для сущностей
	ErrChampionshipNotFound = errors.New("championship not found")
	ErrTeamNotFound         = errors.New("team not found")
	ErrMatchNotFound        = errors.New("match not found")
	ErrPlayerNotFound       = errors.New("player not found")
	ErrGoalNotFound         = errors.New("goal event not found")
)
