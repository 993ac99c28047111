package models

// Player dataset columns. The dataset may carry extra columns; they are
// tolerated and passed through untouched.
const (
	PlayerColID            = "i"
	PlayerColFirstName     = "fn"
	PlayerColLastName      = "ln"
	PlayerColAveragePoints = "ap"
	PlayerColGamesPlayed   = "smc"
	PlayerColTotalPoints   = "tp"
	PlayerColMarketValue   = "mv"
	PlayerColFairValue     = "fair_market_value"
	PlayerColDeviation     = "mv_diff"
	PlayerColDeviationPct  = "mv_diff_pct"
	PlayerColTeam          = "tn"
	PlayerColPosition      = "pos"
)

// Position codes used by the player dataset.
const (
	PositionGoalkeeper = "1"
	PositionDefender   = "2"
	PositionMidfielder = "3"
	PositionForward    = "4"
)

// PositionName maps a position code to its display label. Unknown codes
// come back unchanged so bad data stays visible instead of vanishing.
func PositionName(code string) string {
	switch code {
	case PositionGoalkeeper:
		return "Goalkeeper"
	case PositionDefender:
		return "Defender"
	case PositionMidfielder:
		return "Midfielder"
	case PositionForward:
		return "Forward"
	}
	return code
}

// Manager liquidity dataset columns.
const (
	ManagerColID                 = "manager_id"
	ManagerColName               = "manager_name"
	ManagerColTeamValueDashboard = "team_value_dashboard"
	ManagerColTeamValueCalc      = "team_value_calculated"
	ManagerColProfitTaken        = "profit_taken"
	ManagerColUnrealizedPnL      = "unrealized_profit_loss"
	ManagerColBankBalance        = "bank_balance"
	ManagerColLiquidity          = "available_liquidity"
)

// Regression metrics dataset columns. Only B and alpha are consumed; A and
// TP0 are fixed in-system constants and n_samples is informational.
const (
	MetricsColA        = "A"
	MetricsColTP0      = "TP0"
	MetricsColScale    = "B"
	MetricsColExponent = "alpha"
	MetricsColSamples  = "n_samples"
)
