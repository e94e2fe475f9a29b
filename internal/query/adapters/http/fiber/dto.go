package fiber

import (
	"encoding/json"
	"math"
	"time"

	"chat-activity-service/internal/query/core/domain"
)

// Every response body is an array of tuples rather than objects, so
// element order stays explicit for the dashboard renderers.

// HeatmapCellDTO marshals as ["2021-01-01", 0.35].
type HeatmapCellDTO domain.HeatmapCell

func (d HeatmapCellDTO) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{d.Day, guarded(d.Opacity)})
}

// HourlyShareDTO marshals as ["00", 0.8].
type HourlyShareDTO domain.HourlyShare

func (d HourlyShareDTO) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{d.Hour, guarded(d.Percent)})
}

// RankingEntryDTO marshals as [id, name, total, lastAtRFC3339].
type RankingEntryDTO domain.RankingEntry

func (d RankingEntryDTO) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{d.ID, d.Name, d.Total, d.LastAt.UTC().Format(time.RFC3339)})
}

// SummaryRowDTO marshals as ["messages", 12, 345]; NaN and ±Inf become
// null since JSON cannot carry them.
type SummaryRowDTO domain.SummaryRow

func (d SummaryRowDTO) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{d.Description, guarded(d.InRange), guarded(d.AllTime)})
}

// ActiveUserDTO marshals as [userID, name, lastAtRFC3339].
type ActiveUserDTO domain.ActiveUser

func (d ActiveUserDTO) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{d.UserID, d.Name, d.LastAt.UTC().Format(time.RFC3339)})
}

// guarded replaces the engine's empty-population sentinels with nil at
// the presentation boundary.
func guarded(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

func heatmapCells(cells []domain.HeatmapCell) []HeatmapCellDTO {
	out := make([]HeatmapCellDTO, len(cells))
	for i, c := range cells {
		out[i] = HeatmapCellDTO(c)
	}
	return out
}

func hourlyShares(shares []domain.HourlyShare) []HourlyShareDTO {
	out := make([]HourlyShareDTO, len(shares))
	for i, s := range shares {
		out[i] = HourlyShareDTO(s)
	}
	return out
}

func rankingEntries(entries []domain.RankingEntry) []RankingEntryDTO {
	out := make([]RankingEntryDTO, len(entries))
	for i, e := range entries {
		out[i] = RankingEntryDTO(e)
	}
	return out
}

func summaryRows(rows []domain.SummaryRow) []SummaryRowDTO {
	out := make([]SummaryRowDTO, len(rows))
	for i, r := range rows {
		out[i] = SummaryRowDTO(r)
	}
	return out
}

func activeUsers(users []domain.ActiveUser) []ActiveUserDTO {
	out := make([]ActiveUserDTO, len(users))
	for i, u := range users {
		out[i] = ActiveUserDTO(u)
	}
	return out
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid 'from' parameter"`
}
