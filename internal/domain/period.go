package domain

import "time"

// Preset é um atalho nomeado que deriva os limites concretos do período.
type Preset string

const (
	PresetToday  Preset = "today"
	Preset7Days  Preset = "7d"
	Preset30Days Preset = "30d"
	PresetCustom Preset = "custom"
)

func ParsePreset(s string) (Preset, bool) {
	preset := Preset(s)
	switch preset {
	case PresetToday, Preset7Days, Preset30Days, PresetCustom:
		return preset, true
	}
	return preset, false
}

// ReportPeriod reúne os controles de período do painel. Cada tipo de
// relatório consome apenas o subconjunto que lhe cabe (ver reporting.BuildParams).
type ReportPeriod struct {
	Date      string `json:"date"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

// Apply deriva os limites do período a partir do preset, usando now como
// referência. PresetCustom não altera nada: os valores já informados valem.
func (p Preset) Apply(period ReportPeriod, now time.Time) ReportPeriod {
	today := now.Format(time.DateOnly)

	switch p {
	case PresetToday:
		period.Date = today
		period.StartDate = today
		period.EndDate = today
		period.Days = 1
	case Preset7Days:
		period.Days = 7
		period.StartDate = now.AddDate(0, 0, -6).Format(time.DateOnly)
		period.EndDate = today
	case Preset30Days:
		period.Days = 30
		period.StartDate = now.AddDate(0, 0, -29).Format(time.DateOnly)
		period.EndDate = today
	}

	return period
}
