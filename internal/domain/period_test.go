package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPreset_Apply(t *testing.T) {
	now := time.Date(2024, 3, 10, 18, 45, 0, 0, time.UTC)

	tests := []struct {
		name     string
		preset   Preset
		period   ReportPeriod
		expected ReportPeriod
	}{
		{
			name:   "today fixa tudo no dia corrente",
			preset: PresetToday,
			period: ReportPeriod{Date: "2020-01-01", Days: 99},
			expected: ReportPeriod{
				Date:      "2024-03-10",
				StartDate: "2024-03-10",
				EndDate:   "2024-03-10",
				Days:      1,
			},
		},
		{
			name:   "7d fecha a janela no dia corrente",
			preset: Preset7Days,
			period: ReportPeriod{Date: "2020-01-01"},
			expected: ReportPeriod{
				Date:      "2020-01-01",
				StartDate: "2024-03-04",
				EndDate:   "2024-03-10",
				Days:      7,
			},
		},
		{
			name:   "30d fecha a janela no dia corrente",
			preset: Preset30Days,
			period: ReportPeriod{},
			expected: ReportPeriod{
				StartDate: "2024-02-10",
				EndDate:   "2024-03-10",
				Days:      30,
			},
		},
		{
			name:   "custom não altera nada",
			preset: PresetCustom,
			period: ReportPeriod{
				Date:      "2023-06-15",
				StartDate: "2023-06-01",
				EndDate:   "2023-06-15",
				Days:      15,
			},
			expected: ReportPeriod{
				Date:      "2023-06-15",
				StartDate: "2023-06-01",
				EndDate:   "2023-06-15",
				Days:      15,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.preset.Apply(tt.period, now))
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, valid := range []string{"today", "7d", "30d", "custom"} {
		_, ok := ParsePreset(valid)
		assert.True(t, ok, valid)
	}

	_, ok := ParsePreset("yesterday")
	assert.False(t, ok)
}

func TestReportKind_PeriodShape(t *testing.T) {
	assert.True(t, ReportDailySales.UsesSingleDate())
	assert.True(t, ReportHourlySales.UsesSingleDate())
	assert.True(t, ReportWaiterCommission.UsesDateRange())

	assert.False(t, ReportTopProducts.UsesSingleDate())
	assert.False(t, ReportTopProducts.UsesDateRange())
}

func TestParseReportKind(t *testing.T) {
	for _, kind := range ReportKinds {
		parsed, ok := ParseReportKind(string(kind))
		assert.True(t, ok)
		assert.Equal(t, kind, parsed)
	}

	_, ok := ParseReportKind("weekly-sales")
	assert.False(t, ok)
}
