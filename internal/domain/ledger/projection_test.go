package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name      string
		principal string
		rate      string
		months    int
		wantFinal string
		wantGain  string
		wantMonth int
	}{
		{name: "one year at 12%", principal: "1000", rate: "12", months: 12, wantFinal: "1126.83", wantGain: "126.83", wantMonth: 12},
		{name: "single month", principal: "1000", rate: "12", months: 1, wantFinal: "1010", wantGain: "10", wantMonth: 1},
		{name: "zero rate", principal: "2500.50", rate: "0", months: 24, wantFinal: "2500.5", wantGain: "0", wantMonth: 24},
		{name: "no months", principal: "1000", rate: "10.4", months: 0, wantFinal: "1000", wantGain: "0", wantMonth: 0},
		{name: "negative months", principal: "1000", rate: "10.4", months: -3, wantFinal: "1000", wantGain: "0", wantMonth: 0},
		{name: "negative rate", principal: "1000", rate: "-12", months: 12, wantFinal: "886.38", wantGain: "-113.62", wantMonth: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project(decimal.RequireFromString(tt.principal), decimal.RequireFromString(tt.rate), tt.months)
			assert.Equal(t, tt.wantFinal, p.Final.String())
			assert.Equal(t, tt.wantGain, p.Gain.String())
			assert.Equal(t, tt.wantMonth, p.Months)
		})
	}
}

func TestProjectCapsHorizon(t *testing.T) {
	p := Project(decimal.NewFromInt(100), decimal.NewFromInt(6), MaxProjectionMonths+120)
	assert.Equal(t, MaxProjectionMonths, p.Months)
	assert.Equal(t, "0.5", p.MonthlyRate.String())
	assert.True(t, p.Final.GreaterThan(decimal.NewFromInt(100)))
}
