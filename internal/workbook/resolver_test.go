package workbook

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		sheets        []string
		dealsOverride string
		teamsOverride string
		wantDeals     string
		wantTeams     string
	}{
		{
			name:      "keyword match on both roles",
			sheets:    []string{"Pipeline", "Sales Team"},
			wantDeals: "Pipeline",
			wantTeams: "Sales Team",
		},
		{
			name:      "opportunities substring match",
			sheets:    []string{"Summary", "Opportunities", "Reps"},
			wantDeals: "Opportunities",
			wantTeams: "Reps", // no teams keyword, falls back to last
		},
		{
			name:      "case insensitive matching",
			sheets:    []string{"DEALS 2025", "TEAMS"},
			wantDeals: "DEALS 2025",
			wantTeams: "TEAMS",
		},
		{
			name:      "no keyword match falls back to first and last",
			sheets:    []string{"Alpha", "Beta", "Gamma"},
			wantDeals: "Alpha",
			wantTeams: "Gamma",
		},
		{
			name:      "first match wins in workbook order",
			sheets:    []string{"Old Deals", "New Deals", "Team A", "Team B"},
			wantDeals: "Old Deals",
			wantTeams: "Team A",
		},
		{
			name:      "ambiguous sheet can serve both roles",
			sheets:    []string{"Team Pipeline"},
			wantDeals: "Team Pipeline",
			wantTeams: "Team Pipeline",
		},
		{
			name:      "single unnamed sheet serves both roles",
			sheets:    []string{"Sheet1"},
			wantDeals: "Sheet1",
			wantTeams: "Sheet1",
		},
		{
			name:          "deals override only",
			sheets:        []string{"Pipeline", "Sales Team"},
			dealsOverride: "Sales Team",
			wantDeals:     "Sales Team",
			wantTeams:     "Sales Team",
		},
		{
			name:          "teams override only",
			sheets:        []string{"Pipeline", "Sales Team"},
			teamsOverride: "Pipeline",
			wantDeals:     "Pipeline",
			wantTeams:     "Pipeline",
		},
		{
			name:          "both overrides bypass detection entirely",
			sheets:        []string{"Alpha", "Beta"},
			dealsOverride: "Beta",
			teamsOverride: "Alpha",
			wantDeals:     "Beta",
			wantTeams:     "Alpha",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.sheets, tt.dealsOverride, tt.teamsOverride, slog.Default())

			assert.Equal(t, tt.wantDeals, got.DealsSheet)
			assert.Equal(t, tt.wantTeams, got.TeamsSheet)
		})
	}
}

func TestResolve_NeverInventsSheetNames(t *testing.T) {
	sheets := []string{"Quarterly", "Misc"}
	got := Resolve(sheets, "", "", slog.Default())

	assert.Contains(t, sheets, got.DealsSheet)
	assert.Contains(t, sheets, got.TeamsSheet)
}
