package workbook

import (
	"log/slog"
	"strings"
)

// Keyword sets for heuristic sheet classification. Matching is
// case-insensitive substring matching, first sheet in workbook order wins.
var (
	dealsKeywords = []string{"deal", "pipeline", "opportunit"}
	teamsKeywords = []string{"team", "sales"}
)

// Resolution names the sheets chosen for each role
type Resolution struct {
	DealsSheet string
	TeamsSheet string
}

// Resolve classifies which sheet holds deals and which holds the sales
// team mapping. A non-empty override bypasses detection for that role
// only. Without a keyword match the first sheet is used for deals and the
// last for teams, so resolution always succeeds for a workbook with at
// least one sheet; both roles may land on the same sheet.
func Resolve(sheets []string, dealsOverride, teamsOverride string, logger *slog.Logger) Resolution {
	logger.Info("Available sheets", slog.Any("sheets", sheets))

	deals := dealsOverride
	if deals == "" {
		deals = findSheet(sheets, dealsKeywords)
		if deals == "" {
			deals = sheets[0]
		}
	}

	teams := teamsOverride
	if teams == "" {
		teams = findSheet(sheets, teamsKeywords)
		if teams == "" {
			teams = sheets[len(sheets)-1]
		}
	}

	logger.Info("Using deals sheet", slog.String("sheet", deals))
	logger.Info("Using teams sheet", slog.String("sheet", teams))

	return Resolution{DealsSheet: deals, TeamsSheet: teams}
}

// findSheet returns the first sheet whose lowercased name contains any of
// the keywords, or ""
func findSheet(sheets []string, keywords []string) string {
	for _, sheet := range sheets {
		lname := strings.ToLower(sheet)
		for _, keyword := range keywords {
			if strings.Contains(lname, keyword) {
				return sheet
			}
		}
	}
	return ""
}
