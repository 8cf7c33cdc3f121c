// Package fixtures holds the default dataset the seed command loads into a
// fresh database: the initial staff roster, the stock WFH reasons and a
// handful of historic entries so the analytics report has data on day one.
package fixtures

import "time"

var StaffNames = []string{
	"Schalk Lotz",
	"Yvette Gottschalk",
	"Werner Cloete",
	"Olan Moodley",
	"Alexander Esterhuyse",
	"Iggy Maboshego",
	"Monray Jacobs",
	"Sauraav Jayrajh",
}

var ReasonNames = []string{
	"Medical",
	"Family",
	"Contractors at Home",
	"Deliveries",
	"Load shedding",
	"Internet outage",
	"Focus work",
	"Other",
}

// SeedEntry references staff and reasons by name; the seeder resolves the
// names to IDs after upserting the roster.
type SeedEntry struct {
	StaffName  string
	ReasonName string
	Date       time.Time
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("fixtures: bad seed date " + s)
	}
	return t
}

func HistoricEntries() []SeedEntry {
	entries := []SeedEntry{
		{StaffName: "Schalk Lotz", ReasonName: "Other", Date: day("2025-08-07")},
		{StaffName: "Sauraav Jayrajh", ReasonName: "Family", Date: day("2025-08-07")},
		{StaffName: "Yvette Gottschalk", ReasonName: "Contractors at Home", Date: day("2025-08-13")},
		{StaffName: "Yvette Gottschalk", ReasonName: "Contractors at Home", Date: day("2025-08-14")},
	}

	// Two company-wide focus days.
	for _, d := range []string{"2025-06-05", "2025-06-12"} {
		for _, name := range StaffNames {
			entries = append(entries, SeedEntry{
				StaffName:  name,
				ReasonName: "Focus work",
				Date:       day(d),
			})
		}
	}

	return entries
}
