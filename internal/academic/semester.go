package academic

// defaultSemesterWeeks names each week of a York academic year under the
// semester calendar, starting with Freshers Week.
var defaultSemesterWeeks = []string{
	"Freshers Week",
	"Teaching Week 1",
	"Teaching Week 2",
	"Teaching Week 3",
	"Teaching Week 4",
	"Teaching Week 5",
	"Consolidation Week",
	"Teaching Week 6",
	"Teaching Week 7",
	"Teaching Week 8",
	"Teaching Week 9",
	"Teaching Week 10",
	"Teaching Week 11",
	"Teaching Week 12",
	"Christmas Week 1",
	"Christmas Week 2",
	"Christmas Week 3",
	"Revision Week 1",
	"Assessment Week 1",
	"Assessment Week 2",
	"Assessment Week 3",
	"Refreshers Week",
	"Teaching Week 1",
	"Teaching Week 2",
	"Teaching Week 3",
	"Teaching Week 4",
	"Teaching Week 5",
	"Teaching Week 6",
	"Easter Week 1",
	"Easter Week 2",
	"Teaching Week 7",
	"Teaching Week 8",
	"Teaching Week 9",
	"Teaching Week 10",
	"Teaching Week 11",
	"Revision Week 1",
	"Assessment Week 1",
	"Assessment Week 2",
	"Assessment Week 3",
	"Summer Week 1",
	"Summer Week 2",
	"Summer Week 3",
	"Summer Week 4",
	"Summer Week 5",
	"Summer Week 6",
	"Summer Week 7",
	"Summer Week 8",
	"Summer Week 9",
	"Summer Week 10",
	"Summer Week 11",
	"Summer Week 12",
	"Summer Week 13",
	"Summer Week 14",
	"Summer Week 15",
}

// DefaultSemesterWeeks returns a copy of the standard semester week names.
func DefaultSemesterWeeks() []string {
	return append([]string(nil), defaultSemesterWeeks...)
}
