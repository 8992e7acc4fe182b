package academic

import (
	"sync"
	"time"
)

// York returns the University of York term and holiday dates from
// 2018/19 through 2027/28.
//
// Term dates are published at https://www.york.ac.uk/about/term-dates/.
// A term begins on the first day listed for it and the following holiday
// begins on the last day listed for that term. For example, the website's
// "Spring Term: Monday 6 January 2020 - Friday 13 March 2020" becomes
//
//	NewTerm(Date(2020, time.January, 6), "Spring"),
//	NewHoliday(Date(2020, time.March, 13), "Easter"),
var York = sync.OnceValue(func() *Table {
	return MustTable(yorkPeriods()...)
})

func yorkPeriods() []Period {
	return []Period{
		NewTerm(Date(2018, time.September, 24), "Autumn"),
		NewHoliday(Date(2018, time.November, 30), "Christmas"),
		NewTerm(Date(2019, time.January, 7), "Spring"),
		NewHoliday(Date(2019, time.March, 15), "Easter"),
		NewTerm(Date(2019, time.April, 15), "Summer"),
		NewHoliday(Date(2019, time.June, 21), "Summer"),

		NewTerm(Date(2019, time.September, 30), "Autumn"),
		NewHoliday(Date(2019, time.December, 6), "Christmas"),
		NewTerm(Date(2020, time.January, 6), "Spring"),
		NewHoliday(Date(2020, time.March, 13), "Easter"),
		NewTerm(Date(2020, time.April, 14), "Summer"),
		NewHoliday(Date(2020, time.June, 19), "Summer"),

		NewTerm(Date(2020, time.September, 28), "Autumn"),
		NewHoliday(Date(2020, time.December, 4), "Christmas"),
		NewTerm(Date(2021, time.January, 11), "Spring"),
		NewHoliday(Date(2021, time.March, 19), "Easter"),
		NewTerm(Date(2021, time.April, 19), "Summer"),
		NewHoliday(Date(2021, time.June, 25), "Summer"),

		NewTerm(Date(2021, time.September, 27), "Autumn"),
		NewHoliday(Date(2021, time.December, 3), "Christmas"),
		NewTerm(Date(2022, time.January, 10), "Spring"),
		NewHoliday(Date(2022, time.March, 18), "Easter"),
		NewTerm(Date(2022, time.April, 19), "Summer"),
		NewHoliday(Date(2022, time.June, 24), "Summer"),

		NewTerm(Date(2022, time.September, 26), "Autumn"),
		NewHoliday(Date(2022, time.December, 2), "Christmas"),
		NewTerm(Date(2023, time.January, 9), "Spring"),
		NewHoliday(Date(2023, time.March, 17), "Easter"),
		NewTerm(Date(2023, time.April, 17), "Summer"),
		NewHoliday(Date(2023, time.June, 23), "Summer"),

		NewTerm(Date(2023, time.September, 25), "Autumn"),
		NewHoliday(Date(2023, time.December, 1), "Christmas"),
		NewTerm(Date(2024, time.January, 8), "Spring"),
		NewHoliday(Date(2024, time.March, 15), "Easter"),
		NewTerm(Date(2024, time.April, 15), "Summer"),
		NewHoliday(Date(2024, time.June, 21), "Summer"),

		NewTerm(Date(2024, time.September, 23), "Autumn"),
		NewHoliday(Date(2024, time.November, 29), "Christmas"),
		NewTerm(Date(2025, time.January, 6), "Spring"),
		NewHoliday(Date(2025, time.March, 14), "Easter"),
		NewTerm(Date(2025, time.April, 22), "Summer"),
		NewHoliday(Date(2025, time.June, 27), "Summer"),

		NewTerm(Date(2025, time.September, 29), "Autumn"),
		NewHoliday(Date(2025, time.December, 5), "Christmas"),
		NewTerm(Date(2026, time.January, 12), "Spring"),
		NewHoliday(Date(2026, time.March, 20), "Easter"),
		NewTerm(Date(2026, time.April, 20), "Summer"),
		NewHoliday(Date(2026, time.June, 26), "Summer"),

		NewTerm(Date(2026, time.September, 28), "Autumn"),
		NewHoliday(Date(2026, time.December, 4), "Christmas"),
		NewTerm(Date(2027, time.January, 11), "Spring"),
		NewHoliday(Date(2027, time.March, 19), "Easter"),
		NewTerm(Date(2027, time.April, 19), "Summer"),
		NewHoliday(Date(2027, time.June, 25), "Summer"),

		NewTerm(Date(2027, time.September, 27), "Autumn"),
		NewHoliday(Date(2027, time.December, 3), "Christmas"),
		NewTerm(Date(2028, time.January, 10), "Spring"),
		NewHoliday(Date(2028, time.March, 17), "Easter"),
		NewTerm(Date(2028, time.April, 24), "Summer"),
		NewHoliday(Date(2028, time.June, 30), "Summer"),
	}
}
