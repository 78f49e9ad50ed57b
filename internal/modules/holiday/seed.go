// README: Built-in Fiji public-holiday table.
package holiday

// Seed returns the Fiji public holidays. Movable feasts (Good Friday,
// Diwali, the Prophet's birthday) are fixed-date entries maintained per
// year; national days recur by month-day. Surcharges are FJD minor units.
func Seed() []Holiday {
	return []Holiday{
		{ID: "new-year", Name: "New Year's Day", MonthDay: "01-01", Surcharge: 2000},
		{ID: "girmit-day", Name: "Girmit Day", MonthDay: "05-14", Surcharge: 1500},
		{ID: "constitution-day", Name: "Constitution Day", MonthDay: "09-07", Surcharge: 1500},
		{ID: "fiji-day", Name: "Fiji Day", MonthDay: "10-10", Surcharge: 2000},
		{ID: "christmas", Name: "Christmas Day", MonthDay: "12-25", Surcharge: 2500},
		{ID: "boxing-day", Name: "Boxing Day", MonthDay: "12-26", Surcharge: 2000},

		{ID: "good-friday-2026", Name: "Good Friday", Date: "2026-04-03", Surcharge: 1500},
		{ID: "easter-saturday-2026", Name: "Easter Saturday", Date: "2026-04-04", Surcharge: 1500},
		{ID: "easter-monday-2026", Name: "Easter Monday", Date: "2026-04-06", Surcharge: 1500},
		{ID: "mawlid-2026", Name: "Prophet Mohammed's Birthday", Date: "2026-08-26", Surcharge: 1500},
		{ID: "diwali-2026", Name: "Diwali", Date: "2026-11-08", Surcharge: 1500},

		{ID: "good-friday-2027", Name: "Good Friday", Date: "2027-03-26", Surcharge: 1500},
		{ID: "easter-saturday-2027", Name: "Easter Saturday", Date: "2027-03-27", Surcharge: 1500},
		{ID: "easter-monday-2027", Name: "Easter Monday", Date: "2027-03-29", Surcharge: 1500},
		{ID: "diwali-2027", Name: "Diwali", Date: "2027-10-28", Surcharge: 1500},
	}
}
