package projectflow

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// day is a helper for tests to build a date from its ISO form.
func day(s string) Date { return MustParseDate(s) }
