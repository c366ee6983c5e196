package stream

// Counters are the two monotonically increasing id sources of one document
// run: one for emitted rows, one for emitted numeric values. They are
// never reset between pages, so ids are unique across the whole document
// and their order follows top-to-bottom, left-to-right emission order.
//
// Counters are deliberately an explicit object rather than package state:
// every run gets its own instance, which keeps concurrent runs independent
// by construction. A single instance is not safe for concurrent use.
type Counters struct {
	rows   int
	values int
}

// NewCounters returns fresh counters for one document run.
func NewCounters() *Counters { return &Counters{} }

// NextRow increments the row counter and returns the new row id.
func (c *Counters) NextRow() int {
	c.rows++
	return c.rows
}

// NextValue increments the value counter and returns the new value id.
func (c *Counters) NextValue() int {
	c.values++
	return c.values
}

// Rows reports how many row ids have been issued.
func (c *Counters) Rows() int { return c.rows }

// Values reports how many value ids have been issued.
func (c *Counters) Values() int { return c.values }
