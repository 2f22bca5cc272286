package domain

import "time"

// DateWindow is an inclusive calendar-date range resolved for one request.
// A nil bound leaves the window open on that side; the zero value applies no
// date constraint at all.
type DateWindow struct {
	Start *time.Time
	End   *time.Time
}

// TransactionQuery is a fully resolved query descriptor ready for the
// persistence layer: owner filter, transaction type, optional inclusive date
// bounds and an optional row cap. Result ordering is not part of the
// descriptor because it is fixed for every query: date descending, ties
// broken by creation timestamp descending.
type TransactionQuery struct {
	UserID string
	Type   string
	Window DateWindow
	// Limit caps the number of rows returned; zero means no cap.
	Limit int
}
