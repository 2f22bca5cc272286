package application

import (
	"strconv"
	"strings"
	"time"

	"finsight/internal/finance/domain"
)

const dateLayout = "2006-01-02"

// Named relative filters accepted by the list endpoints.
const (
	FilterThisMonth = "this_month"
	FilterLastMonth = "last_month"
	FilterThisYear  = "this_year"
)

// ListParams carries the raw, untrusted query values of a transaction list
// request. Empty strings mean the parameter was absent.
type ListParams struct {
	StartDate string
	EndDate   string
	Filter    string
	Limit     string
}

// ResolveQuery turns request parameters into a query descriptor. It is total:
// every input combination yields a valid descriptor. The date window is
// picked by priority: an explicit start/end pair wins, then a recognized
// named filter, otherwise no window is applied and the full history is
// returned.
//
// A limit that does not parse as a positive integer is treated as absent
// rather than rejected.
func ResolveQuery(userID, transactionType string, params ListParams, now time.Time) domain.TransactionQuery {
	query := domain.TransactionQuery{
		UserID: userID,
		Type:   transactionType,
		Window: resolveWindow(params, now),
	}
	if limit, err := strconv.Atoi(strings.TrimSpace(params.Limit)); err == nil && limit > 0 {
		query.Limit = limit
	}
	return query
}

func resolveWindow(params ListParams, now time.Time) domain.DateWindow {
	start, startErr := time.Parse(dateLayout, params.StartDate)
	end, endErr := time.Parse(dateLayout, params.EndDate)
	if startErr == nil && endErr == nil {
		return domain.DateWindow{Start: &start, End: &end}
	}

	switch params.Filter {
	case FilterThisMonth:
		// Open end: future-dated entries within the month are included.
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return domain.DateWindow{Start: &first}
	case FilterLastMonth:
		firstOfCurrent := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		first := firstOfCurrent.AddDate(0, -1, 0)
		last := firstOfCurrent.AddDate(0, 0, -1)
		return domain.DateWindow{Start: &first, End: &last}
	case FilterThisYear:
		first := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return domain.DateWindow{Start: &first}
	}

	return domain.DateWindow{}
}
