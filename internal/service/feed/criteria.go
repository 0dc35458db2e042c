package feed

import (
	"strconv"
	"strings"
	"time"

	"github.com/thepole/flyerboard-backend/internal/domain"
)

// dateLayout is the wire format for criteria date bounds.
const dateLayout = "2006-01-02"

// CriteriaInput carries raw, untrusted filter values as they arrive from
// the transport layer (query parameters). Empty strings mean "no
// constraint".
type CriteriaInput struct {
	Category     string
	City         string
	DateFrom     string
	DateTo       string
	IncludeAdult bool
}

// Criteria is the validated form of CriteriaInput. All fields are
// independently optional.
type Criteria struct {
	CategoryID   *int32
	City         *string
	DateFrom     *time.Time
	DateTo       *time.Time
	IncludeAdult bool
}

// ParseCriteria validates and converts raw filter values. A malformed
// category id or date is a validation error, never silently dropped.
// An inverted date range is NOT rejected here; it simply selects nothing.
func ParseCriteria(in CriteriaInput) (Criteria, error) {
	var (
		c    Criteria
		errs []domain.FieldError
	)

	category := strings.TrimSpace(in.Category)
	if category != "" && category != "all" {
		id, err := strconv.ParseInt(category, 10, 32)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "category", Message: "must be an integer category id"})
		} else {
			v := int32(id)
			c.CategoryID = &v
		}
	}

	if city := strings.TrimSpace(in.City); city != "" {
		c.City = &city
	}

	if raw := strings.TrimSpace(in.DateFrom); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "date_from", Message: "must be a date in YYYY-MM-DD format"})
		} else {
			c.DateFrom = &t
		}
	}

	if raw := strings.TrimSpace(in.DateTo); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "date_to", Message: "must be a date in YYYY-MM-DD format"})
		} else {
			c.DateTo = &t
		}
	}

	c.IncludeAdult = in.IncludeAdult

	if len(errs) > 0 {
		return Criteria{}, domain.NewValidationErrors(errs)
	}
	return c, nil
}
