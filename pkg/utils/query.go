// Package utils holds small leaf helpers shared across packages.
package utils

import (
	"net/url"

	"github.com/google/go-querystring/query"
)

// DateRangeParams encodes the from-date/to-date pair that date-ranged GET
// endpoints expect as query parameters.
type DateRangeParams struct {
	FromDate string `url:"from-date"`
	ToDate   string `url:"to-date"`
}

// Values encodes the range as URL query values.
func (p DateRangeParams) Values() (url.Values, error) {
	return query.Values(p)
}
