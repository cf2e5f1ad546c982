// Package request reads route and query parameters shared by several handlers.
package request

import (
	"net/http"
	"ohanna/internal/domains/calendar"
	"ohanna/shared/constant"
	"ohanna/shared/failure"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// PathMonth reads the {year} and {month} route parameters.
func PathMonth(r *http.Request) (int, time.Month, error) {
	return parseMonth(chi.URLParam(r, constant.RequestParamYear), chi.URLParam(r, constant.RequestParamMonth))
}

// QueryMonth reads the optional year and month query parameters. ok is false when neither is
// present.
func QueryMonth(r *http.Request) (year int, month time.Month, ok bool, err error) {
	query := r.URL.Query()
	rawYear := query.Get(constant.RequestParamYear)
	rawMonth := query.Get(constant.RequestParamMonth)

	if rawYear == "" && rawMonth == "" {
		return 0, 0, false, nil
	}

	year, month, err = parseMonth(rawYear, rawMonth)

	return year, month, err == nil, err
}

func parseMonth(rawYear, rawMonth string) (int, time.Month, error) {
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return 0, 0, failure.BadRequestFromString("year must be a number") //nolint:wrapcheck
	}

	month, err := strconv.Atoi(rawMonth)
	if err != nil {
		return 0, 0, failure.BadRequestFromString("month must be a number") //nolint:wrapcheck
	}

	if err = calendar.ValidateMonth(year, time.Month(month)); err != nil {
		return 0, 0, err
	}

	return year, time.Month(month), nil
}
