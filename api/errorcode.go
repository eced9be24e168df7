package api

import (
	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/region"
	"github.com/bitmark-inc/covid-dashboard/series"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1400: region.ErrUnknownRegion.Error(),
		1401: "unknown metric",
		1402: series.ErrUnknownSortColumn.Error(),
		1403: series.ErrUnknownCountry.Error(),

		1500: dashboard.ErrDatasetUnavailable.Error(),
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorUnknownRegion     = errorJSON(1400)
	errorUnknownMetric     = errorJSON(1401)
	errorUnknownSortColumn = errorJSON(1402)
	errorUnknownCountry    = errorJSON(1403)

	errorDatasetUnavailable = errorJSON(1500)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
