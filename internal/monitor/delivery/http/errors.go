package http

import (
	"net/http"

	"monitor-srv/internal/monitor"
	"monitor-srv/pkg/errors"
	"monitor-srv/pkg/response"
)

var errWrongPaginateQuery = errors.NewHTTPError(http.StatusBadRequest, "Invalid pagination query")

var errMapping = response.ErrorMapping{
	monitor.ErrRunInProgress: errors.NewHTTPError(http.StatusConflict, "A monitoring cycle is already in progress"),
}
