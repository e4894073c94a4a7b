package http

import (
	"net/http"

	"monitor-srv/internal/notification"
	"monitor-srv/pkg/errors"
	"monitor-srv/pkg/response"
)

var errWrongBody = errors.NewHTTPError(http.StatusBadRequest, "Invalid request body")

var errMapping = response.ErrorMapping{
	notification.ErrShipmentNotFound:        errors.NewHTTPError(http.StatusNotFound, "Shipment not found"),
	notification.ErrInvalidNotificationType: errors.NewHTTPError(http.StatusBadRequest, "Invalid notification type"),
}
