package classifier

import "errors"

var (
	ErrMissingShipmentID = errors.New("snapshot has no shipment id")
)
