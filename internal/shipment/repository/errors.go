package repository

import "errors"

var ErrNotFound = errors.New("shipment not found")
