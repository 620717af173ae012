package domain

import "errors"

var ErrInvalidAmount = errors.New("amount must be greater than zero")
var ErrPaymentProvider = errors.New("payment provider unavailable")
var ErrPaymentDeclined = errors.New("payment declined")
