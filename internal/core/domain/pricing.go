package domain

import "errors"

// ServiceType is the fixed category of care service requested.
type ServiceType string

const (
	ServiceBabyCare    ServiceType = "baby-care"
	ServiceElderlyCare ServiceType = "elderly-care"
	ServiceSickCare    ServiceType = "sick-care"
)

// BillingUnit is the unit of time a service is charged by.
type BillingUnit string

const (
	UnitHour BillingUnit = "hour"
	UnitDay  BillingUnit = "day"
)

// Currency is the single denomination all prices are expressed in.
const Currency = "bdt"

var ErrInvalidService = errors.New("unknown service type")
var ErrInvalidDuration = errors.New("duration must be at least one billing unit")

// Rate is the fixed price charged per billing unit for a service type.
type Rate struct {
	PerUnit int64
	Unit    BillingUnit
}

// rateCard is the static price table. Every current service bills per day;
// an hourly service only needs a new row here.
var rateCard = map[ServiceType]Rate{
	ServiceBabyCare:    {PerUnit: 800, Unit: UnitDay},
	ServiceElderlyCare: {PerUnit: 1000, Unit: UnitDay},
	ServiceSickCare:    {PerUnit: 1200, Unit: UnitDay},
}

// RateFor looks up the per-unit rate for a service type. The second return
// value is false for unknown service types, whose rate is zero.
func RateFor(s ServiceType) (Rate, bool) {
	r, ok := rateCard[s]
	return r, ok
}

// Known reports whether s has an entry in the rate card.
func (s ServiceType) Known() bool {
	_, ok := rateCard[s]
	return ok
}

// Quote computes the total cost of units billing units of service s.
// It is pure: the only failure modes are an unknown service type (whose rate
// would be zero) and a non-positive duration.
func Quote(s ServiceType, units int) (int64, error) {
	rate, ok := rateCard[s]
	if !ok || rate.PerUnit <= 0 {
		return 0, ErrInvalidService
	}
	if units < 1 {
		return 0, ErrInvalidDuration
	}
	return rate.PerUnit * int64(units), nil
}
