package db

import "errors"

// ErrPlanNotFound is returned when a plan id has no stored plan
var ErrPlanNotFound = errors.New("plan not found")
