package services

// Service errors
var (
	ErrNoScorecards = &ServiceError{Message: "no scorecards to generate"}
)

// ServiceError represents a service-level error. Handlers report it as a
// validation failure.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}
