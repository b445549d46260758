package utils

import "errors"

var (
	ErrDataUnavailable       = errors.New("no data available for request")
	ErrResolutionAmbiguous   = errors.New("could not resolve location")
	ErrCollaboratorFailure   = errors.New("upstream provider failure")
	ErrDatabaseError         = errors.New("database error")
	ErrItineraryNotFound     = errors.New("itinerary not found")
	ErrSummarizerUnavailable = errors.New("summary provider unavailable")
)
