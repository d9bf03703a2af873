package domain

import "go.trai.ch/zerr"

var (
	// ErrNoChangedClasses is returned when a plan is requested without any changed classes.
	ErrNoChangedClasses = zerr.New("no changed classes specified")

	// ErrMalformedReport is returned when the dependency report cannot be parsed.
	ErrMalformedReport = zerr.New("malformed dependency report")

	// ErrAnalyzerFailed is returned when the external dependency analyzer could not produce a report.
	ErrAnalyzerFailed = zerr.New("dependency analyzer failed")

	// ErrPlanningFailed is returned when the recompilation plan could not be computed.
	ErrPlanningFailed = zerr.New("recompilation planning failed")
)
