// Package smoketest exercises a running activities instance end to end.
package smoketest

import "time"

// Config holds configuration for the smoke run.
type Config struct {
	BaseURL string        // Base URL of the service
	Rounds  int           // Number of signup/unregister rounds
	Timeout time.Duration // HTTP request timeout
	Verbose bool          // Enable verbose logging
}

// Activity mirrors one entry of GET /activities.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse is the success body of signup and unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body of signup and unregister.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Stats holds smoke run statistics.
type Stats struct {
	Activities       int
	Signups          int
	DuplicateRejects int
	Unregisters      int
	AbsentRejects    int
	OverCapacity     int
	Failures         int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
