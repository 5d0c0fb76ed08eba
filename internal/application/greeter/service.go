package greeter

import (
	"time"
)

const (
	// GreetingMessage is served on the root route
	GreetingMessage = "Hello, Nikhil Lohar this side. Welcome to my first Node.js app!"

	// HealthMessage is served on the health check route
	HealthMessage = "The server up and running!"

	// TimePrefix precedes the formatted time of day
	TimePrefix = "The current time is "

	// DefaultLayout renders time of day as h:mm:ss AM/PM
	DefaultLayout = "3:04:05 PM"
)

// Service builds response messages
type Service struct {
	now      func() time.Time
	layout   string
	location *time.Location
}

// Option configures a Service
type Option func(*Service)

// WithClock sets the clock used by CurrentTime
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLayout sets the time layout used by CurrentTime
func WithLayout(layout string) Option {
	return func(s *Service) {
		if layout != "" {
			s.layout = layout
		}
	}
}

// WithLocation sets the zone the current time is rendered in
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// NewService creates a new greeter service
func NewService(opts ...Option) *Service {
	s := &Service{
		now:      time.Now,
		layout:   DefaultLayout,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Greeting returns the welcome message
func (s *Service) Greeting() string {
	return GreetingMessage
}

// Health returns the status message
func (s *Service) Health() string {
	return HealthMessage
}

// CurrentTime returns the current time of day, read from the clock at call time
func (s *Service) CurrentTime() string {
	return TimePrefix + s.now().In(s.location).Format(s.layout)
}
