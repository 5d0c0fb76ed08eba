// Package greeter produces the bodies served by the HTTP routes.
//
// The service has no mutable state. The only ambient input is the clock,
// which is injectable so the current-time message can be tested.
package greeter
