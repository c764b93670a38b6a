// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO dependencies. The analytics
// service in particular is stateless: every aggregation is a pure
// function of the filtered post set it is handed.
package services
