// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to the remote knowledge store through the driven ports.
package services
