// Package actor models the principal on whose behalf a command runs.
package actor
