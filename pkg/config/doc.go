// Package config reads the EVENT_STORE_* environment variables spec.md §6
// defines into a Config value, applying the documented defaults when a
// variable is unset.
package config
