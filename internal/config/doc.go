// Package config loads replay scenarios: which application to mount, into
// which container, from which initial model, and the user steps to replay
// against it. Scenarios are written in HCL.
package config
