// Package provider defines the fixed interface a vendor quality-assessment
// implementation must satisfy, the registry through which implementations
// are loaded by name, and the version gate that guards the contract between
// the harness and an independently built provider.
package provider
