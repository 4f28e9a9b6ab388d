// Package otp issues and verifies short-lived one-time passcodes.
//
// It keeps every outstanding challenge in process memory: a challenge binds a
// secret (a 6-digit code or an opaque reset token) to a key, with an absolute
// expiry and a bounded attempt budget. Verification is atomic and single-use.
// Delivery goes through pluggable channel adapters that degrade to a simulated
// send when no real gateway is configured.
package otp
