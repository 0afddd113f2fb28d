// Package testsupport holds fixture and configuration helpers shared by
// package tests.
package testsupport
