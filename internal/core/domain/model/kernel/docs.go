// Package kernel contains shared value objects used across all domain
// aggregates: opaque unique identifiers and monetary amounts.
//
// Both types are immutable and must be created through their constructor
// functions; zero values fail validation.
package kernel
