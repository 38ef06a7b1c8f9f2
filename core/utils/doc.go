// Package utils provides common utility functions for the figurine-manager application.
// It includes helpers for loose type conversion of decoded input and for optional
// (pointer) fields, shared by packages that decode user documents.
package utils
