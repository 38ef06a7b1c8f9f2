// Package storage is the object storage layer: a MinIO client behind the
// narrow Client interface, plus helpers for the JSON objects the service keeps
// in its bucket.
//
// Rosters are read with ReadObject and listed with ListKeys; reports are
// written with PutJSON and read back with GetJSON. A missing object is
// reported as ErrObjectNotFound so features can map it to 404.
//
// core/storage/mocks provides a testify mock of Client.
package storage
