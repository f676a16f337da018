package repository

import "errors"

// ErrDuplicateEmail reports that a write violated the uniqueness constraint
// on a contact's email. The storage layer classifies the underlying driver
// error into this value; services and handlers match it with errors.Is.
var ErrDuplicateEmail = errors.New("contact email already exists")
