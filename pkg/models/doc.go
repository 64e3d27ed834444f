// Package models holds the data-transfer objects exchanged with the metadata
// catalog REST API.
//
// Field names follow the vendor wire format: read-only attributes set by the
// platform are prefixed with an underscore (_id, _created, _modified, _tag),
// and a few legacy attributes carry a dollar prefix ($scan). JSON struct tags
// keep the mapping explicit so the Go names can stay idiomatic.
package models
