package journal

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrInvalidPayloadJSON = errors.New("payload json is not valid")
var ErrInvalidMetadataJSON = errors.New("metadata json is not valid")

// Entries is an alias type for a slice of Entry
type Entries = []Entry

// Entry is a DTO (data transfer object) used by the journal to record executed commands and query them back.
//
// It is built on scalars to be completely agnostic of the implementation of Commands in the client code.
//
// While its properties are exported, it should only be constructed with the supplied factory methods:
//   - BuildEntry
//   - BuildEntryWithEmptyMetadata
type Entry struct {
	CommandName  string
	ExecutedAt   time.Time
	PayloadJSON  []byte
	MetadataJSON []byte
}

// BuildEntry is a factory method for Entry.
//
// It populates the Entry with the given scalar input.
// Returns an error if payloadJSON or metadataJSON are not valid JSON.
func BuildEntry(commandName string, executedAt time.Time, payloadJSON []byte, metadataJSON []byte) (Entry, error) {
	if !json.Valid(payloadJSON) {
		return Entry{}, ErrInvalidPayloadJSON
	}

	if !json.Valid(metadataJSON) {
		return Entry{}, ErrInvalidMetadataJSON
	}

	return Entry{
		CommandName:  commandName,
		ExecutedAt:   executedAt,
		PayloadJSON:  payloadJSON,
		MetadataJSON: metadataJSON,
	}, nil
}

// BuildEntryWithEmptyMetadata is a factory method for Entry.
//
// It populates the Entry with the given scalar input and creates valid empty JSON for MetadataJSON.
// Returns an error if payloadJSON is not valid JSON.
func BuildEntryWithEmptyMetadata(commandName string, executedAt time.Time, payloadJSON []byte) (Entry, error) {
	return BuildEntry(commandName, executedAt, payloadJSON, []byte("{}"))
}
