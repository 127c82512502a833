// Package model defines the core data structures for addonsync.
package model

import (
	"encoding/json"
	"mime"
	"os"
	"path/filepath"
)

// MessageKind distinguishes success banners from error banners.
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// StatusMessage is the single user-facing outcome of the most recent action.
type StatusMessage struct {
	Kind MessageKind `json:"type"`
	Text string      `json:"text"`
}

// IsError reports whether the message should be styled as an error.
func (m StatusMessage) IsError() bool {
	return m.Kind == MessageError
}

// Success returns a success message with the given text.
func Success(text string) *StatusMessage {
	return &StatusMessage{Kind: MessageSuccess, Text: text}
}

// Failure returns an error message with the given text.
func Failure(text string) *StatusMessage {
	return &StatusMessage{Kind: MessageError, Text: text}
}

// JSONMediaType is the declared content type an uploaded file must carry.
const JSONMediaType = "application/json"

// UploadedFile is a file handed to the controller by the user.
// It is consumed by a single load and never retained.
type UploadedFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// IsJSON reports whether the declared content type is application/json.
// Media type parameters (e.g. charset) are ignored.
func (f *UploadedFile) IsJSON() bool {
	mediaType, _, err := mime.ParseMediaType(f.ContentType)
	if err != nil {
		return false
	}
	return mediaType == JSONMediaType
}

// FileFromPath reads a local file and declares its content type from the
// file extension, the way a browser file picker would.
func FileFromPath(path string) (*UploadedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &UploadedFile{
		Name:        filepath.Base(path),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Content:     data,
	}, nil
}

// Collection is the addon collection extracted from an exported document.
// Raw holds the extracted value verbatim. Items is populated only when the
// value is a JSON array.
type Collection struct {
	Raw    json.RawMessage
	Items  []json.RawMessage
	IsList bool
}

// Count returns the number of addons and whether that number is known.
// It is unknown when the extracted value is not an array.
func (c Collection) Count() (int, bool) {
	if !c.IsList {
		return 0, false
	}
	return len(c.Items), true
}

// Empty reports whether the collection is unusable for a sync: anything
// other than a non-empty array counts as empty.
func (c Collection) Empty() bool {
	return !c.IsList || len(c.Items) == 0
}

// Descriptor is a display-only view of an addon record. Records are passed
// to the remote service verbatim; this projection exists for listing them.
type Descriptor struct {
	TransportURL string `json:"transportUrl"`
	Manifest     struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"manifest"`
	Flags struct {
		Official  bool `json:"official"`
		Protected bool `json:"protected"`
	} `json:"flags"`
}

// Describe decodes the display fields of every item in the collection.
// Items that are not objects yield an empty descriptor.
func (c Collection) Describe() []Descriptor {
	out := make([]Descriptor, len(c.Items))
	for i, item := range c.Items {
		// Non-object items keep the zero value
		_ = json.Unmarshal(item, &out[i])
	}
	return out
}
