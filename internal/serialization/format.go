package serialization

import (
	"time"

	"github.com/feedforward-ml/feedforward/internal/network"
)

// Format constants.
const (
	MagicBytes      = "FFNN"
	FormatVersion   = 1
	HeaderAlignment = 64   // Align tensor data to 64 bytes
	FixedHeaderSize = 64   // fixed header size (0x40 bytes)
	ChecksumSize    = 32   // SHA-256 checksum size (32 bytes)
	ChecksumOffset  = 0x20 // Checksum offset in the fixed header

	// FileExtension is the conventional suffix of model files.
	FileExtension = ".ffnn"
)

// DTypeFloat64 is the only element type written by this package.
const DTypeFloat64 = "float64"

const float64Size = 8

// Flags for the .ffnn format.
const (
	FlagTrained     uint32 = 1 << 0 // bit 0: network has been trained
	FlagHasKeys     uint32 = 1 << 1 // bit 1: named-field keys included
	FlagHasMetadata uint32 = 1 << 2 // bit 2: custom metadata included
)

// Header represents the JSON header in a .ffnn file.
type Header struct {
	FormatVersion int               `json:"format_version"`
	ModelID       string            `json:"model_id"`
	CreatedAt     time.Time         `json:"created_at"`
	Config        network.Config    `json:"config"`
	Kind          network.Kind      `json:"kind"`
	InputKeys     []string          `json:"input_keys,omitempty"`
	OutputKeys    []string          `json:"output_keys,omitempty"`
	Trained       bool              `json:"trained"`
	Tensors       []TensorMeta      `json:"tensors"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// TensorMeta describes one matrix in the data section.
type TensorMeta struct {
	Name   string `json:"name"`   // e.g. "weight.0", "bias.1"
	DType  string `json:"dtype"`  // always "float64"
	Shape  []int  `json:"shape"`  // [rows, cols]
	Offset int64  `json:"offset"` // bytes from start of the data section
	Size   int64  `json:"size"`   // size in bytes
}

// Model is a decoded model file.
type Model struct {
	Header   Header
	Flags    uint32
	Checksum [ChecksumSize]byte
	Snapshot network.Snapshot
}

// Options controls the header fields Encode fills in.
type Options struct {
	// ModelID defaults to a fresh random UUID.
	ModelID string
	// CreatedAt defaults to the current UTC time.
	CreatedAt time.Time
	Metadata  map[string]string
}
