package serialization

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/feedforward-ml/feedforward/internal/network"
)

// Tensor names.
const (
	weightPrefix = "weight"
	biasPrefix   = "bias"
)

func tensorName(prefix string, layer int) string {
	return fmt.Sprintf("%s.%d", prefix, layer)
}

// Encode writes snap to w in .ffnn format and returns the header it wrote.
func Encode(w io.Writer, snap network.Snapshot, opts Options) (Header, error) {
	header := Header{
		FormatVersion: FormatVersion,
		ModelID:       opts.ModelID,
		CreatedAt:     opts.CreatedAt,
		Config:        snap.Config,
		Kind:          snap.Kind,
		InputKeys:     snap.InputKeys,
		OutputKeys:    snap.OutputKeys,
		Trained:       snap.Trained,
		Metadata:      opts.Metadata,
	}
	if header.ModelID == "" {
		header.ModelID = uuid.NewString()
	}
	if header.CreatedAt.IsZero() {
		header.CreatedAt = time.Now().UTC()
	}

	// Calculate tensor offsets and collect tensor data
	var data []byte
	appendGrids := func(prefix string, grids [][][]float64) error {
		for i, grid := range grids {
			rows := len(grid)
			if rows == 0 || len(grid[0]) == 0 {
				return fmt.Errorf("%w: %s is empty", ErrInvalidTensor, tensorName(prefix, i))
			}
			cols := len(grid[0])
			offset := int64(len(data))
			for r, row := range grid {
				if len(row) != cols {
					return fmt.Errorf("%w: %s row %d has %d columns, want %d",
						ErrInvalidTensor, tensorName(prefix, i), r, len(row), cols)
				}
				for _, v := range row {
					data = binary.LittleEndian.AppendUint64(data, math.Float64bits(v))
				}
			}
			header.Tensors = append(header.Tensors, TensorMeta{
				Name:   tensorName(prefix, i),
				DType:  DTypeFloat64,
				Shape:  []int{rows, cols},
				Offset: offset,
				Size:   int64(len(data)) - offset,
			})
		}
		return nil
	}
	if err := appendGrids(weightPrefix, snap.State.Weights); err != nil {
		return Header{}, err
	}
	if err := appendGrids(biasPrefix, snap.State.Biases); err != nil {
		return Header{}, err
	}
	if header.Tensors == nil {
		header.Tensors = []TensorMeta{}
	}

	checksum := ComputeChecksum(data)

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return Header{}, fmt.Errorf("failed to marshal header: %w", err)
	}

	fixedHeader := make([]byte, FixedHeaderSize)

	// 0x00-0x03: Magic bytes "FFNN"
	copy(fixedHeader[0:4], MagicBytes)

	// 0x04-0x07: Version
	binary.LittleEndian.PutUint32(fixedHeader[4:8], FormatVersion)

	// 0x08-0x0B: Flags
	binary.LittleEndian.PutUint32(fixedHeader[8:12], headerFlags(&header))

	// 0x0C-0x0F: Reserved (0)

	// 0x10-0x17: Header size
	binary.LittleEndian.PutUint64(fixedHeader[16:24], uint64(len(headerJSON)))

	// 0x18-0x1F: Data size
	binary.LittleEndian.PutUint64(fixedHeader[24:32], uint64(len(data)))

	// 0x20-0x3F: SHA-256 checksum
	copy(fixedHeader[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(fixedHeader); err != nil {
		return Header{}, fmt.Errorf("failed to write fixed header: %w", err)
	}
	if _, err := bw.Write(headerJSON); err != nil {
		return Header{}, fmt.Errorf("failed to write header JSON: %w", err)
	}
	if padding := alignmentPadding(len(headerJSON)); padding > 0 {
		if _, err := bw.Write(make([]byte, padding)); err != nil {
			return Header{}, fmt.Errorf("failed to write padding: %w", err)
		}
	}
	if _, err := bw.Write(data); err != nil {
		return Header{}, fmt.Errorf("failed to write tensor data: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return Header{}, fmt.Errorf("failed to flush: %w", err)
	}
	return header, nil
}

// SaveFile writes snap to path, replacing any existing file.
func SaveFile(path string, snap network.Snapshot, opts Options) (Header, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return Header{}, fmt.Errorf("failed to create file: %w", err)
	}
	header, err := Encode(file, snap, opts)
	if err != nil {
		_ = file.Close()
		return Header{}, err
	}
	if err := file.Close(); err != nil {
		return Header{}, fmt.Errorf("failed to close file: %w", err)
	}
	return header, nil
}

func headerFlags(h *Header) uint32 {
	var flags uint32
	if h.Trained {
		flags |= FlagTrained
	}
	if len(h.InputKeys) > 0 || len(h.OutputKeys) > 0 {
		flags |= FlagHasKeys
	}
	if len(h.Metadata) > 0 {
		flags |= FlagHasMetadata
	}
	return flags
}

// alignmentPadding returns the zero bytes needed after the JSON header so
// that the data section starts on a HeaderAlignment boundary.
func alignmentPadding(headerSize int) int64 {
	currentPos := int64(FixedHeaderSize) + int64(headerSize)
	return (HeaderAlignment - (currentPos % HeaderAlignment)) % HeaderAlignment
}
