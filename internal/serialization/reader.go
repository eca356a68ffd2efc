package serialization

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/feedforward-ml/feedforward/internal/network"
)

// ReaderOptions configures Decode.
type ReaderOptions struct {
	SkipChecksumValidation bool            // Skip checksum validation (faster but less safe)
	ValidationLevel        ValidationLevel // Validation strictness level
}

// Decode reads a .ffnn model with strict validation.
func Decode(r io.Reader) (*Model, error) {
	return DecodeWithOptions(r, ReaderOptions{ValidationLevel: ValidationStrict})
}

// DecodeWithOptions reads a .ffnn model with custom options.
func DecodeWithOptions(r io.Reader, opts ReaderOptions) (*Model, error) {
	br := bufio.NewReader(r)

	fixedHeader := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(br, fixedHeader); err != nil {
		return nil, fmt.Errorf("failed to read fixed header: %w", err)
	}
	if string(fixedHeader[0:4]) != MagicBytes {
		return nil, ErrInvalidMagic
	}
	if version := binary.LittleEndian.Uint32(fixedHeader[4:8]); version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	model := &Model{Flags: binary.LittleEndian.Uint32(fixedHeader[8:12])}
	headerSize := binary.LittleEndian.Uint64(fixedHeader[16:24])
	dataSize := binary.LittleEndian.Uint64(fixedHeader[24:32])
	copy(model.Checksum[:], fixedHeader[ChecksumOffset:ChecksumOffset+ChecksumSize])

	if headerSize > MaxHeaderSize {
		return nil, ErrHeaderTooLarge
	}
	if dataSize > MaxDataSize {
		return nil, fmt.Errorf("%w: data size %d", ErrOutOfBounds, dataSize)
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(br, headerBytes); err != nil {
		return nil, fmt.Errorf("failed to read header JSON: %w", err)
	}
	if err := json.Unmarshal(headerBytes, &model.Header); err != nil {
		return nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	if _, err := io.CopyN(io.Discard, br, alignmentPadding(int(headerSize))); err != nil {
		return nil, fmt.Errorf("failed to skip padding: %w", err)
	}

	// The declared size is not trusted for allocation.
	data, err := io.ReadAll(io.LimitReader(br, int64(dataSize)))
	if err != nil {
		return nil, fmt.Errorf("failed to read tensor data: %w", err)
	}
	if uint64(len(data)) != dataSize {
		return nil, fmt.Errorf("failed to read tensor data: %w: got %d of %d bytes",
			io.ErrUnexpectedEOF, len(data), dataSize)
	}

	if !opts.SkipChecksumValidation {
		if err := ValidateChecksum(ComputeChecksum(data), model.Checksum); err != nil {
			return nil, err
		}
	}

	//nolint:gosec // G115: dataSize is bounded by MaxDataSize
	if err := ValidateHeader(&model.Header, int64(dataSize), opts.ValidationLevel); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	snap, err := snapshotFromTensors(&model.Header, data)
	if err != nil {
		return nil, err
	}
	model.Snapshot = snap
	return model, nil
}

// LoadFile reads a .ffnn model from path with strict validation.
func LoadFile(path string) (*Model, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	model, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return model, nil
}

// snapshotFromTensors rebuilds the network snapshot from the tensor table.
func snapshotFromTensors(h *Header, data []byte) (snap network.Snapshot, err error) {
	snap.Config = h.Config
	snap.Kind = h.Kind
	snap.InputKeys = h.InputKeys
	snap.OutputKeys = h.OutputKeys
	snap.Trained = h.Trained

	byName := make(map[string]TensorMeta, len(h.Tensors))
	for _, t := range h.Tensors {
		byName[t.Name] = t
	}

	readLayers := func(prefix string) ([][][]float64, error) {
		var out [][][]float64
		for i := 0; ; i++ {
			t, ok := byName[tensorName(prefix, i)]
			if !ok {
				break
			}
			grid, err := readGrid(t, data)
			if err != nil {
				return nil, err
			}
			out = append(out, grid)
			delete(byName, t.Name)
		}
		return out, nil
	}

	if snap.State.Weights, err = readLayers(weightPrefix); err != nil {
		return snap, err
	}
	if snap.State.Biases, err = readLayers(biasPrefix); err != nil {
		return snap, err
	}
	if len(snap.State.Weights) != len(snap.State.Biases) {
		return snap, fmt.Errorf("%w: %d weight and %d bias tensors",
			ErrMissingTensor, len(snap.State.Weights), len(snap.State.Biases))
	}
	for name := range byName {
		if strings.HasPrefix(name, weightPrefix) || strings.HasPrefix(name, biasPrefix) {
			return snap, fmt.Errorf("%w: %q is not contiguous with the other layers", ErrMissingTensor, name)
		}
	}
	return snap, nil
}

func readGrid(t TensorMeta, data []byte) ([][]float64, error) {
	if err := ValidateTensorMeta(t); err != nil {
		return nil, err
	}
	if t.Offset < 0 || t.Offset > int64(len(data)) || t.Size > int64(len(data))-t.Offset {
		return nil, &ValidationError{
			Type:    "out_of_bounds",
			Tensor:  t.Name,
			Details: fmt.Sprintf("offset %d + size %d > data_size %d", t.Offset, t.Size, len(data)),
			Err:     ErrOutOfBounds,
		}
	}

	rows, cols := t.Shape[0], t.Shape[1]
	raw := data[t.Offset : t.Offset+t.Size]
	grid := make([][]float64, rows)
	for i := range grid {
		row := make([]float64, cols)
		for j := range row {
			pos := (i*cols + j) * float64Size
			row[j] = math.Float64frombits(binary.LittleEndian.Uint64(raw[pos : pos+float64Size]))
		}
		grid[i] = row
	}
	return grid, nil
}
