package export

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"io"
	"math/bits"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/limaJavier/permtable/pkg/permutation"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/zeebo/blake3"
)

const columnMajor = "column-major"

// document is the CBOR representation of a table; every permutation occupies Limit consecutive cells
type document struct {
	Limit   uint64   `cbor:"limit"`
	Columns uint64   `cbor:"columns"`
	Order   string   `cbor:"order"`
	Cells   []uint64 `cbor:"cells"`
}

// WriteText dumps the table one row per line, with values separated by a single space.
func WriteText(w io.Writer, table *permutation.Table) error {
	for row := range table.Limit {
		values := lo.Map(table.Row(row), func(value uint64, _ int) string {
			return strconv.FormatUint(value, 10)
		})
		if _, err := io.WriteString(w, strings.Join(values, " ")+"\n"); err != nil {
			return errors.Wrapf(err, "cannot write row %v", row)
		}
	}
	return nil
}

func Encode(table *permutation.Table) ([]byte, error) {
	data, err := cbor.Marshal(document{
		Limit:   table.Limit,
		Columns: table.Columns,
		Order:   columnMajor,
		Cells:   table.ColumnMajor(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "cannot encode table")
	}
	return data, nil
}

// Decode reads a table produced by Encode back into row-major form.
func Decode(data []byte) (*permutation.Table, error) {
	var decoded document
	if err := cbor.Unmarshal(data, &decoded); err != nil {
		return nil, errors.Wrap(err, "cannot decode table")
	}
	if decoded.Order != columnMajor {
		return nil, errors.Errorf("unsupported cell order %q", decoded.Order)
	}
	if decoded.Limit > permutation.MaxTableLimit {
		return nil, errors.Errorf("a table of %v rows cannot be allocated (at most %v)", decoded.Limit, permutation.MaxTableLimit)
	}
	columns, _ := permutation.Factorial(decoded.Limit)
	if decoded.Columns != columns {
		return nil, errors.Errorf("a table of %v rows has %v columns, not %v", decoded.Limit, columns, decoded.Columns)
	}
	if hi, cells := bits.Mul64(decoded.Limit, decoded.Columns); hi != 0 || uint64(len(decoded.Cells)) != cells {
		return nil, errors.Errorf("a table of %v rows and %v columns cannot hold %v cells", decoded.Limit, decoded.Columns, len(decoded.Cells))
	}

	table := &permutation.Table{
		Limit:   decoded.Limit,
		Columns: decoded.Columns,
		Cells:   make([]uint64, len(decoded.Cells)),
	}
	for column := range decoded.Columns {
		for row := range decoded.Limit {
			table.Cells[row*decoded.Columns+column] = decoded.Cells[column*decoded.Limit+row]
		}
	}
	return table, nil
}

func Compress(data []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create zstd encoder")
	}
	defer encoder.Close()
	return encoder.EncodeAll(data, nil), nil
}

func Decompress(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create zstd decoder")
	}
	defer decoder.Close()

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decompress table")
	}
	return decompressed, nil
}

// Fingerprint returns the hex BLAKE3 digest of the limit followed by the column-major cells,
// each as a little-endian uint64.
func Fingerprint(table *permutation.Table) string {
	hasher := blake3.New()
	buffer := make([]byte, 8)

	binary.LittleEndian.PutUint64(buffer, table.Limit)
	hasher.Write(buffer)
	for _, cell := range table.ColumnMajor() {
		binary.LittleEndian.PutUint64(buffer, cell)
		hasher.Write(buffer)
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

// Marshal renders the table in the given format ("text" or "cbor"), optionally zstd-compressed.
func Marshal(table *permutation.Table, format string, compress bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(format) {
	case "text":
		var buffer bytes.Buffer
		err = WriteText(&buffer, table)
		data = buffer.Bytes()
	case "cbor":
		data, err = Encode(table)
	default:
		err = errors.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if compress {
		return Compress(data)
	}
	return data, nil
}
