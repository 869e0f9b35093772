package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Kind is the wire discriminant identifying a sample variant.
type Kind uint32

const (
	// KindImmersive marks a sample from Immersive (mineral + liquid + timestamp).
	KindImmersive Kind = 0
	// KindTerraFirmaCraft marks a TerraFirmaCraft ore sample.
	KindTerraFirmaCraft Kind = 1
	// KindGeolosys marks a Geolosys ore sample.
	KindGeolosys Kind = 2
)

// FormatError reports a malformed byte stream or a value that does not fit
// its wire field.
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

// truncated maps a short read to a FormatError. Other read errors pass
// through unchanged so I/O failures stay distinguishable.
func truncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return &FormatError{Message: "unexpected end of sample data"}
	}
	return err
}

// SampleData is the variant-specific part of a sample. Exactly three types
// implement it: ImmersiveData, TerraFirmaCraftData and GeolosysData.
type SampleData interface {
	// Kind returns the wire discriminant for this variant.
	Kind() Kind
	// String renders the variant with its mod label for the lister.
	String() string

	encodePayload(w io.Writer) error
}

// ImmersiveData holds the Immersive-specific portion of a sample.
type ImmersiveData struct {
	// Mineral is the name of the mineral deposit.
	Mineral string
	// Liquid is the name of the liquid reservoir.
	Liquid string
	// Timestamp is the time the sample was taken.
	Timestamp uint64
}

func (d ImmersiveData) Kind() Kind { return KindImmersive }

func (d ImmersiveData) String() string {
	return fmt.Sprintf("Immersive %s, %s, timestamp %d", d.Mineral, d.Liquid, d.Timestamp)
}

func (d ImmersiveData) encodePayload(w io.Writer) error {
	if err := WriteString(w, d.Mineral); err != nil {
		return err
	}
	if err := WriteString(w, d.Liquid); err != nil {
		return err
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], d.Timestamp)
	_, err := w.Write(buf[:])
	return err
}

// TerraFirmaCraftData holds the ore name of a TerraFirmaCraft sample.
type TerraFirmaCraftData struct {
	Ore string
}

func (d TerraFirmaCraftData) Kind() Kind { return KindTerraFirmaCraft }

func (d TerraFirmaCraftData) String() string {
	return fmt.Sprintf("TFC %s", d.Ore)
}

func (d TerraFirmaCraftData) encodePayload(w io.Writer) error {
	return WriteString(w, d.Ore)
}

// GeolosysData holds the ore name of a Geolosys sample.
type GeolosysData struct {
	Ore string
}

func (d GeolosysData) Kind() Kind { return KindGeolosys }

func (d GeolosysData) String() string {
	return fmt.Sprintf("Geolosys %s", d.Ore)
}

func (d GeolosysData) encodePayload(w io.Writer) error {
	return WriteString(w, d.Ore)
}

// Sample is one mineral sample record.
type Sample struct {
	// Dimension is the ID of the game dimension containing the deposit.
	Dimension int32
	// X and Z are chunk-granularity coordinates.
	X, Z int32
	// Data is the variant-specific payload.
	Data SampleData
}

func (s Sample) String() string {
	return fmt.Sprintf("Dimension %d, X=%d, Z=%d: %s", s.Dimension, s.X, s.Z, s.Data)
}

// DecodeSample reads one record: discriminant, dimension, x, z, then the
// variant payload selected by the discriminant.
func DecodeSample(r io.Reader) (Sample, error) {
	var header [16]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return Sample{}, truncated(err)
	}

	kind := Kind(binary.BigEndian.Uint32(header[0:4]))
	sample := Sample{
		Dimension: int32(binary.BigEndian.Uint32(header[4:8])),
		X:         int32(binary.BigEndian.Uint32(header[8:12])),
		Z:         int32(binary.BigEndian.Uint32(header[12:16])),
	}

	switch kind {
	case KindImmersive:
		mineral, err := ReadString(r)
		if err != nil {
			return Sample{}, err
		}
		liquid, err := ReadString(r)
		if err != nil {
			return Sample{}, err
		}
		var ts [8]byte
		if _, err := io.ReadFull(r, ts[:]); err != nil {
			return Sample{}, truncated(err)
		}
		sample.Data = ImmersiveData{
			Mineral:   mineral,
			Liquid:    liquid,
			Timestamp: binary.BigEndian.Uint64(ts[:]),
		}
	case KindTerraFirmaCraft:
		ore, err := ReadString(r)
		if err != nil {
			return Sample{}, err
		}
		sample.Data = TerraFirmaCraftData{Ore: ore}
	case KindGeolosys:
		ore, err := ReadString(r)
		if err != nil {
			return Sample{}, err
		}
		sample.Data = GeolosysData{Ore: ore}
	default:
		return Sample{}, &FormatError{Message: fmt.Sprintf("invalid sample type %d", uint32(kind))}
	}

	return sample, nil
}

// EncodeSample writes one record, deriving the discriminant from the
// variant held in s.Data.
func EncodeSample(w io.Writer, s Sample) error {
	var header [16]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(s.Data.Kind()))
	binary.BigEndian.PutUint32(header[4:8], uint32(s.Dimension))
	binary.BigEndian.PutUint32(header[8:12], uint32(s.X))
	binary.BigEndian.PutUint32(header[12:16], uint32(s.Z))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	return s.Data.encodePayload(w)
}

// DecodeSampleList reads a four-byte record count followed by that many
// records. The stream ending before the declared count is satisfied is a
// FormatError; bytes after the last record are left unread.
func DecodeSampleList(r io.Reader) ([]Sample, error) {
	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return nil, truncated(err)
	}
	count := binary.BigEndian.Uint32(countBuf[:])

	// Clamp the capacity hint: a bogus count must not allocate the whole
	// declared size before the first record fails to parse.
	capHint := count
	if capHint > 1024 {
		capHint = 1024
	}
	samples := make([]Sample, 0, capHint)
	for i := uint32(0); i < count; i++ {
		sample, err := DecodeSample(r)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

// EncodeSampleList writes the four-byte count followed by each record in
// list order.
func EncodeSampleList(w io.Writer, samples []Sample) error {
	if uint64(len(samples)) > math.MaxUint32 {
		return &FormatError{Message: "sample list exceeds the 32-bit record count"}
	}
	var countBuf [4]byte
	binary.BigEndian.PutUint32(countBuf[:], uint32(len(samples)))
	if _, err := w.Write(countBuf[:]); err != nil {
		return err
	}
	for _, s := range samples {
		if err := EncodeSample(w, s); err != nil {
			return err
		}
	}
	return nil
}
