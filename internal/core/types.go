package core

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

// Document metadata. The app checks Version before reading products.
const (
	DocumentVersion = "2.0"
	DocumentScope   = "Classic grip – new/old/wet"
)

// Defaults applied when a field is blank or unparseable.
const (
	DefaultType     = "hardwax"
	DefaultPriority = 70
)

// Number is a parsed numeric cell. Values with a zero fractional part
// encode as JSON integers, everything else as JSON reals.
type Number float64

// NumberOf returns a pointer to n, for building records in code and tests.
func NumberOf(n float64) *Number {
	v := Number(n)
	return &v
}

// IsInteger reports whether n has no fractional part.
func (n Number) IsInteger() bool {
	f := float64(n)
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}

// Int truncates n toward zero. Returns false if n does not fit in an int.
func (n Number) Int() (int, bool) {
	f := math.Trunc(float64(n))
	if math.IsNaN(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.New("core: non-finite number")
	}
	if n.IsInteger() {
		if f > -(1<<63) && f < 1<<63 {
			return strconv.AppendInt(nil, int64(f), 10), nil
		}
		return strconv.AppendFloat(nil, f, 'f', 0, 64), nil
	}
	return json.Marshal(f)
}

// TemperatureRange is the operating band for one snow condition.
// Either endpoint may be unknown; a range with both unknown is never built.
type TemperatureRange struct {
	Min *Number `json:"min"`
	Max *Number `json:"max"`
}

// TempRanges holds one range per snow condition. Nil encodes as null, so the
// three keys are always present in the output.
type TempRanges struct {
	New *TemperatureRange `json:"new"`
	Old *TemperatureRange `json:"old"`
	Wet *TemperatureRange `json:"wet"`
}

// Segment marks whether a wax is meant for racing or training.
type Segment string

const (
	SegmentAny      Segment = "" // suitable for both
	SegmentRace     Segment = "race"
	SegmentTraining Segment = "training"
)

// ProductRecord is one product in the output document.
type ProductRecord struct {
	ID         string     `json:"id"`
	Brand      string     `json:"brand"`
	Line       string     `json:"line"`
	Code       string     `json:"code"`
	Product    string     `json:"product"`
	Type       string     `json:"type"`
	Segment    Segment    `json:"segment"`
	TempRanges TempRanges `json:"temp_ranges"`
	Priority   int        `json:"priority"`
	Notes      []string   `json:"notes"`
	ImageFile  *string    `json:"imageFile"`
	Active     bool       `json:"active"`
}

// Document is the top-level JSON artifact.
type Document struct {
	Version  string          `json:"version"`
	Scope    string          `json:"scope"`
	Products []ProductRecord `json:"products"`
}

// NewDocument wraps products in the versioned document shape.
// A nil slice is replaced with an empty one so products encodes as [].
func NewDocument(products []ProductRecord) Document {
	if products == nil {
		products = []ProductRecord{}
	}
	return Document{
		Version:  DocumentVersion,
		Scope:    DocumentScope,
		Products: products,
	}
}

// HeaderIndex maps normalized column names to their position in a CSV row.
type HeaderIndex map[string]int

// RawRow maps normalized column names to raw, untrimmed cell values.
type RawRow map[string]string

// Get returns the raw value for col, or "" if the column is absent.
func (r RawRow) Get(col string) string {
	return r[NormalizeHeader(col)]
}

// Stats summarizes one pipeline run.
type Stats struct {
	RowsRead       int      // data rows in the table, header excluded
	BlankRows      int      // rows without brand, code and product name
	InactiveRows   int      // records dropped because active was false
	Products       int      // records written to the document
	Delimiter      rune     // detected field separator
	MissingColumns []string // expected columns absent from the header
}
