package core

import (
	"strconv"
	"strings"
)

// Segment column names, tried in this order.
const (
	ColSegment    = "Race/Training"
	ColSegmentAlt = "race_training"
)

// segmentAliases maps lower-cased segment cells to their canonical value.
var segmentAliases = map[string]Segment{
	"race":     SegmentRace,
	"r":        SegmentRace,
	"training": SegmentTraining,
	"touring":  SegmentTraining,
	"t":        SegmentTraining,
}

// BuildTemperatureRange pairs two endpoints.
// Returns nil when both are unknown; a single known endpoint is kept as is.
func BuildTemperatureRange(min, max *Number) *TemperatureRange {
	if min == nil && max == nil {
		return nil
	}
	return &TemperatureRange{Min: min, Max: max}
}

// MakeID derives the stable product ID from brand and code, e.g. "swix_vp30".
// Returns false when both are empty so the caller can fall back to a positional ID.
func MakeID(brand, code string) (string, bool) {
	b := idPart(brand)
	c := idPart(code)

	if b == "" && c == "" {
		return "", false
	}
	if c == "" {
		return b, true
	}
	return b + "_" + c, true
}

func idPart(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
}

// ResolveSegment reads the segment cell, preferring the primary column and
// using the alternate only when the primary is empty.
func ResolveSegment(row RawRow) Segment {
	raw := row.Get(ColSegment)
	if raw == "" {
		raw = row.Get(ColSegmentAlt)
	}
	return segmentAliases[strings.ToLower(strings.TrimSpace(raw))]
}

// BuildRecord assembles one product from a sheet row.
//
// produced is the number of records already built in this run and feeds the
// positional ID used when a row has neither brand nor code. Returns false for
// rows without brand, code and product name; those are separator rows, not errors.
func BuildRecord(row RawRow, produced int) (ProductRecord, bool) {
	brand := strings.TrimSpace(row.Get(ColBrand))
	line := strings.TrimSpace(row.Get(ColLine))
	code := strings.TrimSpace(row.Get(ColCode))
	productName := strings.TrimSpace(row.Get(ColProductName))

	waxType := strings.ToLower(strings.TrimSpace(row.Get(ColType)))
	if waxType == "" {
		waxType = DefaultType
	}

	if brand == "" && code == "" && productName == "" {
		return ProductRecord{}, false
	}

	ranges := TempRanges{
		New: BuildTemperatureRange(ParseNumber(row.Get(ColTempNewMin)), ParseNumber(row.Get(ColTempNewMax))),
		Old: BuildTemperatureRange(ParseNumber(row.Get(ColTempOldMin)), ParseNumber(row.Get(ColTempOldMax))),
		Wet: BuildTemperatureRange(ParseNumber(row.Get(ColTempWetMin)), ParseNumber(row.Get(ColTempWetMax))),
	}

	notes := []string{}
	if n := strings.TrimSpace(row.Get(ColNotes)); n != "" {
		notes = append(notes, n)
	}

	priority := DefaultPriority
	if p := ParseNumber(row.Get(ColPriority)); p != nil {
		if v, ok := p.Int(); ok {
			priority = v
		}
	}

	id, ok := MakeID(brand, code)
	if !ok {
		id = "prod_" + strconv.Itoa(produced+1)
	}

	product := productName
	if product == "" {
		product = strings.TrimSpace(brand + " " + code)
	}

	return ProductRecord{
		ID:         id,
		Brand:      brand,
		Line:       line,
		Code:       code,
		Product:    product,
		Type:       waxType,
		Segment:    ResolveSegment(row),
		TempRanges: ranges,
		Priority:   priority,
		Notes:      notes,
		ImageFile:  optionalText(row.Get(ColImageFile)),
		Active:     ParseBool(row.Get(ColActive)),
	}, true
}
