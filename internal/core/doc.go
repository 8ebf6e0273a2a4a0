// Package core provides the normalization pipeline for the grip wax sheet.
//
// The package is organized in three layers:
//
//   - Field parsers ([ParseNumber], [ParseBool]): raw cell text to typed values.
//     They never fail; bad input becomes nil or a default.
//   - Record assembly ([BuildRecord]): one [ProductRecord] per sheet row,
//     with defaults, the stable ID and the three temperature ranges.
//   - Driver ([Convert], [ConvertFile]): reads the sheet, assembles rows in
//     order, drops inactive products and writes the [Document].
//
// # Sheet Format
//
// The sheet is comma or semicolon separated; [DetectDelimiter] decides from
// the first [SniffSampleSize] bytes. Header names are matched
// case-insensitively and every column is optional. See [ProductSheet].
//
// # Error Handling
//
// Only structural problems are errors: a missing input file
// ([ErrInputNotFound]), an oversize file ([ErrFileTooLarge]), an unparseable
// sheet or an unwritable output. [MapError] turns those into coded messages
// for the HTTP surface.
package core
