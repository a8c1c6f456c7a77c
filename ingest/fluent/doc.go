// Package fluent reads ANSYS Fluent ASCII exports of scalar fields.
//
// A finite volume solver writes fields on an unstructured mesh, while
// operator assembly wants values on a structured uniform grid. This
// package parses the export format and resamples the scattered nodes
// onto a grid with inverse-distance weighting.
//
// # Format
//
// Fluent ASCII exports carry four lines of metadata, one line naming
// the columns, and one comma-separated record per mesh node:
//
//	nodenumber, x-coordinate, y-coordinate, x-velocity
//	1, 0.000000e+00, 0.000000e+00, 1.250000e-01
//
// The node number is ignored. Columns past the fourth are ignored too,
// so exports with several fields can be read one field at a time by
// reordering columns at export.
//
// # Usage
//
//	f, err := os.Open("cavity_base_flow_Re1000.csv")
//	field, err := fluent.ReadExport(f)
//	grid, err := field.Resample(64, 64)
package fluent
