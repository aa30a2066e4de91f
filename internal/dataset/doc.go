// Package dataset loads the posts export into domain records.
//
// The file is read once with encoding/csv and closed. Columns are located by header name;
// extra columns are ignored. Any structural problem aborts the load.
package dataset
