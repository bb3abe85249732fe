// Package pagination provides sorting and offset/limit windowing for CLI
// list output.
//
//   - Params: --sort, --limit and --offset flag values and their validation
//   - ParseSort: "field" or "field:order" parsing
//   - ActivitySorter: field-validated ordering of catalog activities
package pagination
