// Package domain contains the core entity types for the document edit
// and annotation engine: paragraphs and their runs, tables, styles,
// tracked-change revisions, comment threads, and the typed batch
// operations applied to a document.
//
// Types in this package are plain data. All mutation logic lives in the
// engine package; all persistence lives behind the driven ports.
package domain
