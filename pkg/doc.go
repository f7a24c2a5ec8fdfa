// Package pkg provides the core libraries for odsgen document conversion.
//
// # Overview
//
// odsgen turns loosely-typed descriptions of tabs, rows, and cells into
// OpenDocument spreadsheets. The pkg directory is organized by pipeline
// stage:
//
//  1. [sheet] - Canonical document model and style resolution
//  2. [sheet/normalize] - Shaping loose input into the canonical model
//  3. [sheet/span] - Merge area parsing and validation
//  4. [style] - Style catalog, registry, and family detection
//  5. [ods] - OpenDocument container serialization
//  6. [pipeline] - Orchestration (decode → normalize → resolve → write)
//
// Supporting packages: [cache] stores conversion results for the HTTP
// service, [errors] defines the coded error type shared by all stages,
// and [buildinfo] carries version metadata injected at build time.
//
// # Architecture
//
// The typical data flow through odsgen:
//
//	JSON / YAML / TOML description
//	         |
//	    pipeline.Decode
//	         |
//	    normalize.Document        loose value -> canonical tabs/rows/cells
//	         |
//	    span.Resolve              merge areas validated per tab
//	         |
//	    sheet.ResolveStyles       effective style for every row and cell
//	         |
//	    ods.Bytes                 content.xml + container zip
//	         |
//	    .ods archive
package pkg
