// Package lucid provides a reader-view article extraction toolkit.
// It identifies the main article content in arbitrary HTML pages,
// scores candidate containers, strips unsafe markup and site chrome,
// and can archive the cleaned result for offline reading.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package lucid
