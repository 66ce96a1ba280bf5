// Package isobib retrieves ISO standard pages from www.iso.org and turns
// them into normalized bibliographic items: identifiers, localized titles,
// abstracts, status, ICS codes, relations, contributors and links.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, sqlite/).
package isobib

// Domain is the root of every page URL and of relative feed links.
const Domain = "https://www.iso.org"
