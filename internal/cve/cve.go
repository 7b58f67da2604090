/*
Package cve implements cve search and extraction functionality.
*/
package cve

import "net/url"

// SearchEndpoint is the public keyword search interface of the MITRE CVE
// database.
const SearchEndpoint = "https://cve.mitre.org/cgi-bin/cvekey.cgi"

// Record represents a single extracted CVE entry.
type Record struct {
	ID          string
	Description string
}

// Records is a collection of Records, kept in page order.
type Records []Record

// IDs returns the identifiers of all records in order.
func (r Records) IDs() []string {
	ids := make([]string, 0, len(r))
	for _, record := range r {
		ids = append(ids, record.ID)
	}

	return ids
}

// SearchURL builds the keyword search URL against the given endpoint.
func SearchURL(endpoint, keyword string) string {
	return endpoint + "?keyword=" + url.QueryEscape(keyword)
}
