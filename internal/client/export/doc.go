// Package export stores downloaded reports and renders the monthly summary
// as a PDF. Reports go to a local directory and, when a bucket is
// configured, are archived to S3-compatible storage as well.
package export
