// Package verifier shells out to an external solution verifier binary, a
// pure CLI-side collaborator that never touches core state: it only reads
// the instance and solution files already written to disk and reports
// pass/fail plus any violation lines on stdout.
package verifier
