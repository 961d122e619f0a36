// Package services implements the driving ports: the document service
// for one-shot open-edit-save calls and the session service that hands
// out exclusive engine handles to long-lived callers.
package services
