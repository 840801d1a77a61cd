// Package pav provides the Provenance, Authoring and Versioning (PAV)
// properties Annotopia records on every stored item.
package pav

// Namespace is the base IRI of PAV.
const Namespace = "http://purl.org/pav/"

// Prefix is the conventional Turtle prefix for Namespace.
const Prefix = "pav"

// Authoring IRIs.
const (
	// CreatedBy links an item to the agent that created it.
	CreatedBy = Namespace + "createdBy"

	// CreatedAt is the creation timestamp.
	CreatedAt = Namespace + "createdAt"

	// CreatedWith links an item to the software used to create it.
	CreatedWith = Namespace + "createdWith"
)

// Versioning IRIs.
const (
	// LastUpdatedBy links an item to the agent that last modified it.
	LastUpdatedBy = Namespace + "lastUpdatedBy"

	// LastUpdatedOn is the timestamp of the last modification.
	LastUpdatedOn = Namespace + "lastUpdatedOn"

	// PreviousVersion links an item to the version it replaces.
	PreviousVersion = Namespace + "previousVersion"
)
