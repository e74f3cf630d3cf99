package dosage

import "errors"

var (
	// ErrInvalidInput marks malformed requests: missing oil and formula, an
	// empty formula, or percentages that do not sum to 100.
	ErrInvalidInput = errors.New("requête invalide")

	// ErrMissingToxicologyData marks a constituent with no resolvable NOAEL.
	// It is recovered per constituent: the constituent is skipped with a
	// warning and the computation continues.
	ErrMissingToxicologyData = errors.New("NOAEL non disponible")

	// ErrNoApplicableLimit marks a systemic limit solve where not a single
	// constituent had a resolvable NOAEL.
	ErrNoApplicableLimit = errors.New("aucun constituant avec NOAEL disponible")
)
