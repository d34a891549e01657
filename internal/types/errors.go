package types

import "errors"

// Sentinel errors for DataWarden operations.
//
// Data-shape problems inside a single rule (missing column, unparseable
// timestamp) are NOT errors in this sense; they surface as error-status
// details on the rule result. These sentinels cover programmer errors
// (invalid rule configuration) and invalid input to the outermost APIs.
var (
	// ErrNoColumns indicates a rule was constructed with an empty column list.
	ErrNoColumns = errors.New("rule requires at least one column")

	// ErrInvalidThreshold indicates a threshold outside the [0, 1] range.
	ErrInvalidThreshold = errors.New("threshold must be in [0, 1]")

	// ErrInvalidMaxAge indicates a non-positive freshness window.
	ErrInvalidMaxAge = errors.New("max age must be positive")

	// ErrNoConstraints indicates a validity rule with no constraints configured.
	ErrNoConstraints = errors.New("validity rule requires at least one constraint")

	// ErrInvalidPattern indicates a validity pattern that does not compile.
	ErrInvalidPattern = errors.New("pattern constraint is not a valid regular expression")

	// ErrEmptyRuleName indicates a rule constructed without a name.
	ErrEmptyRuleName = errors.New("rule name is required")

	// ErrInvalidSeverity indicates a severity outside the known levels.
	ErrInvalidSeverity = errors.New("severity must be low, medium, high, or critical")

	// ErrNilDataset indicates a nil dataset handed to the validator.
	ErrNilDataset = errors.New("dataset is nil")

	// ErrColumnLengthMismatch indicates dataset columns of unequal length.
	ErrColumnLengthMismatch = errors.New("dataset columns must have equal length")

	// ErrDuplicateColumn indicates a dataset with two columns of the same name.
	ErrDuplicateColumn = errors.New("duplicate column name in dataset")

	// ErrReportNotFound indicates a report id absent from the store.
	ErrReportNotFound = errors.New("report not found")
)
