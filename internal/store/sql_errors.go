package store

// ErrorClass is the driver independent meaning of a failed statement.
type ErrorClass int

const (
	// ClassUnknown is any error the classifier does not recognise.
	ClassUnknown ErrorClass = iota
	// ClassUniqueViolation is a unique or primary key constraint failure.
	ClassUniqueViolation
	// ClassForeignKeyViolation is a foreign key constraint failure.
	ClassForeignKeyViolation
)

// ErrorClassificator maps driver errors to an [ErrorClass].
type ErrorClassificator interface {
	Classify(err error) ErrorClass
}
