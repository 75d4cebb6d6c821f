package contracts

// IDGenerator hands out identifiers for new records. Implementations must
// return unique positive values; 0 is reserved as the absent/sentinel
// identifier.
type IDGenerator interface {
	NextID() int64
}
