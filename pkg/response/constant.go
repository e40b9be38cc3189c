package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
	ValidationErrorCode     = 400

	// TimestampFormat is the wire form of Timestamp, always in UTC.
	TimestampFormat = "2006-01-02T15:04:05Z"
)
