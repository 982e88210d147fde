package i

// Logger is the levelled logger the services write to.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
