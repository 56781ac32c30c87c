package ifaces

type Logger interface {
	Log(msg string)
}
