package storage

type Type string

const (
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storage type: %s"
	ErrUnsupportedCache  StorerError = "unsupported cache type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
