package store

import "fmt"

// ErrFieldAbsent marca um caminho esperado que não veio na resposta.
type ErrFieldAbsent struct {
	Store string
	Path  string
}

func (e *ErrFieldAbsent) Error() string {
	return fmt.Sprintf("%s: field %s absent", e.Store, e.Path)
}

func absent(store, path string) error {
	return &ErrFieldAbsent{Store: store, Path: path}
}
