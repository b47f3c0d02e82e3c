package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"pricecompare/internal/model"
)

// Writer escreve o relatório de comparação. O arquivo é truncado em Create.
type Writer struct {
	f    *os.File
	csv  *csv.Writer
	Path string
}

func Create(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create report dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	cw := csv.NewWriter(f)
	cw.UseCRLF = true
	return &Writer{f: f, csv: cw, Path: path}, nil
}

func (w *Writer) WriteHeader() error {
	return w.csv.Write(model.OutputHeader)
}

// Write grava uma linha e faz flush, para que uma execução interrompida
// deixe no disco tudo o que já foi coletado.
func (w *Writer) Write(row model.OutputRow) error {
	if err := w.csv.Write(row.Record()); err != nil {
		return err
	}
	w.csv.Flush()
	return w.csv.Error()
}

func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}
