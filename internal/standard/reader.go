package standard

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/parquet-go/parquet-go"

	"bookfuse/internal/record"
)

// ReadDimBook loads a previously written canonical table.
func ReadDimBook(path string) ([]record.CanonicalBook, error) {
	rows, err := readParquet[dimBookRow](path)
	if err != nil {
		return nil, err
	}
	books := make([]record.CanonicalBook, 0, len(rows))
	for _, r := range rows {
		books = append(books, fromRow(r))
	}
	return books, nil
}

// ReadSourceDetail loads a previously written provenance table.
func ReadSourceDetail(path string) ([]record.SourceDetail, error) {
	return readParquet[record.SourceDetail](path)
}

func readParquet[T any](path string) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet file opened", "path", path, "num_rows", pf.NumRows())

	reader := parquet.NewGenericReader[T](pf)
	defer reader.Close()

	var records []T
	rows := make([]T, 128)
	for {
		n, err := reader.Read(rows)
		if n > 0 {
			records = append(records, rows[:n]...)
		}
		if err != nil {
			break
		}
	}

	return records, nil
}
