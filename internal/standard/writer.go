// Package standard persists and re-reads the standard-zone artifacts: the
// canonical dim_book table and the book_source_detail provenance table as
// parquet files, plus the schema documentation markdown. Each run fully
// replaces the previous artifacts; nothing is appended.
package standard

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/shopspring/decimal"

	"bookfuse/internal/record"
)

// dimBookRow is the parquet projection of a CanonicalBook: intermediate
// survivorship fields are dropped and the decimal price becomes a nullable
// float column.
type dimBookRow struct {
	BookID           string   `parquet:"book_id"`
	Titulo           string   `parquet:"titulo"`
	AutorEs          string   `parquet:"autor/es"`
	Editorial        string   `parquet:"editorial"`
	FechaPublicacion string   `parquet:"fecha_publicacion"`
	Idioma           string   `parquet:"idioma"`
	ISBN10           string   `parquet:"isbn10"`
	ISBN13           string   `parquet:"isbn13"`
	Categoria        []string `parquet:"categoria,list"`
	Precio           *float64 `parquet:"precio,optional"`
	Moneda           string   `parquet:"moneda"`
	FuenteGanadora   string   `parquet:"fuente_ganadora"`
	TSUltimaAct      string   `parquet:"ts_ultima_actualizacion"`
}

func toRow(c record.CanonicalBook) dimBookRow {
	row := dimBookRow{
		BookID:           c.BookID,
		Titulo:           c.Titulo,
		AutorEs:          c.AutorEs,
		Editorial:        c.Editorial,
		FechaPublicacion: c.FechaPublicacion,
		Idioma:           c.Idioma,
		ISBN10:           c.ISBN10,
		ISBN13:           c.ISBN13,
		Categoria:        c.Categoria,
		Moneda:           c.Moneda,
		FuenteGanadora:   c.FuenteGanadora,
		TSUltimaAct:      c.TSUltimaAct,
	}
	if c.Precio != nil {
		f := c.Precio.InexactFloat64()
		row.Precio = &f
	}
	return row
}

func fromRow(r dimBookRow) record.CanonicalBook {
	can := record.CanonicalBook{
		BookID:           r.BookID,
		Titulo:           r.Titulo,
		AutorEs:          r.AutorEs,
		Editorial:        r.Editorial,
		FechaPublicacion: r.FechaPublicacion,
		Idioma:           r.Idioma,
		ISBN10:           r.ISBN10,
		ISBN13:           r.ISBN13,
		Categoria:        r.Categoria,
		Moneda:           r.Moneda,
		FuenteGanadora:   r.FuenteGanadora,
		TSUltimaAct:      r.TSUltimaAct,
	}
	if r.Precio != nil {
		d := decimal.NewFromFloat(*r.Precio)
		can.Precio = &d
	}
	return can
}

// WriteDimBook writes the canonical table to a parquet file.
func WriteDimBook(path string, books []record.CanonicalBook) error {
	rows := make([]dimBookRow, 0, len(books))
	for _, b := range books {
		rows = append(rows, toRow(b))
	}
	return writeParquet(path, rows)
}

// WriteSourceDetail writes the provenance table to a parquet file.
func WriteSourceDetail(path string, details []record.SourceDetail) error {
	return writeParquet(path, details)
}

func writeParquet[T any](path string, rows []T) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[T](file)
	for len(rows) > 0 {
		n, err := writer.Write(rows)
		if err != nil {
			return fmt.Errorf("failed to write parquet rows: %w", err)
		}
		rows = rows[n:]
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}

	slog.Debug("Parquet file written", "path", path)
	return nil
}

// schemaDoc documents the dim_book contract alongside the data artifacts.
const schemaDoc = `# Schema: dim_book

Fields:
- book_id (string, not null)
- titulo (string)
- autor/es (string)  # authors separated by ';'
- editorial (string)
- fecha_publicacion (date ISO-8601)
- idioma (BCP-47)
- isbn10 (string)
- isbn13 (string)
- categoria (list<string>)
- precio (float)
- moneda (ISO-4217)
- fuente_ganadora (string)
- ts_ultima_actualizacion (timestamp ISO-8601)

Rules:
- book_id prefers isbn13; without one, a stable SHA-1 hash of the key
  fields (title, author, publisher, date) is generated.
- Survivorship: most complete row wins; Google Books preferred for title
  and price.
- Lists such as categoria are merged and de-duplicated; authors are
  exposed in autor/es as text.
`

// WriteSchemaDoc writes the dim_book schema documentation.
func WriteSchemaDoc(path string) error {
	if err := os.WriteFile(path, []byte(schemaDoc), 0o644); err != nil {
		return fmt.Errorf("failed to write schema doc: %w", err)
	}
	return nil
}
