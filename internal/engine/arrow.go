package engine

import (
	"fmt"
	"io"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/ipc"
	"github.com/apache/arrow/go/v18/arrow/memory"
)

// ArrowContentType is the media type of an Arrow IPC stream.
const ArrowContentType = "application/vnd.apache.arrow.stream"

// ArrowSchema is the column layout of exported records.
var ArrowSchema = arrow.NewSchema([]arrow.Field{
	{Name: "country", Type: arrow.BinaryTypes.String},
	{Name: "continent", Type: arrow.BinaryTypes.String},
	{Name: "population", Type: arrow.PrimitiveTypes.Int64},
	{Name: "change_pct", Type: arrow.PrimitiveTypes.Float64},
}, nil)

// ToArrow copies the store into a single Arrow record.
// The caller owns the record and must Release it.
func (cs *ColumnStore) ToArrow(mem memory.Allocator) arrow.Record {
	b := array.NewRecordBuilder(mem, ArrowSchema)
	defer b.Release()

	continents := make([]string, cs.Len())
	for i, id := range cs.ContinentIDs {
		continents[i] = cs.ContinentDict[id]
	}

	b.Field(0).(*array.StringBuilder).AppendValues(cs.Names, nil)
	b.Field(1).(*array.StringBuilder).AppendValues(continents, nil)
	b.Field(2).(*array.Int64Builder).AppendValues(cs.Populations, nil)
	b.Field(3).(*array.Float64Builder).AppendValues(cs.Changes, nil)

	return b.NewRecord()
}

// WriteArrow writes the store to w as an Arrow IPC stream.
func (cs *ColumnStore) WriteArrow(w io.Writer) error {
	mem := memory.NewGoAllocator()

	rec := cs.ToArrow(mem)
	defer rec.Release()

	iw := ipc.NewWriter(w, ipc.WithSchema(ArrowSchema), ipc.WithAllocator(mem))
	if err := iw.Write(rec); err != nil {
		iw.Close()
		return fmt.Errorf("write arrow record: %w", err)
	}
	if err := iw.Close(); err != nil {
		return fmt.Errorf("close arrow stream: %w", err)
	}
	return nil
}
