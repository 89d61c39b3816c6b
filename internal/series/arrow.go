package series

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/zebras/internal/value"
)

// InferArrowType picks the narrowest Arrow type able to hold every
// non-missing value: float64 for numbers, boolean for booleans, and utf8
// otherwise. A column with only missing values is utf8.
func InferArrowType(s Series) arrow.DataType {
	var numbers, bools, texts int
	for _, v := range s {
		switch v.Kind() {
		case value.KindNumber:
			numbers++
		case value.KindBool:
			bools++
		case value.KindText:
			texts++
		}
	}

	switch {
	case texts == 0 && bools == 0 && numbers > 0:
		return arrow.PrimitiveTypes.Float64
	case texts == 0 && numbers == 0 && bools > 0:
		return arrow.FixedWidthTypes.Boolean
	default:
		return arrow.BinaryTypes.String
	}
}

// ToArrow builds an Arrow array of the given type. Missing values become
// nulls. The caller owns the returned array and must Release it.
func ToArrow(s Series, dt arrow.DataType, mem memory.Allocator) (arrow.Array, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	//nolint:exhaustive // only the types produced by InferArrowType are supported
	switch dt.ID() {
	case arrow.FLOAT64:
		builder := array.NewFloat64Builder(mem)
		defer builder.Release()
		for _, v := range s {
			if f, ok := v.Num(); ok {
				builder.Append(f)
				continue
			}
			builder.AppendNull()
		}
		return builder.NewArray(), nil
	case arrow.BOOL:
		builder := array.NewBooleanBuilder(mem)
		defer builder.Release()
		for _, v := range s {
			if b, ok := v.Truth(); ok {
				builder.Append(b)
				continue
			}
			builder.AppendNull()
		}
		return builder.NewArray(), nil
	case arrow.STRING:
		builder := array.NewStringBuilder(mem)
		defer builder.Release()
		for _, v := range s {
			if v.IsMissing() {
				builder.AppendNull()
				continue
			}
			builder.Append(v.Key())
		}
		return builder.NewArray(), nil
	default:
		return nil, fmt.Errorf("unsupported arrow type: %s", dt)
	}
}

// FromArrow converts an Arrow array back into a Series. Nulls become the
// missing marker; integer and float32 columns widen to numbers.
func FromArrow(arr arrow.Array) (Series, error) {
	out := make(Series, arr.Len())
	for i := range out {
		if arr.IsNull(i) {
			continue
		}
		switch typed := arr.(type) {
		case *array.Float64:
			out[i] = value.Number(typed.Value(i))
		case *array.Float32:
			out[i] = value.Number(float64(typed.Value(i)))
		case *array.Int64:
			out[i] = value.Number(float64(typed.Value(i)))
		case *array.Int32:
			out[i] = value.Number(float64(typed.Value(i)))
		case *array.Boolean:
			out[i] = value.Bool(typed.Value(i))
		case *array.String:
			out[i] = value.Text(typed.Value(i))
		default:
			return nil, fmt.Errorf("unsupported arrow array: %T", arr)
		}
	}
	return out, nil
}
