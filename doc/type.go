package doc

// Type is the closed set of TOML value kinds.
type Type int

const (
	InvalidType Type = iota
	StringType
	IntegerType
	FloatType
	BoolType
	DatetimeType
	ArrayType
	InlineTableType
)

func (t Type) String() string {
	switch t {
	case InvalidType:
		return "invalid"
	case StringType:
		return "string"
	case IntegerType:
		return "integer"
	case FloatType:
		return "float"
	case BoolType:
		return "bool"
	case DatetimeType:
		return "datetime"
	case ArrayType:
		return "array"
	case InlineTableType:
		return "inline-table"
	default:
		return "<err: unknown type>"
	}
}

// Types returns all value types.
func Types() []Type {
	return []Type{
		StringType,
		IntegerType,
		FloatType,
		BoolType,
		DatetimeType,
		ArrayType,
		InlineTableType,
	}
}

// ItemType is the closed set of table entry kinds.
type ItemType int

const (
	NoneItem ItemType = iota
	ValueItem
	TableItem
	ArrayOfTablesItem
)

func (t ItemType) String() string {
	switch t {
	case NoneItem:
		return "none"
	case ValueItem:
		return "value"
	case TableItem:
		return "table"
	case ArrayOfTablesItem:
		return "array-of-tables"
	default:
		return "<err: unknown item type>"
	}
}
