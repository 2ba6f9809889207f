package types

import (
	"fmt"
	"strings"
)

// DataType represents the kind of values held by a column
type DataType uint8

const (
	Boolean DataType = iota
	Int32
	Int64
	Float
	Double
	Text
	EnumText
)

var dataTypeNames = [...]string{
	Boolean:  "BOOLEAN",
	Int32:    "INT32",
	Int64:    "INT64",
	Float:    "FLOAT",
	Double:   "DOUBLE",
	Text:     "TEXT",
	EnumText: "ENUMS",
}

// Valid reports whether dt is one of the supported data types
func (dt DataType) Valid() bool {
	return dt <= EnumText
}

// IsBinary reports whether values of dt are variable-length bytes
func (dt DataType) IsBinary() bool {
	return dt == Text || dt == EnumText
}

func (dt DataType) String() string {
	if !dt.Valid() {
		return fmt.Sprintf("DataType(%d)", uint8(dt))
	}
	return dataTypeNames[dt]
}

// ParseDataType parses a data type name such as "INT64" or "text".
// "ENUM" and "ENUMS" both map to EnumText.
func ParseDataType(name string) (DataType, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if upper == "ENUM" {
		return EnumText, nil
	}
	for dt, n := range dataTypeNames {
		if n == upper {
			return DataType(dt), nil
		}
	}
	return 0, NewUnsupportedTypeError(name)
}
